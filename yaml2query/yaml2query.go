// Package yaml2query adapts YAML documents into queryables.
package yaml2query

import (
	"github.com/J4kubS/Moony/query"
	"gopkg.in/yaml.v2"
)

// FromDocument unmarshals a single YAML document and wraps its top level value. A
// mapping document becomes a mapping backed queryable yielding one *query.Pair per
// entry, a sequence document yields its elements in order, a scalar document yields
// that single value, and an empty document yields the empty queryable. The returned
// error is non nil only when the document cannot be parsed.
func FromDocument(data []byte) (query.Queryable, error) {
	var doc interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	switch v := doc.(type) {
	case nil:
		return query.Empty(), nil
	case map[interface{}]interface{}:
		return query.FromMapping(v), nil
	case []interface{}:
		return query.FromSequence(v), nil
	default:
		return query.FromSequence([]query.Value{v}), nil
	}
}
