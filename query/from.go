package query

import (
	"fmt"
	"reflect"

	"github.com/lyraproj/issue/issue"
)

var emptyQueryable = &queryable{func() Iterator { return &emptyIterator{} }}

// Empty returns the canonical empty Queryable
func Empty() Queryable {
	return emptyQueryable
}

// FromSequence wraps an ordered, indexable sequence. Any Go slice or array is accepted;
// its elements are yielded in index order. Anything else raises MOONY_EXPECTED_SEQUENCE.
func FromSequence(seq interface{}) Queryable {
	if values, ok := seq.([]Value); ok {
		return &queryable{func() Iterator { return &indexedIterator{-1, values} }}
	}
	rv := reflect.ValueOf(seq)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return &queryable{func() Iterator { return &sliceIterator{-1, rv} }}
	}
	panic(illegalArgument(ExpectedSequence, issue.H{`actual`: typeLabel(seq)}))
}

// FromMapping wraps an unordered key/value collection. Any Go map is accepted; one
// *Pair is yielded per entry in unspecified order. Anything else raises
// MOONY_EXPECTED_MAPPING. The entries are snapshotted each time a traversal starts,
// so every terminal call observes the mapping fresh.
func FromMapping(m interface{}) Queryable {
	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map {
		panic(illegalArgument(ExpectedMapping, issue.H{`actual`: typeLabel(m)}))
	}
	return &queryable{func() Iterator {
		pairs := make([]Value, 0, rv.Len())
		mi := rv.MapRange()
		for mi.Next() {
			pairs = append(pairs, WrapPair(mi.Key().Interface(), mi.Value().Interface()))
		}
		return &indexedIterator{-1, pairs}
	}}
}

// FromProducer wraps an already lazy producer factory directly
func FromProducer(factory Factory) Queryable {
	return NewQueryable(factory)
}

// From wraps an arbitrary value in a Queryable. A value that already is a Queryable is
// returned unchanged, a slice or array is delegated to FromSequence, a map to
// FromMapping, a producer factory to FromProducer, and everything else becomes the
// empty Queryable.
func From(value interface{}) Queryable {
	switch v := value.(type) {
	case Queryable:
		return v
	case Factory:
		return FromProducer(v)
	case func() Iterator:
		return FromProducer(v)
	case nil:
		return Empty()
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return FromSequence(value)
	case reflect.Map:
		return FromMapping(value)
	}
	return Empty()
}

func typeLabel(v interface{}) string {
	if v == nil {
		return `nil`
	}
	return fmt.Sprintf(`%T`, v)
}
