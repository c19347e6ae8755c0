package yaml2query_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/J4kubS/Moony/query"
	"github.com/J4kubS/Moony/yaml2query"
)

func ExampleFromDocument() {
	q, _ := yaml2query.FromDocument([]byte("- one\n- two\n- three\n"))
	fmt.Println(q.Where(func(v query.Value) bool {
		return len(v.(string)) == 3
	}).AsArray())
	// Output: [one two]
}

func TestSequenceDocument(t *testing.T) {
	q, err := yaml2query.FromDocument([]byte("- 1\n- 2\n- 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(q.AsArray(), []query.Value{1, 2, 3}) {
		t.Errorf(`expected [1 2 3], got %v`, q.AsArray())
	}
}

func TestMappingDocument(t *testing.T) {
	q, err := yaml2query.FromDocument([]byte("name: moony\nstars: 7\n"))
	if err != nil {
		t.Fatal(err)
	}
	result := q.AsHash()
	expected := map[query.Value]query.Value{`name`: `moony`, `stars`: 7}
	if !reflect.DeepEqual(result, expected) {
		t.Errorf(`expected %v, got %v`, expected, result)
	}
}

func TestScalarDocument(t *testing.T) {
	q, err := yaml2query.FromDocument([]byte(`42`))
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := q.First(); !ok || v != 42 {
		t.Errorf(`expected the scalar to be yielded once, got %v`, v)
	}
	if q.Count() != 1 {
		t.Errorf(`expected one item, got %d`, q.Count())
	}
}

func TestEmptyDocument(t *testing.T) {
	q, err := yaml2query.FromDocument([]byte(``))
	if err != nil {
		t.Fatal(err)
	}
	if q.Count() != 0 {
		t.Error(`expected an empty document to yield the empty queryable`)
	}
}

func TestMalformedDocument(t *testing.T) {
	if _, err := yaml2query.FromDocument([]byte("a: [unclosed\n")); err == nil {
		t.Error(`expected an error for a document that cannot be parsed`)
	}
}
