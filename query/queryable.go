package query

import (
	"reflect"
	"runtime"

	"github.com/lyraproj/issue/issue"
)

type queryable struct {
	factory Factory
}

// NewQueryable wraps the given producer factory in a Queryable. The factory must be
// repeatedly callable; each invocation must return a fresh, independent Iterator over
// the same logical source.
func NewQueryable(factory Factory) Queryable {
	if factory == nil {
		panic(illegalArgument(ExpectedProducer, issue.H{`actual`: `nil`}))
	}
	return &queryable{factory}
}

func (q *queryable) Where(predicate Predicate) Queryable {
	assertPredicate(`Where`, predicate)
	base := q.factory
	return &queryable{func() Iterator {
		return &predicateIterator{predicate, true, base()}
	}}
}

func (q *queryable) Reject(predicate Predicate) Queryable {
	assertPredicate(`Reject`, predicate)
	base := q.factory
	return &queryable{func() Iterator {
		return &predicateIterator{predicate, false, base()}
	}}
}

func (q *queryable) Select(mapper Mapper) Queryable {
	if mapper == nil {
		panic(illegalArgument(MissingMapper, issue.H{`operation`: `Select`}))
	}
	base := q.factory
	return &queryable{func() Iterator {
		return &mappingIterator{mapper, base()}
	}}
}

func (q *queryable) All(predicate Predicate) bool {
	assertPredicate(`All`, predicate)
	return all(q.factory(), predicate)
}

func (q *queryable) Any(predicate Predicate) bool {
	assertPredicate(`Any`, predicate)
	return any(q.factory(), predicate)
}

func (q *queryable) AsArray() []Value {
	return asArray(q.factory())
}

func (q *queryable) AsHash() map[Value]Value {
	return asHash(q.factory())
}

func (q *queryable) Count() int {
	return count(q.factory())
}

func (q *queryable) Each(consumer Consumer) {
	each(q.factory(), consumer)
}

func (q *queryable) First() (v Value, ok bool) {
	defer stopIteration()
	return q.factory().Next()
}

func (q *queryable) FirstOrNil() Value {
	v, _ := q.First()
	return v
}

func (q *queryable) Iterator() Iterator {
	return q.factory()
}

func assertPredicate(operation string, predicate Predicate) {
	if predicate == nil {
		panic(illegalArgument(MissingPredicate, issue.H{`operation`: operation}))
	}
}

func all(iter Iterator, predicate Predicate) (result bool) {
	defer stopIteration()

	result = true
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if !predicate(v) {
			result = false
			break
		}
	}
	return
}

func any(iter Iterator, predicate Predicate) (result bool) {
	defer stopIteration()

	result = false
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if predicate(v) {
			result = true
			break
		}
	}
	return
}

func each(iter Iterator, consumer Consumer) {
	defer stopIteration()

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		consumer(v)
	}
}

func count(iter Iterator) (result int) {
	defer stopIteration()

	for {
		if _, ok := iter.Next(); !ok {
			break
		}
		result++
	}
	return
}

func asArray(iter Iterator) (result []Value) {
	el := make([]Value, 0, 16)
	defer func() {
		if err := recover(); err != nil {
			if _, ok := err.(*StopIteration); ok {
				result = el
			} else {
				panic(err)
			}
		}
	}()

	for {
		v, ok := iter.Next()
		if !ok {
			result = el
			break
		}
		el = append(el, v)
	}
	return
}

func asHash(iter Iterator) (result map[Value]Value) {
	entries := make(map[Value]Value)
	defer func() {
		if err := recover(); err != nil {
			if _, ok := err.(*StopIteration); ok {
				result = entries
			} else {
				panic(err)
			}
		}
	}()

	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		var key, value Value
		switch p := v.(type) {
		case *Pair:
			key, value = p.Key, p.Value
		case Pair:
			key, value = p.Key, p.Value
		default:
			continue
		}
		if usableKey(key) {
			storeEntry(entries, key, value)
		}
	}
	result = entries
	return
}

// usableKey reports whether a pair key can possibly address a map entry. Absent keys
// and keys of uncomparable static types cannot; such pairs are skipped rather than
// failing the drain.
func usableKey(key Value) bool {
	if key == nil {
		return false
	}
	return reflect.TypeOf(key).Comparable()
}

// storeEntry adds one association, absorbing the runtime panic raised by a key whose
// static type is comparable but whose dynamic content is not hashable (an array or
// struct carrying a slice, map, or function). Such pairs are skipped like any other
// malformed entry.
func storeEntry(entries map[Value]Value, key Value, value Value) {
	defer func() {
		if err := recover(); err != nil {
			if _, ok := err.(runtime.Error); !ok {
				panic(err)
			}
		}
	}()
	entries[key] = value
}
