// Package query provides lazily evaluated queries over in-memory sequences, mappings,
// and user supplied producers. A Queryable wraps a producer factory; chained operators
// compose new factories without pulling any data, and terminal operators drain a fresh
// cursor obtained from the factory.
package query

type (
	// Iterator is a single use, pull based cursor over a sequence of values. Next
	// returns the next item together with true, or nil and false once the sequence
	// has ended. An Iterator is stateful and not safe for concurrent pulls.
	Iterator interface {
		Next() (Value, bool)
	}

	// Queryable is an immutable, lazily evaluated query. The lazy operators Where,
	// Reject, and Select return new Queryable values and consume nothing. The
	// remaining operators are eager; each of them obtains a brand new Iterator from
	// the wrapped factory, so terminal calls never interfere with each other and can
	// be repeated at will.
	Queryable interface {
		// Where returns a new Queryable yielding only the items for which the
		// predicate returns true, preserving relative order.
		Where(predicate Predicate) Queryable

		// Reject returns a new Queryable yielding only the items for which the
		// predicate returns false, preserving relative order.
		Reject(predicate Predicate) Queryable

		// Select returns a new Queryable yielding the result of applying the given
		// mapper to every item, one to one, preserving order.
		Select(mapper Mapper) Queryable

		// All returns true if the predicate holds for every item. It short-circuits
		// on the first counterexample and is vacuously true on an empty source.
		All(predicate Predicate) bool

		// Any returns true if the predicate holds for at least one item. It
		// short-circuits on the first match and is vacuously false on an empty
		// source.
		Any(predicate Predicate) bool

		// AsArray drains the query and returns all items in yield order. An empty
		// source yields an empty, non nil slice.
		AsArray() []Value

		// AsHash drains the query into a map. Only *Pair and Pair items carrying a
		// usable key are stored, last write wins; everything else is silently
		// skipped.
		AsHash() map[Value]Value

		// Count drains the query and returns the number of items.
		Count() int

		// Each drains the query, applying the consumer to every item in order.
		Each(consumer Consumer)

		// First pulls exactly one item from a fresh cursor. It returns nil and
		// false when the source is empty and never drains further.
		First() (Value, bool)

		// FirstOrNil is a named alias for First that folds the empty case into a
		// nil result.
		FirstOrNil() Value

		// Iterator returns a fresh one-shot cursor for manual pulls.
		Iterator() Iterator
	}
)
