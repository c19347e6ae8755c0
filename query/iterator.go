package query

import "reflect"

type (
	emptyIterator struct{}

	indexedIterator struct {
		pos    int
		values []Value
	}

	sliceIterator struct {
		pos int
		seq reflect.Value
	}

	predicateIterator struct {
		predicate Predicate
		outcome   bool
		base      Iterator
	}

	mappingIterator struct {
		mapper Mapper
		base   Iterator
	}
)

func (it *emptyIterator) Next() (Value, bool) {
	return nil, false
}

func (it *indexedIterator) Next() (Value, bool) {
	pos := it.pos + 1
	if pos < len(it.values) {
		it.pos = pos
		return it.values[pos], true
	}
	return nil, false
}

func (it *sliceIterator) Next() (Value, bool) {
	pos := it.pos + 1
	if pos < it.seq.Len() {
		it.pos = pos
		return it.seq.Index(pos).Interface(), true
	}
	return nil, false
}

func (it *predicateIterator) Next() (v Value, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			if _, ok = err.(*StopIteration); ok {
				ok = false
				v = nil
			} else {
				panic(err)
			}
		}
	}()

	for {
		v, ok = it.base.Next()
		if !ok {
			v = nil
			break
		}
		if it.predicate(v) == it.outcome {
			break
		}
	}
	return
}

func (it *mappingIterator) Next() (v Value, ok bool) {
	defer func() {
		if err := recover(); err != nil {
			if _, ok = err.(*StopIteration); ok {
				ok = false
				v = nil
			} else {
				panic(err)
			}
		}
	}()

	v, ok = it.base.Next()
	if !ok {
		v = nil
		return
	}
	v = it.mapper(v)
	return
}
