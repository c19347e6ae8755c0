package hash

import (
	"reflect"
	"testing"
)

func TestPutGetOrder(t *testing.T) {
	h := NewStringHash(4)
	h.Put(`b`, 1)
	h.Put(`a`, 2)
	h.Put(`c`, 3)
	if !reflect.DeepEqual(h.Keys(), []string{`b`, `a`, `c`}) {
		t.Errorf(`expected insertion order to be preserved, got %v`, h.Keys())
	}
	if h.Get(`a`, nil) != 2 {
		t.Errorf(`expected 2, got %v`, h.Get(`a`, nil))
	}
	if h.Get(`x`, 99) != 99 {
		t.Error(`expected the default value for a missing key`)
	}
}

func TestPutReplacesInPlace(t *testing.T) {
	h := NewStringHash(4)
	h.Put(`a`, 1)
	h.Put(`b`, 2)
	old := h.Put(`a`, 10)
	if old != 1 {
		t.Errorf(`expected the old value 1, got %v`, old)
	}
	if !reflect.DeepEqual(h.Keys(), []string{`a`, `b`}) {
		t.Errorf(`expected replacement to keep the original position, got %v`, h.Keys())
	}
}

func TestDeleteReindexes(t *testing.T) {
	h := NewStringHash(4)
	h.Put(`a`, 1)
	h.Put(`b`, 2)
	h.Put(`c`, 3)
	if old := h.Delete(`b`); old != 2 {
		t.Errorf(`expected 2, got %v`, old)
	}
	if !reflect.DeepEqual(h.Keys(), []string{`a`, `c`}) {
		t.Errorf(`expected [a c], got %v`, h.Keys())
	}
	if h.Get(`c`, nil) != 3 {
		t.Error(`expected the index to be adjusted after delete`)
	}
	if h.Delete(`x`) != nil {
		t.Error(`expected nil when deleting a missing key`)
	}
}

func TestCopyIsIndependent(t *testing.T) {
	h := NewStringHash(2)
	h.Put(`a`, 1)
	c := h.Copy()
	c.Put(`a`, 2)
	c.Put(`b`, 3)
	if h.Get(`a`, nil) != 1 || h.Includes(`b`) {
		t.Error(`expected changes to the copy not to affect the original`)
	}
}

func TestFrozenRejectsChanges(t *testing.T) {
	h := NewStringHash(2)
	h.Put(`a`, 1)
	h.Freeze()
	if !h.IsFrozen() {
		t.Error(`expected the hash to report frozen`)
	}
	defer func() {
		if recover() == nil {
			t.Error(`expected Put on a frozen hash to panic`)
		}
	}()
	h.Put(`b`, 2)
}

func TestFrozenCopyIsMutable(t *testing.T) {
	h := NewStringHash(2)
	h.Put(`a`, 1)
	h.Freeze()
	c := h.Copy()
	c.Put(`b`, 2)
	if !c.Includes(`b`) {
		t.Error(`expected the copy of a frozen hash to accept changes`)
	}
}

func TestMergePrecedence(t *testing.T) {
	a := NewStringHash(2)
	a.Put(`x`, 1)
	a.Put(`y`, 2)
	b := NewStringHash(2)
	b.Put(`y`, 20)
	b.Put(`z`, 30)

	m := a.Merge(b)
	if m.Get(`y`, nil) != 20 {
		t.Error(`expected the other hash to take precedence`)
	}
	if !reflect.DeepEqual(m.Keys(), []string{`x`, `y`, `z`}) {
		t.Errorf(`expected [x y z], got %v`, m.Keys())
	}
	if a.Get(`y`, nil) != 2 {
		t.Error(`expected Merge to leave the receiver untouched`)
	}
}

func TestEqualsIgnoresOrder(t *testing.T) {
	a := NewStringHash(2)
	a.Put(`x`, 1)
	a.Put(`y`, 2)
	b := NewStringHash(2)
	b.Put(`y`, 2)
	b.Put(`x`, 1)

	if !a.Equals(b) {
		t.Error(`expected hashes with the same associations to be equal`)
	}
	b.Put(`x`, 9)
	if a.Equals(b) {
		t.Error(`expected hashes with different values not to be equal`)
	}
	if a.Equals(42) {
		t.Error(`expected a non hash value not to be equal`)
	}
}

func TestEachPairOrder(t *testing.T) {
	h := NewStringHash(3)
	h.Put(`a`, 1)
	h.Put(`b`, 2)
	keys := []string{}
	h.EachPair(func(k string, v interface{}) {
		keys = append(keys, k)
	})
	if !reflect.DeepEqual(keys, []string{`a`, `b`}) {
		t.Errorf(`expected [a b], got %v`, keys)
	}
}

func TestEmptyStringHash(t *testing.T) {
	if !EmptyStringHash.IsEmpty() || EmptyStringHash.Size() != 0 {
		t.Error(`expected the shared empty hash to be empty`)
	}
	if !EmptyStringHash.IsFrozen() {
		t.Error(`expected the shared empty hash to be frozen`)
	}
}
