package hash

import (
	"fmt"
	"reflect"
)

// Mutable and order preserving hash with string keys and arbitrary values.
// Used by the oop package to store class members and per-instance attributes.

type (
	stringEntry struct {
		key   string
		value interface{}
	}

	StringHash struct {
		entries []stringEntry
		index   map[string]int
		frozen  bool
	}

	frozenError struct {
		key string
	}
)

var EmptyStringHash = &StringHash{[]stringEntry{}, map[string]int{}, true}

func (f *frozenError) Error() string {
	return fmt.Sprintf(`attempt to add, modify, or delete key '%s' in a frozen StringHash`, f.key)
}

// NewStringHash returns an empty *StringHash initialized with given capacity
func NewStringHash(capacity int) *StringHash {
	return &StringHash{make([]stringEntry, 0, capacity), make(map[string]int, capacity), false}
}

// Copy returns a shallow, unfrozen copy of this hash. Keys and values are not cloned
func (h *StringHash) Copy() *StringHash {
	entries := make([]stringEntry, len(h.entries))
	copy(entries, h.entries)
	index := make(map[string]int, len(h.index))
	for k, v := range h.index {
		index[k] = v
	}
	return &StringHash{entries, index, false}
}

// AllPair calls the given function once for each key/value pair in this hash. It returns
// true if all invocations returned true, and true for an empty hash
func (h *StringHash) AllPair(f func(key string, value interface{}) bool) bool {
	for _, e := range h.entries {
		if !f(e.key, e.value) {
			return false
		}
	}
	return true
}

// EachKey calls the given consumer function once for each key, in insertion order
func (h *StringHash) EachKey(consumer func(key string)) {
	for _, e := range h.entries {
		consumer(e.key)
	}
}

// EachPair calls the given consumer function once for each key/value pair, in insertion order
func (h *StringHash) EachPair(consumer func(key string, value interface{})) {
	for _, e := range h.entries {
		consumer(e.key, e.value)
	}
}

// Equals compares two hashes for equality. Hashes are considered equal if they have
// the same size and contain the same key/value associations irrespective of order
func (h *StringHash) Equals(other interface{}) bool {
	oh, ok := other.(*StringHash)
	if !ok || len(h.entries) != len(oh.entries) {
		return false
	}
	for _, e := range h.entries {
		oi, ok := oh.index[e.key]
		if !(ok && reflect.DeepEqual(e.value, oh.entries[oi].value)) {
			return false
		}
	}
	return true
}

// Freeze prevents further changes to the hash
func (h *StringHash) Freeze() {
	h.frozen = true
}

// IsFrozen returns true when the hash no longer accepts changes
func (h *StringHash) IsFrozen() bool {
	return h.frozen
}

// Get returns a value from the hash or the given default if no value was found
func (h *StringHash) Get(key string, dflt interface{}) interface{} {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value
	}
	return dflt
}

// Get3 returns a value from the hash or nil together with a boolean to indicate if the key was present or not
func (h *StringHash) Get3(key string) (interface{}, bool) {
	if p, ok := h.index[key]; ok {
		return h.entries[p].value, true
	}
	return nil, false
}

// Delete the entry for the given key from the hash. Returns the old value or nil if not found
func (h *StringHash) Delete(key string) (oldValue interface{}) {
	if h.frozen {
		panic(&frozenError{key})
	}
	if p, ok := h.index[key]; ok {
		oldValue = h.entries[p].value
		delete(h.index, key)
		for k, v := range h.index {
			if v > p {
				h.index[k] = v - 1
			}
		}
		h.entries = append(h.entries[:p], h.entries[p+1:]...)
	}
	return
}

// Includes returns true if the hash contains the given key
func (h *StringHash) Includes(key string) bool {
	_, ok := h.index[key]
	return ok
}

// IsEmpty returns true if the hash has no entries
func (h *StringHash) IsEmpty() bool {
	return len(h.entries) == 0
}

// Keys returns the keys of the hash in the order that they were first entered
func (h *StringHash) Keys() []string {
	keys := make([]string, len(h.entries))
	for i, e := range h.entries {
		keys[i] = e.key
	}
	return keys
}

// Merge this hash with the other hash giving the other precedence. A new hash is returned
func (h *StringHash) Merge(other *StringHash) *StringHash {
	merged := h.Copy()
	merged.PutAll(other)
	return merged
}

// Put adds a new key/value association to the hash or replaces the value of an existing association
func (h *StringHash) Put(key string, value interface{}) (oldValue interface{}) {
	if h.frozen {
		panic(&frozenError{key})
	}
	if p, ok := h.index[key]; ok {
		oldValue = h.entries[p].value
		h.entries[p].value = value
	} else {
		h.index[key] = len(h.entries)
		h.entries = append(h.entries, stringEntry{key, value})
	}
	return
}

// PutAll copies all associations from the other hash into this hash, giving the other precedence
func (h *StringHash) PutAll(other *StringHash) {
	for _, e := range other.entries {
		h.Put(e.key, e.value)
	}
}

// Size returns the number of entries in the hash
func (h *StringHash) Size() int {
	return len(h.entries)
}

// Values returns the values of the hash in the order that their keys were first entered
func (h *StringHash) Values() []interface{} {
	values := make([]interface{}, len(h.entries))
	for i, e := range h.entries {
		values[i] = e.value
	}
	return values
}
