package hydrate

import (
	"iter"
	"slices"
)

// Ranger is a map-like source that yields its entries in order.
type Ranger interface {
	All() iter.Seq2[Key, any]
}

// Map is an insertion-ordered map keyed by names and list indexes.
// It serves both as a source and as the container for overflow buckets and
// dynamic fields. The zero value is an empty map ready to use.
type Map struct {
	keys   []Key
	values map[Key]any
	next   int
}

// NewMap creates an empty Map.
func NewMap() *Map {
	return &Map{}
}

// ListOf creates a Map holding values under indexes 0..n-1.
func ListOf(values ...any) *Map {
	m := NewMap()
	for _, v := range values {
		m.Append(v)
	}

	return m
}

// Put stores v under k. A new key goes to the end, an existing one keeps
// its position and the value is replaced.
func (m *Map) Put(k Key, v any) *Map {
	if m.values == nil {
		m.values = make(map[Key]any)
	}

	if _, exists := m.values[k]; !exists {
		m.keys = append(m.keys, k)
	}

	m.values[k] = v

	if k.isIndex && k.index >= m.next {
		m.next = k.index + 1
	}

	return m
}

// Set stores v under a string key.
func (m *Map) Set(name string, v any) *Map {
	return m.Put(Name(name), v)
}

// SetIndex stores v under an integer key.
func (m *Map) SetIndex(i int, v any) *Map {
	return m.Put(Index(i), v)
}

// Append stores v under the index following the highest index seen so far.
func (m *Map) Append(v any) *Map {
	return m.Put(Index(m.next), v)
}

func (m *Map) Get(k Key) (any, bool) {
	if m == nil {
		return nil, false
	}

	v, ok := m.values[k]

	return v, ok
}

// Lookup returns the value stored under a string key.
func (m *Map) Lookup(name string) (any, bool) {
	return m.Get(Name(name))
}

func (m *Map) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

func (m *Map) Delete(k Key) {
	if !m.Has(k) {
		return
	}

	delete(m.values, k)
	m.keys = slices.DeleteFunc(m.keys, func(e Key) bool { return e == k })
}

func (m *Map) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []Key {
	if m == nil {
		return nil
	}

	return slices.Clone(m.keys)
}

// Values returns all values in insertion order.
func (m *Map) Values() []any {
	if m == nil {
		return nil
	}

	out := make([]any, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.values[k])
	}

	return out
}

// List returns the values stored under integer keys, in insertion order.
func (m *Map) List() []any {
	if m == nil {
		return nil
	}

	var out []any

	for _, k := range m.keys {
		if k.isIndex {
			out = append(out, m.values[k])
		}
	}

	return out
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if m == nil {
			return
		}

		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, v := range m.All() {
		out.Put(k, v)
	}

	out.next = max(out.next, m.nextIndex())

	return out
}

func (m *Map) nextIndex() int {
	if m == nil {
		return 0
	}

	return m.next
}

// isList reports whether the keys are exactly the indexes 0..n-1 in order.
func (m *Map) isList() bool {
	for i, k := range m.keys {
		if !k.isIndex || k.index != i {
			return false
		}
	}

	return true
}
