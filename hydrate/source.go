package hydrate

import (
	"cmp"
	"encoding"
	"iter"
	"reflect"
	"slices"
)

// PropertySource exposes virtual or computed properties to pull fills.
// ok is false when the source has no such property; an error aborts the fill.
type PropertySource interface {
	Property(key string) (value any, ok bool, err error)
}

type sourceKind int

const (
	sourceScalar sourceKind = iota
	sourceMap
	sourceObject
)

func (k sourceKind) String() string {
	switch k {
	case sourceScalar:
		return "scalar"
	case sourceMap:
		return "map"
	case sourceObject:
		return "object"
	default:
		return "unknown"
	}
}

type keyLookup interface {
	Get(k Key) (any, bool)
}

// source is a classified fill source. For objects, object holds a pointer to
// the struct so pointer-receiver getters can be called.
type source struct {
	kind   sourceKind
	raw    any
	value  reflect.Value
	object reflect.Value
}

var typeTextMarshaler = reflect.TypeFor[encoding.TextMarshaler]()

func classify(raw any) source {
	src := source{kind: sourceScalar, raw: raw}
	if raw == nil {
		return src
	}

	if _, ok := raw.(Ranger); ok {
		src.kind = sourceMap
		return src
	}

	rv := reflect.ValueOf(raw)
	if rv.Type().Implements(typeTextMarshaler) {
		return src
	}

	switch rv.Kind() {
	case reflect.Map:
		if isKeyKind(rv.Type().Key().Kind()) {
			src.kind = sourceMap
			src.value = rv
		}

	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() != reflect.Uint8 {
			src.kind = sourceMap
			src.value = rv
		}

	case reflect.Struct:
		ptr := reflect.New(rv.Type())
		ptr.Elem().Set(rv)

		src.kind = sourceObject
		src.object = ptr

	case reflect.Pointer:
		if !rv.IsNil() && rv.Elem().Kind() == reflect.Struct {
			src.kind = sourceObject
			src.object = rv
		}
	}

	if src.kind == sourceScalar {
		if _, ok := raw.(PropertySource); ok {
			src.kind = sourceObject
		}
	}

	return src
}

// entries yields the pairs a push fill iterates. A scalar becomes a single
// entry named after the bucket.
func (s source) entries(name string) iter.Seq2[Key, any] {
	switch s.kind {
	case sourceMap:
		if r, ok := s.raw.(Ranger); ok {
			return r.All()
		}

		if s.value.Kind() == reflect.Map {
			return mapEntries(s.value)
		}

		return listEntries(s.value)

	case sourceObject:
		return objectEntries(s.object)

	default:
		return func(yield func(Key, any) bool) {
			yield(Name(name), s.raw)
		}
	}
}

// lookup fetches the value a pull fill wants for key. found reports whether
// the source knows the key at all; a known key may still hold nil.
func (s source) lookup(key string) (value any, found bool, err error) {
	switch s.kind {
	case sourceScalar:
		return s.raw, true, nil

	case sourceMap:
		return s.mapLookup(key)

	default:
		return s.objectLookup(key)
	}
}

func (s source) mapLookup(key string) (any, bool, error) {
	if l, ok := s.raw.(keyLookup); ok {
		v, found := l.Get(Name(key))
		return v, found, nil
	}

	if r, ok := s.raw.(Ranger); ok {
		for k, v := range r.All() {
			if k == Name(key) {
				return v, true, nil
			}
		}

		return nil, false, nil
	}

	if s.value.Kind() != reflect.Map {
		return nil, false, nil
	}

	var v reflect.Value

	switch kt := s.value.Type().Key(); kt.Kind() {
	case reflect.String:
		v = s.value.MapIndex(reflect.ValueOf(key).Convert(kt))
	case reflect.Interface:
		if reflect.TypeOf(key).AssignableTo(kt) {
			v = s.value.MapIndex(reflect.ValueOf(key))
		}
	}

	if !v.IsValid() {
		return nil, false, nil
	}

	return interfaceOf(v), true, nil
}

// objectLookup probes a getter method, then an exported field, then the
// PropertySource capability.
func (s source) objectLookup(key string) (any, bool, error) {
	if s.object.IsValid() {
		sch := schemaOf(s.object.Type().Elem())

		if get, ok := sch.getter(key); ok {
			v, err := get(s.object)
			return v, true, err
		}

		if f, ok := sch.field(key); ok {
			if v, ok := fieldByIndex(s.object.Elem(), f.index, false); ok {
				return interfaceOf(v), true, nil
			}
		}
	}

	if p, ok := s.raw.(PropertySource); ok {
		return p.Property(key)
	}

	return nil, false, nil
}

func objectEntries(object reflect.Value) iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if !object.IsValid() {
			return
		}

		for _, f := range schemaOf(object.Type().Elem()).fields {
			v, ok := fieldByIndex(object.Elem(), f.index, false)
			if !ok {
				continue
			}

			if !yield(Name(f.key), interfaceOf(v)) {
				return
			}
		}
	}
}

func listEntries(list reflect.Value) iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		for i := 0; i < list.Len(); i++ {
			if !yield(Index(i), interfaceOf(list.Index(i))) {
				return
			}
		}
	}
}

// mapEntries visits a Go map in a stable order: integer keys ascending,
// then string keys lexicographically. Keys of an interface-keyed map that
// hold neither an integer nor a string are skipped.
func mapEntries(m reflect.Value) iter.Seq2[Key, any] {
	keys := make([]Key, 0, m.Len())
	values := make(map[Key]reflect.Value, m.Len())

	it := m.MapRange()
	for it.Next() {
		k, ok := toKey(it.Key())
		if !ok {
			continue
		}

		keys = append(keys, k)
		values[k] = it.Value()
	}

	slices.SortFunc(keys, func(a, b Key) int {
		switch {
		case a.isIndex && b.isIndex:
			return cmp.Compare(a.index, b.index)
		case a.isIndex:
			return -1
		case b.isIndex:
			return 1
		default:
			return cmp.Compare(a.name, b.name)
		}
	})

	return func(yield func(Key, any) bool) {
		for _, k := range keys {
			if !yield(k, interfaceOf(values[k])) {
				return
			}
		}
	}
}

func toKey(k reflect.Value) (Key, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return Key{}, false
		}

		k = k.Elem()
	}

	switch {
	case k.CanInt():
		return Index(int(k.Int())), true
	case k.CanUint():
		return Index(int(k.Uint())), true
	case k.Kind() == reflect.String:
		return Name(k.String()), true
	default:
		return Key{}, false
	}
}

// isKeyKind reports whether a Go map with keys of kind k is a map source.
// Interface keys are sorted out per entry by toKey.
func isKeyKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.String, reflect.Interface:
		return true
	default:
		return false
	}
}
