package hydrate

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fillable/internal/naming"
)

const (
	setterPrefix = "Set"
	getterPrefix = "Get"
)

var (
	schemas      sync.Map // reflect.Type -> *schema
	typeFillable = reflect.TypeFor[Fillable]()
)

type field struct {
	key   string
	name  string
	index []int
	typ   reflect.Type
}

// schema is the accessor registry of one struct type: its declared fields in
// order, and the setters and getters keyed by the UpperCamel form of a key.
type schema struct {
	typ     reflect.Type
	fields  []field
	byKey   map[string]int
	setters map[string]setter
	getters map[string]getter
}

// SchemaOption customizes the registry of a host type.
type SchemaOption[T any] func(s *schema)

// WithSetter registers fn as the setter for key. It takes precedence over a
// discovered Set method resolving to the same name.
func WithSetter[T any](key string, fn SetterFunc[T]) SchemaOption[T] {
	return func(s *schema) {
		s.setters[naming.UpperCamel(key)] = func(host reflect.Value, value any) error {
			return fn(host.Interface().(*T), value)
		}
	}
}

// Register rebuilds the registry of host type T (the struct, not the
// pointer) and applies opts on top of the discovered accessors.
func Register[T any](opts ...SchemaOption[T]) error {
	t := reflect.TypeFor[T]()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: cannot register %s", ErrNotHost, t)
	}

	s := buildSchema(t)
	for _, opt := range opts {
		if opt == nil {
			panic("schema option cannot be nil")
		}

		opt(s)
	}

	schemas.Store(t, s)

	return nil
}

func schemaOf(t reflect.Type) *schema {
	if s, ok := schemas.Load(t); ok {
		return s.(*schema)
	}

	s, _ := schemas.LoadOrStore(t, buildSchema(t))

	return s.(*schema)
}

func buildSchema(t reflect.Type) *schema {
	s := &schema{
		typ:     t,
		byKey:   make(map[string]int),
		setters: make(map[string]setter),
		getters: make(map[string]getter),
	}

	for _, sf := range reflect.VisibleFields(t) {
		if sf.Anonymous || !sf.IsExported() || sf.Type == typeFillable {
			continue
		}

		key, ok := fieldKey(sf)
		if !ok {
			continue
		}

		if _, exists := s.byKey[key]; exists {
			continue
		}

		s.byKey[key] = len(s.fields)
		s.fields = append(s.fields, field{key: key, name: sf.Name, index: sf.Index, typ: sf.Type})
	}

	ptr := reflect.PointerTo(t)
	for i := 0; i < ptr.NumMethod(); i++ {
		m := ptr.Method(i)

		switch name, isSetter := strings.CutPrefix(m.Name, setterPrefix); {
		case isSetter && name != "":
			if fn, err := parseSetter(m.Func); err == nil {
				s.setters[name] = fn
			}
		case strings.HasPrefix(m.Name, getterPrefix) && len(m.Name) > len(getterPrefix):
			if fn, err := parseGetter(m.Func); err == nil {
				s.getters[m.Name[len(getterPrefix):]] = fn
			}
		}
	}

	return s
}

func (s *schema) field(key string) (field, bool) {
	i, ok := s.byKey[key]
	if !ok {
		return field{}, false
	}

	return s.fields[i], true
}

func (s *schema) setter(key string) (setter, bool) {
	name := naming.UpperCamel(key)
	if name == "" {
		return nil, false
	}

	fn, ok := s.setters[name]

	return fn, ok
}

func (s *schema) getter(key string) (getter, bool) {
	name := naming.UpperCamel(key)
	if name == "" {
		return nil, false
	}

	fn, ok := s.getters[name]

	return fn, ok
}

// fieldKey resolves the key of a struct field: `fill` tag, `json` tag, then
// the lowerCamel field name. `fill:"-"` hides the field.
func fieldKey(sf reflect.StructField) (string, bool) {
	if tag, ok := sf.Tag.Lookup("fill"); ok {
		name, _, _ := strings.Cut(tag, ",")
		if name == "-" {
			return "", false
		}

		if name != "" {
			return name, true
		}
	}

	if name := jsonTagName(sf); name != "" {
		return name, true
	}

	return naming.LowerCamel(sf.Name), true
}

func jsonTagName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")

	return name
}

// fieldByIndex walks index from the struct v. With alloc set, nil embedded
// pointers on the way are allocated; otherwise they end the walk.
func fieldByIndex(v reflect.Value, index []int, alloc bool) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				if !alloc || !v.CanSet() {
					return reflect.Value{}, false
				}

				v.Set(reflect.New(v.Type().Elem()))
			}

			v = v.Elem()
		}

		v = v.Field(x)
	}

	return v, true
}
