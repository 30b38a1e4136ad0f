package hydrate

import (
	"fmt"
	"reflect"
)

var (
	typeAny   = reflect.TypeFor[any]()
	typeError = reflect.TypeFor[error]()
)

// SetterFunc stores a value on a host.
type SetterFunc[T any] func(host *T, value any) error

type setter func(host reflect.Value, value any) error

type getter func(source reflect.Value) (any, error)

// parseSetter inspects a method and returns a setter if it fits one of:
//   - func(value any)
//   - func(value any) error
//   - func(value any) R
//   - func(value any) (R, error)
//
// where R is any chaining return value, ignored. fn is a method expression,
// so its first input is the receiver.
func parseSetter(fn reflect.Value) (setter, error) {
	fnType := fn.Type()
	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a function", ErrNotAccessor, fnType)
	}

	if fnType.NumIn() != 2 || fnType.In(1) != typeAny {
		return nil, ErrNotAccessor
	}

	errAt := -1

	switch fnType.NumOut() {
	case 0:
	case 1:
		if isError(fnType.Out(0)) {
			errAt = 0
		}
	case 2:
		if !isError(fnType.Out(1)) {
			return nil, ErrNotAccessor
		}

		errAt = 1
	default:
		return nil, ErrNotAccessor
	}

	return func(host reflect.Value, value any) error {
		out := fn.Call([]reflect.Value{host, valueOf(value)})

		return errorAt(out, errAt)
	}, nil
}

// parseGetter inspects a method and returns a getter if it fits one of:
//   - func() V
//   - func() (V, error)
func parseGetter(fn reflect.Value) (getter, error) {
	fnType := fn.Type()
	if fnType.Kind() != reflect.Func {
		return nil, fmt.Errorf("%w: %s is not a function", ErrNotAccessor, fnType)
	}

	if fnType.NumIn() != 1 {
		return nil, ErrNotAccessor
	}

	switch {
	case fnType.NumOut() == 1 && !isError(fnType.Out(0)):
		return func(source reflect.Value) (any, error) {
			return interfaceOf(fn.Call([]reflect.Value{source})[0]), nil
		}, nil

	case fnType.NumOut() == 2 && isError(fnType.Out(1)):
		return func(source reflect.Value) (any, error) {
			out := fn.Call([]reflect.Value{source})
			if err := errorAt(out, 1); err != nil {
				return nil, err
			}

			return interfaceOf(out[0]), nil
		}, nil

	default:
		return nil, ErrNotAccessor
	}
}

// valueOf wraps v for a call on an any parameter; nil becomes a nil interface.
func valueOf(v any) reflect.Value {
	if v == nil {
		return reflect.Zero(typeAny)
	}

	return reflect.ValueOf(v)
}

// interfaceOf unwraps a returned value; nil pointers, maps, slices and
// interfaces come back as an untyped nil so they count as absent.
func interfaceOf(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		if v.IsNil() {
			return nil
		}
	}

	return v.Interface()
}

func errorAt(out []reflect.Value, at int) error {
	if at < 0 || out[at].IsNil() {
		return nil
	}

	return out[at].Interface().(error)
}

func isError(t reflect.Type) bool {
	return t != nil && t.Implements(typeError)
}
