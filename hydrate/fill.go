package hydrate

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// target is a validated host: the pointer, its registry and its state.
type target struct {
	ptr    reflect.Value
	schema *schema
	state  *Fillable
}

func resolveHost(host Host) (target, error) {
	if host == nil {
		return target{}, ErrNotHost
	}

	rv := reflect.ValueOf(host)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return target{}, fmt.Errorf("%w: got %T", ErrNotHost, host)
	}

	state := host.fillable()
	if state == nil {
		return target{}, fmt.Errorf("%w: %T has a nil Fillable", ErrNotHost, host)
	}

	return target{ptr: rv, schema: schemaOf(rv.Elem().Type()), state: state}, nil
}

// FillBy pushes every entry of source into host, in source order:
// integer keys go to the overflow bucket, other keys go to a setter, a
// declared field, a dynamic field or the overflow bucket. The host's query
// filter is cleared afterwards, whatever the outcome.
func FillBy[H Host](host H, source any, opts ...Option) (H, error) {
	return host, fillBy(host, source, newConfig(opts...))
}

// FillPropsBy pulls every declared field of host from source. Nil
// candidates leave the field untouched and source keys matching no field
// are ignored. The host's query filter is cleared afterwards.
func FillPropsBy[H Host](host H, source any, opts ...Option) (H, error) {
	return host, fillPropsBy(host, source, newConfig(opts...))
}

func fillBy(host Host, source any, cfg config) error {
	t, err := resolveHost(host)
	if err != nil {
		return err
	}

	defer t.state.query.Reset()

	log := cfg.logger.With(zap.Stringer("host", t.schema.typ), zap.String("mode", "push"))

	for key, value := range classify(source).entries(cfg.bucket) {
		name := key.String()

		if !t.state.query.Allows(name) {
			log.Debug("key skipped by query", zap.String("key", name))
			continue
		}

		if key.IsIndex() {
			t.state.bucket(cfg.bucket).Put(key, value)
			continue
		}

		if set, ok := t.schema.setter(name); ok {
			if err := set(t.ptr, value); err != nil {
				return &FieldError{Key: name, Err: err}
			}

			continue
		}

		if f, ok := t.schema.field(name); ok {
			if err := t.assign(f, value); err != nil {
				return err
			}

			continue
		}

		if cfg.dynamic {
			log.Debug("key stored as dynamic field", zap.String("key", name))
			t.state.dynamicFields().Set(name, value)

			continue
		}

		log.Debug("key relocated to overflow", zap.String("key", name), zap.String("bucket", cfg.bucket))
		t.state.bucket(cfg.bucket).Put(key, value)
	}

	return nil
}

func fillPropsBy(host Host, source any, cfg config) error {
	t, err := resolveHost(host)
	if err != nil {
		return err
	}

	defer t.state.query.Reset()

	log := cfg.logger.With(zap.Stringer("host", t.schema.typ), zap.String("mode", "pull"))
	src := classify(source)

	for _, f := range t.schema.fields {
		if !t.state.query.Allows(f.key) {
			log.Debug("field skipped by query", zap.String("key", f.key))
			continue
		}

		value, _, err := src.lookup(f.key)
		if err != nil {
			return &FieldError{Key: f.key, Err: err}
		}

		if value == nil {
			value = cfg.fallback
		}

		if value == nil {
			log.Debug("field left untouched", zap.String("key", f.key), zap.Stringer("source", src.kind))
			continue
		}

		if set, ok := t.schema.setter(f.key); ok {
			if err := set(t.ptr, value); err != nil {
				return &FieldError{Key: f.key, Err: err}
			}

			continue
		}

		if err := t.assign(f, value); err != nil {
			return err
		}
	}

	return nil
}

// assign stores value in a declared field without any conversion. Nil
// stores the zero value.
func (t target) assign(f field, value any) error {
	dst, ok := fieldByIndex(t.ptr.Elem(), f.index, true)
	if !ok || !dst.CanSet() {
		return &FieldError{Key: f.key, Field: f.name, Err: ErrNotAssignable}
	}

	if value == nil {
		dst.SetZero()
		return nil
	}

	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(dst.Type()) {
		return &FieldError{
			Key:   f.key,
			Field: f.name,
			Err:   fmt.Errorf("%w: %s to %s", ErrNotAssignable, v.Type(), dst.Type()),
		}
	}

	dst.Set(v)

	return nil
}
