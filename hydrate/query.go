package hydrate

import (
	"fmt"
	"reflect"
	"slices"
)

// Query is the one-shot allow/deny filter owned by a host.
// Keys are unioned across calls; the zero value allows every key.
type Query struct {
	only    map[string]struct{}
	exclude map[string]struct{}
}

// Only adds keys to the allow-list. keys is a string or a list of strings.
func (q *Query) Only(keys any) error {
	normalized, err := normalizeKeys(keys)
	if err != nil {
		return fmt.Errorf("only: %w", err)
	}

	q.only = union(q.only, normalized)

	return nil
}

// Exclude adds keys to the deny-list. keys is a string or a list of strings.
func (q *Query) Exclude(keys any) error {
	normalized, err := normalizeKeys(keys)
	if err != nil {
		return fmt.Errorf("exclude: %w", err)
	}

	q.exclude = union(q.exclude, normalized)

	return nil
}

// Reset clears both lists.
func (q *Query) Reset() {
	q.only = nil
	q.exclude = nil
}

// Allows reports whether key may take part in a fill.
// Deny wins when a key is listed on both sides.
func (q *Query) Allows(key string) bool {
	if _, denied := q.exclude[key]; denied {
		return false
	}

	if len(q.only) == 0 {
		return true
	}

	_, allowed := q.only[key]

	return allowed
}

func (q *Query) IsEmpty() bool {
	return len(q.only) == 0 && len(q.exclude) == 0
}

// OnlyKeys returns the allow-list, sorted.
func (q *Query) OnlyKeys() []string {
	return sortedKeys(q.only)
}

// ExcludeKeys returns the deny-list, sorted.
func (q *Query) ExcludeKeys() []string {
	return sortedKeys(q.exclude)
}

// normalizeKeys accepts a string, a slice or array of a string kind, or a
// []any holding only strings. Empty keys are dropped.
func normalizeKeys(keys any) ([]string, error) {
	if keys == nil {
		return nil, fmt.Errorf("%w: expected a key or a list of keys, got nil", ErrInvalidArgument)
	}

	rv := reflect.ValueOf(keys)

	var out []string

	switch {
	case rv.Kind() == reflect.String:
		out = append(out, rv.String())

	case (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() == reflect.String:
		for i := 0; i < rv.Len(); i++ {
			out = append(out, rv.Index(i).String())
		}

	case (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Type().Elem().Kind() == reflect.Interface:
		for i := 0; i < rv.Len(); i++ {
			s, ok := rv.Index(i).Interface().(string)
			if !ok {
				return nil, fmt.Errorf("%w: key #%d is %T, expected string", ErrInvalidArgument, i, rv.Index(i).Interface())
			}

			out = append(out, s)
		}

	default:
		return nil, fmt.Errorf("%w: expected a key or a list of keys, got %T", ErrInvalidArgument, keys)
	}

	out = slices.DeleteFunc(out, func(k string) bool { return k == "" })

	return out, nil
}

func union(set map[string]struct{}, keys []string) map[string]struct{} {
	if len(keys) == 0 {
		return set
	}

	if set == nil {
		set = make(map[string]struct{}, len(keys))
	}

	for _, k := range keys {
		set[k] = struct{}{}
	}

	return set
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}

	slices.Sort(out)

	return out
}
