package hydrate

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotHost         = errors.New("host must be a non-nil pointer to a struct embedding hydrate.Fillable")
	ErrNotAssignable   = errors.New("value is not assignable to field")
	ErrNotAccessor     = errors.New("provided function is not a recognizable accessor")
)

// FieldError reports a failure while routing one key.
// Field is empty when the key was handled by a setter or a getter.
type FieldError struct {
	Key   string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("key %q (field %s): %v", e.Key, e.Field, e.Err)
	}

	return fmt.Sprintf("key %q: %v", e.Key, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
