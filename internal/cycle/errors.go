package cycle

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTask         = errors.New("task name is empty")
	ErrMinutesNotNumber  = errors.New("minutes must be a whole number")
	ErrMinutesOutOfRange = errors.New("minutes out of range")
	ErrMinutesStep       = errors.New("minutes must be a multiple of the step")
	ErrDuplicateID       = errors.New("cycle id already used")
)

// InputError reports which form field rejected a value.
type InputError struct {
	Field string
	Value string
	Err   error
}

func (e *InputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Value != "" {
		return fmt.Sprintf("%s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }
