package valueclass

import (
	"errors"
	"fmt"
)

var ErrTypeMismatch = errors.New("valueclass: type mismatch")

// TypeMismatchError reports a value that failed its value-class check.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %s, got %s", ErrTypeMismatch, e.Expected, e.Actual)
}

func (e *TypeMismatchError) Unwrap() error {
	return ErrTypeMismatch
}
