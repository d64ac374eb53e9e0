package signal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidListener = errors.New("signal: listener is not a supported callable")
	ErrArityMismatch   = errors.New("signal: argument count mismatch")
)

// ArityMismatchError reports a dispatch whose argument count does not match
// the number of declared value classes.
type ArityMismatchError struct {
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%v: expected %d arguments, got %d", ErrArityMismatch, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Unwrap() error {
	return ErrArityMismatch
}
