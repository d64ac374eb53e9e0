package signal

import "fmt"

// invoker is the normalized form every accepted listener shape is adapted to.
type invoker func(args []any) error

// normalizeListener adapts a caller-supplied callable to an invoker. The
// accepted shapes are checked structurally at the registration boundary;
// anything else, nil included, is rejected with ErrInvalidListener.
func normalizeListener(listener any) (invoker, error) {
	switch f := listener.(type) {
	case func(args ...any) error:
		return func(args []any) error { return f(args...) }, nil
	case func(args ...any):
		return func(args []any) error { f(args...); return nil }, nil
	case func() error:
		return func([]any) error { return f() }, nil
	case func():
		return func([]any) error { f(); return nil }, nil
	case nil:
		return nil, ErrInvalidListener
	}
	return nil, fmt.Errorf("%w: %T", ErrInvalidListener, listener)
}
