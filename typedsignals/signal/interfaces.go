package signal

import "github.com/google/uuid"

// Listener is the canonical listener shape. Registration also accepts the
// narrower forms listed in normalizeListener.
type Listener = func(args ...any) error

// Dispatcher is the dispatch-and-introspection surface shared by every
// signal flavor, the composite included.
type Dispatcher interface {
	Dispatch(args ...any) error
	NumListeners() int
	Describe() string
	RemoveAll()
}

// Signaler is the full surface of a repeatable signal.
type Signaler interface {
	Dispatcher
	Add(listener any) (*Slot, error)
	AddOnce(listener any) (*Slot, error)
	Remove(id uuid.UUID)
}
