package signal

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/krew-solutions/typed-signals-go/typedsignals/valueclass"
)

// OnceSignal is the one-shot-capable base: it owns the ordered slot
// registry, validates dispatch arguments against the declared value
// classes, and only exposes AddOnce registration. Signal builds repeatable
// registration on top of it.
//
// The mutex serializes registry mutation for parallel callers. It is never
// held while a listener runs, so listeners may freely call back into the
// same signal (reentrant dispatch, self-removal, RemoveAll).
type OnceSignal struct {
	id      string
	classes []valueclass.ValueClass
	slots   []*Slot
	mu      sync.Mutex
	log     zerolog.Logger
}

// NewOnceSignal creates a one-shot-only signal. With no value classes,
// dispatch accepts any arguments; otherwise every dispatch must supply
// exactly one matching argument per class.
func NewOnceSignal(classes ...valueclass.ValueClass) *OnceSignal {
	return &OnceSignal{
		id:      ulid.Make().String(),
		classes: classes,
		log:     zerolog.Nop(),
	}
}

// SetLogger installs a logger for debug traces of registration, removal
// and dispatch. The default logger discards everything.
func (s *OnceSignal) SetLogger(log zerolog.Logger) {
	s.log = log
}

// AddOnce registers a listener that is removed before its first invocation.
func (s *OnceSignal) AddOnce(listener any) (*Slot, error) {
	return s.register(listener, true)
}

func (s *OnceSignal) register(listener any, once bool) (*Slot, error) {
	slot, err := newSlot(listener, s, once, 0)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.slots = append(s.slots, slot)
	s.mu.Unlock()
	s.log.Debug().
		Str("signal", s.id).
		Str("slot", slot.id.String()).
		Bool("once", once).
		Msg("listener registered")
	return slot, nil
}

// Remove unregisters the slot with the given id. Unknown ids are ignored.
func (s *OnceSignal) Remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, slot := range s.slots {
		if slot.id == id {
			s.slots = append(s.slots[:i], s.slots[i+1:]...)
			s.log.Debug().Str("signal", s.id).Str("slot", id.String()).Msg("listener removed")
			return
		}
	}
}

// RemoveAll clears the registry. Dispatches already iterating their
// snapshot are unaffected.
func (s *OnceSignal) RemoveAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots = nil
}

// NumListeners returns the registry size, disabled slots included.
func (s *OnceSignal) NumListeners() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.slots)
}

// Dispatch validates args against the declared value classes, then invokes
// every enabled slot in registration order. Validation is all-or-nothing:
// on arity or type failure no listener runs. Iteration works on a snapshot
// of the registry, so listeners mutating the signal mid-dispatch never
// change the set of slots visited by the current pass. A listener error
// aborts the pass; slots not yet visited are not invoked.
func (s *OnceSignal) Dispatch(args ...any) error {
	if err := s.checkArgs(args); err != nil {
		return err
	}
	s.mu.Lock()
	snapshot := make([]*Slot, len(s.slots))
	copy(snapshot, s.slots)
	s.mu.Unlock()
	s.log.Debug().
		Str("signal", s.id).
		Int("listeners", len(snapshot)).
		Int("args", len(args)).
		Msg("dispatching")
	for _, slot := range snapshot {
		if err := slot.execute(args); err != nil {
			return errors.Wrapf(err, "signal %s: slot %s", s.id, slot.id)
		}
	}
	return nil
}

func (s *OnceSignal) checkArgs(args []any) error {
	if len(s.classes) == 0 {
		return nil
	}
	if len(args) != len(s.classes) {
		return &ArityMismatchError{Expected: len(s.classes), Actual: len(args)}
	}
	for i, class := range s.classes {
		if err := class.Check(args[i]); err != nil {
			return errors.Wrapf(err, "signal %s: argument %d", s.id, i)
		}
	}
	return nil
}

// Describe returns a diagnostic summary of the signal.
func (s *OnceSignal) Describe() string {
	return fmt.Sprintf("%T(id=%s, listeners=%d)", s, s.id, s.NumListeners())
}

// Signal is the repeatable flavor: listeners registered through Add stay
// until removed explicitly.
type Signal struct {
	OnceSignal
}

// NewSignal creates a repeatable signal with the given value classes.
func NewSignal(classes ...valueclass.ValueClass) *Signal {
	return &Signal{OnceSignal: OnceSignal{
		id:      ulid.Make().String(),
		classes: classes,
		log:     zerolog.Nop(),
	}}
}

// Add registers a listener invoked on every dispatch until removed.
func (s *Signal) Add(listener any) (*Slot, error) {
	return s.register(listener, false)
}

func (s *Signal) Describe() string {
	return fmt.Sprintf("%T(id=%s, listeners=%d)", s, s.id, s.NumListeners())
}
