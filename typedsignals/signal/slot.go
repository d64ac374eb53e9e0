package signal

import (
	"github.com/google/uuid"
)

// Slot is one registered listener plus its execution metadata. Slots are
// created by the owning signal's Add/AddOnce and identified by a stable
// UUID for the lifetime of the registration. The signal owns the slot;
// the slot only keeps a back-reference for self-removal.
type Slot struct {
	id          uuid.UUID
	invoke      invoker
	rawListener any
	boundParams []any
	once        bool
	priority    int
	enabled     bool
	fired       bool
	owner       *OnceSignal
}

func newSlot(listener any, owner *OnceSignal, once bool, priority int) (*Slot, error) {
	inv, err := normalizeListener(listener)
	if err != nil {
		return nil, err
	}
	return &Slot{
		id:          uuid.New(),
		invoke:      inv,
		rawListener: listener,
		once:        once,
		priority:    priority,
		enabled:     true,
		owner:       owner,
	}, nil
}

// ID returns the slot's identity token within its owning signal.
func (s *Slot) ID() uuid.UUID {
	return s.id
}

// Listener returns the callable as supplied at registration.
func (s *Slot) Listener() any {
	return s.rawListener
}

// SetListener replaces the callable, revalidating its shape.
func (s *Slot) SetListener(listener any) error {
	inv, err := normalizeListener(listener)
	if err != nil {
		return err
	}
	s.invoke = inv
	s.rawListener = listener
	return nil
}

// Params returns the bound parameters appended to every invocation.
func (s *Slot) Params() []any {
	return s.boundParams
}

// SetParams replaces the bound parameters.
func (s *Slot) SetParams(params ...any) {
	s.boundParams = params
}

// Once reports whether the slot self-removes before its first invocation.
func (s *Slot) Once() bool {
	return s.once
}

// Priority returns the slot's priority. Dispatch order is pure insertion
// order; the value is carried for callers that layer their own ordering.
func (s *Slot) Priority() int {
	return s.priority
}

// Enabled reports whether dispatch invokes this slot.
func (s *Slot) Enabled() bool {
	return s.enabled
}

// SetEnabled toggles invocation without removing the registration.
func (s *Slot) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Remove unregisters the slot from its owning signal. Safe to call more
// than once; the owner ignores ids it no longer holds.
func (s *Slot) Remove() {
	s.owner.Remove(s.id)
}

// execute runs the listener with dispatch args first and bound params
// appended. A once slot consumes its fire guard and removes itself before
// the listener runs, so reentrant dispatch never invokes it twice.
func (s *Slot) execute(args []any) error {
	if !s.enabled {
		return nil
	}
	if s.once {
		if !s.consumeFire() {
			return nil
		}
		s.Remove()
	}
	merged := make([]any, 0, len(args)+len(s.boundParams))
	merged = append(merged, args...)
	merged = append(merged, s.boundParams...)
	return s.invoke(merged)
}

func (s *Slot) consumeFire() bool {
	s.owner.mu.Lock()
	defer s.owner.mu.Unlock()
	if s.fired {
		return false
	}
	s.fired = true
	return true
}
