package signal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/typed-signals-go/typedsignals/disposable"
)

// CompositeSignalImp fans registration and dispatch out to several delegate
// signals. Registration yields one slot per delegate, so callers get a
// single aggregate handle instead of slot ids.
type CompositeSignalImp struct {
	delegates []Signaler
}

func NewCompositeSignal(delegates ...Signaler) *CompositeSignalImp {
	return &CompositeSignalImp{delegates: delegates}
}

// Add registers the listener with every delegate. On a registration
// failure the slots already created are rolled back.
func (c *CompositeSignalImp) Add(listener any) (disposable.Disposable, error) {
	return c.registerAll(listener, Signaler.Add)
}

// AddOnce registers the listener with every delegate as one-shot.
func (c *CompositeSignalImp) AddOnce(listener any) (disposable.Disposable, error) {
	return c.registerAll(listener, Signaler.AddOnce)
}

func (c *CompositeSignalImp) registerAll(listener any, register func(Signaler, any) (*Slot, error)) (disposable.Disposable, error) {
	disposables := make([]disposable.Disposable, 0, len(c.delegates))
	for _, delegate := range c.delegates {
		slot, err := register(delegate, listener)
		if err != nil {
			for _, d := range disposables {
				d.Dispose()
			}
			return nil, err
		}
		disposables = append(disposables, disposable.NewDisposable(slot.Remove))
	}
	return disposable.NewCompositeDisposable(disposables...), nil
}

// Dispatch forwards args to every delegate. Delegates are independent
// channels, so one failing delegate does not stop the others; all errors
// are aggregated.
func (c *CompositeSignalImp) Dispatch(args ...any) error {
	var result *multierror.Error
	for _, delegate := range c.delegates {
		if err := delegate.Dispatch(args...); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func (c *CompositeSignalImp) RemoveAll() {
	for _, delegate := range c.delegates {
		delegate.RemoveAll()
	}
}

// NumListeners sums the registry sizes of all delegates.
func (c *CompositeSignalImp) NumListeners() int {
	total := 0
	for _, delegate := range c.delegates {
		total += delegate.NumListeners()
	}
	return total
}

func (c *CompositeSignalImp) Describe() string {
	return fmt.Sprintf("%T(delegates=%d, listeners=%d)", c, len(c.delegates), c.NumListeners())
}
