// Package disposable provides release handles for registrations that must
// be undone later exactly once.
package disposable

type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	dispose  func()
	disposed bool
}

// NewDisposable wraps a cleanup function. Dispose runs it at most once.
func NewDisposable(dispose func()) *DisposableImp {
	return &DisposableImp{dispose: dispose}
}

func (d *DisposableImp) Dispose() {
	if d.disposed {
		return
	}
	d.disposed = true
	d.dispose()
}

type CompositeDisposableImp struct {
	delegates []Disposable
}

// NewCompositeDisposable aggregates several handles into one.
func NewCompositeDisposable(delegates ...Disposable) *CompositeDisposableImp {
	return &CompositeDisposableImp{delegates: delegates}
}

func (d *CompositeDisposableImp) Dispose() {
	for _, delegate := range d.delegates {
		delegate.Dispose()
	}
}
