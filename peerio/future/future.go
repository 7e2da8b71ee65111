// Package future provides a single-assignment asynchronous result container.
//
// A Future is the unit of suspension for every asynchronous operation in
// peerio: the operation that will eventually produce a value creates the
// Future, and callers block on Get until it is fulfilled. Fulfillment happens
// exactly once; reading a fulfilled Future any number of times returns the
// same value.
package future

import "sync"

// Future holds at most one value of type T. It transitions from empty to
// fulfilled exactly once; fulfilling it twice is a caller contract violation
// and panics.
type Future[T any] struct {
	mu    sync.Mutex
	done  chan struct{}
	value T
	set   bool
}

// New creates an empty Future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Fulfilled creates a Future that already holds v.
func Fulfilled[T any](v T) *Future[T] {
	f := New[T]()
	f.Fulfill(v)
	return f
}

// Fulfill stores v and wakes all waiters. It must be called at most once.
func (f *Future[T]) Fulfill(v T) {
	f.mu.Lock()
	if f.set {
		f.mu.Unlock()
		panic("future: fulfilled twice")
	}
	f.value = v
	f.set = true
	f.mu.Unlock()
	close(f.done)
}

// Get blocks until the Future is fulfilled, then returns the value.
// Repeated calls return the identical value.
func (f *Future[T]) Get() T {
	<-f.done
	return f.value
}

// TryGet returns the value and true if the Future has been fulfilled,
// or the zero value and false otherwise. It never blocks.
func (f *Future[T]) TryGet() (T, bool) {
	select {
	case <-f.done:
		return f.value, true
	default:
		var zero T
		return zero, false
	}
}

// Done returns a channel that is closed once the Future is fulfilled.
// It lets callers select over fulfillment together with timers or contexts;
// the Future itself carries no cancellation.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Then returns a Future fulfilled with fn applied to f's value once f
// is fulfilled.
func Then[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	out := New[U]()
	go func() {
		out.Fulfill(fn(f.Get()))
	}()
	return out
}
