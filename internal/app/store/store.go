// Package store implements the process-wide state container. A Store holds
// one state value, applies actions to it through a reducer, and notifies
// subscribers after every applied action.
//
//	st := store.New(cake.Reduce, cake.Initial(),
//	    store.WithMiddleware[cake.State](store.Logging[cake.Action](logger)),
//	)
//	unsubscribe := st.Subscribe(func() { render(st.GetState()) })
//	err := st.Dispatch(ctx, cake.IncrementQuantity())
//
// The state is only ever changed by Dispatch. GetState hands out copies, so
// S should be a value type (or treated as immutable by callers).
package store

import (
	"context"
	"sync"
)

// Reducer computes the next state from the current state and an action.
// Reducers must be pure and must not dispatch.
type Reducer[S, A any] func(state S, action A) S

// DispatchFunc submits an action. Middleware wraps one DispatchFunc in another.
type DispatchFunc[A any] func(ctx context.Context, action A) error

// Middleware wraps the dispatch chain. The first middleware given to
// WithMiddleware is the outermost.
type Middleware[A any] func(next DispatchFunc[A]) DispatchFunc[A]

// Option configures a Store.
type Option[S, A any] func(*Store[S, A])

// WithMiddleware appends middleware to the dispatch chain.
func WithMiddleware[S, A any](mw ...Middleware[A]) Option[S, A] {
	return func(s *Store[S, A]) {
		s.middleware = append(s.middleware, mw...)
	}
}

// Store is a single-writer state container. It is safe for concurrent use:
// reducer application is serialized, and listeners run after the write lock
// is released, in subscription order.
type Store[S, A any] struct {
	mu    sync.RWMutex
	state S

	reducer    Reducer[S, A]
	middleware []Middleware[A]
	dispatch   DispatchFunc[A]

	subMu     sync.Mutex
	nextSubID uint64
	listeners []listener
}

type listener struct {
	id uint64
	fn func()
}

// New creates a Store starting from initial.
func New[S, A any](reducer Reducer[S, A], initial S, opts ...Option[S, A]) *Store[S, A] {
	s := &Store[S, A]{
		state:   initial,
		reducer: reducer,
	}
	for _, opt := range opts {
		opt(s)
	}

	var chain DispatchFunc[A] = s.apply
	for i := len(s.middleware) - 1; i >= 0; i-- {
		chain = s.middleware[i](chain)
	}
	s.dispatch = chain

	return s
}

// GetState returns the current state snapshot.
func (s *Store[S, A]) GetState() S {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch runs action through the middleware chain and the reducer, then
// notifies subscribers. Middleware may reject the action by returning an
// error, in which case the state is unchanged and nobody is notified.
func (s *Store[S, A]) Dispatch(ctx context.Context, action A) error {
	return s.dispatch(ctx, action)
}

// apply is the innermost link of the dispatch chain.
func (s *Store[S, A]) apply(_ context.Context, action A) error {
	s.mu.Lock()
	s.state = s.reducer(s.state, action)
	s.mu.Unlock()

	s.notify()
	return nil
}

// Subscribe registers fn to be called after every applied action. The
// returned function removes the subscription; calling it more than once is a
// no-op. Listeners added or removed during a notification take effect from
// the next one.
func (s *Store[S, A]) Subscribe(fn func()) (unsubscribe func()) {
	s.subMu.Lock()
	s.nextSubID++
	id := s.nextSubID
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	s.subMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(id) })
	}
}

func (s *Store[S, A]) remove(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			// Copy so an in-flight notify keeps iterating its own snapshot.
			next := make([]listener, 0, len(s.listeners)-1)
			next = append(next, s.listeners[:i]...)
			next = append(next, s.listeners[i+1:]...)
			s.listeners = next
			return
		}
	}
}

// Subscribers reports the number of active subscriptions.
func (s *Store[S, A]) Subscribers() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.listeners)
}

func (s *Store[S, A]) notify() {
	s.subMu.Lock()
	snapshot := s.listeners
	s.subMu.Unlock()

	for _, l := range snapshot {
		l.fn()
	}
}
