package authstate

import (
	"context"
	"net/http"
	"sync"
)

// Initializer gates the application on the store's first settlement. It
// guarantees Initialize runs at most once per process lifetime, no matter
// how many screens mount concurrently, and exposes the settlement as a
// closed channel. Both outcomes of Initialize are terminal and neither is
// an error from the Initializer's point of view.
type Initializer struct {
	store *Store
	once  sync.Once
	done  chan struct{}
}

// NewInitializer creates an initializer over the store.
func NewInitializer(store *Store) *Initializer {
	return &Initializer{
		store: store,
		done:  make(chan struct{}),
	}
}

// Ensure runs the store's Initialize exactly once and blocks until the
// first settlement. Concurrent and repeat calls wait on the same
// settlement without issuing another who-am-I check. If the store is
// already initialized (for example by an earlier login flow), Ensure
// settles immediately.
func (i *Initializer) Ensure(ctx context.Context) {
	i.once.Do(func() {
		defer close(i.done)
		if i.store.State().Initialized {
			return
		}
		i.store.Initialize(ctx)
	})
}

// Done returns a channel closed once the first settlement lands.
func (i *Initializer) Done() <-chan struct{} {
	return i.done
}

// Settled reports without blocking whether the first settlement landed.
func (i *Initializer) Settled() bool {
	select {
	case <-i.done:
		return true
	default:
		return false
	}
}

// Wait blocks until settlement or context cancellation.
func (i *Initializer) Wait(ctx context.Context) error {
	select {
	case <-i.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Gate serves placeholder until the first settlement and next afterwards,
// kicking off initialization on first contact. Session restoration belongs
// to the application lifetime, so it is detached from the request context.
func (i *Initializer) Gate(next, placeholder http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !i.Settled() {
			go i.Ensure(context.Background())
			placeholder.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}
