package debounce

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Long13062005/quickwork-web-sub001/pkg/logger"
)

// LookupFunc performs the idempotent "does this identifier exist" remote
// query. It must be safe to call repeatedly with the same identifier.
type LookupFunc func(ctx context.Context, identifier string) (bool, error)

// ValidateFunc reports whether an identifier is worth dispatching at all.
type ValidateFunc func(identifier string) bool

// DefaultDelay is the quiet period required before a check dispatches.
const DefaultDelay = 500 * time.Millisecond

// Checker debounces existence lookups against a remote service. At most one
// timer is armed at a time; arming a new check cancels the pending one.
// Once a lookup has been dispatched it cannot be canceled, but a superseding
// check bumps an internal sequence so stale settlements are discarded.
//
// Errors never escape the Checker: a failed lookup settles as nil, meaning
// "unknown" and never "does not exist".
type Checker struct {
	mu             sync.Mutex
	lookup         LookupFunc
	validate       ValidateFunc
	delay          time.Duration
	timer          *time.Timer
	lastDispatched string
	seq            uint64
	resetHook      func()
	log            *slog.Logger
}

// Option is a functional option for configuring the Checker
type Option func(*Checker)

// WithDelay sets the debounce delay
func WithDelay(delay time.Duration) Option {
	return func(c *Checker) {
		if delay > 0 {
			c.delay = delay
		}
	}
}

// WithValidator sets the identifier validator. The default accepts any
// value containing "@" with a non-empty local and domain part.
func WithValidator(fn ValidateFunc) Option {
	return func(c *Checker) {
		if fn != nil {
			c.validate = fn
		}
	}
}

// WithResetHook sets a callback invoked whenever a new check is armed,
// letting the caller clear a now-stale prior result.
func WithResetHook(fn func()) Option {
	return func(c *Checker) {
		c.resetHook = fn
	}
}

// WithLogger sets a custom logger
func WithLogger(log *slog.Logger) Option {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a checker around the given lookup.
func New(lookup LookupFunc, opts ...Option) *Checker {
	c := &Checker{
		lookup:   lookup,
		validate: looksLikeEmail,
		delay:    DefaultDelay,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Check schedules an existence lookup for identifier after the debounce
// delay. Any pending timer from a prior call is canceled first. The call is
// a no-op when the identifier is empty, fails validation, or equals the
// value most recently dispatched.
//
// When the timer fires, onStart is invoked, the identifier is recorded as
// last-dispatched, and the lookup runs with ctx. On settlement onComplete
// receives a pointer to the result, or nil when the outcome is unknown
// (lookup error or superseded by a newer check). Callbacks may be nil.
func (c *Checker) Check(ctx context.Context, identifier string, onStart func(), onComplete func(*bool)) {
	identifier = strings.TrimSpace(identifier)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimerLocked()

	if identifier == "" || !c.validate(identifier) {
		return
	}
	if identifier == c.lastDispatched {
		return
	}

	if c.resetHook != nil {
		c.resetHook()
	}

	c.timer = time.AfterFunc(c.delay, func() {
		c.fire(ctx, identifier, onStart, onComplete)
	})
}

// Cancel clears any pending timer without side effects. A lookup that has
// already been dispatched is unaffected.
func (c *Checker) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopTimerLocked()
}

// LastDispatched returns the identifier most recently sent to the remote
// service, or the empty string when nothing has been dispatched yet.
func (c *Checker) LastDispatched() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastDispatched
}

func (c *Checker) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *Checker) fire(ctx context.Context, identifier string, onStart func(), onComplete func(*bool)) {
	c.mu.Lock()
	c.timer = nil
	c.lastDispatched = identifier
	c.seq++
	seq := c.seq
	c.mu.Unlock()

	if onStart != nil {
		onStart()
	}

	exists, err := c.lookup(ctx, identifier)

	c.mu.Lock()
	stale := seq != c.seq
	c.mu.Unlock()

	if stale {
		// A newer check was dispatched while this one was in flight.
		return
	}

	if onComplete == nil {
		return
	}
	if err != nil {
		c.log.Debug("uniqueness lookup failed", "identifier", identifier, "error", err)
		onComplete(nil)
		return
	}
	onComplete(&exists)
}

// looksLikeEmail is a cheap structural check, not a validation of the
// address; field-level validation belongs to the form layer.
func looksLikeEmail(identifier string) bool {
	at := strings.IndexByte(identifier, '@')
	return at > 0 && at < len(identifier)-1
}
