// Package flowsession carries a value across otherwise-stateless page
// transitions within a bounded time window. The recruitment client's
// pre-auth screen writes the identifier the user typed; the login and
// register screens read it to decide how to pre-fill, and the auth flow
// guard requires it to exist before those screens may render at all.
//
// The record lives under a single well-known key in tab-scoped storage as
// {"value", "timestamp", "originFlag"} JSON with a fixed 30-minute TTL.
//
// # Expiry
//
// Expiry is checked lazily on every read; no background timer runs. A read
// that finds an expired record performs an atomic check-and-clear: the
// record is removed before absent is returned, so repeated reads agree.
//
// # Failure posture
//
// This record is a UX aid, not a security boundary. Storage failures
// (quota, disabled storage) and malformed records degrade to "absent"; no
// operation returns an error or panics.
//
// # Usage
//
//	flow := flowsession.New()
//	flow.Set("a@x.com")
//
//	if email, ok := flow.Get(); ok {
//		// pre-fill the login form
//	}
//
//	// after successful authentication
//	flow.Clear()
package flowsession
