// Package authstate is the single source of truth for the client's
// authentication and session status. A Store owns the async operations —
// initialize, login, register, logout, email existence check — and their
// state transitions; screens and route guards read its Snapshot and react
// to changes through Subscribe.
//
// Each async capability carries a tagged Outcome (idle, loading, succeeded,
// failed with a user-facing message) instead of loose status strings, and
// the email existence answer is an explicit tri-state.
//
// # Initialization
//
// Initialize issues the who-am-I check and never reports an error: a
// transport failure and "not logged in" both settle as an initialized,
// unauthenticated, idle store. Being logged out must never render as a
// failure. Initialized becomes true at the first settlement and never
// reverts. The Initializer wraps this in a once-per-lifetime guarantee and
// gates rendering until the settlement lands.
//
// # Concurrency
//
// Operations block only at their network boundary; state mutation is
// mutex-guarded with last-write-wins per field. The store does not prevent
// overlapping Login/Register calls — that is a documented caller
// precondition, enforced in the UI by disabling submit controls while
// Auth.Status is StatusLoading.
//
// # Usage
//
//	client := authclient.New()
//	flow := flowsession.New()
//	store := authstate.New(client, authstate.WithFlowSession(flow))
//
//	init := authstate.NewInitializer(store)
//	init.Ensure(ctx)
//
//	if store.State().Authenticated {
//		// render the protected tree
//	}
package authstate
