package routeguard

import (
	"net/http"

	"github.com/Long13062005/quickwork-web-sub001/pkg/authstate"
	"github.com/Long13062005/quickwork-web-sub001/pkg/profile"
)

// StateReader exposes the session snapshot; satisfied by *authstate.Store.
type StateReader interface {
	State() authstate.Snapshot
}

// FlowReader exposes flow-record validity; satisfied by
// *flowsession.Manager.
type FlowReader interface {
	IsValid(expected string) bool
}

// guardState assembles the decision input. The profile signal is fetched
// only when a decision could depend on it; a provider failure degrades to
// the zero signal, which routes to role selection rather than erroring —
// guard-driven redirects are silent.
func guardState(r *http.Request, store StateReader, provider profile.Provider, needProfile bool) State {
	snap := store.State()
	s := State{
		Initialized:   snap.Initialized,
		Authenticated: snap.Authenticated,
	}
	if needProfile && snap.Authenticated && provider != nil {
		if signal, err := provider.Current(r.Context()); err == nil {
			s.Profile = signal
		}
	}
	return s
}

// apply turns a decision into an HTTP response.
func apply(w http.ResponseWriter, r *http.Request, d Decision, next http.Handler) {
	switch d.Kind {
	case DecisionPlaceholder:
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<!doctype html><title>Loading</title><p>Loading…</p>"))
	case DecisionRedirect:
		http.Redirect(w, r, d.Target.Path(), http.StatusSeeOther)
	default:
		next.ServeHTTP(w, r)
	}
}

// Middleware guards a protected screen, mirroring Protected's decision
// table over the live store and profile provider.
func Middleware(store StateReader, provider profile.Provider, requireAuth, requireProfile bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := guardState(r, store, provider, requireAuth && requireProfile)
			apply(w, r, Protected(s, requireAuth, requireProfile), next)
		})
	}
}

// FlowMiddleware guards the login/register screens behind the pre-auth
// identifier step.
func FlowMiddleware(flow FlowReader, requireEmailCheck bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apply(w, r, AuthFlow(requireEmailCheck, flow.IsValid("")), next)
		})
	}
}

// SmartRedirect sends the user to the single destination Resolve picks for
// the current session state. Mounted at entry points like the landing
// page's "continue" action or the post-login hop.
func SmartRedirect(store StateReader, provider profile.Provider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := guardState(r, store, provider, true)
		http.Redirect(w, r, Resolve(s).Path(), http.StatusSeeOther)
	})
}
