package routeguard

import "github.com/Long13062005/quickwork-web-sub001/pkg/profile"

// State is the input every guard decision is computed from: the session
// store's settlement flags plus the external profile-completeness signal.
type State struct {
	Initialized   bool
	Authenticated bool
	Profile       profile.Signal
}

// DecisionKind tags a guard decision.
type DecisionKind uint8

const (
	// DecisionRender allows the requested content.
	DecisionRender DecisionKind = iota
	// DecisionPlaceholder renders the loading placeholder; the session has
	// not settled yet.
	DecisionPlaceholder
	// DecisionRedirect sends the user to Target instead.
	DecisionRedirect
)

// Decision is the outcome of a guard evaluation. Target is meaningful only
// when Kind is DecisionRedirect.
type Decision struct {
	Kind   DecisionKind
	Target Route
}

// Render allows the requested content.
func Render() Decision {
	return Decision{Kind: DecisionRender}
}

// Placeholder renders the loading placeholder.
func Placeholder() Decision {
	return Decision{Kind: DecisionPlaceholder}
}

// RedirectTo sends the user to route.
func RedirectTo(route Route) Decision {
	return Decision{Kind: DecisionRedirect, Target: route}
}

// Protected decides whether a screen may render. It is pure and
// idempotent: re-evaluating the same inputs yields the same decision, and
// it has no side effects beyond the navigation its caller performs.
//
// Before the first settlement every screen shows the placeholder. A screen
// that does not require auth renders unconditionally. One that does
// redirects unauthenticated users to the pre-auth entry, and, when it also
// requires a complete profile, sends incomplete principals to their
// role-specific profile-completion screen first.
func Protected(s State, requireAuth, requireProfile bool) Decision {
	if !s.Initialized {
		return Placeholder()
	}
	if !requireAuth {
		return Render()
	}
	if !s.Authenticated {
		return RedirectTo(RoutePreAuth)
	}
	if requireProfile && !s.Profile.Complete {
		return RedirectTo(profileCompletionRoute(s.Profile.Role))
	}
	return Render()
}

// AuthFlow decides whether the login/register screens may render. When the
// screen requires a prior identifier check, a valid flow-correlation record
// must exist; otherwise the user is sent back to the pre-auth entry so the
// "check identifier first" step cannot be bypassed.
func AuthFlow(requireEmailCheck, flowValid bool) Decision {
	if !requireEmailCheck || flowValid {
		return Render()
	}
	return RedirectTo(RoutePreAuth)
}

// Resolve maps session state to exactly one destination. It is total over
// its inputs and loop-free: the guard of the destination it picks never
// redirects back.
func Resolve(s State) Route {
	if !s.Initialized {
		return RouteLoader
	}
	if !s.Authenticated {
		return RouteLanding
	}
	if s.Profile.Role == profile.RoleNone {
		return RouteRoleSelection
	}
	if !s.Profile.Complete {
		return profileCompletionRoute(s.Profile.Role)
	}
	return dashboardRoute(s.Profile.Role)
}

// Requirements returns the auth and profile requirements the route's own
// guard enforces, used to verify redirect chains terminate.
func (r Route) Requirements() (requireAuth, requireProfile bool) {
	switch r {
	case RouteJobSeekerDashboard, RouteEmployerDashboard, RouteAdminDashboard:
		return true, true
	case RouteRoleSelection, RouteJobSeekerProfile, RouteEmployerProfile, RouteAdminProfile:
		return true, false
	default:
		return false, false
	}
}
