package routeguard

import "github.com/Long13062005/quickwork-web-sub001/pkg/profile"

// Route is a closed set of client destinations a guard may send the user
// to. Guards never produce paths outside this set.
type Route uint8

const (
	// RouteLoader is the placeholder screen shown before the first
	// session settlement.
	RouteLoader Route = iota
	// RouteLanding is the public landing page.
	RouteLanding
	// RoutePreAuth is the pre-auth entry screen where the user types an
	// identifier to be checked before login or register.
	RoutePreAuth
	// RouteLogin is the login screen.
	RouteLogin
	// RouteRegister is the registration screen.
	RouteRegister
	// RouteRoleSelection asks an authenticated principal to choose a role.
	RouteRoleSelection
	// RouteJobSeekerProfile is the job seeker profile-completion screen.
	RouteJobSeekerProfile
	// RouteEmployerProfile is the employer profile-completion screen.
	RouteEmployerProfile
	// RouteAdminProfile is the admin profile-completion screen.
	RouteAdminProfile
	// RouteJobSeekerDashboard is the job seeker home.
	RouteJobSeekerDashboard
	// RouteEmployerDashboard is the employer home.
	RouteEmployerDashboard
	// RouteAdminDashboard is the admin home.
	RouteAdminDashboard
)

// Path maps the route to its client path.
func (r Route) Path() string {
	switch r {
	case RouteLoader:
		return "/loading"
	case RoutePreAuth:
		return "/auth"
	case RouteLogin:
		return "/auth/login"
	case RouteRegister:
		return "/auth/register"
	case RouteRoleSelection:
		return "/choose-role"
	case RouteJobSeekerProfile:
		return "/jobseeker/profile"
	case RouteEmployerProfile:
		return "/employer/profile"
	case RouteAdminProfile:
		return "/admin/profile"
	case RouteJobSeekerDashboard:
		return "/jobseeker"
	case RouteEmployerDashboard:
		return "/employer"
	case RouteAdminDashboard:
		return "/admin"
	default:
		return "/"
	}
}

// profileCompletionRoute returns the role-specific profile screen, or role
// selection when no role is chosen yet.
func profileCompletionRoute(role profile.Role) Route {
	switch role {
	case profile.RoleJobSeeker:
		return RouteJobSeekerProfile
	case profile.RoleEmployer:
		return RouteEmployerProfile
	case profile.RoleAdmin:
		return RouteAdminProfile
	default:
		return RouteRoleSelection
	}
}

// dashboardRoute returns the role's home screen.
func dashboardRoute(role profile.Role) Route {
	switch role {
	case profile.RoleEmployer:
		return RouteEmployerDashboard
	case profile.RoleAdmin:
		return RouteAdminDashboard
	default:
		return RouteJobSeekerDashboard
	}
}
