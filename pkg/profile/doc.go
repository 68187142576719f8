// Package profile exposes the external profile-completeness collaborator:
// which role the authenticated principal holds and whether its profile is
// complete. The signal is a read-only input to route guards and redirect
// resolution; this module never writes profile data.
//
// Roles form a closed set: job seeker, employer, admin, or none (the
// principal has not chosen yet). Unknown wire values collapse to none.
package profile
