package profile

// Role identifies which side of the platform a principal belongs to.
type Role uint8

const (
	// RoleNone means the principal has not chosen a role yet.
	RoleNone Role = iota
	// RoleJobSeeker is a candidate looking for positions.
	RoleJobSeeker
	// RoleEmployer is a company account posting positions.
	RoleEmployer
	// RoleAdmin is a platform administrator.
	RoleAdmin
)

// String returns the wire representation of the role.
func (r Role) String() string {
	switch r {
	case RoleJobSeeker:
		return "jobseeker"
	case RoleEmployer:
		return "employer"
	case RoleAdmin:
		return "admin"
	default:
		return ""
	}
}

// ParseRole maps a wire string to a Role. Unknown values map to RoleNone.
func ParseRole(s string) Role {
	switch s {
	case "jobseeker":
		return RoleJobSeeker
	case "employer":
		return RoleEmployer
	case "admin":
		return RoleAdmin
	default:
		return RoleNone
	}
}

// Signal is the read-only profile-completeness input consumed by route
// guards and redirect resolution. The zero value means "no role chosen,
// profile incomplete".
type Signal struct {
	Role     Role
	Complete bool
}
