package authclient

// Credentials carry a login attempt. The long-lived authentication proof is
// an opaque browser-managed credential; these fields are only ever sent, the
// resulting cookie is never read by this module.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries a new-account request.
type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName,omitempty"`
}
