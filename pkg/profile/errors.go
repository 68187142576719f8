package profile

import "errors"

var (
	// ErrUnavailable indicates the profile service could not answer
	ErrUnavailable = errors.New("profile.unavailable")
)
