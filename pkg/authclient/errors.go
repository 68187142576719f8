package authclient

import (
	"errors"
	"fmt"
)

var (
	// ErrUnavailable indicates the auth service could not be reached
	ErrUnavailable = errors.New("authclient.unavailable")

	// ErrRequestFailed indicates the auth service rejected the request
	ErrRequestFailed = errors.New("authclient.request_failed")
)

// Error is a rejection from the auth service. Message carries the optional
// user-facing text from the response body; it may be empty, in which case
// callers fall back to their own copy.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("auth service rejected request (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("auth service rejected request (status %d)", e.Status)
}

// Unwrap lets errors.Is match ErrRequestFailed.
func (e *Error) Unwrap() error {
	return ErrRequestFailed
}

// UserMessage extracts the user-facing message from an auth service error,
// or the empty string when err carries none.
func UserMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return ""
}
