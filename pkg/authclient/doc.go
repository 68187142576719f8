// Package authclient is the REST wrapper around the recruitment platform's
// auth service: who-am-I, login, register, logout and the email existence
// check. It is deliberately thin — all session-state interpretation lives in
// the authstate package, which consumes this client through its Service
// interface.
//
// Every request carries a uuid correlation ID header and logs at debug
// level. The authentication proof itself is an opaque cookie held by the
// injected http.Client's jar; this package never reads or writes it.
//
// # Error Handling
//
// Transport failures return ErrUnavailable. Any non-2xx response returns an
// *Error wrapping ErrRequestFailed; its Message field carries the optional
// user-facing text from the response body, extracted with UserMessage.
package authclient
