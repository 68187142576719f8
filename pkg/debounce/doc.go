// Package debounce wraps an idempotent remote existence lookup in a
// debounced, cancelable checker. The recruitment client uses it to ask
// "does this email already have an account" while the user is still typing,
// without issuing a request per keystroke.
//
// A Checker owns its timer state explicitly: one timer at a time, canceled
// deterministically by the next Check or by Cancel. In-flight lookups
// cannot be canceled, but settlements that were superseded by a newer
// dispatch are discarded rather than delivered.
//
// # Usage
//
//	checker := debounce.New(client.EmailExists,
//		debounce.WithResetHook(store.ClearEmailCheck),
//	)
//
//	// on every input change
//	checker.Check(ctx, input, onStart, func(exists *bool) {
//		// exists == nil means unknown, never "does not exist"
//	})
//
//	// on unmount / input cleared
//	checker.Cancel()
//
// # Error Handling
//
// The Checker never propagates an error. Lookup failures settle as a nil
// result; malformed or duplicate identifiers are silent no-ops.
package debounce
