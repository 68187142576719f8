// Package routeguard decides where the user may go. Its core is three pure
// functions over session state and the profile-completeness signal:
//
//   - Protected implements the auth/profile gating table for screens that
//     require a session, a complete profile, or neither.
//   - AuthFlow keeps login and register behind the pre-auth identifier
//     check by requiring a live flow-correlation record.
//   - Resolve is the smart redirect: a total, loop-free map from session
//     state to exactly one destination.
//
// All three are side-effect free and idempotent — they are re-evaluated on
// every render and must keep agreeing with themselves. Destinations form a
// closed Route set; Requirements exposes each route's own gating so loop
// freedom is checkable.
//
// Thin net/http adapters (Middleware, FlowMiddleware, SmartRedirect) apply
// the decisions as 303 redirects or a loading placeholder. Guard-driven
// redirects are silent; only explicit user actions surface error feedback.
package routeguard
