package authstate

// Status tracks the lifecycle of one async capability.
type Status uint8

const (
	// StatusIdle means no operation is running and none has failed.
	StatusIdle Status = iota
	// StatusLoading means an operation is in flight.
	StatusLoading
	// StatusSucceeded means the most recent operation settled successfully.
	StatusSucceeded
	// StatusFailed means the most recent operation was rejected.
	StatusFailed
)

// String returns a readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Existence is the tri-state answer to "does this identifier exist".
type Existence uint8

const (
	// ExistenceUnknown means no settled check covers the current identifier.
	ExistenceUnknown Existence = iota
	// ExistenceNo means the identifier has no account.
	ExistenceNo
	// ExistenceYes means the identifier already has an account.
	ExistenceYes
)

// Outcome is the tagged result of an async capability: a Status plus a
// user-facing message that is non-empty only when the Status is
// StatusFailed.
type Outcome struct {
	Status  Status
	Message string
}

// Failed reports whether the outcome is a failure.
func (o Outcome) Failed() bool {
	return o.Status == StatusFailed
}

// Snapshot is an immutable view of the session state. Copies are handed to
// subscribers and returned by State; mutating a Snapshot has no effect on
// the store.
type Snapshot struct {
	// Authenticated reports whether the principal currently holds a session.
	Authenticated bool

	// Initialized becomes true after the first who-am-I settlement and
	// never reverts for the remainder of the application lifetime.
	Initialized bool

	// Auth reflects the most recently issued initialize, login or
	// register operation.
	Auth Outcome

	// EmailCheck reflects the most recently issued email existence check.
	EmailCheck Outcome

	// EmailExists is the settled answer of the last successful email
	// check, or ExistenceUnknown.
	EmailExists Existence
}
