package authstate

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Long13062005/quickwork-web-sub001/pkg/authclient"
	"github.com/Long13062005/quickwork-web-sub001/pkg/logger"
)

// Service is the remote auth collaborator consumed by the Store. It is
// implemented by authclient.Client.
type Service interface {
	Me(ctx context.Context) error
	Login(ctx context.Context, creds authclient.Credentials) error
	Register(ctx context.Context, reg authclient.Registration) error
	Logout(ctx context.Context) error
	EmailExists(ctx context.Context, email string) (bool, error)
}

// FlowClearer is the slice of the flow session the store needs: clearing
// the correlation record once authentication succeeds. Satisfied by
// *flowsession.Manager.
type FlowClearer interface {
	Clear()
}

// Fallback user-facing messages for rejections that carry none.
const (
	loginFallback    = "Unable to sign in. Please try again."
	registerFallback = "Unable to create your account. Please try again."
	checkFallback    = "Unable to verify this email right now."
)

// Store is the single source of truth for authentication status. It owns
// the async operations and their transitions; everything else reads its
// Snapshot.
//
// The store applies last-write-per-field semantics and does not serialize
// overlapping Login/Register calls. Callers must not issue them
// concurrently; the client UI enforces this by disabling submit controls
// while Auth.Status is StatusLoading.
type Store struct {
	service Service
	flow    FlowClearer
	log     *slog.Logger

	mu          sync.Mutex
	snapshot    Snapshot
	subscribers map[int]func(Snapshot)
	nextSubID   int
}

// Option is a functional option for configuring the Store
type Option func(*Store)

// WithFlowSession wires a flow session to be cleared on successful
// authentication
func WithFlowSession(flow FlowClearer) Option {
	return func(s *Store) {
		s.flow = flow
	}
}

// WithLogger sets a custom logger
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a session store backed by the given auth service.
func New(service Service, opts ...Option) *Store {
	s := &Store{
		service:     service,
		log:         logger.Discard(),
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current snapshot.
func (s *Store) State() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Subscribe registers fn to receive every snapshot change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// transition applies mutate under the lock, then notifies subscribers with
// the resulting snapshot outside it.
func (s *Store) transition(mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.snapshot)
	snapshot := s.snapshot
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// Initialize restores session state by asking the service who the principal
// is. It never reports an error: a transport failure and "not logged in"
// are deliberately indistinguishable, because being unauthenticated must
// never render as a failure. Either way the store settles as initialized,
// and Initialized never reverts afterwards.
func (s *Store) Initialize(ctx context.Context) {
	s.transition(func(snap *Snapshot) {
		snap.Auth = Outcome{Status: StatusLoading}
	})

	if err := s.service.Me(ctx); err != nil {
		s.log.Debug("session restore settled unauthenticated", "error", err)
		s.transition(func(snap *Snapshot) {
			snap.Authenticated = false
			snap.Initialized = true
			snap.Auth = Outcome{Status: StatusIdle}
		})
		return
	}

	s.transition(func(snap *Snapshot) {
		snap.Authenticated = true
		snap.Initialized = true
		snap.Auth = Outcome{Status: StatusSucceeded}
	})
}

// Login authenticates with credentials. On rejection the user-facing
// message lands in Auth.Message and Authenticated is left untouched.
// Initialized is never altered here.
func (s *Store) Login(ctx context.Context, creds authclient.Credentials) error {
	s.transition(func(snap *Snapshot) {
		snap.Auth = Outcome{Status: StatusLoading}
	})

	if err := s.service.Login(ctx, creds); err != nil {
		message := userMessage(err, loginFallback)
		s.transition(func(snap *Snapshot) {
			snap.Auth = Outcome{Status: StatusFailed, Message: message}
		})
		return err
	}

	s.transition(func(snap *Snapshot) {
		snap.Authenticated = true
		snap.Auth = Outcome{Status: StatusSucceeded}
	})
	s.clearFlow()
	return nil
}

// Register creates an account and authenticates. Transition rules mirror
// Login.
func (s *Store) Register(ctx context.Context, reg authclient.Registration) error {
	s.transition(func(snap *Snapshot) {
		snap.Auth = Outcome{Status: StatusLoading}
	})

	if err := s.service.Register(ctx, reg); err != nil {
		message := userMessage(err, registerFallback)
		s.transition(func(snap *Snapshot) {
			snap.Auth = Outcome{Status: StatusFailed, Message: message}
		})
		return err
	}

	s.transition(func(snap *Snapshot) {
		snap.Authenticated = true
		snap.Auth = Outcome{Status: StatusSucceeded}
	})
	s.clearFlow()
	return nil
}

// Logout tears down the session. The remote call is best-effort; local
// state drops to unauthenticated either way. Initialized stays true.
func (s *Store) Logout(ctx context.Context) {
	if err := s.service.Logout(ctx); err != nil {
		s.log.Debug("remote logout failed", "error", err)
	}

	s.transition(func(snap *Snapshot) {
		snap.Authenticated = false
		snap.Auth = Outcome{Status: StatusIdle}
	})
}

// CheckEmailExists asks whether an account exists for email. A rejection
// leaves EmailExists untouched and records the message on EmailCheck.
func (s *Store) CheckEmailExists(ctx context.Context, email string) error {
	s.transition(func(snap *Snapshot) {
		snap.EmailCheck = Outcome{Status: StatusLoading}
	})

	exists, err := s.service.EmailExists(ctx, email)
	if err != nil {
		message := userMessage(err, checkFallback)
		s.transition(func(snap *Snapshot) {
			snap.EmailCheck = Outcome{Status: StatusFailed, Message: message}
		})
		return err
	}

	s.transition(func(snap *Snapshot) {
		snap.EmailCheck = Outcome{Status: StatusSucceeded}
		if exists {
			snap.EmailExists = ExistenceYes
		} else {
			snap.EmailExists = ExistenceNo
		}
	})
	return nil
}

// ClearEmailCheck resets the existence answer, called whenever the checked
// identifier becomes stale.
func (s *Store) ClearEmailCheck() {
	s.transition(func(snap *Snapshot) {
		snap.EmailExists = ExistenceUnknown
		snap.EmailCheck = Outcome{Status: StatusIdle}
	})
}

func (s *Store) clearFlow() {
	if s.flow != nil {
		s.flow.Clear()
	}
}

func userMessage(err error, fallback string) string {
	if msg := authclient.UserMessage(err); msg != "" {
		return msg
	}
	return fallback
}
