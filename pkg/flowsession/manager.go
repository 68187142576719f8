package flowsession

import (
	"log/slog"
	"time"

	"github.com/Long13062005/quickwork-web-sub001/pkg/logger"
)

// Manager owns the flow-correlation record. It is a UX aid, not a security
// boundary: every operation degrades to "absent" or a no-op when the backing
// storage misbehaves, and no method ever returns an error to the caller.
//
// Expiry is lazy. There is no background timer; every read checks the
// record's age and evicts an expired record before reporting absent.
type Manager struct {
	storage Storage
	config  Config
	now     func() time.Time
	log     *slog.Logger
}

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStorage sets a custom backing storage
func WithStorage(storage Storage) Option {
	return func(m *Manager) {
		m.storage = storage
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithTTL sets the record time-to-live
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithClock sets the time source, used by tests to simulate expiry
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		if log != nil {
			m.log = log
		}
	}
}

// New creates a flow session manager with the given options.
func New(opts ...Option) *Manager {
	m := &Manager{
		config: DefaultConfig(),
		now:    time.Now,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.storage == nil {
		m.storage = NewMemoryStorage()
	}
	return m
}

// Set writes a fresh flow record for value, stamped with the current time
// and the origin flag. Storage failures are swallowed; the record is simply
// not available on the next read.
func (m *Manager) Set(value string) {
	raw, err := encodeRecord(Record{
		Value:      value,
		Timestamp:  m.now().UnixMilli(),
		OriginFlag: true,
	})
	if err != nil {
		m.log.Debug("flow session encode failed", "error", err)
		return
	}
	if err := m.storage.Set(m.config.Key, raw); err != nil {
		m.log.Debug("flow session write failed", "error", err)
	}
}

// Get returns the correlated value when a valid, non-expired record exists.
// An expired or malformed record is evicted as a side effect before absent
// is reported, so a second immediate read is also absent.
func (m *Manager) Get() (string, bool) {
	raw, ok := m.storage.Get(m.config.Key)
	if !ok {
		return "", false
	}

	record, err := decodeRecord(raw)
	if err != nil {
		m.log.Debug("flow session decode failed", "error", err)
		m.storage.Remove(m.config.Key)
		return "", false
	}

	if !record.OriginFlag || record.Expired(m.now(), m.config.TTL) {
		m.storage.Remove(m.config.Key)
		return "", false
	}

	return record.Value, true
}

// Clear removes the flow record. Called on successful authentication.
func (m *Manager) Clear() {
	m.storage.Remove(m.config.Key)
}

// IsValid reports whether a non-expired record exists. A non-empty expected
// value additionally requires the stored value to match it.
func (m *Manager) IsValid(expected string) bool {
	value, ok := m.Get()
	if !ok {
		return false
	}
	return expected == "" || value == expected
}
