package flowsession_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long13062005/quickwork-web-sub001/pkg/flowsession"
)

// fakeClock is a movable time source.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// failingStorage refuses writes and optionally hides reads.
type failingStorage struct {
	flowsession.Storage
	failSet bool
}

func (s *failingStorage) Set(key, value string) error {
	if s.failSet {
		return errors.New("quota exceeded")
	}
	return s.Storage.Set(key, value)
}

func newManager(t *testing.T, opts ...flowsession.Option) (*flowsession.Manager, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	opts = append([]flowsession.Option{flowsession.WithClock(clock.Now)}, opts...)
	return flowsession.New(opts...), clock
}

func TestManager_SetGet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		m, _ := newManager(t)
		m.Set("a@x.com")

		value, ok := m.Get()
		assert.True(t, ok)
		assert.Equal(t, "a@x.com", value)
	})

	t.Run("absent without set", func(t *testing.T) {
		m, _ := newManager(t)
		_, ok := m.Get()
		assert.False(t, ok)
	})

	t.Run("last write wins", func(t *testing.T) {
		m, _ := newManager(t)
		m.Set("first@x.com")
		m.Set("second@x.com")

		value, ok := m.Get()
		require.True(t, ok)
		assert.Equal(t, "second@x.com", value)
	})
}

func TestManager_Expiry(t *testing.T) {
	t.Run("expired record evicted on read", func(t *testing.T) {
		m, clock := newManager(t)
		m.Set("x@y.com")

		clock.Advance(31 * time.Minute)

		_, ok := m.Get()
		assert.False(t, ok)

		// Eviction already happened; an immediate second read agrees.
		_, ok = m.Get()
		assert.False(t, ok)
	})

	t.Run("valid within ttl", func(t *testing.T) {
		m, clock := newManager(t)
		m.Set("x@y.com")

		clock.Advance(29 * time.Minute)

		value, ok := m.Get()
		assert.True(t, ok)
		assert.Equal(t, "x@y.com", value)
	})

	t.Run("custom ttl", func(t *testing.T) {
		m, clock := newManager(t, flowsession.WithTTL(time.Minute))
		m.Set("x@y.com")

		clock.Advance(2 * time.Minute)

		_, ok := m.Get()
		assert.False(t, ok)
	})
}

func TestManager_Clear(t *testing.T) {
	m, _ := newManager(t)
	m.Set("a@x.com")
	m.Clear()

	_, ok := m.Get()
	assert.False(t, ok)
}

func TestManager_IsValid(t *testing.T) {
	t.Run("any value", func(t *testing.T) {
		m, _ := newManager(t)
		assert.False(t, m.IsValid(""))

		m.Set("a@x.com")
		assert.True(t, m.IsValid(""))
	})

	t.Run("expected value", func(t *testing.T) {
		m, _ := newManager(t)
		m.Set("a@x.com")

		assert.True(t, m.IsValid("a@x.com"))
		assert.False(t, m.IsValid("b@x.com"))
	})

	t.Run("expired is invalid", func(t *testing.T) {
		m, clock := newManager(t)
		m.Set("a@x.com")
		clock.Advance(31 * time.Minute)

		assert.False(t, m.IsValid("a@x.com"))
	})
}

func TestManager_Degradation(t *testing.T) {
	t.Run("write failure degrades to absent", func(t *testing.T) {
		storage := &failingStorage{Storage: flowsession.NewMemoryStorage(), failSet: true}
		m, _ := newManager(t, flowsession.WithStorage(storage))

		m.Set("a@x.com") // must not panic or error

		_, ok := m.Get()
		assert.False(t, ok)
	})

	t.Run("malformed record evicted", func(t *testing.T) {
		storage := flowsession.NewMemoryStorage()
		require.NoError(t, storage.Set(flowsession.DefaultKey, "{not json"))

		m, _ := newManager(t, flowsession.WithStorage(storage))
		_, ok := m.Get()
		assert.False(t, ok)

		_, present := storage.Get(flowsession.DefaultKey)
		assert.False(t, present)
	})

	t.Run("record without origin flag treated as absent", func(t *testing.T) {
		storage := flowsession.NewMemoryStorage()
		require.NoError(t, storage.Set(flowsession.DefaultKey,
			`{"value":"a@x.com","timestamp":9999999999999,"originFlag":false}`))

		m, _ := newManager(t, flowsession.WithStorage(storage))
		_, ok := m.Get()
		assert.False(t, ok)
	})
}
