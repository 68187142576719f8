package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long13062005/quickwork-web-sub001/pkg/config"
)

type testConfig struct {
	BaseURL string        `env:"TEST_BASE_URL" envDefault:"http://localhost:8080"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"5s"`
	Debug   bool          `env:"TEST_DEBUG" envDefault:"false"`
}

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.False(t, cfg.Debug)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("TEST_BASE_URL", "https://api.quickwork.dev")
		t.Setenv("TEST_TIMEOUT", "30s")
		t.Setenv("TEST_DEBUG", "true")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "https://api.quickwork.dev", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.True(t, cfg.Debug)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_TIMEOUT", "not-a-duration")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on invalid environment", func(t *testing.T) {
		t.Setenv("TEST_TIMEOUT", "broken")

		assert.Panics(t, func() {
			var cfg testConfig
			config.MustLoad(&cfg)
		})
	})
}
