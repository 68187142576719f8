package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Long13062005/quickwork-web-sub001/pkg/logger"
)

// Provider exposes the profile-completeness signal for the current
// principal. Route guards depend on this interface rather than on the
// concrete HTTP client.
type Provider interface {
	Current(ctx context.Context) (Signal, error)
}

// Config holds profile service configuration
type Config struct {
	// BaseURL of the profile REST API
	BaseURL string `env:"PROFILE_API_URL" envDefault:"http://localhost:8080"`

	// Timeout for profile requests
	Timeout time.Duration `env:"PROFILE_API_TIMEOUT" envDefault:"10s"`
}

// DefaultConfig returns default profile service configuration
func DefaultConfig() Config {
	return Config{
		BaseURL: "http://localhost:8080",
		Timeout: 10 * time.Second,
	}
}

// Client reads the principal's role and completeness from the profile
// service. Credentials travel as an opaque browser-managed cookie on the
// injected http.Client; this client never inspects them.
type Client struct {
	config Config
	http   *http.Client
	log    *slog.Logger
}

// Option is a functional option for configuring the Client
type Option func(*Client)

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(c *Client) {
		c.config = config
	}
}

// WithHTTPClient sets the underlying HTTP client, typically one sharing a
// cookie jar with the auth client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// WithLogger sets a custom logger
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// NewClient creates a profile service client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		config: DefaultConfig(),
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: c.config.Timeout}
	}
	return c
}

type profileResponse struct {
	Role             string `json:"role"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

// Current returns the principal's signal. Any failure returns the zero
// Signal alongside the error; guards treat that as "no role chosen" and
// redirect silently rather than surfacing the failure.
func (c *Client) Current(ctx context.Context) (Signal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/profile/me", nil)
	if err != nil {
		return Signal{}, fmt.Errorf("build profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("profile request failed", "error", err)
		return Signal{}, ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Debug("profile request rejected", "status", resp.StatusCode)
		return Signal{}, ErrUnavailable
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Signal{}, ErrUnavailable
	}

	return Signal{
		Role:     ParseRole(body.Role),
		Complete: body.ProfileCompleted,
	}, nil
}
