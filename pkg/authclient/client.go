package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/Long13062005/quickwork-web-sub001/pkg/logger"
)

// Config holds auth service configuration
type Config struct {
	// BaseURL of the auth REST API
	BaseURL string `env:"AUTH_API_URL" envDefault:"http://localhost:8080"`

	// Timeout for auth requests
	Timeout time.Duration `env:"AUTH_API_TIMEOUT" envDefault:"10s"`

	// RequestIDHeader carries the per-request correlation ID
	RequestIDHeader string `env:"AUTH_REQUEST_ID_HEADER" envDefault:"X-Request-ID"`
}

// DefaultConfig returns default auth service configuration
func DefaultConfig() Config {
	return Config{
		BaseURL:         "http://localhost:8080",
		Timeout:         10 * time.Second,
		RequestIDHeader: "X-Request-ID",
	}
}

// Client is a thin wrapper over the auth service's REST surface. Any
// non-success response is uniformly a failure; an optional message field in
// the body is surfaced through *Error for login, register and the email
// check. The session credential itself is an opaque cookie managed by the
// injected http.Client's jar and is never inspected here.
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

// WithHTTPClient sets the underlying HTTP client. Pass one carrying a
// cookie jar so the browser-managed credential travels with every call.
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

// New creates an auth service client.
func New(opts ...Option) *Client {
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

// Me issues the "who am I" check. A nil error means the principal is
// authenticated. Callers must treat every failure alike: transport errors
// and "not logged in" are deliberately indistinguishable.
func (c *Client) Me(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/auth/me", nil, nil)
}

// Login submits credentials. The session credential arrives as an opaque
// cookie on success.
func (c *Client) Login(ctx context.Context, creds Credentials) error {
	return c.do(ctx, http.MethodPost, "/auth/login", creds, nil)
}

// Register submits a new-account request.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/auth/register", reg, nil)
}

// Logout invalidates the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

type existsResponse struct {
	Exists bool `json:"exists"`
}

// EmailExists asks whether an account exists for the identifier.
func (c *Client) EmailExists(ctx context.Context, email string) (bool, error) {
	var body existsResponse
	path := "/auth/check-email?email=" + url.QueryEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &body); err != nil {
		return false, err
	}
	return body.Exists, nil
}

type errorEnvelope struct {
	Message string `json:"message"`
}

// do issues one request and decodes the response into out when provided.
func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, body)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(c.config.RequestIDHeader, requestID)

	c.log.Debug("auth request", "method", method, "path", req.URL.Path, "request_id", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("auth request failed", "request_id", requestID, "error", err)
		return ErrUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		_ = json.NewDecoder(resp.Body).Decode(&envelope)
		c.log.Debug("auth request rejected",
			"request_id", requestID, "status", resp.StatusCode)
		return &Error{Status: resp.StatusCode, Message: envelope.Message}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
