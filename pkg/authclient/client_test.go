package authclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Long13062005/quickwork-web-sub001/pkg/authclient"
)

func newClient(srv *httptest.Server) *authclient.Client {
	cfg := authclient.DefaultConfig()
	cfg.BaseURL = srv.URL
	return authclient.New(authclient.WithConfig(cfg))
}

func TestClient_Me(t *testing.T) {
	t.Run("authenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodGet, r.Method)
			require.Equal(t, "/auth/me", r.URL.Path)
			assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		assert.NoError(t, newClient(srv).Me(context.Background()))
	})

	t.Run("unauthenticated", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		err := newClient(srv).Me(context.Background())
		assert.ErrorIs(t, err, authclient.ErrRequestFailed)
	})

	t.Run("unreachable", func(t *testing.T) {
		cfg := authclient.DefaultConfig()
		cfg.BaseURL = "http://127.0.0.1:1"
		client := authclient.New(authclient.WithConfig(cfg))

		err := client.Me(context.Background())
		assert.ErrorIs(t, err, authclient.ErrUnavailable)
	})
}

func TestClient_Login(t *testing.T) {
	t.Run("sends credentials", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/auth/login", r.URL.Path)

			var creds authclient.Credentials
			require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
			assert.Equal(t, "a@x.com", creds.Email)
			assert.Equal(t, "hunter2", creds.Password)

			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		err := newClient(srv).Login(context.Background(), authclient.Credentials{
			Email:    "a@x.com",
			Password: "hunter2",
		})
		assert.NoError(t, err)
	})

	t.Run("surfaces the rejection message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid email or password"}`))
		}))
		defer srv.Close()

		err := newClient(srv).Login(context.Background(), authclient.Credentials{
			Email:    "a@x.com",
			Password: "wrong",
		})
		require.Error(t, err)
		assert.Equal(t, "Invalid email or password", authclient.UserMessage(err))
	})

	t.Run("rejection without message", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		err := newClient(srv).Login(context.Background(), authclient.Credentials{Email: "a@x.com"})
		require.Error(t, err)
		assert.Empty(t, authclient.UserMessage(err))
		assert.ErrorIs(t, err, authclient.ErrRequestFailed)
	})
}

func TestClient_Register(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/register", r.URL.Path)

		var reg authclient.Registration
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reg))
		assert.Equal(t, "new@x.com", reg.Email)
		assert.Equal(t, "Quinn Tran", reg.FullName)

		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	err := newClient(srv).Register(context.Background(), authclient.Registration{
		Email:    "new@x.com",
		Password: "hunter2",
		FullName: "Quinn Tran",
	})
	assert.NoError(t, err)
}

func TestClient_Logout(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		called = true
	}))
	defer srv.Close()

	assert.NoError(t, newClient(srv).Logout(context.Background()))
	assert.True(t, called)
}

func TestClient_EmailExists(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/auth/check-email", r.URL.Path)
			require.Equal(t, "a+tag@x.com", r.URL.Query().Get("email"))
			_, _ = w.Write([]byte(`{"exists":true}`))
		}))
		defer srv.Close()

		exists, err := newClient(srv).EmailExists(context.Background(), "a+tag@x.com")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("does not exist", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"exists":false}`))
		}))
		defer srv.Close()

		exists, err := newClient(srv).EmailExists(context.Background(), "b@x.com")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("failure propagates", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		_, err := newClient(srv).EmailExists(context.Background(), "a@x.com")
		assert.ErrorIs(t, err, authclient.ErrRequestFailed)
	})
}
