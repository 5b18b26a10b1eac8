package dashsdk

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ananidze/tradesync/pkg/tokenstore"
	"github.com/ananidze/tradesync/pkg/tokenstore/memory"

	"github.com/stretchr/testify/require"
)

func TestRequestShape(t *testing.T) {
	t.Parallel()

	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(DashboardStats{})
	}))
	defer srv.Close()

	tokens := memory.New()
	tokens.Set(tokenstore.SlotSession, "T1")
	client := NewClient(srv.URL, tokens)

	_, err := client.Stats(t.Context())
	require.NoError(t, err)

	require.Equal(t, "application/json", got.Header.Get("Content-Type"))
	require.Equal(t, "Bearer T1", got.Header.Get("Authorization"))
	require.NotEmpty(t, got.Header.Get("X-Request-Id"))
}

func TestBearerResolution(t *testing.T) {
	t.Parallel()

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Path == "/trades" {
			_ = json.NewEncoder(w).Encode([]Trade{})
			return
		}
		_ = json.NewEncoder(w).Encode(TwoFAVerifyResponse{Token: "T2"})
	}))
	defer srv.Close()

	t.Run("no credential, no header", func(t *testing.T) {
		client := NewClient(srv.URL, memory.New())
		_, err := client.Login(t.Context(), "a@x.com", "pw")
		require.NoError(t, err)
		require.Empty(t, auth)
	})

	t.Run("override wins over stored session", func(t *testing.T) {
		tokens := memory.New()
		tokens.Set(tokenstore.SlotSession, "T1")
		client := NewClient(srv.URL, tokens)

		_, err := client.VerifyTwoFA(t.Context(), "123456", "P1")
		require.NoError(t, err)
		require.Equal(t, "Bearer P1", auth)
	})

	t.Run("pending token is never sent to data endpoints", func(t *testing.T) {
		tokens := memory.New()
		tokens.Set(tokenstore.SlotPendingChallenge, "P1")
		client := NewClient(srv.URL, tokens)

		_, err := client.Trades(t.Context())
		require.NoError(t, err)
		require.Empty(t, auth)
	})
}

func TestUnauthenticatedHook(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	t.Run("fires for session-authorized calls", func(t *testing.T) {
		tokens := memory.New()
		tokens.Set(tokenstore.SlotSession, "stale")
		client := NewClient(srv.URL, tokens)

		fired := false
		client.OnUnauthenticated = func() { fired = true }

		_, err := client.Accounts(t.Context())
		require.True(t, IsUnauthenticated(err))
		require.True(t, fired)
	})

	t.Run("silent for override-authorized calls", func(t *testing.T) {
		tokens := memory.New()
		tokens.Set(tokenstore.SlotPendingChallenge, "P1")
		client := NewClient(srv.URL, tokens)

		fired := false
		client.OnUnauthenticated = func() { fired = true }

		// A wrong second-factor code comes back 401 but must not tear
		// down the pending challenge.
		_, err := client.VerifyTwoFA(t.Context(), "000000", "P1")
		require.True(t, IsUnauthenticated(err))
		require.False(t, fired)
	})

	t.Run("silent when no credential was attached", func(t *testing.T) {
		client := NewClient(srv.URL, memory.New())

		fired := false
		client.OnUnauthenticated = func() { fired = true }

		_, err := client.Login(t.Context(), "a@x.com", "wrong")
		require.True(t, IsUnauthenticated(err))
		require.False(t, fired)
	})
}

func TestFailureClassification(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register":
			http.Error(w, "user already exists", http.StatusConflict)
		case "/stats":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"totalBalance": not json`))
		case "/trades":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	tokens := memory.New()
	tokens.Set(tokenstore.SlotSession, "T1")
	client := NewClient(srv.URL, tokens)

	t.Run("validation failure carries status and reason", func(t *testing.T) {
		_, err := client.Register(t.Context(), "a@x.com", "pw")
		require.True(t, IsValidation(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, http.StatusConflict, apiErr.StatusCode)
		require.Equal(t, "user already exists", apiErr.Message)
	})

	t.Run("malformed body is a failure, not a zero result", func(t *testing.T) {
		_, err := client.Stats(t.Context())
		require.Error(t, err)
		require.ErrorContains(t, err, "decode")
	})

	t.Run("no-content success is an explicit empty result", func(t *testing.T) {
		trades, err := client.Trades(t.Context())
		require.NoError(t, err)
		require.Empty(t, trades)
	})
}

func TestTransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, memory.New())
	_, err := client.Login(t.Context(), "a@x.com", "pw")
	require.Error(t, err)

	var apiErr *APIError
	require.False(t, errors.As(err, &apiErr))
}

func TestHealthUsesServerRoot(t *testing.T) {
	t.Parallel()

	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/api", memory.New())
	resp, err := client.Health(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", resp.Status)
	require.Equal(t, "/health", path)
}
