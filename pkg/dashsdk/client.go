package dashsdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ananidze/tradesync/pkg/tokenstore"
)

// DefaultBaseURL is the TradeSync backend used when no base URL is
// configured, matching the backend's local development address.
const DefaultBaseURL = "http://localhost:8080/api"

// Client is a client for the TradeSync dashboard API. It is the single
// choke point for outbound calls: it attaches the bearer credential held in
// Tokens, and classifies failures into typed errors.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Tokens supplies the session credential attached to requests. The
	// Client only reads it; persisting and clearing tokens is the caller's
	// responsibility.
	Tokens tokenstore.Store

	// OnUnauthenticated, when set, is invoked after any call authorized by
	// the stored session credential is rejected with 401. Calls carrying an
	// explicit override credential (second-factor verification) do not
	// trigger it; a wrong code must not tear down the pending challenge.
	OnUnauthenticated func()

	// Logger used for request tracing. Defaults to slog.Default.
	Logger *slog.Logger
}

// NewClient creates a dashboard API client. An empty baseURL falls back to
// DefaultBaseURL; a nil store falls back to the no-op tokenstore.Null so
// the client stays usable before persistence is available.
func NewClient(baseURL string, tokens tokenstore.Store) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if tokens == nil {
		tokens = tokenstore.Null{}
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		Tokens: tokens,
	}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
