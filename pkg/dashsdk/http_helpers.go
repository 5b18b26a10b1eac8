package dashsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/ananidze/tradesync/pkg/tokenstore"

	"github.com/oklog/ulid/v2"
)

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// do performs one API call: marshal the payload, resolve and attach the
// bearer credential, issue the request, classify the response, and decode a
// JSON body into out when one is present.
//
// The bearer is the override when non-empty (used only by second-factor
// verification, which may run before a session credential exists),
// otherwise the session token currently in the store. Each call is
// attempted exactly once; retry policy belongs to the caller.
func (c *Client) do(ctx context.Context, method, path string, payload any, override string, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.url(path), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	reqID := ulid.Make().String()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", reqID)

	bearer, fromStore := c.resolveBearer(override)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseErrorResponse(resp.StatusCode, raw)
		c.logger().Debug("api call rejected",
			"method", method, "path", path,
			"status", resp.StatusCode, "req_id", reqID)

		// A 401 on a session-authorized call means the credential is
		// expired or revoked; route it through the one global fallback.
		if apiErr.Unauthenticated() && fromStore && c.OnUnauthenticated != nil {
			c.OnUnauthenticated()
		}
		return apiErr
	}

	// No-content responses return an explicit empty result; out keeps its
	// zero value rather than being fed an empty body to parse.
	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 || out == nil {
		return nil
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// resolveBearer returns the credential to attach and whether it came from
// the stored session slot.
func (c *Client) resolveBearer(override string) (bearer string, fromStore bool) {
	if override != "" {
		return override, false
	}
	if token, ok := c.Tokens.Get(tokenstore.SlotSession); ok {
		return token, true
	}
	return "", false
}
