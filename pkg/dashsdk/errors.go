package dashsdk

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-success response from the TradeSync backend, carrying
// the numeric status and the server's human-readable reason.
type APIError struct {
	// StatusCode is the HTTP status code of the rejected call.
	StatusCode int

	// Message is the reason reported by the server, suitable for display.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Unauthenticated reports whether the call was rejected because its bearer
// credential is missing, expired or revoked.
func (e *APIError) Unauthenticated() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsUnauthenticated reports whether err is an APIError for a rejected
// credential (HTTP 401).
func IsUnauthenticated(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Unauthenticated()
}

// IsValidation reports whether err is an APIError for a request the server
// rejected on its merits (any 4xx other than 401): wrong password, wrong
// second-factor code, duplicate registration. The caller surfaces the
// message and nothing else changes.
func IsValidation(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 &&
		apiErr.StatusCode != http.StatusUnauthorized
}

// parseErrorResponse builds an APIError from a non-2xx response body. The
// backend answers most rejections with a bare text line via http.Error, but
// JSON error envelopes are handled too.
func parseErrorResponse(status int, body []byte) *APIError {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return &APIError{StatusCode: status, Message: envelope.Error}
		}
		if envelope.Message != "" {
			return &APIError{StatusCode: status, Message: envelope.Message}
		}
	}

	if reason := string(bytes.TrimSpace(body)); reason != "" {
		return &APIError{StatusCode: status, Message: reason}
	}

	return &APIError{StatusCode: status, Message: http.StatusText(status)}
}
