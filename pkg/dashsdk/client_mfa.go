package dashsdk

import (
	"context"
	"net/http"
)

// EnableTwoFA begins second-factor enrollment for the signed-in user. The
// returned enrollment material is transient display data; the caller shows
// it once and discards it.
// Requires an authenticated session.
func (c *Client) EnableTwoFA(ctx context.Context) (*TwoFASetup, error) {
	var resp TwoFASetup
	if err := c.do(ctx, http.MethodPost, "/2fa/enable", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyTwoFA submits a TOTP code and returns the full session token issued
// on success. The override authorizes the call: the pending challenge token
// from a login that required a second factor, or the current session token
// during enrollment confirmation. Passing it explicitly keeps a rejected
// code out of the OnUnauthenticated fallback; an empty override falls back
// to the stored session credential, whose rejection does trigger it.
func (c *Client) VerifyTwoFA(ctx context.Context, code, override string) (*TwoFAVerifyResponse, error) {
	req := struct {
		Code string `json:"code"`
	}{Code: code}

	var resp TwoFAVerifyResponse
	if err := c.do(ctx, http.MethodPost, "/2fa/verify", req, override, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
