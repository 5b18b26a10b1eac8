package dashsdk

import (
	"context"
	"net/http"
)

// Register creates a new dashboard account.
func (c *Client) Register(ctx context.Context, email, password string) (*MessageResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp MessageResponse
	if err := c.do(ctx, http.MethodPost, "/register", req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Login exchanges email and password for a credential. Inspect
// LoginResponse.Requires2FA to learn whether the returned token is a full
// session token or a pending challenge token that must be completed with
// VerifyTwoFA.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", req, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
