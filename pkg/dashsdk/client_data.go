package dashsdk

import (
	"context"
	"net/http"
	"strings"
)

// Accounts lists the tracked trading accounts.
// Requires an authenticated session.
func (c *Client) Accounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := c.do(ctx, http.MethodGet, "/accounts", nil, "", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Trades lists trades across the tracked accounts.
// Requires an authenticated session.
func (c *Client) Trades(ctx context.Context) ([]Trade, error) {
	var trades []Trade
	if err := c.do(ctx, http.MethodGet, "/trades", nil, "", &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// Stats returns the aggregate dashboard statistics.
// Requires an authenticated session.
func (c *Client) Stats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.do(ctx, http.MethodGet, "/stats", nil, "", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// Health checks backend liveness. The health endpoint lives at the server
// root, outside the /api prefix the rest of the client uses.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	root := *c
	root.BaseURL = strings.TrimSuffix(c.BaseURL, "/api")

	var resp HealthResponse
	if err := root.do(ctx, http.MethodGet, "/health", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
