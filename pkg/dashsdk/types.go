package dashsdk

import "time"

// ============================================================================
// Authentication Types
// ============================================================================

// LoginResponse is the POST /login response. When the account has a second
// factor enrolled, Token is a short-lived challenge token that only
// authorizes the /2fa/verify call; otherwise it is a full session token.
type LoginResponse struct {
	// Requires2FA indicates the login must be completed with a TOTP code.
	Requires2FA bool `json:"requires2fa"`

	// Token is the issued credential: a pending challenge token when
	// Requires2FA is true, a session token otherwise.
	Token string `json:"token"`
}

// TwoFASetup is the enrollment material returned by POST /2fa/enable. It is
// shown to the user once so they can register their authenticator app and
// is never persisted by the client.
type TwoFASetup struct {
	// Secret is the shared TOTP secret in base32.
	Secret string `json:"secret"`

	// OtpauthURL is the otpauth:// provisioning URI for authenticator apps.
	OtpauthURL string `json:"otpauthUrl"`

	// QRCode is the provisioning URI rendered as a PNG data URI.
	QRCode string `json:"qrCode"`
}

// TwoFAVerifyResponse is the POST /2fa/verify response carrying the full
// session token issued after a correct code.
type TwoFAVerifyResponse struct {
	Token       string `json:"token"`
	TwoFAActive bool   `json:"twoFAActive"`
}

// MessageResponse is a generic informational response, e.g. from /register.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the backend liveness report.
type HealthResponse struct {
	Status string `json:"status"`
}

// ============================================================================
// Dashboard Data Types
// ============================================================================

// Account is a funded trading account tracked by the dashboard.
type Account struct {
	ID            string    `json:"id"`
	FirmName      string    `json:"firmName"`
	AccountNumber string    `json:"accountNumber"`
	Balance       float64   `json:"balance"`
	Equity        float64   `json:"equity"`
	DailyPnL      float64   `json:"dailyPnL"`
	TotalPnL      float64   `json:"totalPnL"`
	Drawdown      float64   `json:"drawdown"`
	MaxDrawdown   float64   `json:"maxDrawdown"`
	Status        string    `json:"status"`
	LastUpdated   time.Time `json:"lastUpdated"`
}

// Trade is a single position on one of the tracked accounts. Close fields
// and PnL are nil while the position is still open.
type Trade struct {
	ID         string     `json:"id"`
	AccountID  string     `json:"accountId"`
	Symbol     string     `json:"symbol"`
	Type       string     `json:"type"`
	OpenTime   time.Time  `json:"openTime"`
	CloseTime  *time.Time `json:"closeTime,omitempty"`
	OpenPrice  float64    `json:"openPrice"`
	ClosePrice *float64   `json:"closePrice,omitempty"`
	LotSize    float64    `json:"lotSize"`
	PnL        *float64   `json:"pnl,omitempty"`
	Status     string     `json:"status"`
}

// DashboardStats aggregates the dashboard's headline figures across all
// tracked accounts.
type DashboardStats struct {
	TotalBalance   float64 `json:"totalBalance"`
	TotalEquity    float64 `json:"totalEquity"`
	TotalPnL       float64 `json:"totalPnL"`
	DailyPnL       float64 `json:"dailyPnL"`
	ActiveAccounts int     `json:"activeAccounts"`
	OpenTrades     int     `json:"openTrades"`
}
