package authflow

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ananidze/tradesync/pkg/dashsdk"
	"github.com/ananidze/tradesync/pkg/tokenstore"
)

// Controller is the authentication state machine. It accepts user-supplied
// credentials and second-factor codes, drives calls through the dashsdk
// client, updates the token store, and returns the state the caller should
// navigate to.
//
// Credential persistence happens-before the returned state, so a caller
// observing StateAuthenticated can always read a usable session token from
// the store.
type Controller struct {
	client *dashsdk.Client
	tokens tokenstore.Store
	log    *slog.Logger

	// mu guards epoch and the persist-then-transition sections. It is
	// never held across a network round-trip.
	mu    sync.Mutex
	epoch uint64
}

// NewController creates a controller over the client and its token store,
// and registers itself as the client's OnUnauthenticated hook so every
// 401-classified failure in the application routes through one forced
// logout. A nil logger falls back to slog.Default.
func NewController(client *dashsdk.Client, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Controller{
		client: client,
		tokens: client.Tokens,
		log:    logger,
	}
	client.OnUnauthenticated = c.HandleUnauthenticated
	return c
}

// State returns the current authentication state, derived from the store.
func (c *Controller) State() State {
	return ComputeState(c.tokens)
}

// SubmitLogin submits a password login. On success the issued token is
// persisted as the pending challenge credential (second factor required) or
// the session credential, and the matching state is returned. On failure
// nothing changes; the error carries the reason for display and is not
// retried.
//
// A fresh login's challenge token overwrites any unfinished prior
// challenge: the newest login is authoritative.
func (c *Controller) SubmitLogin(ctx context.Context, email, password string) (State, error) {
	epoch := c.currentEpoch()

	resp, err := c.client.Login(ctx, email, password)
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return ComputeState(c.tokens), ErrFlowReset
	}

	if resp.Requires2FA {
		c.tokens.Set(tokenstore.SlotPendingChallenge, resp.Token)
		// A stale session slot would outrank the fresh challenge under
		// the precedence rule; the account just demanded a second factor,
		// so no session credential may survive.
		c.tokens.Clear(tokenstore.SlotSession)
		c.log.Info("login accepted, second factor required", "email", email)
		return StatePendingSecondFactor, nil
	}

	c.tokens.Set(tokenstore.SlotSession, resp.Token)
	c.tokens.Clear(tokenstore.SlotPendingChallenge)
	c.log.Info("login accepted", "email", email)
	return StateAuthenticated, nil
}

// SubmitSecondFactorCode submits a TOTP code, both to complete a pending
// login challenge and to confirm enrollment. A pending challenge token,
// when present, authorizes the call; otherwise the already-authenticated
// session does (enrollment is performed by a signed-in user). With neither
// credential available the submission fails fast with
// ErrNoPendingCredential before any network I/O.
//
// On success the returned token becomes the session credential and the
// pending slot is cleared. On failure the state is unchanged and the user
// may resubmit; attempt limits are the backend's concern.
func (c *Controller) SubmitSecondFactorCode(ctx context.Context, code string) (State, error) {
	epoch := c.currentEpoch()

	override, _ := c.tokens.Get(tokenstore.SlotPendingChallenge)
	if override == "" {
		// Enrollment confirmation: the signed-in session authorizes the
		// call. It is passed as the explicit override so a wrong code
		// cannot reach the global 401 fallback and tear down the session.
		session, ok := c.tokens.Get(tokenstore.SlotSession)
		if !ok {
			return StateAnonymous, ErrNoPendingCredential
		}
		override = session
	}

	resp, err := c.client.VerifyTwoFA(ctx, code, override)
	if err != nil {
		return c.State(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch {
		return ComputeState(c.tokens), ErrFlowReset
	}

	c.tokens.Set(tokenstore.SlotSession, resp.Token)
	c.tokens.Clear(tokenstore.SlotPendingChallenge)
	c.log.Info("second factor verified")
	return StateAuthenticated, nil
}

// BeginEnrollment starts second-factor enrollment for the signed-in user
// and returns the enrollment material for transient display. It does not
// change the authentication state.
func (c *Controller) BeginEnrollment(ctx context.Context) (*dashsdk.TwoFASetup, error) {
	if c.State() != StateAuthenticated {
		return nil, ErrNotAuthenticated
	}
	return c.client.EnableTwoFA(ctx)
}

// AbandonChallenge drops an unfinished second-factor challenge, as when the
// user navigates away from the verification screen. Any in-flight
// verification is invalidated.
func (c *Controller) AbandonChallenge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.tokens.Clear(tokenstore.SlotPendingChallenge)
	c.log.Debug("pending challenge abandoned")
}

// Logout clears both credential slots and forces the state to Anonymous.
// It is idempotent, and any in-flight login or verification response
// arriving afterwards is discarded rather than re-establishing a
// credential.
func (c *Controller) Logout() {
	c.reset("logout")
}

// HandleUnauthenticated is the global fallback for a rejected session
// credential. The dashsdk client invokes it whenever any call authorized by
// the stored session token returns 401, so one expired credential cannot
// leave the application in a signed-in-looking state where every call is
// rejected.
func (c *Controller) HandleUnauthenticated() {
	c.reset("session credential rejected")
}

func (c *Controller) reset(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.tokens.ClearAll()
	c.log.Info("credentials cleared, state anonymous", "reason", reason)
}

func (c *Controller) currentEpoch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch
}
