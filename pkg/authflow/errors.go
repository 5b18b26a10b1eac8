package authflow

import "errors"

var (
	// ErrNoPendingCredential reports a second-factor submission with no
	// pending challenge token and no authenticated session to authorize
	// it. This is a caller contract violation; the controller fails fast
	// without touching the network.
	ErrNoPendingCredential = errors.New("authflow: no pending challenge credential")

	// ErrNotAuthenticated reports an operation that requires a signed-in
	// session, such as beginning second-factor enrollment.
	ErrNotAuthenticated = errors.New("authflow: not authenticated")

	// ErrFlowReset reports that the controller was reset (logout or forced
	// credential drop) while a call was in flight; the late response was
	// discarded and no credential was persisted.
	ErrFlowReset = errors.New("authflow: flow reset while request in flight")
)
