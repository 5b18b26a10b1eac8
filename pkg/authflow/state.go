package authflow

import "github.com/ananidze/tradesync/pkg/tokenstore"

// State is the three-valued authentication status of the session. It is
// computed from the token store, never persisted as its own value.
type State int

const (
	StateAnonymous State = iota
	StatePendingSecondFactor
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StatePendingSecondFactor:
		return "pending_second_factor"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// ComputeState derives the authentication state from the store's slots.
// Precedence is a hard invariant enforced here, not at write time: a full
// session supersedes an incomplete challenge, so if both slots are somehow
// populated the state is Authenticated.
func ComputeState(tokens tokenstore.Store) State {
	if _, ok := tokens.Get(tokenstore.SlotSession); ok {
		return StateAuthenticated
	}
	if _, ok := tokens.Get(tokenstore.SlotPendingChallenge); ok {
		return StatePendingSecondFactor
	}
	return StateAnonymous
}
