package tokenstore

// Slot names a credential slot. The string value is the persisted key, kept
// identical to the keys the web dashboard used in browser storage so a token
// written by either client is visible to the other tooling.
type Slot string

const (
	// SlotSession holds the fully authenticated session token.
	SlotSession Slot = "trade-sync-token"

	// SlotPendingChallenge holds the provisional token issued after a
	// password login that still requires a second-factor code. It is never
	// valid for data requests.
	SlotPendingChallenge Slot = "trade-sync-pending-token"
)

// Store is durable key/value persistence for the two credential slots.
//
// Implementations are synchronous and never fail through this interface:
// Get on an unset slot reports absent, and a driver whose medium is
// unavailable degrades to dropping writes and reading absent (see Null).
type Store interface {
	// Get returns the token in the slot and whether it is set.
	Get(slot Slot) (string, bool)

	// Set stores the token in the slot, replacing any previous value.
	Set(slot Slot, token string)

	// Clear removes the slot. Clearing an unset slot is a no-op.
	Clear(slot Slot)

	// ClearAll removes both credential slots.
	ClearAll()
}

// Null is a Store backed by nothing: reads are absent and writes are
// dropped. It stands in when the persistence medium is unavailable so that
// callers can run the same logic before the environment is ready.
type Null struct{}

func (Null) Get(Slot) (string, bool) { return "", false }
func (Null) Set(Slot, string)        {}
func (Null) Clear(Slot)              {}
func (Null) ClearAll()               {}
