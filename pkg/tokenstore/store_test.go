package tokenstore

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullStore(t *testing.T) {
	t.Parallel()

	var s Null

	// Writes are dropped, reads stay absent.
	s.Set(SlotSession, "T1")
	token, ok := s.Get(SlotSession)
	require.False(t, ok)
	require.Empty(t, token)

	// Clearing never set slots is harmless.
	s.Clear(SlotPendingChallenge)
	s.ClearAll()

	_, ok = s.Get(SlotPendingChallenge)
	require.False(t, ok)
}

func TestSlotKeysMatchBrowserStorage(t *testing.T) {
	t.Parallel()

	// The persisted keys are shared with the web dashboard's browser
	// storage; changing them silently orphans existing sessions.
	require.Equal(t, Slot("trade-sync-token"), SlotSession)
	require.Equal(t, Slot("trade-sync-pending-token"), SlotPendingChallenge)
}
