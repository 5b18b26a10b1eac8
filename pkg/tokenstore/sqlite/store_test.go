package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/ananidze/tradesync/pkg/tokenstore"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "credentials.db")
	s, err := NewStore(dsn, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, dsn
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)

	_, ok := s.Get(tokenstore.SlotSession)
	require.False(t, ok)

	s.Set(tokenstore.SlotSession, "T1")
	token, ok := s.Get(tokenstore.SlotSession)
	require.True(t, ok)
	require.Equal(t, "T1", token)

	s.Set(tokenstore.SlotSession, "T2")
	token, _ = s.Get(tokenstore.SlotSession)
	require.Equal(t, "T2", token)

	s.Clear(tokenstore.SlotSession)
	_, ok = s.Get(tokenstore.SlotSession)
	require.False(t, ok)
}

func TestPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	s, dsn := newTestStore(t)
	s.Set(tokenstore.SlotSession, "T1")
	s.Set(tokenstore.SlotPendingChallenge, "P1")
	require.NoError(t, s.Close())

	reopened, err := NewStore(dsn, nil)
	require.NoError(t, err)
	defer reopened.Close()

	token, ok := reopened.Get(tokenstore.SlotSession)
	require.True(t, ok)
	require.Equal(t, "T1", token)
	token, ok = reopened.Get(tokenstore.SlotPendingChallenge)
	require.True(t, ok)
	require.Equal(t, "P1", token)
}

func TestClearAll(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	s.Set(tokenstore.SlotSession, "T1")
	s.Set(tokenstore.SlotPendingChallenge, "P1")

	s.ClearAll()
	s.ClearAll() // idempotent

	_, ok := s.Get(tokenstore.SlotSession)
	require.False(t, ok)
	_, ok = s.Get(tokenstore.SlotPendingChallenge)
	require.False(t, ok)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s, dsn := newTestStore(t)
	require.NoError(t, s.Close())

	// Opening an already-migrated database applies nothing and succeeds.
	again, err := NewStore(dsn, nil)
	require.NoError(t, err)
	require.NoError(t, again.Close())
}
