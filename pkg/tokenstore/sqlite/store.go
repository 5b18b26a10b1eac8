// Package sqlite provides the durable tokenstore.Store driver, a single
// key/value table in a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/ananidze/tradesync/pkg/tokenstore"

	_ "modernc.org/sqlite"
)

// Store persists credential slots in a SQLite database. Driver errors never
// escape through the tokenstore.Store interface: a failed read reports
// absent and a failed write is dropped, both logged, so callers see the
// same degraded behavior as tokenstore.Null when the medium misbehaves.
type Store struct {
	db  *sql.DB
	log *slog.Logger
	dsn string
}

// NewStore opens (creating if needed) the credentials database at dsn and
// applies any pending schema migrations. A nil logger falls back to
// slog.Default.
func NewStore(dsn string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// Serialize writers; the CLI may hold the store open across commands.
	if _, err := db.ExecContext(context.Background(), `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	s := &Store{db: db, log: logger, dsn: dsn}
	if err := s.applyMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Get(slot tokenstore.Slot) (string, bool) {
	var token string
	err := s.db.QueryRow(
		`SELECT token FROM credential_slots WHERE slot = ?`, string(slot),
	).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false
	}
	if err != nil {
		s.log.Warn("token store read failed, treating slot as absent",
			"slot", string(slot), "error", err)
		return "", false
	}
	return token, true
}

func (s *Store) Set(slot tokenstore.Slot, token string) {
	_, err := s.db.Exec(
		`INSERT INTO credential_slots (slot, token, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (slot) DO UPDATE SET
		   token = excluded.token,
		   updated_at = excluded.updated_at`,
		string(slot), token,
	)
	if err != nil {
		s.log.Warn("token store write dropped", "slot", string(slot), "error", err)
	}
}

func (s *Store) Clear(slot tokenstore.Slot) {
	_, err := s.db.Exec(`DELETE FROM credential_slots WHERE slot = ?`, string(slot))
	if err != nil {
		s.log.Warn("token store clear dropped", "slot", string(slot), "error", err)
	}
}

func (s *Store) ClearAll() {
	s.Clear(tokenstore.SlotSession)
	s.Clear(tokenstore.SlotPendingChallenge)
}
