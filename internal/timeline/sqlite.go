package timeline

import (
	"database/sql"
	"fmt"

	"github.com/spectra-hq/spectra/go-client/internal/state"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS timeline_entries (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	t           INTEGER NOT NULL,
	phase       TEXT NOT NULL,
	stress      REAL NOT NULL,
	focus       REAL NOT NULL,
	adaptation  TEXT
);

CREATE INDEX IF NOT EXISTS idx_timeline_session ON timeline_entries(session_id, id);
`

// #endregion schema

// #region sqlite-store

// SQLiteStore persists session timelines in SQLite. The autoincrement row id
// preserves arrival order regardless of sensor timestamps.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a timeline database and runs migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// #endregion sqlite-store

// #region store-ops

// Append inserts an entry at the end of the session's timeline.
func (s *SQLiteStore) Append(sessionID string, entry Entry) error {
	var adaptation interface{}
	if entry.Adaptation != nil {
		adaptation = *entry.Adaptation
	}
	_, err := s.db.Exec(
		`INSERT INTO timeline_entries (session_id, t, phase, stress, focus, adaptation)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		sessionID, entry.T, string(entry.Phase), entry.Stress, entry.Focus, adaptation,
	)
	if err != nil {
		return fmt.Errorf("append entry: %w", err)
	}
	return nil
}

// ReadAll returns the session's timeline ordered by insertion.
func (s *SQLiteStore) ReadAll(sessionID string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT t, phase, stress, focus, adaptation
		 FROM timeline_entries WHERE session_id = ? ORDER BY id`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var phase string
		var adaptation sql.NullString
		if err := rows.Scan(&e.T, &phase, &e.Stress, &e.Focus, &adaptation); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		e.Phase = state.Phase(phase)
		if adaptation.Valid {
			v := adaptation.String
			e.Adaptation = &v
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Reset deletes the session's timeline.
func (s *SQLiteStore) Reset(sessionID string) error {
	if _, err := s.db.Exec(`DELETE FROM timeline_entries WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("reset timeline: %w", err)
	}
	return nil
}

// #endregion store-ops
