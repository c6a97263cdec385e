// Package sqlite implements the storage interfaces over a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/voidwatch/crewdeck/internal/platform/storage/sqlitemigrate"
	sessiondomain "github.com/voidwatch/crewdeck/internal/session/domain"
	"github.com/voidwatch/crewdeck/internal/storage"
	"github.com/voidwatch/crewdeck/internal/storage/sqlite/migrations"
	"github.com/voidwatch/crewdeck/internal/tables"
	_ "modernc.org/sqlite"
)

// toMillis normalizes timestamps into millisecond precision for storage.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis restores millisecond precision and keeps UTC normalization.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store implements session persistence over SQLite.
//
// A single SQLite file backs both the session snapshots and the roll log so
// a session and its history share the same transaction boundaries.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a session SQLite store and applies bundled migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}

	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store, nil
}

// Close releases the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession persists the full session aggregate as a JSON snapshot.
func (s *Store) PutSession(ctx context.Context, session sessiondomain.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(session.ID) == "" {
		return fmt.Errorf("session id is required")
	}

	snapshot, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	_, err = s.sqlDB.ExecContext(ctx, `
INSERT INTO sessions (id, name, snapshot, created_at, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT (id) DO UPDATE SET
    name = excluded.name,
    snapshot = excluded.snapshot,
    updated_at = excluded.updated_at;
`, session.ID, session.Name, string(snapshot), toMillis(session.CreatedAt), toMillis(session.UpdatedAt))
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession fetches a session aggregate by ID.
func (s *Store) GetSession(ctx context.Context, id string) (sessiondomain.Session, error) {
	if err := ctx.Err(); err != nil {
		return sessiondomain.Session{}, err
	}
	if s == nil || s.sqlDB == nil {
		return sessiondomain.Session{}, fmt.Errorf("storage is not configured")
	}

	var snapshot string
	row := s.sqlDB.QueryRowContext(ctx, `SELECT snapshot FROM sessions WHERE id = ?`, id)
	if err := row.Scan(&snapshot); err != nil {
		if err == sql.ErrNoRows {
			return sessiondomain.Session{}, storage.ErrNotFound
		}
		return sessiondomain.Session{}, fmt.Errorf("get session: %w", err)
	}

	var session sessiondomain.Session
	if err := json.Unmarshal([]byte(snapshot), &session); err != nil {
		return sessiondomain.Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return session, nil
}

// AppendRollEvent appends a roll event and prunes rows beyond the in-memory
// log cap, mirroring the aggregate's FIFO eviction.
func (s *Store) AppendRollEvent(ctx context.Context, sessionID string, event sessiondomain.RollEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return fmt.Errorf("session id is required")
	}
	if strings.TrimSpace(event.ID) == "" {
		return fmt.Errorf("event id is required")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
INSERT INTO roll_events (
    event_id, session_id, member_id, member_name, table_type,
    die, stress, resolve, modifiers, total, seed,
    entry_id, entry_label, duplicate_adjusted, timestamp
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
`,
		event.ID, sessionID, event.MemberID, event.MemberName, string(event.Table),
		event.Die, event.Stress, event.Resolve, event.Modifiers, event.Total, event.Seed,
		event.EntryID, event.EntryLabel, boolToInt(event.DuplicateAdjusted), toMillis(event.Timestamp),
	); err != nil {
		return fmt.Errorf("append roll event: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
DELETE FROM roll_events
WHERE session_id = ?
  AND rowid NOT IN (
      SELECT rowid FROM roll_events
      WHERE session_id = ?
      ORDER BY rowid DESC
      LIMIT ?
  );
`, sessionID, sessionID, sessiondomain.RollLogCap); err != nil {
		return fmt.Errorf("prune roll events: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit roll event: %w", err)
	}
	return nil
}

// ListRollEvents returns up to limit recent roll events in chronological
// order. A non-positive limit returns up to the log cap.
func (s *Store) ListRollEvents(ctx context.Context, sessionID string, limit int) ([]sessiondomain.RollEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 || limit > sessiondomain.RollLogCap {
		limit = sessiondomain.RollLogCap
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT event_id, member_id, member_name, table_type,
       die, stress, resolve, modifiers, total, seed,
       entry_id, entry_label, duplicate_adjusted, timestamp
FROM (
    SELECT rowid AS rid, * FROM roll_events
    WHERE session_id = ?
    ORDER BY rowid DESC
    LIMIT ?
)
ORDER BY rid ASC;
`, sessionID, limit)
	if err != nil {
		return nil, fmt.Errorf("list roll events: %w", err)
	}
	defer rows.Close()

	var events []sessiondomain.RollEvent
	for rows.Next() {
		var event sessiondomain.RollEvent
		var tableType string
		var duplicateAdjusted int
		var timestamp int64
		if err := rows.Scan(
			&event.ID, &event.MemberID, &event.MemberName, &tableType,
			&event.Die, &event.Stress, &event.Resolve, &event.Modifiers, &event.Total, &event.Seed,
			&event.EntryID, &event.EntryLabel, &duplicateAdjusted, &timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan roll event: %w", err)
		}
		event.Table = tables.Type(tableType)
		event.DuplicateAdjusted = duplicateAdjusted != 0
		event.Timestamp = fromMillis(timestamp)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate roll events: %w", err)
	}
	return events, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}

// Ensure Store implements the storage interfaces.
var (
	_ storage.SessionStore = (*Store)(nil)
	_ storage.RollLogStore = (*Store)(nil)
)
