// Package history records preview sessions in a local SQLite database.
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/glintlabs/glint/internal/log"
)

// schema is applied on every Open; idempotent by construction.
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	started_at  TEXT NOT NULL,
	source      TEXT NOT NULL,
	language    TEXT NOT NULL,
	theme       TEXT NOT NULL,
	bytes       INTEGER NOT NULL,
	span_count  INTEGER NOT NULL,
	duration_us INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_started_at ON sessions(started_at DESC);
`

// Session is one recorded preview run.
type Session struct {
	ID        string
	StartedAt time.Time
	Source    string // snippet or file name shown in the preview
	Language  string
	Theme     string
	Bytes     int
	SpanCount int
	Duration  time.Duration
}

// Store provides access to the session history database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the history database at path and applies
// the schema.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	log.Debug(log.CatDB, "Opening history database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open history database", err, "path", path)
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	// Verify connection works
	if err := db.Ping(); err != nil {
		log.ErrorErr(log.CatDB, "Failed to ping history database", err, "path", path)
		_ = db.Close()
		return nil, fmt.Errorf("pinging history database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		log.ErrorErr(log.CatDB, "Failed to apply history schema", err, "path", path)
		_ = db.Close()
		return nil, fmt.Errorf("applying history schema: %w", err)
	}

	log.Info(log.CatDB, "Connected to history database", "path", path)
	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a session row. A missing ID gets a fresh uuid and a zero
// StartedAt gets the current time; the stored session is returned.
func (s *Store) Record(sess Session) (Session, error) {
	if sess.ID == "" {
		sess.ID = uuid.NewString()
	}
	if sess.StartedAt.IsZero() {
		sess.StartedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(`
		INSERT INTO sessions (id, started_at, source, language, theme, bytes, span_count, duration_us)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		sess.StartedAt.UTC().Format(time.RFC3339Nano),
		sess.Source,
		sess.Language,
		sess.Theme,
		sess.Bytes,
		sess.SpanCount,
		sess.Duration.Microseconds(),
	)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to record session", err, "id", sess.ID)
		return Session{}, fmt.Errorf("recording session: %w", err)
	}

	log.Debug(log.CatDB, "Recorded session",
		"id", sess.ID, "source", sess.Source, "language", sess.Language, "spans", sess.SpanCount)
	return sess, nil
}

// Recent returns the most recent sessions, newest first.
func (s *Store) Recent(n int) ([]Session, error) {
	if n <= 0 {
		return []Session{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, started_at, source, language, theme, bytes, span_count, duration_us
		FROM sessions
		ORDER BY started_at DESC
		LIMIT ?`, n)
	if err != nil {
		log.ErrorErr(log.CatDB, "Recent query failed", err, "limit", n)
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedAt string
		var durationUS int64
		if err := rows.Scan(
			&sess.ID, &startedAt, &sess.Source, &sess.Language,
			&sess.Theme, &sess.Bytes, &sess.SpanCount, &durationUS,
		); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing session timestamp %q: %w", startedAt, err)
		}
		sess.StartedAt = ts
		sess.Duration = time.Duration(durationUS) * time.Microsecond
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating sessions: %w", err)
	}

	return sessions, nil
}

// Count returns the number of recorded sessions.
func (s *Store) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM sessions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting sessions: %w", err)
	}
	return count, nil
}
