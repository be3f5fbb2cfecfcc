// ABOUTME: SQLite-backed session store for durable conversations
// ABOUTME: Uses modernc.org/sqlite with WAL mode; persona and turns stored as JSON
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite"

	"github.com/harper/chef-pipeline/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
    id TEXT PRIMARY KEY,
    persona TEXT NOT NULL,
    turns TEXT,
    created_at DATETIME NOT NULL,
    last_accessed DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_last_accessed ON sessions(last_accessed);
`

// SQLiteStore persists sessions to a local SQLite database
type SQLiteStore struct {
	db  *sql.DB
	ttl time.Duration
}

// DefaultDBPath returns the default database file path following XDG
func DefaultDBPath() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "chef-pipeline", "sessions.db")
}

// NewSQLiteStore opens or creates the sessions database at path.
// Sessions idle longer than ttl are pruned opportunistically on writes.
func NewSQLiteStore(path string, ttl time.Duration) (*SQLiteStore, error) {
	if path == "" {
		path = DefaultDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStore{db: db, ttl: ttl}, nil
}

// Get loads a session by ID, or returns nil if absent
func (s *SQLiteStore) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT persona, turns, created_at, last_accessed FROM sessions WHERE id = ?`, sessionID)

	var personaJSON, turnsJSON string
	var createdAt, lastAccessed time.Time
	if err := row.Scan(&personaJSON, &turnsJSON, &createdAt, &lastAccessed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess := &models.Session{
		SessionID:    sessionID,
		CreatedAt:    createdAt,
		LastAccessed: lastAccessed,
	}
	if err := json.Unmarshal([]byte(personaJSON), &sess.Persona); err != nil {
		return nil, fmt.Errorf("failed to decode persona: %w", err)
	}
	if turnsJSON != "" {
		if err := json.Unmarshal([]byte(turnsJSON), &sess.Turns); err != nil {
			return nil, fmt.Errorf("failed to decode turns: %w", err)
		}
	}
	sess.Persona.Clamp()
	return sess, nil
}

// Put upserts the session and prunes stale rows
func (s *SQLiteStore) Put(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.SessionID == "" {
		return fmt.Errorf("session with empty ID cannot be stored")
	}

	personaJSON, err := json.Marshal(sess.Persona)
	if err != nil {
		return fmt.Errorf("failed to encode persona: %w", err)
	}
	turnsJSON, err := json.Marshal(sess.Turns)
	if err != nil {
		return fmt.Errorf("failed to encode turns: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, persona, turns, created_at, last_accessed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			persona = excluded.persona,
			turns = excluded.turns,
			last_accessed = excluded.last_accessed`,
		sess.SessionID, string(personaJSON), string(turnsJSON),
		sess.CreatedAt.UTC(), sess.LastAccessed.UTC())
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	if s.ttl > 0 {
		s.pruneStale(ctx)
	}
	return nil
}

// pruneStale deletes sessions idle longer than the TTL. Errors are
// ignored: pruning is best-effort housekeeping.
func (s *SQLiteStore) pruneStale(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.ttl)
	_, _ = s.db.ExecContext(ctx, `DELETE FROM sessions WHERE last_accessed < ?`, cutoff)
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
