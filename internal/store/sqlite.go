package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/benbeisheim/mastermind-backend/internal/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS room_states (
	room_id    TEXT PRIMARY KEY,
	state      TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);`

// SQLite is the durable Store. One row per room holding the JSON-serialized
// GameState, including the secret code.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (creating if missing) the snapshot database at path, with
// WAL journaling and a busy timeout so concurrent room saves do not fail on
// lock contention.
func NewSQLite(ctx context.Context, path string) (*SQLite, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Save(ctx context.Context, roomID string, state *model.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	q := `
	INSERT OR REPLACE INTO room_states (room_id, state, updated_at)
	VALUES (?, ?, ?);
	`
	if _, err := s.db.ExecContext(ctx, q, roomID, string(data), time.Now().UTC()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (s *SQLite) Load(ctx context.Context, roomID string) (*model.GameState, error) {
	q := `SELECT state FROM room_states WHERE room_id = ?;`

	var data string
	if err := s.db.QueryRowContext(ctx, q, roomID).Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var state model.GameState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, fmt.Errorf("unmarshal state: %w", err)
	}
	return &state, nil
}

func (s *SQLite) Close(ctx context.Context) error {
	return s.db.Close()
}
