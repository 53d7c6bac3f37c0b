// Package storage provides SQLite-based persistence for game replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vselivanov/blockfall/internal/replay"
)

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplaySummary is the listing row for a saved replay: the metadata
// columns without the event log.
type ReplaySummary struct {
	ID        int64
	GameID    string
	Seed      int64
	TickRate  int
	Ticks     uint64
	Score     int
	Level     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL DEFAULT 0,
			level INTEGER NOT NULL DEFAULT 1,
			events TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_game_id ON replays(game_id);
		CREATE INDEX IF NOT EXISTS idx_replays_recent ON replays(game_id, created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay persists a finished recording. The event log is stored as
// YAML in a single column; the reproduction inputs (seed, tick rate) and
// the outcome go into queryable columns.
// Returns the ID of the inserted record.
func (s *Store) SaveReplay(rec replay.Recording) (int64, error) {
	events, err := replay.EncodeEvents(rec.Events)
	if err != nil {
		return 0, fmt.Errorf("storage: %w", err)
	}

	result, err := s.db.Exec(
		`INSERT INTO replays (game_id, seed, tick_rate, ticks, score, level, events)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Seed, rec.TickRate, rec.Ticks, rec.Score, rec.Level, string(events),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentReplays retrieves the most recent replays for the given game,
// newest first. An empty gameID lists replays across all games.
func (s *Store) RecentReplays(gameID string, limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT id, game_id, seed, tick_rate, ticks, score, level, created_at
		 FROM replays`
	args := []any{}
	if gameID != "" {
		query += ` WHERE game_id = ?`
		args = append(args, gameID)
	}
	query += ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var summaries []ReplaySummary
	for rows.Next() {
		var r ReplaySummary
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Seed, &r.TickRate, &r.Ticks, &r.Score, &r.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		summaries = append(summaries, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return summaries, nil
}

// GetReplay loads a full replay, event log included, by its record ID.
// Returns nil when no replay with that ID exists.
func (s *Store) GetReplay(id int64) (*replay.Recording, error) {
	var rec replay.Recording
	var events string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT game_id, seed, tick_rate, ticks, score, level, events, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&rec.GameID, &rec.Seed, &rec.TickRate, &rec.Ticks, &rec.Score, &rec.Level, &events, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	rec.Events, err = replay.DecodeEvents([]byte(events))
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	rec.CreatedAt = parseTimestamp(createdAt)

	return &rec, nil
}

// DeleteReplay removes a saved replay by its record ID.
func (s *Store) DeleteReplay(id int64) error {
	if _, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id); err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	return nil
}

// ClearReplays deletes all replays for the given game.
func (s *Store) ClearReplays(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM replays WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear replays: %w", err)
	}
	return nil
}

// parseTimestamp handles the datetime column, which the driver may return
// as time.Time or as a string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
