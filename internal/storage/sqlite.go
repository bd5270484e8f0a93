// Package storage provides SQLite-based persistence for finished match results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-spacewar/internal/core"
)

// Store manages the SQLite database connection for the match ledger.
type Store struct {
	db *sql.DB
}

// MatchResult is the recorded outcome of one finished match.
type MatchResult struct {
	ID            int64
	GameID        string
	Winner        core.PlayerID // PlayerNone for a draw
	DurationTicks uint64
	TickRate      int
	Stats         [2]core.PlayerStats
	CreatedAt     time.Time
}

// Duration returns the simulated match length.
func (r MatchResult) Duration() time.Duration {
	if r.TickRate <= 0 {
		return 0
	}
	return time.Duration(r.DurationTicks) * time.Second / time.Duration(r.TickRate)
}

// MatchFromState builds a ledger entry from the final state of a match.
func MatchFromState(gameID string, state core.GameState, tickRate int) MatchResult {
	return MatchResult{
		GameID:        gameID,
		Winner:        state.Winner,
		DurationTicks: state.Tick,
		TickRate:      tickRate,
		Stats:         state.Stats,
	}
}

// WinCount aggregates results per winner.
type WinCount struct {
	Winner  core.PlayerID
	Matches int
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			winner INTEGER NOT NULL DEFAULT 0,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			tick_rate INTEGER NOT NULL DEFAULT 60,
			p1_torpedoes INTEGER NOT NULL DEFAULT 0,
			p1_phasers INTEGER NOT NULL DEFAULT 0,
			p1_hits INTEGER NOT NULL DEFAULT 0,
			p2_torpedoes INTEGER NOT NULL DEFAULT 0,
			p2_phasers INTEGER NOT NULL DEFAULT 0,
			p2_hits INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(r MatchResult) (int64, error) {
	p1, p2 := r.Stats[0], r.Stats[1]
	result, err := s.db.Exec(
		`INSERT INTO matches
		 (game_id, winner, duration_ticks, tick_rate,
		  p1_torpedoes, p1_phasers, p1_hits, p2_torpedoes, p2_phasers, p2_hits)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, int(r.Winner), int64(r.DurationTicks), r.TickRate,
		p1.TorpedoesFired, p1.PhasersFired, p1.Hits,
		p2.TorpedoesFired, p2.PhasersFired, p2.Hits,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches for the given game,
// newest first.
func (s *Store) RecentMatches(gameID string, limit int) ([]MatchResult, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, winner, duration_ticks, tick_rate,
		        p1_torpedoes, p1_phasers, p1_hits, p2_torpedoes, p2_phasers, p2_hits,
		        created_at
		 FROM matches
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var results []MatchResult
	for rows.Next() {
		var r MatchResult
		var winner int
		var ticks int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&winner,
			&ticks,
			&r.TickRate,
			&r.Stats[0].TorpedoesFired,
			&r.Stats[0].PhasersFired,
			&r.Stats[0].Hits,
			&r.Stats[1].TorpedoesFired,
			&r.Stats[1].PhasersFired,
			&r.Stats[1].Hits,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Winner = core.PlayerID(winner)
		r.DurationTicks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// WinCounts returns how many matches of the given game each side won.
// Draws are reported under PlayerNone.
func (s *Store) WinCounts(gameID string) ([]WinCount, error) {
	rows, err := s.db.Query(
		`SELECT winner, COUNT(*)
		 FROM matches
		 WHERE game_id = ?
		 GROUP BY winner
		 ORDER BY winner`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	var counts []WinCount
	for rows.Next() {
		var winner int
		var c WinCount
		if err := rows.Scan(&winner, &c.Matches); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.Winner = core.PlayerID(winner)
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}

// ClearMatches deletes all recorded matches for the given game.
func (s *Store) ClearMatches(gameID string) error {
	_, err := s.db.Exec("DELETE FROM matches WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
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
