// Package storage provides SQLite-based persistence for solved levels.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
// It is safe for concurrent use.
type Store struct {
	db *sql.DB
}

// Solve is one record of a player reaching the win state on a level.
type Solve struct {
	ID        int64
	LevelID   string
	Player    string
	Duration  time.Duration // Wall-clock time from start to win
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Solves     int
	Players    int
	Best       time.Duration
	Average    time.Duration
	LastSolved time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// One connection: concurrent SSH sessions would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

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

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			player TEXT NOT NULL,
			duration_ms INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_level_id ON solves(level_id);
		CREATE INDEX IF NOT EXISTS idx_solves_fastest ON solves(level_id, duration_ms ASC);
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

// SaveSolve records that player solved the level in d.
// Returns the ID of the inserted record.
func (s *Store) SaveSolve(levelID, player string, d time.Duration) (int64, error) {
	if levelID == "" {
		return 0, fmt.Errorf("storage: cannot save solve: empty level id")
	}
	if d < 0 {
		return 0, fmt.Errorf("storage: cannot save solve: negative duration %v", d)
	}
	if player == "" {
		player = "anonymous"
	}

	result, err := s.db.Exec(
		"INSERT INTO solves (level_id, player, duration_ms) VALUES (?, ?, ?)",
		levelID, player, d.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// FastestSolves retrieves the N fastest solves of a level.
func (s *Store) FastestSolves(levelID string, limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, duration_ms, created_at
		 FROM solves
		 WHERE level_id = ?
		 ORDER BY duration_ms ASC, id ASC
		 LIMIT ?`,
		levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	return scanSolves(rows)
}

// RecentSolves retrieves the most recent solves across all levels.
func (s *Store) RecentSolves(limit int) ([]Solve, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, player, duration_ms, created_at
		 FROM solves
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent solves: %w", err)
	}
	return scanSolves(rows)
}

// BestTime returns the fastest solve duration for a level.
// The boolean is false when the level has never been solved.
func (s *Store) BestTime(levelID string) (time.Duration, bool, error) {
	var ms sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(duration_ms) FROM solves WHERE level_id = ?",
		levelID,
	).Scan(&ms)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best time: %w", err)
	}

	if !ms.Valid {
		return 0, false, nil
	}
	return time.Duration(ms.Int64) * time.Millisecond, true, nil
}

// LevelStats retrieves aggregated statistics for a level.
func (s *Store) LevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var best int64
	var avg float64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MIN(duration_ms), 0), COALESCE(AVG(duration_ms), 0)
		 FROM solves WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Solves, &stats.Players, &best, &avg)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.Best = time.Duration(best) * time.Millisecond
	stats.Average = time.Duration(avg * float64(time.Millisecond))

	var last any
	err = s.db.QueryRow(
		`SELECT created_at FROM solves WHERE level_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		levelID,
	).Scan(&last)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last solve: %w", err)
	}
	if err == nil {
		stats.LastSolved = parseTime(last)
	}

	return stats, nil
}

// ClearSolves deletes all solves for the given level.
func (s *Store) ClearSolves(levelID string) error {
	_, err := s.db.Exec("DELETE FROM solves WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

func scanSolves(rows *sql.Rows) ([]Solve, error) {
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		var sv Solve
		var ms int64
		var createdAt any
		if err := rows.Scan(&sv.ID, &sv.LevelID, &sv.Player, &ms, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sv.Duration = time.Duration(ms) * time.Millisecond
		sv.CreatedAt = parseTime(createdAt)
		solves = append(solves, sv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return solves, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
