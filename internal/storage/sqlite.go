// Package storage provides SQLite-based persistence for level runs.
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

// Outcome values stored for a run.
const (
	OutcomeWon       = "won"
	OutcomeLost      = "lost"
	OutcomeAbandoned = "abandoned"
)

// ErrNoRuns is returned when a level has no matching runs.
var ErrNoRuns = errors.New("storage: no runs")

// Store manages the SQLite database connection for run records.
type Store struct {
	db *sql.DB
}

// Run is one finished or abandoned attempt at a level.
type Run struct {
	ID          int64
	LevelID     string
	Outcome     string
	Ticks       uint64
	Fingerprint string // hex engine state hash at the end of the run
	CreatedAt   time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	Attempts   int
	Wins       int
	Losses     int
	Abandoned  int
	BestTicks  uint64 // fewest ticks among wins, 0 if never won
	LastPlayed time.Time
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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			level_id TEXT NOT NULL,
			outcome TEXT NOT NULL CHECK (outcome IN ('won', 'lost', 'abandoned')),
			ticks INTEGER NOT NULL,
			fingerprint TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, outcome, ticks);
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

// SaveRun records a run. Returns the ID of the inserted record.
func (s *Store) SaveRun(levelID, outcome string, ticks uint64, fingerprint uint64) (int64, error) {
	switch outcome {
	case OutcomeWon, OutcomeLost, OutcomeAbandoned:
	default:
		return 0, fmt.Errorf("storage: unknown outcome %q", outcome)
	}

	result, err := s.db.Exec(
		"INSERT INTO runs (level_id, outcome, ticks, fingerprint) VALUES (?, ?, ?, ?)",
		levelID, outcome, int64(ticks), fmt.Sprintf("%016x", fingerprint),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// BestRun returns the winning run with the fewest ticks for a level.
// Returns ErrNoRuns if the level has never been won.
func (s *Store) BestRun(levelID string) (Run, error) {
	row := s.db.QueryRow(
		`SELECT id, level_id, outcome, ticks, fingerprint, created_at
		 FROM runs
		 WHERE level_id = ? AND outcome = ?
		 ORDER BY ticks ASC, id ASC
		 LIMIT 1`,
		levelID, OutcomeWon,
	)

	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNoRuns
	}
	if err != nil {
		return Run{}, fmt.Errorf("storage: cannot query best run: %w", err)
	}
	return r, nil
}

// RecentRuns retrieves the latest runs for a level, newest first.
// An empty levelID returns runs of every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_id, outcome, ticks, fingerprint, created_at
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LevelStats retrieves aggregated statistics for a specific level.
// A level that was never played yields zero stats.
func (s *Store) LevelStats(levelID string) (LevelStats, error) {
	stats := LevelStats{LevelID: levelID}

	var best sql.NullInt64
	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        COALESCE(SUM(outcome = 'abandoned'), 0),
		        MIN(CASE WHEN outcome = 'won' THEN ticks END),
		        MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.Attempts, &stats.Wins, &stats.Losses, &stats.Abandoned, &best, &lastPlayed)
	if err != nil {
		return LevelStats{}, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	if best.Valid {
		stats.BestTicks = uint64(best.Int64)
	}
	stats.LastPlayed = parseTime(lastPlayed)
	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has been played.
func (s *Store) AllLevelStats() (map[string]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id,
		        COUNT(*),
		        SUM(outcome = 'won'),
		        SUM(outcome = 'lost'),
		        SUM(outcome = 'abandoned'),
		        MIN(CASE WHEN outcome = 'won' THEN ticks END),
		        MAX(created_at)
		 FROM runs
		 GROUP BY level_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]LevelStats)
	for rows.Next() {
		var st LevelStats
		var best sql.NullInt64
		var lastPlayed any
		if err := rows.Scan(&st.LevelID, &st.Attempts, &st.Wins, &st.Losses, &st.Abandoned, &best, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if best.Valid {
			st.BestTicks = uint64(best.Int64)
		}
		st.LastPlayed = parseTime(lastPlayed)
		stats[st.LevelID] = st
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearRuns deletes all runs for the given level.
// An empty levelID clears every level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR level_id = ?", levelID, levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var ticks int64
	var createdAt any
	if err := sc.Scan(&r.ID, &r.LevelID, &r.Outcome, &ticks, &r.Fingerprint, &createdAt); err != nil {
		return Run{}, err
	}
	r.Ticks = uint64(ticks)
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
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
