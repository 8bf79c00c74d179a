package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"pomotick/internal/core/model"

	_ "modernc.org/sqlite"
)

// Repository persists history entries in a SQLite database.
type Repository struct {
	db *sql.DB
}

// NewRepository opens (or creates) the database at the given path.
func NewRepository(path string) (*Repository, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping history database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.init(); err != nil {
		return nil, err
	}
	return repo, nil
}

// DefaultPath returns the history database location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, "history.db"), nil
}

func (repo *Repository) init() error {
	query := `
	CREATE TABLE IF NOT EXISTS sessions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		phase TEXT NOT NULL,
		started_at TEXT NOT NULL,
		ended_at TEXT NOT NULL,
		goal TEXT NOT NULL DEFAULT '',
		abandoned INTEGER NOT NULL DEFAULT 0
	)
	`
	if _, err := repo.db.Exec(query); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

// Insert stores an entry and fills in its ID.
func (repo *Repository) Insert(entry *Entry) error {
	abandoned := 0
	if entry.Abandoned {
		abandoned = 1
	}
	result, err := repo.db.Exec(
		"INSERT INTO sessions (phase, started_at, ended_at, goal, abandoned) VALUES (?, ?, ?, ?, ?)",
		string(entry.Phase),
		entry.StartedAt.Format(time.RFC3339),
		entry.EndedAt.Format(time.RFC3339),
		entry.Goal,
		abandoned,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert session id: %w", err)
	}
	entry.ID = id
	return nil
}

// Recent returns up to limit entries, newest first.
func (repo *Repository) Recent(limit int) ([]Entry, error) {
	rows, err := repo.db.Query(
		"SELECT id, phase, started_at, ended_at, goal, abandoned FROM sessions ORDER BY ended_at DESC, id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// All returns every entry, oldest first.
func (repo *Repository) All() ([]Entry, error) {
	rows, err := repo.db.Query(
		"SELECT id, phase, started_at, ended_at, goal, abandoned FROM sessions ORDER BY ended_at ASC, id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// CompletedWorkSince counts non-abandoned work sessions ending after cutoff.
func (repo *Repository) CompletedWorkSince(cutoff time.Time) (int, error) {
	var count int
	err := repo.db.QueryRow(
		"SELECT COUNT(*) FROM sessions WHERE phase = ? AND abandoned = 0 AND ended_at >= ?",
		string(model.PhaseWork),
		cutoff.Format(time.RFC3339),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count work sessions: %w", err)
	}
	return count, nil
}

// Close releases the database handle.
func (repo *Repository) Close() error {
	return repo.db.Close()
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var entry Entry
		var phase, startedAt, endedAt string
		var abandoned int
		if err := rows.Scan(&entry.ID, &phase, &startedAt, &endedAt, &entry.Goal, &abandoned); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		entry.Phase = model.Phase(phase)
		entry.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		entry.EndedAt, _ = time.Parse(time.RFC3339, endedAt)
		entry.Abandoned = abandoned == 1
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
