// Package storage provides SQLite-based persistence for game results and
// small namespaced preferences such as the high score.
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

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
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

	// Test connection
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
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(score DESC);

		CREATE TABLE IF NOT EXISTS prefs (
			namespace TEXT NOT NULL,
			pref_key TEXT NOT NULL,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (namespace, pref_key)
		);
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

// parseTimestamp handles both time.Time and the string forms SQLite returns.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

// GetInt returns the integer stored under (namespace, key), or def when the
// key has never been written.
func (s *Store) GetInt(namespace, key string, def int) (int, error) {
	var v int
	err := s.db.QueryRow(
		"SELECT value FROM prefs WHERE namespace = ? AND pref_key = ?",
		namespace, key,
	).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read %s/%s: %w", namespace, key, err)
	}
	return v, nil
}

// PutInt stores value under (namespace, key), replacing any previous value.
func (s *Store) PutInt(namespace, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO prefs (namespace, pref_key, value) VALUES (?, ?, ?)
		 ON CONFLICT (namespace, pref_key)
		 DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		namespace, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %s/%s: %w", namespace, key, err)
	}
	return nil
}

// DeletePrefs removes every key in a namespace.
func (s *Store) DeletePrefs(namespace string) error {
	if _, err := s.db.Exec("DELETE FROM prefs WHERE namespace = ?", namespace); err != nil {
		return fmt.Errorf("storage: cannot clear %s: %w", namespace, err)
	}
	return nil
}

// Prefs is a view of one preferences namespace.
type Prefs struct {
	store     *Store
	namespace string
}

// Prefs returns a view scoped to namespace.
func (s *Store) Prefs(namespace string) *Prefs {
	return &Prefs{store: s, namespace: namespace}
}

// GetInt returns the value of key, or def when unset.
func (p *Prefs) GetInt(key string, def int) (int, error) {
	return p.store.GetInt(p.namespace, key, def)
}

// PutInt stores value under key.
func (p *Prefs) PutInt(key string, value int) error {
	return p.store.PutInt(p.namespace, key, value)
}

// Namespace returns the view's namespace.
func (p *Prefs) Namespace() string {
	return p.namespace
}
