// Package cache provides the local SQLite cache used for offline browsing
// of previously fetched listings and trips.
package cache

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultPath returns the default cache path: ~/.househunt/cache.db
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".househunt", "cache.db"), nil
}

// Open opens (or creates) the cache database at the given path, enables WAL
// mode and foreign keys, and runs migrations.
func Open(path string) (*sql.DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if err := configure(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("%w (also failed to close: %v)", err, closeErr)
		}
		return nil, err
	}

	if err := migrate(db); err != nil {
		closeErr := db.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("running migrations: %w (also failed to close: %v)", err, closeErr)
		}
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

// configure sets SQLite pragmas for WAL mode and foreign keys.
func configure(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	}

	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("executing %s: %w", p, err)
		}
	}

	return nil
}

// migrations is an ordered list of SQL statements to run.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS listings (
		id          TEXT NOT NULL,
		query       TEXT NOT NULL,
		creator_id  TEXT NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		city        TEXT NOT NULL DEFAULT '',
		province    TEXT NOT NULL DEFAULT '',
		country     TEXT NOT NULL DEFAULT '',
		category    TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL DEFAULT '',
		price       REAL NOT NULL,
		photo_paths TEXT NOT NULL DEFAULT '[]',
		fetched_at  DATETIME DEFAULT CURRENT_TIMESTAMP,
		PRIMARY KEY (id, query)
	)`,
	`CREATE TABLE IF NOT EXISTS trips (
		id          TEXT PRIMARY KEY,
		listing_id  TEXT NOT NULL,
		title       TEXT NOT NULL DEFAULT '',
		start_date  TEXT NOT NULL,
		end_date    TEXT NOT NULL,
		total_price REAL NOT NULL,
		fetched_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
}

// migrate runs all migrations in order.
func migrate(db *sql.DB) error {
	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
