// internal/store/sqlite.go
//
// SQLite-backed SolutionCache.
// Responsibilities:
//   - Opening the database with safe defaults (WAL, busy timeout, foreign keys).
//   - Applying the embedded sql/*.sql migrations (idempotent, recorded in _migrations).
//   - Storing solved word lists as newline-joined text.

package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

//go:embed sql/*.sql
var migrations embed.FS

// SQLiteCache is a SolutionCache stored in a SQLite database.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (creating if missing) the database at dsn and
// applies migrations.
func OpenSQLiteCache(dsn string) (*SQLiteCache, error) {
	db, err := openDB(dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteCache{db: db}, nil
}

// Close releases the database handle.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Get loads a cached solution.
func (c *SQLiteCache) Get(ctx context.Context, key string) (*Solution, error) {
	var (
		s       Solution
		words   string
		created string
	)
	err := c.db.QueryRowContext(ctx, `
        SELECT key, dictionary, max_word_length, board, words, created_at
        FROM solutions WHERE key=?`, key,
	).Scan(&s.Key, &s.Dictionary, &s.MaxWordLength, &s.Board, &words, &created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query solution: %w", err)
	}
	if words != "" {
		s.Words = strings.Split(words, "\n")
	}
	s.CreatedAt, _ = time.Parse(time.RFC3339, created)
	return &s, nil
}

// Put inserts or replaces a solution.
func (c *SQLiteCache) Put(ctx context.Context, s *Solution) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	_, err := c.db.ExecContext(ctx, `
        INSERT OR REPLACE INTO solutions
            (key, dictionary, max_word_length, board, words, created_at)
        VALUES (?, ?, ?, ?, ?, ?)`,
		s.Key, s.Dictionary, s.MaxWordLength, s.Board,
		strings.Join(s.Words, "\n"), s.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("insert solution: %w", err)
	}
	return nil
}

// Purge deletes every solution computed with dictionary.
func (c *SQLiteCache) Purge(ctx context.Context, dictionary string) error {
	if _, err := c.db.ExecContext(ctx, `DELETE FROM solutions WHERE dictionary=?`, dictionary); err != nil {
		return fmt.Errorf("purge solutions: %w", err)
	}
	return nil
}

// openDB opens (and creates if missing) a SQLite database file.
//
// - Ensures parent directory exists for relative DSNs (e.g. ./data/cache.db).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the embedded migrations in lexical order.
//
// - Uses a _migrations table to track applied files.
// - Each file runs inside its own transaction together with its record.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}

		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(string(sqlBytes)); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("apply %s: %w", f, err)
		}
		if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, f); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("record %s: %w", f, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit %s: %w", f, err)
		}
		log.Info().Str("migration", f).Msg("applied")
	}
	return nil
}
