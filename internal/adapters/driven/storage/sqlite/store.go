package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Database file name within the cache directory.
const dbFileName = "caches.db"

// Cache names recorded in cache_meta.
const (
	cacheColors = "colors"
	cacheUsage  = "usage"
)

// Store is a SQLite-based storage that provides access to
// the cache store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore opens (creating if needed) the cache database in dataDir.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("%w: cache directory is required", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFileName)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// ColorCacheStore returns a ColorCacheStore interface backed by this store.
func (s *Store) ColorCacheStore() driven.ColorCacheStore {
	return &colorCacheStore{store: s}
}

// UsageCacheStore returns a UsageCacheStore interface backed by this store.
func (s *Store) UsageCacheStore() driven.UsageCacheStore {
	return &usageCacheStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// replaceCache clears table, inserts rows through insert and stamps cache_meta,
// all in one transaction.
func (s *Store) replaceCache(
	ctx context.Context,
	name, table, insertSQL string,
	count int,
	insert func(stmt *sql.Stmt) error,
) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clearing %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSQL)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	if err := insert(stmt); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO cache_meta (name, entries, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			entries = excluded.entries,
			updated_at = excluded.updated_at
	`, name, count, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("updating cache metadata: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// cacheWritten reports whether the named cache has ever been saved.
func (s *Store) cacheWritten(ctx context.Context, name string) (bool, error) {
	var entries int
	err := s.db.QueryRowContext(ctx, "SELECT entries FROM cache_meta WHERE name = ?", name).Scan(&entries)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading cache metadata: %w", err)
	}
	return true, nil
}

// ==================== Color Cache ====================

// colorCacheStore implements driven.ColorCacheStore.
type colorCacheStore struct {
	store *Store
}

var _ driven.ColorCacheStore = (*colorCacheStore)(nil)

// SaveColors replaces the cached classifications.
func (s *colorCacheStore) SaveColors(ctx context.Context, entries []domain.ColorEntry) error {
	return s.store.replaceCache(ctx, cacheColors, "color_cache", `
		INSERT INTO color_cache (glyph, color, run_id)
		VALUES (?, ?, ?)
		ON CONFLICT(glyph) DO UPDATE SET
			color = excluded.color,
			run_id = excluded.run_id
	`, len(entries), func(stmt *sql.Stmt) error {
		for _, e := range entries {
			if _, err := stmt.ExecContext(ctx, e.Glyph, e.Color, e.RunID); err != nil {
				return fmt.Errorf("saving color for %s: %w", e.Glyph, err)
			}
		}
		return nil
	})
}

// LoadColors returns the cached classifications keyed by glyph.
func (s *colorCacheStore) LoadColors(ctx context.Context) (map[string]domain.ColorEntry, error) {
	written, err := s.store.cacheWritten(ctx, cacheColors)
	if err != nil {
		return nil, err
	}
	if !written {
		return nil, domain.ErrNotFound
	}

	rows, err := s.store.db.QueryContext(ctx, "SELECT glyph, color, run_id FROM color_cache")
	if err != nil {
		return nil, fmt.Errorf("querying color cache: %w", err)
	}
	defer rows.Close()

	colors := make(map[string]domain.ColorEntry)
	for rows.Next() {
		var e domain.ColorEntry
		if err := rows.Scan(&e.Glyph, &e.Color, &e.RunID); err != nil {
			return nil, fmt.Errorf("scanning color entry: %w", err)
		}
		colors[e.Glyph] = e
	}
	return colors, rows.Err()
}

// ==================== Usage Cache ====================

// usageCacheStore implements driven.UsageCacheStore.
type usageCacheStore struct {
	store *Store
}

var _ driven.UsageCacheStore = (*usageCacheStore)(nil)

// SaveUsage replaces the cached counts.
func (s *usageCacheStore) SaveUsage(ctx context.Context, counts map[string]int) error {
	return s.store.replaceCache(ctx, cacheUsage, "usage_counts", `
		INSERT INTO usage_counts (glyph, count)
		VALUES (?, ?)
		ON CONFLICT(glyph) DO UPDATE SET count = excluded.count
	`, len(counts), func(stmt *sql.Stmt) error {
		for glyph, count := range counts {
			if _, err := stmt.ExecContext(ctx, glyph, count); err != nil {
				return fmt.Errorf("saving usage for %s: %w", glyph, err)
			}
		}
		return nil
	})
}

// LoadUsage returns the cached counts keyed by glyph.
func (s *usageCacheStore) LoadUsage(ctx context.Context) (map[string]int, error) {
	written, err := s.store.cacheWritten(ctx, cacheUsage)
	if err != nil {
		return nil, err
	}
	if !written {
		return nil, domain.ErrNotFound
	}

	rows, err := s.store.db.QueryContext(ctx, "SELECT glyph, count FROM usage_counts")
	if err != nil {
		return nil, fmt.Errorf("querying usage cache: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var glyph string
		var count int
		if err := rows.Scan(&glyph, &count); err != nil {
			return nil, fmt.Errorf("scanning usage entry: %w", err)
		}
		counts[glyph] = count
	}
	return counts, rows.Err()
}
