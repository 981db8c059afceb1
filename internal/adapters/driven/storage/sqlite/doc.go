// Package sqlite provides a SQLite-based implementation of the cache store ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements both cache stores
// through a single database connection:
//
//   - ColorCacheStore: glyph color classifications with their analysis run ID
//   - UsageCacheStore: glyph usage counts
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
// # Data Location
//
// The database is stored as caches.db in the configured cache directory.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
