package domain

import "time"

const unknownDescription = "Unknown"

// CacheBackend selects where enrichment caches are persisted.
type CacheBackend string

// Available cache backends.
const (
	// CacheBackendFile stores caches as YAML files in the cache directory.
	CacheBackendFile CacheBackend = "file"

	// CacheBackendSQLite stores caches in a SQLite database in the cache directory.
	CacheBackendSQLite CacheBackend = "sqlite"
)

// IsValid returns true if the backend is recognised.
func (b CacheBackend) IsValid() bool {
	switch b {
	case CacheBackendFile, CacheBackendSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b CacheBackend) String() string {
	return string(b)
}

// Description returns a human-readable description of the backend.
func (b CacheBackend) Description() string {
	switch b {
	case CacheBackendFile:
		return "File (YAML)"
	case CacheBackendSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// InputSettings locates the source files of the pipeline.
type InputSettings struct {
	// EmojiCSV is the emoji catalogue. Required.
	EmojiCSV string

	// CategoryCSV maps annotations to categories. Optional.
	CategoryCSV string

	// SentimentCSV holds per-emoji occurrence statistics. Optional.
	SentimentCSV string

	// Template overrides the embedded OWL template when set.
	Template string
}

// CacheSettings holds enrichment cache configuration.
type CacheSettings struct {
	// Backend is the persistence backend.
	Backend CacheBackend

	// Dir is the directory holding cache files or the database.
	Dir string
}

// UsageSettings configures the usage statistics fetch.
type UsageSettings struct {
	// URL is the page holding the usage blob.
	URL string

	// SettleDelay is waited after the page loads before its text is read.
	SettleDelay time.Duration

	// Timeout bounds the whole round trip.
	Timeout time.Duration
}

// AnalysisSettings configures the bulk color analysis.
type AnalysisSettings struct {
	// GlyphDir holds pre-rendered glyph images named "<webID>.png" or "<webID>.webp".
	GlyphDir string

	// Rate limits sampler calls per second. Zero means unlimited.
	Rate float64
}

// AppSettings holds all application configuration.
type AppSettings struct {
	Inputs   InputSettings
	Cache    CacheSettings
	Usage    UsageSettings
	Analysis AnalysisSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Relative paths are resolved against the working directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Inputs: InputSettings{
			EmojiCSV:     "Emoji Unicodes.csv",
			CategoryCSV:  "Annotation Categories.csv",
			SentimentCSV: "Sentiment.csv",
		},
		Cache: CacheSettings{
			Backend: CacheBackendFile,
			Dir:     "cache",
		},
		Usage: UsageSettings{
			URL:         "http://www.emojitracker.com/",
			SettleDelay: time.Second,
			Timeout:     30 * time.Second,
		},
		Analysis: AnalysisSettings{
			GlyphDir: "glyphs",
		},
	}
}
