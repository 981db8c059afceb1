package driven

import (
	"context"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

// ColorCacheStore persists the glyph to color classification built by the
// color analysis batch.
type ColorCacheStore interface {
	// SaveColors replaces the cached classifications with entries.
	SaveColors(ctx context.Context, entries []domain.ColorEntry) error

	// LoadColors returns the cached classifications keyed by glyph.
	// Returns domain.ErrNotFound if no cache has been written yet.
	LoadColors(ctx context.Context) (map[string]domain.ColorEntry, error)
}

// UsageCacheStore persists glyph usage counts.
type UsageCacheStore interface {
	// SaveUsage replaces the cached counts.
	SaveUsage(ctx context.Context, counts map[string]int) error

	// LoadUsage returns the cached counts keyed by glyph.
	// Returns domain.ErrNotFound if no cache has been written yet.
	LoadUsage(ctx context.Context) (map[string]int, error)
}
