package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Ensure the cache stores implement the interfaces.
var (
	_ driven.ColorCacheStore = (*ColorCacheStore)(nil)
	_ driven.UsageCacheStore = (*UsageCacheStore)(nil)
)

// ColorCacheStore is an in-memory implementation of driven.ColorCacheStore.
type ColorCacheStore struct {
	mu      sync.RWMutex
	entries map[string]domain.ColorEntry
}

// NewColorCacheStore creates an empty color cache. Loading it before the
// first save returns domain.ErrNotFound.
func NewColorCacheStore() *ColorCacheStore {
	return &ColorCacheStore{}
}

// SaveColors replaces the cached classifications.
func (s *ColorCacheStore) SaveColors(_ context.Context, entries []domain.ColorEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]domain.ColorEntry, len(entries))
	for _, e := range entries {
		s.entries[e.Glyph] = e
	}
	return nil
}

// LoadColors returns a copy of the cached classifications.
func (s *ColorCacheStore) LoadColors(_ context.Context) (map[string]domain.ColorEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.entries == nil {
		return nil, domain.ErrNotFound
	}
	out := make(map[string]domain.ColorEntry, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out, nil
}

// UsageCacheStore is an in-memory implementation of driven.UsageCacheStore.
type UsageCacheStore struct {
	mu     sync.RWMutex
	counts map[string]int
}

// NewUsageCacheStore creates an empty usage cache.
func NewUsageCacheStore() *UsageCacheStore {
	return &UsageCacheStore{}
}

// SaveUsage replaces the cached counts.
func (s *UsageCacheStore) SaveUsage(_ context.Context, counts map[string]int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts = make(map[string]int, len(counts))
	for k, v := range counts {
		s.counts[k] = v
	}
	return nil
}

// LoadUsage returns a copy of the cached counts.
func (s *UsageCacheStore) LoadUsage(_ context.Context) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.counts == nil {
		return nil, domain.ErrNotFound
	}
	out := make(map[string]int, len(s.counts))
	for k, v := range s.counts {
		out[k] = v
	}
	return out, nil
}
