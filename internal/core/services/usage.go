package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// Ensure UsageService implements the interface.
var _ driving.UsageService = (*UsageService)(nil)

// UsageModel holds glyph usage counts and their total.
// It is read-only once built.
type UsageModel struct {
	counts map[string]int
	total  int
}

// NewUsageModel builds a model from cached glyph counts.
func NewUsageModel(counts map[string]int) *UsageModel {
	m := &UsageModel{counts: make(map[string]int, len(counts))}
	for glyph, count := range counts {
		m.counts[glyph] = count
		m.total += count
	}
	return m
}

// ParseUsageText parses a usage blob. The second line holds alternating
// glyph and count tokens. A count that does not parse drops only its pair
// and a trailing glyph without a count is ignored.
func ParseUsageText(text string) (map[string]int, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("%w: usage text has no data line", domain.ErrInvalidInput)
	}

	tokens := strings.Fields(lines[1])
	counts := make(map[string]int, len(tokens)/2)
	skipped := 0
	for i := 0; i+1 < len(tokens); i += 2 {
		count, err := strconv.Atoi(tokens[i+1])
		if err != nil {
			skipped++
			continue
		}
		counts[tokens[i]] = count
	}

	if skipped > 0 {
		logger.Debug("skipped %d usage pairs with malformed counts", skipped)
	}
	return counts, nil
}

// Count returns the usage count for glyph, or 0 when it is unknown.
func (m *UsageModel) Count(glyph string) int {
	return m.counts[glyph]
}

// Total returns the sum of all counts.
func (m *UsageModel) Total() int {
	return m.total
}

// Len returns the number of glyphs with a count.
func (m *UsageModel) Len() int {
	return len(m.counts)
}

// Percentage returns 100 * count / total for glyph.
// A model whose counts sum to zero reports 0 for every glyph.
func (m *UsageModel) Percentage(glyph string) float64 {
	if m.total == 0 {
		return 0
	}
	return 100 * float64(m.Count(glyph)) / float64(m.total)
}

// UsageService refreshes the usage cache from the usage provider or a saved file.
type UsageService struct {
	provider driven.UsageProvider
	reader   driven.SourceReader
	store    driven.UsageCacheStore
}

// NewUsageService creates a new usage service.
// The provider is optional (can be nil) when only Import is used.
func NewUsageService(
	provider driven.UsageProvider,
	reader driven.SourceReader,
	store driven.UsageCacheStore,
) *UsageService {
	return &UsageService{
		provider: provider,
		reader:   reader,
		store:    store,
	}
}

// Refresh performs a single fetch of url and caches the parsed counts.
// Nothing is retried; a provider failure wraps domain.ErrExternalService.
func (s *UsageService) Refresh(ctx context.Context, url string) (int, error) {
	if s.provider == nil {
		return 0, fmt.Errorf("%w: no usage provider configured", domain.ErrExternalService)
	}
	logger.Section("Usage Fetch")
	logger.Debug("fetching %s", url)

	text, err := s.provider.Fetch(ctx, url)
	if err != nil {
		return 0, fmt.Errorf("fetch usage: %w", err)
	}
	return s.saveParsed(ctx, text)
}

// Import parses a saved usage blob and caches the counts.
func (s *UsageService) Import(ctx context.Context, path string) (int, error) {
	logger.Section("Usage Import")
	text, err := s.reader.ReadText(ctx, path)
	if err != nil {
		return 0, fmt.Errorf("read usage text: %w", err)
	}
	return s.saveParsed(ctx, text)
}

func (s *UsageService) saveParsed(ctx context.Context, text string) (int, error) {
	counts, err := ParseUsageText(text)
	if err != nil {
		return 0, err
	}
	if err := s.store.SaveUsage(ctx, counts); err != nil {
		return 0, fmt.Errorf("save usage cache: %w", err)
	}
	logger.Info("cached usage for %d glyphs", len(counts))
	return len(counts), nil
}
