package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// averageSentimentFloor is the magnitude below which average sentiment is reported as 0.
const averageSentimentFloor = 0.0001

// EnricherConfig wires the caches an Enricher reads from.
type EnricherConfig struct {
	Reader        driven.SourceReader
	SentimentPath string
	UsageStore    driven.UsageCacheStore
	ColorStore    driven.ColorCacheStore
}

// Enricher computes the derived attributes of an emoji from the sentiment,
// usage and color caches. Each cache is loaded on first use and is
// read-only afterwards, so an Enricher is safe for concurrent use.
// Caches are process lifetime and are loaded without a caller context.
type Enricher struct {
	sentiment func() (*SentimentModel, error)
	usage     func() (*UsageModel, error)
	colors    func() (map[string]domain.ColorEntry, error)
}

// NewEnricher creates an enricher. Nothing is read until a value is requested.
func NewEnricher(cfg EnricherConfig) *Enricher {
	return &Enricher{
		sentiment: sync.OnceValues(func() (*SentimentModel, error) {
			return LoadSentimentModel(context.Background(), cfg.Reader, cfg.SentimentPath)
		}),
		usage: sync.OnceValues(func() (*UsageModel, error) {
			return loadUsageModel(context.Background(), cfg.UsageStore)
		}),
		colors: sync.OnceValues(func() (map[string]domain.ColorEntry, error) {
			return loadColorCache(context.Background(), cfg.ColorStore)
		}),
	}
}

func loadUsageModel(ctx context.Context, store driven.UsageCacheStore) (*UsageModel, error) {
	counts, err := store.LoadUsage(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warn("usage cache is empty, usage defaults to 0 (run 'emojiont usage fetch')")
		return NewUsageModel(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load usage cache: %w", err)
	}
	logger.Debug("loaded usage for %d glyphs", len(counts))
	return NewUsageModel(counts), nil
}

func loadColorCache(ctx context.Context, store driven.ColorCacheStore) (map[string]domain.ColorEntry, error) {
	colors, err := store.LoadColors(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: color cache has not been built (run 'emojiont analyse colors')", domain.ErrCacheMiss)
	}
	if err != nil {
		return nil, fmt.Errorf("load color cache: %w", err)
	}
	logger.Debug("loaded colors for %d glyphs", len(colors))
	return colors, nil
}

// Color returns the cached palette name for the emoji's glyph.
// Every glyph being serialized must be in the cache.
func (e *Enricher) Color(emoji domain.Emoji) (string, error) {
	colors, err := e.colors()
	if err != nil {
		return "", err
	}
	entry, ok := colors[emoji.Glyph]
	if !ok {
		return "", fmt.Errorf("%w: no color for %s (%s)", domain.ErrCacheMiss, emoji.Glyph, emoji.Unicode)
	}
	return entry.Color, nil
}

// Sentiment returns the emoji's valence, 0 when unknown.
func (e *Enricher) Sentiment(emoji domain.Emoji) (float64, error) {
	model, err := e.sentiment()
	if err != nil {
		return 0, err
	}
	return model.Valence(emoji.Unicode), nil
}

// UsageCount returns the emoji's usage count, 0 when unknown.
func (e *Enricher) UsageCount(emoji domain.Emoji) (int, error) {
	model, err := e.usage()
	if err != nil {
		return 0, err
	}
	return model.Count(emoji.Glyph), nil
}

// UsagePercentage returns the emoji's share of all usage, in percent.
func (e *Enricher) UsagePercentage(emoji domain.Emoji) (float64, error) {
	model, err := e.usage()
	if err != nil {
		return 0, err
	}
	return model.Percentage(emoji.Glyph), nil
}

// AverageSentiment is valence multiplied by usage percentage.
// Values whose magnitude is below 0.0001 are reported as 0.
func (e *Enricher) AverageSentiment(emoji domain.Emoji) (float64, error) {
	valence, err := e.Sentiment(emoji)
	if err != nil {
		return 0, err
	}
	percentage, err := e.UsagePercentage(emoji)
	if err != nil {
		return 0, err
	}
	return averageSentiment(valence, percentage), nil
}

func averageSentiment(valence, percentage float64) float64 {
	value := valence * percentage
	if math.Abs(value) < averageSentimentFloor {
		return 0
	}
	return value
}

// Properties returns the emoji's data property values in descriptor order,
// asserted on the emoji's own class.
func (e *Enricher) Properties(emoji domain.Emoji) ([]domain.OWLProperty, error) {
	count, err := e.UsageCount(emoji)
	if err != nil {
		return nil, err
	}
	percentage, err := e.UsagePercentage(emoji)
	if err != nil {
		return nil, err
	}
	valence, err := e.Sentiment(emoji)
	if err != nil {
		return nil, err
	}

	values := map[string]string{
		domain.PropUnicode:          emoji.Unicode,
		domain.PropGlyph:            emoji.Glyph,
		domain.PropDescription:      emoji.Description,
		domain.PropYear:             emoji.Year,
		domain.PropNature:           emoji.Nature,
		domain.PropUsageNumber:      strconv.Itoa(count),
		domain.PropUsagePercentage:  formatDouble(percentage),
		domain.PropSentiment:        formatDouble(valence),
		domain.PropAverageSentiment: formatDouble(averageSentiment(valence, percentage)),
	}

	props := domain.EmojiPropertyDescriptors()
	for i := range props {
		props[i].Value = values[props[i].Name]
		props[i].ClassName = emoji.OntologyName()
	}
	return props, nil
}

// formatDouble renders the shortest exact decimal form without an exponent.
func formatDouble(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
