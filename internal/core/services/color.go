package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// Ensure ColorAnalyser implements the interface.
var _ driving.ColorAnalysisService = (*ColorAnalyser)(nil)

// Ensure ColorTask implements the interface.
var _ driving.ColorTask = (*ColorTask)(nil)

// ColorClassifier maps a color sample to the perceptually closest palette entry.
type ColorClassifier struct {
	palette    []domain.NamedColor
	references []colorful.Color
}

// NewColorClassifier creates a classifier over the reference palette.
func NewColorClassifier() *ColorClassifier {
	palette := domain.Palette()
	references := make([]colorful.Color, len(palette))
	for i, c := range palette {
		references[i] = toColorful(c.Reference)
	}
	return &ColorClassifier{palette: palette, references: references}
}

// Classify returns the palette color with the smallest CIEDE2000 distance
// to sample. On an exact tie the earlier palette entry wins.
func (c *ColorClassifier) Classify(sample domain.RGB) domain.NamedColor {
	target := toColorful(sample)
	best := 0
	bestDistance := target.DistanceCIEDE2000(c.references[0])
	for i := 1; i < len(c.references); i++ {
		d := target.DistanceCIEDE2000(c.references[i])
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return c.palette[best]
}

func toColorful(c domain.RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// CatalogueLoader provides the emoji catalogue.
type CatalogueLoader interface {
	Load(ctx context.Context) (domain.Catalogue, error)
}

// ColorAnalyser runs the bulk color analysis that fills the color cache.
type ColorAnalyser struct {
	catalogue  CatalogueLoader
	sampler    driven.ColorSampler
	store      driven.ColorCacheStore
	classifier *ColorClassifier
	rate       float64
}

// NewColorAnalyser creates a new color analyser.
// ratePerSecond limits sampler calls; zero or less means unlimited.
func NewColorAnalyser(
	catalogue CatalogueLoader,
	sampler driven.ColorSampler,
	store driven.ColorCacheStore,
	ratePerSecond float64,
) *ColorAnalyser {
	return &ColorAnalyser{
		catalogue:  catalogue,
		sampler:    sampler,
		store:      store,
		classifier: NewColorClassifier(),
		rate:       ratePerSecond,
	}
}

// Start loads the catalogue and analyses every emoji in the background.
func (a *ColorAnalyser) Start(ctx context.Context) (driving.ColorTask, error) {
	if a.sampler == nil {
		return nil, fmt.Errorf("%w: no color sampler configured", domain.ErrExternalService)
	}
	catalogue, err := a.catalogue.Load(ctx)
	if err != nil {
		return nil, err
	}
	return a.Analyse(catalogue.Emojis), nil
}

// Analyse starts a batch over emojis and returns immediately.
// The batch runs to completion once started.
func (a *ColorAnalyser) Analyse(emojis []domain.Emoji) *ColorTask {
	task := &ColorTask{
		id:       uuid.New().String(),
		progress: make(chan domain.Progress, len(emojis)),
		done:     make(chan struct{}),
	}

	limit := rate.Inf
	if a.rate > 0 {
		limit = rate.Limit(a.rate)
	}
	limiter := rate.NewLimiter(limit, 1)

	logger.Section("Color Analysis")
	logger.Debug("run %s: analysing %d emoji", task.id, len(emojis))

	go task.run(emojis, func(ctx context.Context, emoji domain.Emoji) (domain.ColorEntry, error) {
		if err := limiter.Wait(ctx); err != nil {
			return domain.ColorEntry{}, err
		}
		sample, err := a.sampler.Sample(ctx, emoji)
		if err != nil {
			return domain.ColorEntry{}, fmt.Errorf("%w: sample %s (%s): %v",
				domain.ErrExternalService, emoji.Glyph, emoji.Unicode, err)
		}
		color := a.classifier.Classify(sample)
		logger.Debug("%s %s -> %s", emoji.Glyph, sample.Hex(), color.Name)
		return domain.ColorEntry{Glyph: emoji.Glyph, Color: color.Name, RunID: task.id}, nil
	})

	return task
}

// Save writes the batch results to the color cache.
func (a *ColorAnalyser) Save(ctx context.Context, entries []domain.ColorEntry) error {
	if err := a.store.SaveColors(ctx, entries); err != nil {
		return fmt.Errorf("save color cache: %w", err)
	}
	logger.Info("cached colors for %d glyphs", len(entries))
	return nil
}

// ColorTask is a running color analysis batch.
type ColorTask struct {
	id       string
	progress chan domain.Progress
	done     chan struct{}

	// Written by run before done is closed.
	results []domain.ColorEntry
	err     error
}

// ID returns the run ID stamped on every result.
func (t *ColorTask) ID() string {
	return t.id
}

// Progress streams one update per emoji. It is closed before Wait returns.
func (t *ColorTask) Progress() <-chan domain.Progress {
	return t.progress
}

// Wait blocks until the batch finishes.
// On failure no results are returned.
func (t *ColorTask) Wait() ([]domain.ColorEntry, error) {
	<-t.done
	return t.results, t.err
}

func (t *ColorTask) run(
	emojis []domain.Emoji,
	analyse func(context.Context, domain.Emoji) (domain.ColorEntry, error),
) {
	// The batch is not cancellable.
	ctx := context.Background()
	defer close(t.done)
	defer close(t.progress)

	results := make([]domain.ColorEntry, 0, len(emojis))
	for i, emoji := range emojis {
		entry, err := analyse(ctx, emoji)
		if err != nil {
			t.err = err
			return
		}
		results = append(results, entry)
		t.progress <- domain.Progress{Current: i + 1, Total: len(emojis)}
	}
	t.results = results
}
