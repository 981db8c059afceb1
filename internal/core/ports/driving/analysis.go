package driving

import (
	"context"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

// ColorTask is a running color analysis batch.
//
// Every progress update is delivered before completion: the Progress channel
// is closed before Wait returns. A started task cannot be cancelled.
type ColorTask interface {
	// ID identifies the batch run.
	ID() string

	// Progress streams one update per analysed emoji.
	Progress() <-chan domain.Progress

	// Wait blocks until the batch finishes and returns every result, or an
	// error and no results.
	Wait() ([]domain.ColorEntry, error)
}

// ColorAnalysisService runs the bulk color analysis over the catalogue.
type ColorAnalysisService interface {
	// Start loads the catalogue and begins analysing it in the background.
	Start(ctx context.Context) (ColorTask, error)

	// Save persists the results of a finished batch to the color cache.
	Save(ctx context.Context, entries []domain.ColorEntry) error
}
