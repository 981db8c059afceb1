package driven

import (
	"context"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

// ColorSampler returns one representative color for a rendered glyph.
// How the glyph is rasterised and reduced is up to the implementation.
type ColorSampler interface {
	// Sample returns the dominant color of the emoji's glyph.
	Sample(ctx context.Context, emoji domain.Emoji) (domain.RGB, error)
}
