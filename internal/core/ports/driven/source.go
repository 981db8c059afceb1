package driven

import (
	"context"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

// SourceReader reads pipeline input files.
// A file that does not exist is reported as domain.ErrMissingInput so callers
// can decide whether to degrade or abort.
type SourceReader interface {
	// ReadTable parses a CSV file with a header row into column-keyed rows.
	ReadTable(ctx context.Context, path string) ([]domain.Row, error)

	// ReadLines returns the file's lines without their terminators.
	ReadLines(ctx context.Context, path string) ([]string, error)

	// ReadText returns the whole file as a string.
	ReadText(ctx context.Context, path string) (string, error)
}
