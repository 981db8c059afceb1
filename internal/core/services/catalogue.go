package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// requiredEmojiColumns must be present on every catalogue row.
var requiredEmojiColumns = []string{
	domain.ColumnUnicode,
	domain.ColumnGlyph,
	domain.ColumnDescription,
	domain.ColumnYear,
	domain.ColumnNature,
}

// nonBlankEmojiColumns must also carry a value.
var nonBlankEmojiColumns = []string{
	domain.ColumnUnicode,
	domain.ColumnGlyph,
	domain.ColumnDescription,
}

// CatalogueService loads the emoji catalogue from its source CSV.
type CatalogueService struct {
	reader driven.SourceReader
	path   string
}

// NewCatalogueService creates a catalogue service reading path.
func NewCatalogueService(reader driven.SourceReader, path string) *CatalogueService {
	return &CatalogueService{reader: reader, path: path}
}

// Load reads and builds the catalogue.
// A missing file is fatal and wraps domain.ErrMissingInput.
func (s *CatalogueService) Load(ctx context.Context) (domain.Catalogue, error) {
	logger.Section("Catalogue")
	rows, err := s.reader.ReadTable(ctx, s.path)
	if err != nil {
		return domain.Catalogue{}, fmt.Errorf("read emoji catalogue: %w", err)
	}
	logger.Debug("read %d rows from %s", len(rows), s.path)

	catalogue, err := BuildCatalogue(rows)
	if err != nil {
		return domain.Catalogue{}, err
	}
	logger.Info("built %d emoji with %d distinct annotations", len(catalogue.Emojis), len(catalogue.Annotations))
	return catalogue, nil
}

// BuildCatalogue constructs emoji in row order and the set of distinct
// annotations in order of first appearance.
// Row numbers in errors are 1-based and count data rows only.
func BuildCatalogue(rows []domain.Row) (domain.Catalogue, error) {
	catalogue := domain.Catalogue{
		Emojis: make([]domain.Emoji, 0, len(rows)),
	}
	seen := make(map[domain.Annotation]struct{})

	for i, row := range rows {
		emoji, err := buildEmoji(row)
		if err != nil {
			return domain.Catalogue{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		catalogue.Emojis = append(catalogue.Emojis, emoji)

		for _, a := range emoji.Annotations {
			if _, ok := seen[a]; ok {
				continue
			}
			seen[a] = struct{}{}
			catalogue.Annotations = append(catalogue.Annotations, a)
		}
	}

	return catalogue, nil
}

func buildEmoji(row domain.Row) (domain.Emoji, error) {
	for _, col := range requiredEmojiColumns {
		if _, ok := row[col]; !ok {
			return domain.Emoji{}, fmt.Errorf("%w: missing column %q", domain.ErrMalformedRow, col)
		}
	}
	for _, col := range nonBlankEmojiColumns {
		if strings.TrimSpace(row[col]) == "" {
			return domain.Emoji{}, fmt.Errorf("%w: empty %q", domain.ErrMalformedRow, col)
		}
	}

	return domain.Emoji{
		Unicode:     strings.TrimSpace(row[domain.ColumnUnicode]),
		Glyph:       row[domain.ColumnGlyph],
		Description: strings.TrimSpace(row[domain.ColumnDescription]),
		Year:        strings.TrimSpace(row[domain.ColumnYear]),
		Nature:      strings.TrimSpace(row[domain.ColumnNature]),
		Annotations: domain.ParseAnnotations(row[domain.ColumnAnnotations]),
	}, nil
}
