package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// CategoryTaxonomy links annotations to broader categories.
type CategoryTaxonomy struct {
	entries []domain.CategoryEntry
}

// BuildCategoryTaxonomy keeps every row that names both an annotation and a
// category. Blank rows and rows categorised as "-" are skipped.
func BuildCategoryTaxonomy(rows []domain.Row) *CategoryTaxonomy {
	t := &CategoryTaxonomy{}
	for _, row := range rows {
		annotation, ok := row[domain.ColumnCategoryAnnotation]
		if !ok {
			continue
		}
		annotation = domain.NewAnnotation(annotation).Text
		if annotation == "" {
			continue
		}
		category, ok := domain.ResolveCategory(row[domain.ColumnCategory])
		if !ok {
			continue
		}
		t.entries = append(t.entries, domain.CategoryEntry{
			Annotation: annotation,
			Category:   category,
		})
	}
	return t
}

// LoadCategoryTaxonomy reads the category CSV at path.
// A missing file yields an empty taxonomy; other read errors are returned.
func LoadCategoryTaxonomy(ctx context.Context, reader driven.SourceReader, path string) (*CategoryTaxonomy, error) {
	if path == "" {
		return &CategoryTaxonomy{}, nil
	}
	rows, err := reader.ReadTable(ctx, path)
	if errors.Is(err, domain.ErrMissingInput) {
		logger.Warn("category file %s not found, skipping categories", path)
		return &CategoryTaxonomy{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}

	t := BuildCategoryTaxonomy(rows)
	logger.Debug("categorised %d of %d annotations", len(t.entries), len(rows))
	return t, nil
}

// Entries returns the annotation to category links in source order.
func (t *CategoryTaxonomy) Entries() []domain.CategoryEntry {
	return t.entries
}

// Categories returns the distinct category class names in order of first appearance.
func (t *CategoryTaxonomy) Categories() []string {
	var classes []string
	seen := make(map[string]struct{})
	for _, e := range t.entries {
		class := e.CategoryClass()
		if _, ok := seen[class]; ok {
			continue
		}
		seen[class] = struct{}{}
		classes = append(classes, class)
	}
	return classes
}
