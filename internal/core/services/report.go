package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driving"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportGenerator = (*ReportService)(nil)

// Synthetic report columns appended after the property columns.
const (
	reportAnnotationsColumn = "Annotations"
	reportColorColumn       = "Color"
	annotationSeparator     = "; "
)

// ReportService renders the enriched catalogue as CSV.
type ReportService struct {
	catalogue CatalogueLoader
	enricher  *Enricher
}

// NewReportService creates a new report service.
func NewReportService(catalogue CatalogueLoader, enricher *Enricher) *ReportService {
	return &ReportService{catalogue: catalogue, enricher: enricher}
}

// GenerateCSV builds the report: a header row and one row per emoji.
func (s *ReportService) GenerateCSV(ctx context.Context) (string, error) {
	catalogue, err := s.catalogue.Load(ctx)
	if err != nil {
		return "", err
	}

	logger.Section("Report")
	rows := make([][]string, 0, len(catalogue.Emojis))
	for _, emoji := range catalogue.Emojis {
		props, err := s.enricher.Properties(emoji)
		if err != nil {
			return "", err
		}
		color, err := s.enricher.Color(emoji)
		if err != nil {
			return "", err
		}
		rows = append(rows, ReportRow(emoji, props, color))
	}
	logger.Info("reported %d emoji", len(rows))

	return RenderReport(domain.EmojiPropertyDescriptors(), rows)
}

// ReportHeader returns the property names without their "has" prefix
// followed by the annotation and color columns.
func ReportHeader(descriptors []domain.OWLProperty) []string {
	header := make([]string, 0, len(descriptors)+2)
	for _, d := range descriptors {
		header = append(header, strings.TrimPrefix(d.Name, "has"))
	}
	return append(header, reportAnnotationsColumn, reportColorColumn)
}

// ReportRow returns the property values in order, the annotation texts and the color.
func ReportRow(emoji domain.Emoji, props []domain.OWLProperty, color string) []string {
	row := make([]string, 0, len(props)+2)
	for _, p := range props {
		row = append(row, p.Value)
	}
	return append(row,
		strings.Join(emoji.AnnotationTexts(), annotationSeparator),
		color,
	)
}

// RenderReport writes the header and rows as RFC 4180 CSV.
func RenderReport(descriptors []domain.OWLProperty, rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(ReportHeader(descriptors)); err != nil {
		return "", fmt.Errorf("write report header: %w", err)
	}
	if err := w.WriteAll(rows); err != nil {
		return "", fmt.Errorf("write report rows: %w", err)
	}
	return buf.String(), nil
}
