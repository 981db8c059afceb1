package services

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/source/csvfile"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

func TestReportHeader(t *testing.T) {
	header := ReportHeader(domain.EmojiPropertyDescriptors())

	assert.Equal(t, []string{
		"Unicode", "EmojiGlyph", "Description", "Year", "Nature",
		"UsageNumber", "UsagePercentage", "Sentiment", "AverageSentiment",
		"Annotations", "Color",
	}, header)
}

func TestReportRow(t *testing.T) {
	props := []domain.OWLProperty{{Name: "hasA", Value: "1"}, {Name: "hasB", Value: "x"}}

	row := ReportRow(joyEmoji, props, "Yellow")

	assert.Equal(t, []string{"1", "x", "face; joy", "Yellow"}, row)
}

func TestRenderReport_Quoting(t *testing.T) {
	descriptors := []domain.OWLProperty{{Name: "hasDescription"}}

	out, err := RenderReport(descriptors, [][]string{
		{`keycap, "star"`, "", "Gray"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Description,Annotations,Color\n\"keycap, \"\"star\"\"\",,Gray\n", out)
}

func TestReportService_GenerateCSV(t *testing.T) {
	in := newTestInputs(t)
	enricher, _ := newTestEnricher(t, in)
	service := NewReportService(in.catalogue(), enricher)

	out, err := service.GenerateCSV(context.Background())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, ReportHeader(domain.EmojiPropertyDescriptors()), records[0])
	assert.Equal(t, []string{
		"U+1F602", "😂", "face with tears of joy", "2015", "emoji",
		"300", "75", "0.6", "45", "face; joy; tears", "Yellow",
	}, records[2])
	assert.Equal(t, "", records[3][9])
	assert.Equal(t, "Gray", records[3][10])
}

func TestReportService_GenerateCSV_ColorCacheMiss(t *testing.T) {
	in := newTestInputs(t)
	enricher := NewEnricher(EnricherConfig{
		Reader:     csvfile.NewReader(),
		UsageStore: memory.NewUsageCacheStore(),
		ColorStore: memory.NewColorCacheStore(),
	})
	service := NewReportService(in.catalogue(), enricher)

	_, err := service.GenerateCSV(context.Background())

	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}
