package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
	"github.com/custodia-labs/emoji-ontology/internal/logger"
)

// sentimentFields is the exact field count of a sentiment line:
// glyph, unicode, occurrences, ratio (ignored), negative, neutral, positive.
const sentimentFields = 7

// SentimentModel maps normalised unicode keys to finalized sentiment items.
// It is read-only once built.
type SentimentModel struct {
	items map[string]domain.SentimentItem
	total float64
}

// ParseSentimentLines builds a model from the lines of the sentiment CSV.
// The first line is a header. Lines without exactly seven fields, or whose
// numbers do not parse, are skipped.
func ParseSentimentLines(lines []string) *SentimentModel {
	m := &SentimentModel{items: make(map[string]domain.SentimentItem)}
	if len(lines) == 0 {
		return m
	}

	skipped := 0
	for _, line := range lines[1:] {
		item, ok := parseSentimentLine(line)
		if !ok {
			skipped++
			continue
		}
		m.total += item.Occurrences
		m.items[domain.SentimentKey(item.Unicode)] = item
	}

	for key, item := range m.items {
		m.items[key] = item.WithAccumulative(m.total)
	}

	if skipped > 0 {
		logger.Debug("skipped %d malformed sentiment lines", skipped)
	}
	return m
}

func parseSentimentLine(line string) (domain.SentimentItem, bool) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) != sentimentFields {
		return domain.SentimentItem{}, false
	}

	var values [4]float64
	for i, idx := range []int{2, 4, 5, 6} {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[idx]), 64)
		if err != nil {
			return domain.SentimentItem{}, false
		}
		values[i] = v
	}

	return domain.SentimentItem{
		Glyph:       parts[0],
		Unicode:     strings.TrimSpace(parts[1]),
		Occurrences: values[0],
		Negative:    values[1],
		Neutral:     values[2],
		Positive:    values[3],
	}, true
}

// LoadSentimentModel reads the sentiment CSV at path.
// A missing file yields an empty model.
func LoadSentimentModel(ctx context.Context, reader driven.SourceReader, path string) (*SentimentModel, error) {
	if path == "" {
		return ParseSentimentLines(nil), nil
	}
	lines, err := reader.ReadLines(ctx, path)
	if errors.Is(err, domain.ErrMissingInput) {
		logger.Warn("sentiment file %s not found, sentiment defaults to 0", path)
		return ParseSentimentLines(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read sentiment: %w", err)
	}

	m := ParseSentimentLines(lines)
	logger.Debug("loaded %d sentiment records", m.Len())
	return m, nil
}

// Lookup returns the item for a unicode value in any of the accepted
// spellings ("1F602", "0x1f602", "U+1F602").
func (m *SentimentModel) Lookup(unicode string) (domain.SentimentItem, bool) {
	item, ok := m.items[domain.SentimentKey(unicode)]
	return item, ok
}

// Valence returns the valence for unicode, or 0 when it is unknown.
func (m *SentimentModel) Valence(unicode string) float64 {
	item, ok := m.Lookup(unicode)
	if !ok {
		return 0
	}
	return item.Valence()
}

// Len returns the number of records.
func (m *SentimentModel) Len() int {
	return len(m.items)
}

// Total returns the accumulated occurrences of every record.
func (m *SentimentModel) Total() float64 {
	return m.total
}
