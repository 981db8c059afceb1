package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentItem_Valence(t *testing.T) {
	item := SentimentItem{Occurrences: 6359, Negative: 329, Neutral: 1390, Positive: 4640}
	assert.InDelta(t, 0.6779, item.Valence(), 0.001)
}

func TestSentimentItem_ValenceWithoutOccurrences(t *testing.T) {
	assert.Equal(t, 0.0, SentimentItem{}.Valence())
}

func TestSentimentItem_Weight(t *testing.T) {
	item := SentimentItem{Occurrences: 6359}
	assert.Equal(t, 0.0, item.Weight(), "weight is zero before the total is known")

	item = item.WithAccumulative(146220)
	assert.InDelta(t, 0.04, item.Weight(), 0.01)
}

func TestSentimentItem_WithAccumulativeDoesNotMutate(t *testing.T) {
	item := SentimentItem{Occurrences: 10}
	stamped := item.WithAccumulative(100)

	assert.Equal(t, 0.0, item.Accumulative)
	assert.Equal(t, 100.0, stamped.Accumulative)
}

func TestSentimentKey(t *testing.T) {
	assert.Equal(t, "1F602", SentimentKey("0x1f602"))
	assert.Equal(t, "1F496", SentimentKey("u+1F496"))
	assert.Equal(t, "1F496", SentimentKey("0x1F496"))
	assert.Equal(t, "263A", SentimentKey("U+263A"))
}
