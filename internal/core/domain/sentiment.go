package domain

import "strings"

// SentimentItem holds the occurrence statistics of one emoji.
//
// Weight depends on the accumulative occurrences of every item, which is
// only known once the whole dataset has been read; until WithAccumulative
// is applied the weight is zero.
type SentimentItem struct {
	// Glyph is the emoji character.
	Glyph string

	// Unicode is the hex codepoint as written in the source, e.g. "0x1f602".
	Unicode string

	// Occurrences is the total number of observations.
	Occurrences float64

	// Negative, Neutral and Positive are observation counts per polarity.
	Negative float64
	Neutral  float64
	Positive float64

	// Accumulative is the sum of Occurrences across the full dataset.
	Accumulative float64
}

// Valence is positive/occurrences minus negative/occurrences, roughly in [-1, 1].
// An item with no occurrences has a valence of 0.
func (s SentimentItem) Valence() float64 {
	if s.Occurrences == 0 {
		return 0
	}
	return s.Positive/s.Occurrences - s.Negative/s.Occurrences
}

// Weight is the item's share of all observed occurrences.
func (s SentimentItem) Weight() float64 {
	if s.Accumulative == 0 {
		return 0
	}
	return s.Occurrences / s.Accumulative
}

// WithAccumulative returns a copy stamped with the dataset total.
func (s SentimentItem) WithAccumulative(total float64) SentimentItem {
	s.Accumulative = total
	return s
}

// SentimentKey normalises a unicode hex string into a lookup key:
// upper-cased with "0X" and "U+" removed. "0x1f602" and "U+1F602" both
// become "1F602".
func SentimentKey(unicode string) string {
	key := strings.ToUpper(unicode)
	key = strings.ReplaceAll(key, "0X", "")
	return strings.ReplaceAll(key, "U+", "")
}
