package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/source/csvfile"
	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

var (
	joyEmoji = domain.Emoji{
		Unicode: "U+1F602", Glyph: "😂", Description: "face with tears of joy",
		Year: "2015", Nature: "emoji",
		Annotations: []domain.Annotation{{Text: "face"}, {Text: "joy"}},
	}
	grinEmoji = domain.Emoji{
		Unicode: "U+1F600", Glyph: "😀", Description: "grinning face",
		Year: "2015", Nature: "emoji",
	}
)

// newTestEnricher wires an enricher to the fixture sentiment file and
// memory caches holding usage and colors for the fixture emoji.
func newTestEnricher(t *testing.T, in testInputs) (*Enricher, *memory.ColorCacheStore) {
	t.Helper()
	ctx := context.Background()

	usage := memory.NewUsageCacheStore()
	require.NoError(t, usage.SaveUsage(ctx, map[string]int{"😂": 300, "😀": 100}))

	colors := memory.NewColorCacheStore()
	require.NoError(t, colors.SaveColors(ctx, []domain.ColorEntry{
		{Glyph: "😀", Color: "Yellow"},
		{Glyph: "😂", Color: "Yellow"},
		{Glyph: "#️⃣", Color: "Gray"},
	}))

	return NewEnricher(EnricherConfig{
		Reader:        csvfile.NewReader(),
		SentimentPath: in.sentiment,
		UsageStore:    usage,
		ColorStore:    colors,
	}), colors
}

func TestEnricher_Values(t *testing.T) {
	enricher, _ := newTestEnricher(t, newTestInputs(t))

	color, err := enricher.Color(joyEmoji)
	require.NoError(t, err)
	assert.Equal(t, "Yellow", color)

	sentiment, err := enricher.Sentiment(joyEmoji)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, sentiment, 1e-9)

	count, err := enricher.UsageCount(joyEmoji)
	require.NoError(t, err)
	assert.Equal(t, 300, count)

	percentage, err := enricher.UsagePercentage(joyEmoji)
	require.NoError(t, err)
	assert.InDelta(t, 75, percentage, 1e-9)

	average, err := enricher.AverageSentiment(joyEmoji)
	require.NoError(t, err)
	assert.InDelta(t, 45, average, 1e-9)
}

func TestEnricher_Properties(t *testing.T) {
	enricher, _ := newTestEnricher(t, newTestInputs(t))

	props, err := enricher.Properties(joyEmoji)
	require.NoError(t, err)

	values := make(map[string]string, len(props))
	for _, p := range props {
		assert.Equal(t, "FaceWithTearsOfJoyEmoji", p.ClassName)
		values[p.Name] = p.Value
	}
	assert.Equal(t, map[string]string{
		domain.PropUnicode:          "U+1F602",
		domain.PropGlyph:            "😂",
		domain.PropDescription:      "face with tears of joy",
		domain.PropYear:             "2015",
		domain.PropNature:           "emoji",
		domain.PropUsageNumber:      "300",
		domain.PropUsagePercentage:  "75",
		domain.PropSentiment:        "0.6",
		domain.PropAverageSentiment: "45",
	}, values)

	descriptors := domain.EmojiPropertyDescriptors()
	require.Len(t, props, len(descriptors))
	for i := range descriptors {
		assert.Equal(t, descriptors[i].Name, props[i].Name)
		assert.Equal(t, descriptors[i].Type, props[i].Type)
	}
}

func TestEnricher_UnknownEmojiDefaultsToZero(t *testing.T) {
	enricher, _ := newTestEnricher(t, newTestInputs(t))
	heart := domain.Emoji{Unicode: "U+2764", Glyph: "❤", Description: "red heart"}

	sentiment, err := enricher.Sentiment(heart)
	require.NoError(t, err)
	assert.Zero(t, sentiment)

	count, err := enricher.UsageCount(heart)
	require.NoError(t, err)
	assert.Zero(t, count)

	average, err := enricher.AverageSentiment(heart)
	require.NoError(t, err)
	assert.Zero(t, average)
}

func TestEnricher_ColorCacheMiss(t *testing.T) {
	enricher, _ := newTestEnricher(t, newTestInputs(t))
	heart := domain.Emoji{Unicode: "U+2764", Glyph: "❤", Description: "red heart"}

	_, err := enricher.Color(heart)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestEnricher_ColorCacheNeverBuilt(t *testing.T) {
	enricher := NewEnricher(EnricherConfig{
		Reader:     csvfile.NewReader(),
		UsageStore: memory.NewUsageCacheStore(),
		ColorStore: memory.NewColorCacheStore(),
	})

	_, err := enricher.Color(joyEmoji)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
	assert.Contains(t, err.Error(), "analyse colors")
}

func TestEnricher_UsageCacheMissingDefaultsToZero(t *testing.T) {
	enricher := NewEnricher(EnricherConfig{
		Reader:     csvfile.NewReader(),
		UsageStore: memory.NewUsageCacheStore(),
		ColorStore: memory.NewColorCacheStore(),
	})

	count, err := enricher.UsageCount(joyEmoji)
	require.NoError(t, err)
	assert.Zero(t, count)

	percentage, err := enricher.UsagePercentage(joyEmoji)
	require.NoError(t, err)
	assert.Zero(t, percentage)
}

func TestEnricher_CachesAreLoadedOnce(t *testing.T) {
	enricher, colors := newTestEnricher(t, newTestInputs(t))

	_, err := enricher.Color(joyEmoji)
	require.NoError(t, err)
	require.NoError(t, colors.SaveColors(context.Background(), nil))

	color, err := enricher.Color(joyEmoji)
	require.NoError(t, err)
	assert.Equal(t, "Yellow", color)
}

func TestAverageSentiment_Floor(t *testing.T) {
	tests := []struct {
		name       string
		valence    float64
		percentage float64
		want       float64
	}{
		{"positive", 0.5, 10, 5},
		{"negative", -0.5, 10, -5},
		{"tiny positive", 0.001, 0.05, 0},
		{"tiny negative", -0.001, 0.05, 0},
		{"zero usage", 0.9, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, averageSentiment(tt.valence, tt.percentage), 1e-12)
		})
	}
}

func TestFormatDouble(t *testing.T) {
	assert.Equal(t, "0", formatDouble(0))
	assert.Equal(t, "75", formatDouble(75))
	assert.Equal(t, "0.6", formatDouble(0.6))
	assert.Equal(t, "-0.25", formatDouble(-0.25))
	assert.Equal(t, "0.00001", formatDouble(1e-5))
}
