package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

func TestColorClassifier_PaletteMatchesItself(t *testing.T) {
	classifier := NewColorClassifier()

	for _, c := range domain.Palette() {
		assert.Equal(t, c.Name, classifier.Classify(c.Reference).Name)
	}
}

func TestColorClassifier_NearestColor(t *testing.T) {
	classifier := NewColorClassifier()

	tests := []struct {
		sample domain.RGB
		want   string
	}{
		{domain.RGB{R: 0xf0, G: 0x10, B: 0x10}, "Red"},
		{domain.RGB{R: 0x10, G: 0x10, B: 0x10}, "Black"},
		{domain.RGB{R: 0xfa, G: 0xfa, B: 0xf5}, "White"},
		{domain.RGB{R: 0xff, G: 0xcc, B: 0x33}, "Orange"},
		{domain.RGB{R: 0x12, G: 0x12, B: 0xf0}, "Blue"},
	}

	for _, tt := range tests {
		t.Run(tt.sample.Hex(), func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.sample).Name)
		})
	}
}

func TestColorAnalyser_Start(t *testing.T) {
	in := newTestInputs(t)
	sampler := &stubSampler{colors: map[string]domain.RGB{
		"😀":   {R: 0xff, G: 0xcc, B: 0x33},
		"😂":   {R: 0xf0, G: 0x10, B: 0x10},
		"#️⃣": {R: 0x12, G: 0x12, B: 0xf0},
	}}
	store := memory.NewColorCacheStore()
	analyser := NewColorAnalyser(in.catalogue(), sampler, store, 0)

	task, err := analyser.Start(context.Background())
	require.NoError(t, err)

	var updates []domain.Progress
	for p := range task.Progress() {
		updates = append(updates, p)
	}
	entries, err := task.Wait()
	require.NoError(t, err)

	assert.Equal(t, []domain.Progress{
		{Current: 1, Total: 3},
		{Current: 2, Total: 3},
		{Current: 3, Total: 3},
	}, updates)
	assert.Equal(t, []string{"😀", "😂", "#️⃣"}, sampler.calls)

	_, err = uuid.Parse(task.ID())
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, domain.ColorEntry{Glyph: "😀", Color: "Orange", RunID: task.ID()}, entries[0])
	assert.Equal(t, "Red", entries[1].Color)
	assert.Equal(t, "Blue", entries[2].Color)

	require.NoError(t, analyser.Save(context.Background(), entries))
	cached, err := store.LoadColors(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Red", cached["😂"].Color)
}

func TestColorAnalyser_SamplerFailure(t *testing.T) {
	sampler := &stubSampler{colors: map[string]domain.RGB{"a": {}}}
	analyser := NewColorAnalyser(nil, sampler, memory.NewColorCacheStore(), 0)

	task := analyser.Analyse([]domain.Emoji{
		{Glyph: "a", Unicode: "U+0061"},
		{Glyph: "b", Unicode: "U+0062"},
		{Glyph: "c", Unicode: "U+0063"},
	})

	var updates int
	for range task.Progress() {
		updates++
	}
	entries, err := task.Wait()

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExternalService)
	assert.Nil(t, entries)
	assert.Equal(t, 1, updates)
	assert.Equal(t, []string{"a", "b"}, sampler.calls)
}

func TestColorAnalyser_WaitWithoutReadingProgress(t *testing.T) {
	sampler := &stubSampler{colors: map[string]domain.RGB{"a": {}, "b": {R: 0xff, G: 0xff, B: 0xff}}}
	analyser := NewColorAnalyser(nil, sampler, memory.NewColorCacheStore(), 1000)

	task := analyser.Analyse([]domain.Emoji{{Glyph: "a"}, {Glyph: "b"}})
	entries, err := task.Wait()

	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Black", entries[0].Color)
	assert.Equal(t, "White", entries[1].Color)
}

func TestColorAnalyser_EmptyBatch(t *testing.T) {
	analyser := NewColorAnalyser(nil, &stubSampler{}, memory.NewColorCacheStore(), 0)

	task := analyser.Analyse(nil)
	entries, err := task.Wait()

	require.NoError(t, err)
	assert.Empty(t, entries)
	_, open := <-task.Progress()
	assert.False(t, open)
}

func TestColorAnalyser_Start_NoSampler(t *testing.T) {
	in := newTestInputs(t)
	analyser := NewColorAnalyser(in.catalogue(), nil, memory.NewColorCacheStore(), 0)

	_, err := analyser.Start(context.Background())

	assert.ErrorIs(t, err, domain.ErrExternalService)
}

func TestProgress_Fraction(t *testing.T) {
	assert.InDelta(t, 0.5, domain.Progress{Current: 1, Total: 2}.Fraction(), 1e-9)
	assert.Zero(t, domain.Progress{}.Fraction())
}
