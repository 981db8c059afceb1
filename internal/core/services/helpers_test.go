package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/adapters/driven/source/csvfile"
	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

const testEmojiCSV = `Unicode,Emoji,Description,Year,Nature,Annotations
U+1F600,😀,grinning face,2015,emoji,face; grin
U+1F602,😂,face with tears of joy,2015,emoji,face; joy; tears
U+0023 U+20E3,#️⃣,keycap: #,2015,emoji,
`

const testCategoryCSV = `Annotation,Category
face,Body;Head
joy,Feeling
grin,-
tears,
`

const testSentimentCSV = `Emoji,Unicode codepoint,Occurrences,Position,Negative,Neutral,Positive
😂,0x1f602,1000,0.8,100,200,700
😀,0x1f600,2000,0.7,200,400,1400
broken,line
❤,0x2764,many,0.7,1,1,1
`

const testUsageText = "Emoji usage\n😂 300 😀 100 ❤ lots\n"

// writeFile writes content to name inside dir and returns the full path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// testInputs writes the fixture CSV files to a temporary directory.
type testInputs struct {
	dir       string
	emoji     string
	category  string
	sentiment string
}

func newTestInputs(t *testing.T) testInputs {
	t.Helper()
	dir := t.TempDir()
	return testInputs{
		dir:       dir,
		emoji:     writeFile(t, dir, "emoji.csv", testEmojiCSV),
		category:  writeFile(t, dir, "categories.csv", testCategoryCSV),
		sentiment: writeFile(t, dir, "sentiment.csv", testSentimentCSV),
	}
}

func (in testInputs) catalogue() *CatalogueService {
	return NewCatalogueService(csvfile.NewReader(), in.emoji)
}

// stubSampler returns a fixed color per glyph.
type stubSampler struct {
	colors map[string]domain.RGB
	calls  []string
}

func (s *stubSampler) Sample(_ context.Context, emoji domain.Emoji) (domain.RGB, error) {
	s.calls = append(s.calls, emoji.Glyph)
	c, ok := s.colors[emoji.Glyph]
	if !ok {
		return domain.RGB{}, errors.New("glyph not rendered")
	}
	return c, nil
}

// stubTemplate serves a template from memory.
type stubTemplate struct {
	text string
	err  error
}

func (s stubTemplate) Load(context.Context) (string, error) {
	return s.text, s.err
}

// stubProvider returns canned usage text.
type stubProvider struct {
	text string
	err  error
	url  string
}

func (p *stubProvider) Fetch(_ context.Context, url string) (string, error) {
	p.url = url
	return p.text, p.err
}
