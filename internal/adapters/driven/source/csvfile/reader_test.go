package csvfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestReader_ReadTable(t *testing.T) {
	path := writeFile(t, "emoji.csv", "Unicode,Emoji,Description,Year,Nature,Annotations\n"+
		"U+1F600,😀,grinning face,2012,emoji,face; grin\n"+
		"U+263A,☺,\"smiling face, white\",1993,text,\n")

	rows, err := NewReader().ReadTable(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "grinning face", rows[0]["Description"])
	assert.Equal(t, "face; grin", rows[0]["Annotations"])
	assert.Equal(t, "smiling face, white", rows[1]["Description"])
	assert.Equal(t, "", rows[1]["Annotations"])
}

func TestReader_ReadTable_MissingFile(t *testing.T) {
	_, err := NewReader().ReadTable(context.Background(), filepath.Join(t.TempDir(), "nope.csv"))

	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestReader_ReadTable_CancelledContext(t *testing.T) {
	path := writeFile(t, "a.csv", "A\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewReader().ReadTable(ctx, path)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseTable_ShortAndLongRecords(t *testing.T) {
	rows, err := ParseTable(strings.NewReader("Annotation,Category\nface\nsmile,Person,extra\n"))

	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, hasCategory := rows[0]["Category"]
	assert.False(t, hasCategory, "short record omits trailing columns")
	assert.Equal(t, domain.Row{"Annotation": "smile", "Category": "Person"}, rows[1])
}

func TestParseTable_TrimsHeaderAndBOM(t *testing.T) {
	path := writeFile(t, "bom.csv", "\ufeff Annotation , Category\nface,Body\n")

	rows, err := NewReader().ReadTable(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []domain.Row{{"Annotation": "face", "Category": "Body"}}, rows)
}

func TestParseTable_Empty(t *testing.T) {
	rows, err := ParseTable(strings.NewReader(""))

	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseTable_CRLF(t *testing.T) {
	rows, err := ParseTable(strings.NewReader("A,B\r\n1,2\r\n"))

	require.NoError(t, err)
	assert.Equal(t, []domain.Row{{"A": "1", "B": "2"}}, rows)
}

func TestReader_ReadLines(t *testing.T) {
	path := writeFile(t, "sentiment.csv", "Emoji,Unicode\r\n😂,0x1f602\r\nlast")

	lines, err := NewReader().ReadLines(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, []string{"Emoji,Unicode", "😂,0x1f602", "last"}, lines)
}

func TestReader_ReadLines_MissingFile(t *testing.T) {
	_, err := NewReader().ReadLines(context.Background(), filepath.Join(t.TempDir(), "missing"))

	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestReader_ReadLines_LongLine(t *testing.T) {
	long := strings.Repeat("😂 1 ", 40000)
	path := writeFile(t, "usage.txt", "header\n"+long+"\n")

	lines, err := NewReader().ReadLines(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, long, lines[1])
}

func TestReader_ReadText(t *testing.T) {
	path := writeFile(t, "usage.txt", "Emoji usage\n😂 10 ❤️ 5\n")

	text, err := NewReader().ReadText(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Emoji usage\n😂 10 ❤️ 5\n", text)
}
