package glyphimage

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
)

func solid(c color.Color, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestReduce_SolidColor(t *testing.T) {
	rgb, err := Reduce(solid(color.RGBA{R: 255, A: 255}, 8))

	require.NoError(t, err)
	assert.Equal(t, domain.RGB{R: 255}, rgb)
}

func TestReduce_IgnoresTransparentCanvas(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for y := 4; y < 12; y++ {
		for x := 4; x < 12; x++ {
			img.Set(x, y, color.RGBA{B: 255, A: 255})
		}
	}

	rgb, err := Reduce(img)

	require.NoError(t, err)
	assert.InDelta(t, 0, int(rgb.R), 2)
	assert.InDelta(t, 0, int(rgb.G), 2)
	assert.InDelta(t, 255, int(rgb.B), 2)
}

func TestReduce_FullyTransparent(t *testing.T) {
	_, err := Reduce(image.NewRGBA(image.Rect(0, 0, 4, 4)))

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSampler_Sample(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "0023-20E3.png"), solid(color.RGBA{G: 128, A: 255}, 4))

	rgb, err := NewSampler(dir).Sample(context.Background(), domain.Emoji{Unicode: "U+0023 U+20E3"})

	require.NoError(t, err)
	assert.Equal(t, domain.RGB{G: 128}, rgb)
}

func TestSampler_LowerCaseFileName(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "1f49b.png"), solid(color.RGBA{R: 255, G: 255, A: 255}, 4))

	rgb, err := NewSampler(dir).Sample(context.Background(), domain.Emoji{Unicode: "U+1F49B"})

	require.NoError(t, err)
	assert.Equal(t, domain.RGB{R: 255, G: 255}, rgb)
}

func TestSampler_MissingImage(t *testing.T) {
	_, err := NewSampler(t.TempDir()).Sample(context.Background(), domain.Emoji{Unicode: "U+1F600"})

	assert.ErrorIs(t, err, domain.ErrMissingInput)
}

func TestSampler_CorruptImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1F600.png"), []byte("not a png"), 0600))

	_, err := NewSampler(dir).Sample(context.Background(), domain.Emoji{Unicode: "U+1F600"})

	assert.Error(t, err)
}

func TestSampler_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSampler(t.TempDir()).Sample(ctx, domain.Emoji{Unicode: "U+1F600"})

	assert.ErrorIs(t, err, context.Canceled)
}
