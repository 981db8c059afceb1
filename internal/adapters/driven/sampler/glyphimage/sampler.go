// Package glyphimage samples glyph colors from pre-rendered glyph images.
//
// Images are looked up in a directory by the emoji's web ID, e.g.
// "1F600.png" or "0023-20E3.webp". Lower-case file names are accepted too.
package glyphimage

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png" // PNG decoder
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/custodia-labs/emoji-ontology/internal/core/domain"
	"github.com/custodia-labs/emoji-ontology/internal/core/ports/driven"
)

// Ensure Sampler implements the interface.
var _ driven.ColorSampler = (*Sampler)(nil)

// extensions are tried in order.
var extensions = []string{".png", ".webp"}

// Sampler reduces a glyph image to its alpha-weighted average color.
type Sampler struct {
	dir string
}

// NewSampler creates a sampler reading images from dir.
func NewSampler(dir string) *Sampler {
	return &Sampler{dir: dir}
}

// Sample returns the dominant color of the emoji's glyph image.
func (s *Sampler) Sample(ctx context.Context, emoji domain.Emoji) (domain.RGB, error) {
	if err := ctx.Err(); err != nil {
		return domain.RGB{}, err
	}

	path, err := s.find(emoji.WebID())
	if err != nil {
		return domain.RGB{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return domain.RGB{}, fmt.Errorf("open glyph image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return domain.RGB{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	return Reduce(img)
}

// find locates the image file for webID.
func (s *Sampler) find(webID string) (string, error) {
	for _, name := range []string{webID, strings.ToLower(webID)} {
		for _, ext := range extensions {
			path := filepath.Join(s.dir, name+ext)
			_, err := os.Stat(path)
			if err == nil {
				return path, nil
			}
			if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("stat glyph image: %w", err)
			}
		}
	}
	return "", fmt.Errorf("%w: no glyph image for %s in %s", domain.ErrMissingInput, webID, s.dir)
}

// Reduce scales img down to a single pixel and returns its color with
// transparency factored out, so empty canvas around a glyph does not
// wash the color out. A fully transparent image is an error.
func Reduce(img image.Image) (domain.RGB, error) {
	dst := image.NewRGBA(image.Rect(0, 0, 1, 1))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)

	c := dst.RGBAAt(0, 0)
	if c.A == 0 {
		return domain.RGB{}, fmt.Errorf("%w: glyph image is fully transparent", domain.ErrInvalidInput)
	}

	return domain.RGB{
		R: unpremultiply(c.R, c.A),
		G: unpremultiply(c.G, c.A),
		B: unpremultiply(c.B, c.A),
	}, nil
}

func unpremultiply(v, a uint8) uint8 {
	out := (uint32(v)*255 + uint32(a)/2) / uint32(a)
	if out > 255 {
		return 255
	}
	return uint8(out)
}
