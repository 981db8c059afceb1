package domain

import "fmt"

// RootColorClass is the OWL class every named color specialises.
const RootColorClass = "Colors"

// HasColorProperty is the object property linking an emoji to its color.
const HasColorProperty = "hasColor"

// RGB is an opaque 8-bit color sample.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NamedColor is one entry of the reference palette.
type NamedColor struct {
	// Name is the palette name, e.g. "Red".
	Name string

	// Reference is the fixed RGB value the name stands for.
	Reference RGB
}

// ClassName returns the OWL class of the color, e.g. "RedColor".
func (c NamedColor) ClassName() string {
	return ColorClassName(c.Name)
}

// ColorClassName returns the OWL class for a color name.
func ColorClassName(name string) string {
	return name + "Color"
}

// Palette returns the eleven reference colors in classification order.
// When two colors are equally distant from a sample the earlier one wins.
func Palette() []NamedColor {
	return []NamedColor{
		{Name: "Red", Reference: RGB{0xff, 0x00, 0x00}},
		{Name: "Blue", Reference: RGB{0x00, 0x00, 0xff}},
		{Name: "Yellow", Reference: RGB{0xff, 0xff, 0x00}},
		{Name: "Green", Reference: RGB{0x00, 0x80, 0x00}},
		{Name: "Purple", Reference: RGB{0x80, 0x00, 0x80}},
		{Name: "Orange", Reference: RGB{0xff, 0xa5, 0x00}},
		{Name: "Black", Reference: RGB{0x00, 0x00, 0x00}},
		{Name: "Brown", Reference: RGB{0xa5, 0x2a, 0x2a}},
		{Name: "White", Reference: RGB{0xff, 0xff, 0xff}},
		{Name: "Gray", Reference: RGB{0x80, 0x80, 0x80}},
		{Name: "Cyan", Reference: RGB{0x00, 0xff, 0xff}},
	}
}

// ColorEntry is a cached color classification for a glyph.
type ColorEntry struct {
	// Glyph is the emoji character the entry belongs to.
	Glyph string `yaml:"glyph"`

	// Color is the palette name.
	Color string `yaml:"color"`

	// RunID identifies the analysis batch that produced the entry.
	RunID string `yaml:"run_id,omitempty"`
}

// Progress reports how far a batch operation has advanced.
type Progress struct {
	Current int
	Total   int
}

// Fraction returns Current/Total in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Current) / float64(p.Total)
}
