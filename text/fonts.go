package text

import "github.com/gogpu/paint/core"

// FontFamily selects a family of fonts.
type FontFamily uint8

const (
	// FamilyProportional is the default UI font.
	FamilyProportional FontFamily = iota

	// FamilyMonospace is used for code.
	FamilyMonospace
)

// String returns the family name.
func (f FontFamily) String() string {
	switch f {
	case FamilyProportional:
		return "Proportional"
	case FamilyMonospace:
		return "Monospace"
	default:
		return unknownStr
	}
}

const unknownStr = "Unknown"

// FontID names a font at a size in points.
type FontID struct {
	Size   float32
	Family FontFamily
}

// Proportional returns the proportional font at size.
func Proportional(size float32) FontID {
	return FontID{Size: size, Family: FamilyProportional}
}

// Monospace returns the monospace font at size.
func Monospace(size float32) FontID {
	return FontID{Size: size, Family: FamilyMonospace}
}

// GlyphID is a font-specific glyph index. Zero is the missing glyph.
type GlyphID uint32

// UVRect locates a glyph image relative to the glyph position and in the
// font atlas.
type UVRect struct {
	// Offset from the top-left of the glyph's line box to the top-left of
	// the glyph image, in points.
	Offset core.Vec2

	// Size of the glyph image in points.
	Size core.Vec2

	// Min and Max are the atlas texels covered by the image.
	Min, Max [2]uint16
}

// IsNothing reports whether there is no image to draw (e.g. a space).
func (r UVRect) IsNothing() bool {
	return r.Min == r.Max
}

// GlyphInfo is what layout needs to know about one character.
type GlyphInfo struct {
	ID GlyphID

	// AdvanceWidth in points.
	AdvanceWidth float32

	// Ascent of the font providing the glyph, in points.
	Ascent float32

	UVRect UVRect
}

// Fonts provides glyph metrics to the layout engine.
//
// Implementations must be safe for concurrent use; layout of separate jobs
// may run on separate goroutines.
type Fonts interface {
	// PixelsPerPoint is the number of physical pixels per logical point.
	PixelsPerPoint() float32

	// GlyphInfo returns metrics for c, falling back to a replacement
	// glyph when the font lacks it.
	GlyphInfo(font FontID, c rune) GlyphInfo

	// PairKerning returns the extra advance between two glyphs, in points.
	PairKerning(font FontID, left, right GlyphID) float32

	// RowHeight returns the height of a row of text in points.
	RowHeight(font FontID) float32

	// Ascent returns the distance from the top of a row to the baseline.
	Ascent(font FontID) float32

	// TextureSize returns the size of the glyph atlas in texels.
	TextureSize() [2]int
}

// scale holds the pixel grid of a layout.
type scale float32

func (s scale) round(v float32) float32 {
	return core.RoundToPixel(v, float32(s))
}

func (s scale) floor(v float32) float32 {
	return core.FloorToPixel(v, float32(s))
}
