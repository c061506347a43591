package text

import (
	"github.com/mattn/go-runewidth"
)

// CellFonts implements Fonts for a fixed grid of terminal cells. Every
// character is one cell wide, East Asian wide characters two, and
// combining marks zero. Font sizes and families are ignored.
//
// CellFonts is safe for concurrent use.
type CellFonts struct {
	ppp        float32
	cellWidth  float32
	cellHeight float32
	cond       *runewidth.Condition
}

// NewCellFonts returns cell metrics configured by WithCellSize,
// WithEastAsianAmbiguousWide and WithPixelsPerPoint.
func NewCellFonts(opts ...FontsOption) *CellFonts {
	cfg := newFontsConfig(opts)
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = cfg.ambiguousWide
	return &CellFonts{
		ppp:        cfg.pixelsPerPoint,
		cellWidth:  cfg.cellWidth,
		cellHeight: cfg.cellHeight,
		cond:       cond,
	}
}

// Cells returns the number of cells c occupies.
func (f *CellFonts) Cells(c rune) int {
	return f.cond.RuneWidth(c)
}

// PixelsPerPoint implements Fonts.
func (f *CellFonts) PixelsPerPoint() float32 { return f.ppp }

// TextureSize implements Fonts.
func (f *CellFonts) TextureSize() [2]int { return [2]int{1, 1} }

// RowHeight implements Fonts.
func (f *CellFonts) RowHeight(FontID) float32 { return f.cellHeight }

// Ascent implements Fonts.
func (f *CellFonts) Ascent(FontID) float32 { return f.cellHeight }

// PairKerning implements Fonts.
func (f *CellFonts) PairKerning(FontID, GlyphID, GlyphID) float32 { return 0 }

// GlyphInfo implements Fonts. The glyph ID is the character itself.
func (f *CellFonts) GlyphInfo(_ FontID, c rune) GlyphInfo {
	return GlyphInfo{
		ID:           GlyphID(c),
		AdvanceWidth: float32(f.Cells(c)) * f.cellWidth,
		Ascent:       f.cellHeight,
	}
}
