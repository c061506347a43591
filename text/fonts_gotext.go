package text

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// GoTextFonts implements Fonts with github.com/go-text/typesetting.
// Advances and vertical metrics come from the font tables; pair kerning is
// measured by shaping the pair with HarfBuzz, so GPOS kerning is honored.
//
// GoTextFonts produces no glyph images: every UVRect is empty and the
// texture is a single texel. Use it to measure and lay out text.
//
// GoTextFonts is safe for concurrent use.
type GoTextFonts struct {
	ppp float32

	mu     sync.Mutex
	faces  map[FontFamily]*gtFace
	shaper shaping.HarfbuzzShaper
}

// gtFace holds a parsed font and what has been measured from it, in
// font units.
type gtFace struct {
	face    *font.Face
	upem    float32
	extents font.FontExtents
	runes   map[GlyphID]rune
	kerning map[[2]GlyphID]float32
}

// NewGoTextFonts parses the fonts. The Go fonts are used for families not
// given with WithFamilyFont.
func NewGoTextFonts(opts ...FontsOption) (*GoTextFonts, error) {
	cfg := newFontsConfig(opts)

	sources := map[FontFamily][]byte{
		FamilyProportional: goregular.TTF,
		FamilyMonospace:    gomono.TTF,
	}
	for family, data := range cfg.families {
		sources[family] = data
	}

	f := &GoTextFonts{
		ppp:   cfg.pixelsPerPoint,
		faces: make(map[FontFamily]*gtFace, len(sources)),
	}
	for family, data := range sources {
		if len(data) == 0 {
			return nil, fmt.Errorf("text: %s font: %w", family, ErrEmptyFontData)
		}
		face, err := font.ParseTTF(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("text: parse %s font: %w", family, err)
		}
		extents, ok := face.FontHExtents()
		if !ok {
			upem := float32(face.Upem())
			extents = font.FontExtents{Ascender: upem * 0.8, Descender: -upem * 0.2}
		}
		f.faces[family] = &gtFace{
			face:    face,
			upem:    float32(face.Upem()),
			extents: extents,
			runes:   make(map[GlyphID]rune),
			kerning: make(map[[2]GlyphID]float32),
		}
	}
	return f, nil
}

// PixelsPerPoint implements Fonts.
func (f *GoTextFonts) PixelsPerPoint() float32 {
	return f.ppp
}

// TextureSize implements Fonts.
func (f *GoTextFonts) TextureSize() [2]int {
	return [2]int{1, 1}
}

// RowHeight implements Fonts.
func (f *GoTextFonts) RowHeight(id FontID) float32 {
	face := f.faceFor(id)
	e := face.extents
	return (e.Ascender - e.Descender + e.LineGap) * id.Size / face.upem
}

// Ascent implements Fonts.
func (f *GoTextFonts) Ascent(id FontID) float32 {
	face := f.faceFor(id)
	return face.extents.Ascender * id.Size / face.upem
}

// GlyphInfo implements Fonts.
func (f *GoTextFonts) GlyphInfo(id FontID, c rune) GlyphInfo {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceFor(id)
	r, gid := face.lookup(c)
	face.runes[GlyphID(gid)] = r
	return GlyphInfo{
		ID:           GlyphID(gid),
		AdvanceWidth: face.face.HorizontalAdvance(gid) * id.Size / face.upem,
		Ascent:       face.extents.Ascender * id.Size / face.upem,
	}
}

// PairKerning implements Fonts. Both glyphs must have been returned by
// GlyphInfo before; unknown glyphs have no kerning.
func (f *GoTextFonts) PairKerning(id FontID, left, right GlyphID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceFor(id)
	pair := [2]GlyphID{left, right}
	units, ok := face.kerning[pair]
	if !ok {
		units = f.measureKerning(face, pair)
		face.kerning[pair] = units
	}
	return units * id.Size / face.upem
}

// measureKerning shapes the pair at one pixel per font unit and returns
// how much the shaped advance differs from the nominal advances.
// Must hold mu.
func (f *GoTextFonts) measureKerning(face *gtFace, pair [2]GlyphID) float32 {
	l, lok := face.runes[pair[0]]
	r, rok := face.runes[pair[1]]
	if !lok || !rok {
		return 0
	}
	runes := []rune{l, r}
	out := f.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face.face,
		Size:      fixed.I(int(face.upem)),
		Script:    language.LookupScript(l),
		Language:  language.NewLanguage("en"),
	})
	if len(out.Glyphs) != 2 {
		// Ligature or decomposition: not a kerning pair.
		return 0
	}
	nominal := face.face.HorizontalAdvance(font.GID(pair[0])) + face.face.HorizontalAdvance(font.GID(pair[1]))
	return float32(out.Advance)/64 - nominal
}

// faceFor returns the face of the family, or the proportional one.
func (f *GoTextFonts) faceFor(id FontID) *gtFace {
	if face, ok := f.faces[id.Family]; ok {
		return face
	}
	return f.faces[FamilyProportional]
}

// lookup returns the character to measure for c and its glyph, using a
// replacement character when the font lacks c.
func (face *gtFace) lookup(c rune) (rune, font.GID) {
	if gid, ok := face.face.NominalGlyph(c); ok {
		return c, gid
	}
	for _, r := range replacementChars {
		if gid, ok := face.face.NominalGlyph(r); ok {
			return r, gid
		}
	}
	return c, 0
}
