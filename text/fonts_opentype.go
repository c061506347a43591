package text

import (
	"errors"
	"fmt"
	"image"
	"math"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
)

// replacementChars are tried in order when a font has no glyph for a
// character.
var replacementChars = [...]rune{'\uFFFD', '?'}

// OpenTypeFonts implements Fonts with golang.org/x/image/font/opentype.
// Glyph coverage is rasterized on first use into a GlyphAtlas.
//
// OpenTypeFonts is safe for concurrent use.
type OpenTypeFonts struct {
	ppp      float32
	families map[FontFamily]*sfnt.Font

	mu    sync.Mutex
	faces map[faceKey]*otFace
	atlas *GlyphAtlas
}

type faceKey struct {
	family FontFamily
	ppem   fixed.Int26_6
}

// otFace is one font at one pixel size.
type otFace struct {
	sfnt   *sfnt.Font
	face   font.Face
	ppem   fixed.Int26_6
	buf    sfnt.Buffer
	glyphs map[rune]GlyphInfo

	// In points.
	rowHeight float32
	ascent    float32
	ascentPx  int
}

// NewOpenTypeFonts parses the fonts and creates an empty atlas.
// The Go fonts are used for families not given with WithFamilyFont.
func NewOpenTypeFonts(opts ...FontsOption) (*OpenTypeFonts, error) {
	cfg := newFontsConfig(opts)

	sources := map[FontFamily][]byte{
		FamilyProportional: goregular.TTF,
		FamilyMonospace:    gomono.TTF,
	}
	for family, data := range cfg.families {
		sources[family] = data
	}

	f := &OpenTypeFonts{
		ppp:      cfg.pixelsPerPoint,
		families: make(map[FontFamily]*sfnt.Font, len(sources)),
		faces:    make(map[faceKey]*otFace),
	}
	for family, data := range sources {
		if len(data) == 0 {
			return nil, fmt.Errorf("text: %s font: %w", family, ErrEmptyFontData)
		}
		parsed, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("text: parse %s font: %w", family, err)
		}
		f.families[family] = parsed
	}

	if cfg.atlasWidth < 1 || cfg.atlasHeight < 1 {
		return nil, &AtlasFullError{Width: 1, Height: 1, AtlasWidth: cfg.atlasWidth, AtlasHeight: cfg.atlasHeight}
	}
	f.atlas = NewGlyphAtlas(cfg.atlasWidth, cfg.atlasHeight, cfg.atlasPadding)
	return f, nil
}

// PixelsPerPoint implements Fonts.
func (f *OpenTypeFonts) PixelsPerPoint() float32 {
	return f.ppp
}

// TextureSize implements Fonts.
func (f *OpenTypeFonts) TextureSize() [2]int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.atlas.Size()
}

// ReadAtlas calls fn with the atlas while holding the lock, so the image
// can be uploaded without racing glyph rasterization.
func (f *OpenTypeFonts) ReadAtlas(fn func(*GlyphAtlas)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn(f.atlas)
}

// RowHeight implements Fonts.
func (f *OpenTypeFonts) RowHeight(id FontID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faceFor(id).rowHeight
}

// Ascent implements Fonts.
func (f *OpenTypeFonts) Ascent(id FontID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.faceFor(id).ascent
}

// GlyphInfo implements Fonts. The glyph image is added to the atlas the
// first time a character is requested.
func (f *OpenTypeFonts) GlyphInfo(id FontID, c rune) GlyphInfo {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceFor(id)
	if info, ok := face.glyphs[c]; ok {
		return info
	}
	info := f.rasterize(face, c)
	face.glyphs[c] = info
	return info
}

// PairKerning implements Fonts.
func (f *OpenTypeFonts) PairKerning(id FontID, left, right GlyphID) float32 {
	f.mu.Lock()
	defer f.mu.Unlock()

	face := f.faceFor(id)
	k, err := face.sfnt.Kern(&face.buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), face.ppem, font.HintingNone)
	if err != nil {
		if !errors.Is(err, sfnt.ErrNotFound) {
			debug.Logger().Debug("text: kerning lookup failed", "err", err)
		}
		return 0
	}
	return fixedToFloat(k) / f.ppp
}

// faceFor returns the face for id, creating it if needed. Must hold mu.
func (f *OpenTypeFonts) faceFor(id FontID) *otFace {
	parsed, ok := f.families[id.Family]
	if !ok {
		parsed = f.families[FamilyProportional]
	}
	ppem := fixed.Int26_6(math.Round(float64(id.Size * f.ppp * 64)))
	if ppem < 64 {
		ppem = 64
	}
	key := faceKey{family: id.Family, ppem: ppem}
	if face, ok := f.faces[key]; ok {
		return face
	}

	face := &otFace{
		sfnt:   parsed,
		ppem:   ppem,
		glyphs: make(map[rune]GlyphInfo),
	}
	otf, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    fixedToFloat64(ppem),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		// Only fails for invalid options, which faceFor never builds.
		debug.Assert(false, "text: opentype face: %v", err)
	}
	face.face = otf

	m, err := parsed.Metrics(&face.buf, ppem, font.HintingFull)
	if err != nil {
		debug.Logger().Warn("text: font metrics unavailable", "err", err)
		m = font.Metrics{Height: ppem, Ascent: ppem * 4 / 5}
	}
	face.ascentPx = m.Ascent.Ceil()
	face.ascent = float32(face.ascentPx) / f.ppp
	face.rowHeight = float32(m.Height.Ceil()) / f.ppp

	f.faces[key] = face
	return face
}

// rasterize measures c and copies its coverage mask into the atlas.
// Must hold mu.
func (f *OpenTypeFonts) rasterize(face *otFace, c rune) GlyphInfo {
	r, gid := face.lookup(c)
	info := GlyphInfo{ID: GlyphID(gid), Ascent: face.ascent}

	if face.face == nil {
		return info
	}
	dr, mask, maskp, advance, ok := face.face.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return info
	}
	info.AdvanceWidth = fixedToFloat(advance) / f.ppp

	if dr.Empty() || mask == nil {
		return info
	}
	texels, err := f.atlas.Add(mask, dr, maskp)
	if err != nil {
		debug.Logger().Warn("text: glyph dropped", "char", string(c), "err", err)
		return info
	}

	info.UVRect = UVRect{
		Offset: core.V2(
			float32(dr.Min.X)/f.ppp,
			float32(face.ascentPx+dr.Min.Y)/f.ppp,
		),
		Size: core.V2(float32(dr.Dx())/f.ppp, float32(dr.Dy())/f.ppp),
		Min:  texelCoord(texels.Min),
		Max:  texelCoord(texels.Max),
	}
	return info
}

// lookup returns the character to draw for c and its glyph index, using a
// replacement character when the font lacks c.
func (face *otFace) lookup(c rune) (rune, sfnt.GlyphIndex) {
	if gid, err := face.sfnt.GlyphIndex(&face.buf, c); err == nil && gid != 0 {
		return c, gid
	}
	for _, r := range replacementChars {
		if gid, err := face.sfnt.GlyphIndex(&face.buf, r); err == nil && gid != 0 {
			return r, gid
		}
	}
	return c, 0
}

func texelCoord(p image.Point) [2]uint16 {
	return [2]uint16{uint16(p.X), uint16(p.Y)}
}

func fixedToFloat(x fixed.Int26_6) float32 {
	return float32(x) / 64
}

func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
