package text

import (
	"image"
	"image/color"
	"image/draw"
)

// GlyphAtlas is the font texture: glyph coverage masks packed into one
// premultiplied RGBA image.
//
// The texel at (0,0) is always opaque white so untextured geometry can
// sample it (see core.WhiteUV).
//
// GlyphAtlas is not safe for concurrent use; the Fonts backends guard it.
type GlyphAtlas struct {
	img     *image.RGBA
	shelves shelfAllocator
	version uint64
	dirty   image.Rectangle
}

// NewGlyphAtlas creates an atlas of the given size in texels.
func NewGlyphAtlas(width, height, padding int) *GlyphAtlas {
	a := &GlyphAtlas{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		shelves: newShelfAllocator(width, height, padding),
	}
	a.reserveWhite()
	return a
}

func (a *GlyphAtlas) reserveWhite() {
	x, y, _ := a.shelves.allocate(1, 1)
	a.img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	a.markDirty(image.Rect(x, y, x+1, y+1))
}

// Image returns the atlas pixels. The image is updated in place as glyphs
// are added; Version tells when it changed.
func (a *GlyphAtlas) Image() *image.RGBA {
	return a.img
}

// Size returns the atlas dimensions in texels.
func (a *GlyphAtlas) Size() [2]int {
	b := a.img.Bounds()
	return [2]int{b.Dx(), b.Dy()}
}

// Version is incremented every time pixels change.
func (a *GlyphAtlas) Version() uint64 {
	return a.version
}

// TakeDirty returns the region written since the last call and clears it.
// An empty rectangle means nothing changed.
func (a *GlyphAtlas) TakeDirty() image.Rectangle {
	r := a.dirty
	a.dirty = image.Rectangle{}
	return r
}

// Utilization returns the fraction of the atlas covered by glyph images.
func (a *GlyphAtlas) Utilization() float64 {
	return a.shelves.utilization()
}

// Add copies an alpha mask into the atlas as premultiplied white and
// returns the texels it occupies.
func (a *GlyphAtlas) Add(mask image.Image, bounds image.Rectangle, maskp image.Point) (image.Rectangle, error) {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, nil
	}
	x, y, ok := a.shelves.allocate(w, h)
	if !ok {
		size := a.Size()
		return image.Rectangle{}, &AtlasFullError{
			Width: w, Height: h,
			AtlasWidth: size[0], AtlasHeight: size[1],
		}
	}
	dst := image.Rect(x, y, x+w, y+h)
	draw.DrawMask(a.img, dst, image.White, image.Point{}, mask, maskp, draw.Src)
	a.markDirty(dst)
	return dst, nil
}

// Reset clears every glyph image, keeping the white texel.
func (a *GlyphAtlas) Reset() {
	clear(a.img.Pix)
	a.shelves.reset()
	a.reserveWhite()
	a.markDirty(a.img.Bounds())
}

func (a *GlyphAtlas) markDirty(r image.Rectangle) {
	a.dirty = a.dirty.Union(r)
	a.version++
}

// shelfAllocator packs rectangles in horizontal shelves. Each shelf is as
// tall as its tallest item; items go left to right until the shelf is
// full, then a new shelf is opened below.
type shelfAllocator struct {
	width    int
	height   int
	padding  int
	shelves  []shelf
	usedArea int
}

type shelf struct {
	y      int
	height int
	x      int
}

func newShelfAllocator(width, height, padding int) shelfAllocator {
	return shelfAllocator{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate returns the top-left of a free w×h area, or false when full.
func (a *shelfAllocator) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + a.padding
	paddedH := h + a.padding

	for i := range a.shelves {
		s := &a.shelves[i]
		if s.x+paddedW > a.width {
			continue
		}
		if h > s.height {
			// Only the last shelf can grow.
			if i != len(a.shelves)-1 || s.y+paddedH > a.height {
				continue
			}
			s.height = h
		}
		x, y = s.x, s.y
		s.x += paddedW
		a.usedArea += w * h
		return x, y, true
	}

	newY := 0
	if n := len(a.shelves); n > 0 {
		last := a.shelves[n-1]
		newY = last.y + last.height + a.padding
	}
	if newY+paddedH > a.height || paddedW > a.width+a.padding {
		return -1, -1, false
	}
	a.shelves = append(a.shelves, shelf{y: newY, height: h, x: paddedW})
	a.usedArea += w * h
	return 0, newY, true
}

func (a *shelfAllocator) reset() {
	a.shelves = a.shelves[:0]
	a.usedArea = 0
}

func (a *shelfAllocator) utilization() float64 {
	if a.width <= 0 || a.height <= 0 {
		return 0
	}
	return float64(a.usedArea) / float64(a.width*a.height)
}
