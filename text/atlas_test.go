package text

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func uniformMask(w, h int, alpha uint8) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for i := range m.Pix {
		m.Pix[i] = alpha
	}
	return m
}

func TestGlyphAtlasWhiteTexel(t *testing.T) {
	a := NewGlyphAtlas(16, 16, 1)
	if got := a.Image().RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("texel (0,0) = %v, want opaque white", got)
	}
	if got := a.Size(); got != [2]int{16, 16} {
		t.Errorf("Size = %v", got)
	}
}

func TestGlyphAtlasAdd(t *testing.T) {
	a := NewGlyphAtlas(16, 16, 1)
	a.TakeDirty()
	v := a.Version()

	r, err := a.Add(uniformMask(4, 4, 0x80), image.Rect(0, 0, 4, 4), image.Point{})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if r.Dx() != 4 || r.Dy() != 4 {
		t.Fatalf("rect = %v, want 4x4", r)
	}
	if r.Overlaps(image.Rect(0, 0, 1, 1)) {
		t.Errorf("rect %v overlaps the white texel", r)
	}
	want := color.RGBA{0x80, 0x80, 0x80, 0x80}
	if got := a.Image().RGBAAt(r.Min.X, r.Min.Y); got != want {
		t.Errorf("pixel = %v, want premultiplied %v", got, want)
	}
	if a.Version() == v {
		t.Error("version not bumped")
	}
	if d := a.TakeDirty(); !r.In(d) {
		t.Errorf("dirty %v does not cover %v", d, r)
	}
	if d := a.TakeDirty(); !d.Empty() {
		t.Errorf("second TakeDirty = %v, want empty", d)
	}
	if a.Utilization() <= 0 {
		t.Error("utilization not tracked")
	}
}

func TestGlyphAtlasEmptyMask(t *testing.T) {
	a := NewGlyphAtlas(16, 16, 1)
	r, err := a.Add(nil, image.Rectangle{}, image.Point{})
	if err != nil || !r.Empty() {
		t.Errorf("Add(empty) = %v, %v", r, err)
	}
}

func TestGlyphAtlasFull(t *testing.T) {
	a := NewGlyphAtlas(16, 16, 1)
	mask := uniformMask(5, 5, 0xFF)

	var err error
	for range 100 {
		if _, err = a.Add(mask, mask.Rect, image.Point{}); err != nil {
			break
		}
	}
	var full *AtlasFullError
	if !errors.As(err, &full) {
		t.Fatalf("err = %v, want *AtlasFullError", err)
	}
	if full.Width != 5 || full.AtlasWidth != 16 {
		t.Errorf("error = %+v", full)
	}

	a.Reset()
	if got := a.Image().RGBAAt(0, 0); got.A != 255 {
		t.Error("Reset dropped the white texel")
	}
	if got := a.Image().RGBAAt(8, 8); got.A != 0 {
		t.Errorf("Reset left pixel %v", got)
	}
	if _, err := a.Add(mask, mask.Rect, image.Point{}); err != nil {
		t.Errorf("Add after Reset: %v", err)
	}
}

func TestShelfAllocatorRejectsOversize(t *testing.T) {
	s := newShelfAllocator(10, 10, 0)
	if _, _, ok := s.allocate(11, 1); ok {
		t.Error("allocated wider than the atlas")
	}
	if _, _, ok := s.allocate(1, 11); ok {
		t.Error("allocated taller than the atlas")
	}
	x, y, ok := s.allocate(10, 10)
	if !ok || x != 0 || y != 0 {
		t.Errorf("allocate(10,10) = %d,%d,%v", x, y, ok)
	}
	if _, _, ok := s.allocate(1, 1); ok {
		t.Error("allocated in a full atlas")
	}
}
