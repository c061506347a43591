package text

import (
	"unicode/utf8"

	"github.com/gogpu/paint/core"
)

// Glyph is one laid out character.
type Glyph struct {
	// Chr is the character. Newlines are never glyphs when the job breaks
	// on newlines.
	Chr rune

	// Pos is the top-left of the glyph's line box, relative to the galley.
	Pos core.Point

	// Size is the advance width and line height.
	Size core.Vec2

	// Ascent of the font, in points.
	Ascent float32

	// UVRect locates the glyph image.
	UVRect UVRect

	// SectionIndex points into LayoutJob.Sections.
	SectionIndex int
}

// MaxX returns the right edge of the glyph's advance.
func (g Glyph) MaxX() float32 {
	return g.Pos.X + g.Size.X
}

// LogicalRect returns the glyph's line box.
func (g Glyph) LogicalRect() core.Rect {
	return core.RectFromMinSize(g.Pos, g.Size)
}

// VertexRange is a half-open range of vertex indices.
type VertexRange struct {
	Start, End int
}

// RowVisuals is the pre-tessellated mesh of a row.
type RowVisuals struct {
	// Mesh has UVs in atlas texels; the painter normalizes them.
	Mesh core.Triangles

	// MeshBounds is the bounding box of Mesh, relative to the galley.
	MeshBounds core.Rect

	// GlyphVertexRange is the part of Mesh that draws glyph images.
	// Backgrounds come before it, underline and strikethrough after.
	GlyphVertexRange VertexRange
}

// Row is one line of laid out text.
type Row struct {
	// SectionIndexAtStart is the section of the first glyph, or of the
	// paragraph if the row is empty.
	SectionIndexAtStart int

	// Glyphs excludes a trailing newline.
	Glyphs []Glyph

	// XOffsets holds the x of every cursor position in the row:
	// len(Glyphs)+1 entries, never empty.
	XOffsets []float32

	// Rect is the logical bounds of the row relative to the galley. Its
	// vertical extent is the row's slot in the galley.
	Rect core.Rect

	// Ascent is the distance from the row top to the baseline of the
	// tallest glyph.
	Ascent float32

	Visuals RowVisuals

	// EndsWithNewline is true for every row that ends a paragraph except
	// the last one.
	EndsWithNewline bool
}

// CharCountExcludingNewline returns the number of cursor positions past
// the start of the row.
func (r *Row) CharCountExcludingNewline() int {
	return len(r.XOffsets) - 1
}

// CharCountIncludingNewline also counts the newline ending the row.
func (r *Row) CharCountIncludingNewline() int {
	n := r.CharCountExcludingNewline()
	if r.EndsWithNewline {
		n++
	}
	return n
}

// MinY returns the top of the row.
func (r *Row) MinY() float32 { return r.Rect.Min.Y }

// MaxY returns the bottom of the row.
func (r *Row) MaxY() float32 { return r.Rect.Max.Y }

// Height returns the row height.
func (r *Row) Height() float32 { return r.Rect.Height() }

// CharAt returns the column closest to x.
func (r *Row) CharAt(x float32) int {
	for i, g := range r.Glyphs {
		if x < g.LogicalRect().Center().X {
			return i
		}
	}
	return r.CharCountExcludingNewline()
}

// XOffset returns the x coordinate of a column, clamped to the row.
func (r *Row) XOffset(column int) float32 {
	column = min(max(column, 0), len(r.XOffsets)-1)
	return r.XOffsets[column]
}

// Galley is laid out text, ready to paint and to place cursors in.
// A Galley is immutable and safe to share between goroutines.
type Galley struct {
	// Job is the layout input. Do not modify.
	Job *LayoutJob

	// Rows is never empty for a laid out galley.
	Rows []Row

	// Elided is true when text was cut off by the row limit.
	Elided bool

	// Rect bounds all rows. Min.Y is 0; Min.X may be negative for
	// centered or right-aligned text.
	Rect core.Rect

	// MeshBounds bounds all row meshes.
	MeshBounds core.Rect

	NumVertices int
	NumIndices  int

	// PixelsPerPoint is the scale the galley was laid out for.
	PixelsPerPoint float32
}

// Text returns the laid out text.
func (g *Galley) Text() string {
	return g.Job.Text
}

// Size returns the size of the galley.
func (g *Galley) Size() core.Vec2 {
	return g.Rect.Size()
}

// IsEmpty reports whether the galley has no characters.
func (g *Galley) IsEmpty() bool {
	return g.Job.Text == ""
}

// CheckRowSum verifies that the rows account for every character of the
// text. Elided galleys are exempt.
func (g *Galley) CheckRowSum() error {
	if g.Elided {
		return nil
	}
	sum := 0
	for i := range g.Rows {
		sum += g.Rows[i].CharCountIncludingNewline()
	}
	want := coveredRuneCount(g.Job)
	if sum != want {
		return &RowSumError{RowChars: sum, TextChars: want}
	}
	return nil
}

// coveredRuneCount counts the characters covered by sections.
func coveredRuneCount(job *LayoutJob) int {
	n := 0
	for _, s := range job.Sections {
		n += utf8.RuneCountInString(job.Text[s.ByteRange.Start:s.ByteRange.End])
	}
	return n
}
