package paint

import (
	"sync/atomic"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
)

// rowCullMargin is how far outside the clip rectangle a row may start and
// still be drawn, covering glyph overhang.
const rowCullMargin = 2

// warnedScaleChange limits the pixels-per-point mismatch warning to once per
// process.
var warnedScaleChange atomic.Bool

// TessellateText appends the pre-tessellated rows of a galley, skipping rows
// outside the clip rectangle.
func (t *Tessellator) TessellateText(s TextShape, out *core.Triangles) {
	g := s.Galley
	if g == nil || g.IsEmpty() {
		return
	}
	if g.PixelsPerPoint != t.pixelsPerPoint && warnedScaleChange.CompareAndSwap(false, true) {
		debug.Logger().Warn("paint: pixels per point changed between layout and tessellation; re-create text shapes",
			"layout", g.PixelsPerPoint,
			"tessellation", t.pixelsPerPoint)
	}

	pos := s.Pos
	if t.opts.RoundTextToPixels {
		pos = core.RoundPointToPixel(pos, t.pixelsPerPoint)
	}
	offset := pos.ToVec2()

	uvScale := core.V2(1, 1)
	if t.fontTexSize[0] > 0 && t.fontTexSize[1] > 0 {
		uvScale = core.V2(1/float32(t.fontTexSize[0]), 1/float32(t.fontTexSize[1]))
	}
	visible := t.clipRect.Expand(rowCullMargin)

	for i := range g.Rows {
		row := &g.Rows[i]
		mesh := &row.Visuals.Mesh
		if mesh.IsEmpty() {
			continue
		}
		if !visible.Intersects(row.Visuals.MeshBounds.Translate(offset)) {
			continue
		}

		base := uint32(len(out.Vertices))
		out.ReserveTriangles(len(mesh.Indices) / 3)
		out.ReserveVertices(len(mesh.Vertices))
		for _, idx := range mesh.Indices {
			out.Indices = append(out.Indices, base+idx)
		}
		glyphs := row.Visuals.GlyphVertexRange
		for j, v := range mesh.Vertices {
			v.Pos = v.Pos.Add(offset)
			v.UV = core.Pt(v.UV.X*uvScale.X, v.UV.Y*uvScale.Y)
			if !s.OverrideColor.IsTransparent() && glyphs.Start <= j && j < glyphs.End {
				v.Color = s.OverrideColor
			}
			out.Vertices = append(out.Vertices, v)
		}

		if !s.Underline.IsEmpty() {
			rect := row.Rect.Translate(offset)
			p := &t.scratchPath
			p.Clear()
			p.AddLineSegment([2]core.Point{rect.LeftBottom(), rect.RightBottom()})
			p.StrokeOpen(t.feathering, s.Underline, out)
		}
	}

	if t.opts.DebugPaintTextRects {
		rect := g.Rect.Translate(offset).Expand(0.5)
		t.TessellateRect(RectStroke(rect, core.CornerRadius{}, debugTextRectStroke), out)
	}
}
