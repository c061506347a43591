package paint

import (
	"context"
	"log/slog"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
	"github.com/gogpu/paint/path"
)

// maxRectCoord bounds rectangle coordinates before tessellation, so an
// accidentally infinite rectangle still produces finite vertices.
const maxRectCoord = 1e7

var (
	debugClipRectStroke = core.NewStroke(2, core.RGB(150, 255, 150))
	debugTextRectStroke = core.NewStroke(0.5, core.Green)
)

// Tessellator converts shapes into triangle meshes.
//
// A Tessellator owns scratch buffers that are reused between shapes and is
// not safe for concurrent use. The meshes it returns are not referenced
// again and may be shared freely.
type Tessellator struct {
	pixelsPerPoint float32
	opts           Options
	fontTexSize    [2]int

	// feathering is the anti-aliasing ring width in points, 0 when off.
	feathering float32

	clipRect core.Rect

	scratchPoints []core.Point
	scratchPath   path.Path
}

// NewTessellator creates a tessellator for one frame.
// fontTexSize is the size of the font atlas in texels, used to normalize
// glyph texture coordinates.
func NewTessellator(pixelsPerPoint float32, opts Options, fontTexSize [2]int) *Tessellator {
	var feathering float32
	if opts.Feathering && pixelsPerPoint > 0 {
		feathering = opts.FeatheringSizeInPixels / pixelsPerPoint
	}
	return &Tessellator{
		pixelsPerPoint: pixelsPerPoint,
		opts:           opts,
		fontTexSize:    fontTexSize,
		feathering:     feathering,
		clipRect:       core.Everything,
	}
}

// SetClipRect sets the rectangle used for coarse culling by TessellateShape.
func (t *Tessellator) SetClipRect(r core.Rect) {
	t.clipRect = r
}

// TessellateShapes tessellates shapes in paint order. Consecutive shapes
// sharing a clip rectangle and texture end up in the same batch; empty
// batches are dropped.
func (t *Tessellator) TessellateShapes(shapes []ClippedShape) []ClippedTriangles {
	var out []ClippedTriangles
	for _, cs := range shapes {
		t.tessellateClipped(cs.ClipRect, cs.Shape, &out)
	}

	if t.opts.DebugPaintClipRects {
		out = t.addClipRects(out)
	}
	if t.opts.DebugIgnoreClipRects {
		for i := range out {
			out[i].ClipRect = core.Everything
		}
	}

	kept := out[:0]
	for _, ct := range out {
		if !ct.Triangles.IsEmpty() {
			kept = append(kept, ct)
		}
	}
	clear(out[len(kept):])
	out = kept

	vertices := 0
	for _, ct := range out {
		debug.Assert(ct.Triangles.IsValid(), "paint: tessellator produced an invalid mesh")
		vertices += len(ct.Triangles.Vertices)
	}
	if l := debug.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("paint: tessellated",
			"shapes", len(shapes),
			"batches", len(out),
			"vertices", vertices)
	}
	return out
}

func (t *Tessellator) tessellateClipped(clip core.Rect, shape Shape, out *[]ClippedTriangles) {
	if shape == nil || !clip.IsPositive() {
		return
	}
	if list, ok := shape.(ShapeList); ok {
		for _, s := range list {
			t.tessellateClipped(clip, s, out)
		}
		return
	}

	tex := shape.TextureID()
	n := len(*out)
	if n == 0 || (*out)[n-1].ClipRect != clip || (*out)[n-1].Triangles.Texture != tex {
		*out = append(*out, ClippedTriangles{ClipRect: clip, Triangles: core.NewTriangles(tex)})
	}
	t.clipRect = clip
	t.TessellateShape(shape, (*out)[len(*out)-1].Triangles)
}

// addClipRects follows every batch with an outline of its clip rectangle.
func (t *Tessellator) addClipRects(in []ClippedTriangles) []ClippedTriangles {
	t.clipRect = core.Everything
	out := make([]ClippedTriangles, 0, 2*len(in))
	for _, ct := range in {
		mesh := core.NewTriangles(core.FontTexture)
		t.TessellateRect(RectStroke(ct.ClipRect, core.CornerRadius{}, debugClipRectStroke), mesh)
		out = append(out, ct, ClippedTriangles{ClipRect: core.Everything, Triangles: mesh})
	}
	return out
}

// TessellateShape appends the triangles of shape to out. Lists are
// tessellated into out in order regardless of texture.
func (t *Tessellator) TessellateShape(shape Shape, out *core.Triangles) {
	switch s := shape.(type) {
	case NoopShape:
	case ShapeList:
		for _, sub := range s {
			t.TessellateShape(sub, out)
		}
	case CircleShape:
		t.TessellateCircle(s, out)
	case RectShape:
		t.TessellateRect(s, out)
	case PathShape:
		t.TessellatePath(s, out)
	case LineSegmentShape:
		t.TessellateLineSegment(s.Points, s.Stroke, out)
	case MeshShape:
		t.TessellateMesh(s.Mesh, out)
	case TextShape:
		t.TessellateText(s, out)
	case nil:
	default:
		debug.Assert(false, "paint: unknown shape %T", shape)
	}
}

// culled reports whether a shape with the given bounds is invisible in the
// current clip rectangle.
func (t *Tessellator) culled(bounds core.Rect) bool {
	return t.opts.CoarseTessellationCulling && !t.clipRect.Intersects(bounds)
}

// TessellateCircle appends a filled and stroked circle.
func (t *Tessellator) TessellateCircle(c CircleShape, out *core.Triangles) {
	if c.Radius <= 0 || t.culled(c.VisualBoundingRect()) {
		return
	}
	p := &t.scratchPath
	p.Clear()
	p.AddCircle(c.Center, c.Radius)
	p.Fill(t.feathering, c.Fill, out)
	p.StrokeClosed(t.feathering, c.Stroke, out)
}

// TessellateRect appends a filled and stroked rectangle.
func (t *Tessellator) TessellateRect(r RectShape, out *core.Triangles) {
	if t.culled(r.VisualBoundingRect()) {
		return
	}
	rect := r.Rect
	if rect.IsNegative() {
		return
	}
	rect.Min = rect.Min.AtLeast(core.Pt(-maxRectCoord, -maxRectCoord))
	rect.Max = rect.Max.AtMost(core.Pt(maxRectCoord, maxRectCoord))

	switch {
	case rect.Width() < t.feathering:
		// Too thin to fill: draw it as a vertical line.
		line := [2]core.Point{rect.CenterTop(), rect.CenterBottom()}
		if !r.Fill.IsTransparent() {
			t.TessellateLineSegment(line, core.NewStroke(rect.Width(), r.Fill), out)
		}
		t.TessellateLineSegment(line, r.Stroke, out)
	case rect.Height() < t.feathering:
		line := [2]core.Point{rect.LeftCenter(), rect.RightCenter()}
		if !r.Fill.IsTransparent() {
			t.TessellateLineSegment(line, core.NewStroke(rect.Height(), r.Fill), out)
		}
		t.TessellateLineSegment(line, r.Stroke, out)
	default:
		t.scratchPoints = path.RoundedRectangle(t.scratchPoints, rect, r.CornerRadius)
		p := &t.scratchPath
		p.Clear()
		p.AddLineLoop(t.scratchPoints)
		p.Fill(t.feathering, r.Fill, out)
		p.StrokeClosed(t.feathering, r.Stroke, out)
	}
}

// TessellatePath appends a polyline or polygon. Paths with fewer than two
// points are skipped.
func (t *Tessellator) TessellatePath(s PathShape, out *core.Triangles) {
	if len(s.Points) < 2 || t.culled(s.VisualBoundingRect()) {
		return
	}
	p := &t.scratchPath
	p.Clear()
	typ := path.Open
	if s.Closed {
		typ = path.Closed
		p.AddLineLoop(s.Points)
	} else {
		p.AddOpenPoints(s.Points)
	}

	if !s.Fill.IsTransparent() {
		if s.Closed {
			p.Fill(t.feathering, s.Fill, out)
		} else {
			debug.Assert(false, "paint: filling an open path")
		}
	}
	p.Stroke(t.feathering, typ, s.Stroke, out)
}

// TessellateLineSegment appends a stroked segment.
func (t *Tessellator) TessellateLineSegment(points [2]core.Point, stroke core.Stroke, out *core.Triangles) {
	if stroke.IsEmpty() {
		return
	}
	if t.culled(core.RectFromTwoPos(points[0], points[1]).Expand(stroke.Width)) {
		return
	}
	p := &t.scratchPath
	p.Clear()
	p.AddLineSegment(points)
	p.StrokeOpen(t.feathering, stroke, out)
}

// TessellateMesh appends a ready-made mesh. Invalid meshes are dropped
// with a warning.
func (t *Tessellator) TessellateMesh(mesh *core.Triangles, out *core.Triangles) {
	if mesh == nil {
		return
	}
	if err := mesh.Validate(); err != nil {
		debug.Logger().Warn("paint: dropping invalid mesh", "err", err)
		return
	}
	if t.culled(mesh.CalcBounds()) {
		return
	}
	out.Append(mesh)
}

// TessellateShapes tessellates shapes with a one-off Tessellator.
func TessellateShapes(pixelsPerPoint float32, opts Options, fontTexSize [2]int, shapes []ClippedShape) []ClippedTriangles {
	return NewTessellator(pixelsPerPoint, opts, fontTexSize).TessellateShapes(shapes)
}
