package paint

import (
	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/text"
)

// Shape is something that can be tessellated: a circle, rectangle, path,
// line segment, ready-made mesh, laid-out text, or a list of those.
//
// The set of shapes is closed; the dispatcher switches over every
// implementation in this package.
type Shape interface {
	// TextureID is the texture the tessellated shape samples.
	TextureID() core.TextureID

	// VisualBoundingRect is the area the shape may paint, including
	// stroke width. Invisible shapes return core.Nothing.
	VisualBoundingRect() core.Rect

	isShape()
}

// NoopShape paints nothing.
type NoopShape struct{}

// ShapeList paints its shapes in order.
type ShapeList []Shape

// CircleShape is a filled and/or stroked circle.
type CircleShape struct {
	Center core.Point
	Radius float32
	Fill   core.Color32
	Stroke core.Stroke
}

// RectShape is a filled and/or stroked rectangle with optionally rounded
// corners.
type RectShape struct {
	Rect         core.Rect
	CornerRadius core.CornerRadius
	Fill         core.Color32
	Stroke       core.Stroke
}

// PathShape is a polyline or polygon. Only closed convex paths can be
// filled.
type PathShape struct {
	Points []core.Point
	Closed bool
	Fill   core.Color32
	Stroke core.Stroke
}

// LineSegmentShape is a single stroked segment.
type LineSegmentShape struct {
	Points [2]core.Point
	Stroke core.Stroke
}

// MeshShape is an already tessellated mesh, appended as is.
type MeshShape struct {
	Mesh *core.Triangles
}

// TextShape paints a laid-out galley with its top-left corner at Pos.
type TextShape struct {
	Pos    core.Point
	Galley *text.Galley

	// OverrideColor replaces the color of every glyph when not transparent.
	// Backgrounds and lines keep their own colors.
	OverrideColor core.Color32

	// Underline is drawn under every row when not empty.
	Underline core.Stroke
}

func (NoopShape) isShape()        {}
func (ShapeList) isShape()        {}
func (CircleShape) isShape()      {}
func (RectShape) isShape()        {}
func (PathShape) isShape()        {}
func (LineSegmentShape) isShape() {}
func (MeshShape) isShape()        {}
func (TextShape) isShape()        {}

// Circle returns a filled and stroked circle.
func Circle(center core.Point, radius float32, fill core.Color32, stroke core.Stroke) CircleShape {
	return CircleShape{Center: center, Radius: radius, Fill: fill, Stroke: stroke}
}

// CircleFilled returns a filled circle.
func CircleFilled(center core.Point, radius float32, fill core.Color32) CircleShape {
	return CircleShape{Center: center, Radius: radius, Fill: fill}
}

// CircleStroke returns the outline of a circle.
func CircleStroke(center core.Point, radius float32, stroke core.Stroke) CircleShape {
	return CircleShape{Center: center, Radius: radius, Stroke: stroke}
}

// RectFilled returns a filled rectangle.
func RectFilled(rect core.Rect, cr core.CornerRadius, fill core.Color32) RectShape {
	return RectShape{Rect: rect, CornerRadius: cr, Fill: fill}
}

// RectStroke returns the outline of a rectangle.
func RectStroke(rect core.Rect, cr core.CornerRadius, stroke core.Stroke) RectShape {
	return RectShape{Rect: rect, CornerRadius: cr, Stroke: stroke}
}

// LineSegment returns a segment from a to b.
func LineSegment(a, b core.Point, stroke core.Stroke) LineSegmentShape {
	return LineSegmentShape{Points: [2]core.Point{a, b}, Stroke: stroke}
}

// HLine returns a horizontal segment at y.
func HLine(minX, maxX, y float32, stroke core.Stroke) LineSegmentShape {
	return LineSegment(core.Pt(minX, y), core.Pt(maxX, y), stroke)
}

// VLine returns a vertical segment at x.
func VLine(x, minY, maxY float32, stroke core.Stroke) LineSegmentShape {
	return LineSegment(core.Pt(x, minY), core.Pt(x, maxY), stroke)
}

// Line returns an open polyline through points.
func Line(points []core.Point, stroke core.Stroke) PathShape {
	return PathShape{Points: points, Stroke: stroke}
}

// ClosedLine returns the outline of a polygon.
func ClosedLine(points []core.Point, stroke core.Stroke) PathShape {
	return PathShape{Points: points, Closed: true, Stroke: stroke}
}

// ConvexPolygon returns a filled and stroked convex polygon.
func ConvexPolygon(points []core.Point, fill core.Color32, stroke core.Stroke) PathShape {
	return PathShape{Points: points, Closed: true, Fill: fill, Stroke: stroke}
}

// Galley returns a shape painting g at pos with its own colors.
func Galley(pos core.Point, g *text.Galley) TextShape {
	return TextShape{Pos: pos, Galley: g}
}

// TextureID implements Shape.
func (NoopShape) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape. Lists are split by texture when tessellated.
func (ShapeList) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape.
func (CircleShape) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape.
func (RectShape) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape.
func (PathShape) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape.
func (LineSegmentShape) TextureID() core.TextureID { return core.FontTexture }

// TextureID implements Shape.
func (s MeshShape) TextureID() core.TextureID {
	if s.Mesh == nil {
		return core.FontTexture
	}
	return s.Mesh.Texture
}

// TextureID implements Shape.
func (TextShape) TextureID() core.TextureID { return core.FontTexture }

// VisualBoundingRect implements Shape.
func (NoopShape) VisualBoundingRect() core.Rect { return core.Nothing }

// VisualBoundingRect implements Shape.
func (l ShapeList) VisualBoundingRect() core.Rect {
	r := core.Nothing
	for _, s := range l {
		r = r.Union(s.VisualBoundingRect())
	}
	return r
}

// VisualBoundingRect implements Shape.
func (s CircleShape) VisualBoundingRect() core.Rect {
	if s.Fill.IsTransparent() && s.Stroke.IsEmpty() {
		return core.Nothing
	}
	return core.RectFromMinMax(s.Center, s.Center).Expand(s.Radius + s.Stroke.Width/2)
}

// VisualBoundingRect implements Shape.
func (s RectShape) VisualBoundingRect() core.Rect {
	if s.Fill.IsTransparent() && s.Stroke.IsEmpty() {
		return core.Nothing
	}
	return s.Rect.Expand(s.Stroke.Width / 2)
}

// VisualBoundingRect implements Shape.
func (s PathShape) VisualBoundingRect() core.Rect {
	if s.Fill.IsTransparent() && s.Stroke.IsEmpty() {
		return core.Nothing
	}
	return pointsBounds(s.Points).Expand(s.Stroke.Width / 2)
}

// VisualBoundingRect implements Shape.
func (s LineSegmentShape) VisualBoundingRect() core.Rect {
	if s.Stroke.IsEmpty() {
		return core.Nothing
	}
	return core.RectFromTwoPos(s.Points[0], s.Points[1]).Expand(s.Stroke.Width / 2)
}

// VisualBoundingRect implements Shape.
func (s MeshShape) VisualBoundingRect() core.Rect {
	if s.Mesh == nil {
		return core.Nothing
	}
	return s.Mesh.CalcBounds()
}

// VisualBoundingRect implements Shape.
func (s TextShape) VisualBoundingRect() core.Rect {
	if s.Galley == nil {
		return core.Nothing
	}
	return s.Galley.MeshBounds.Translate(s.Pos.ToVec2())
}

func pointsBounds(points []core.Point) core.Rect {
	r := core.Nothing
	for _, p := range points {
		r = r.ExtendWith(p)
	}
	return r
}
