package paint

import "github.com/gogpu/paint/core"

// ClippedShape is a shape and the rectangle it must not paint outside of.
type ClippedShape struct {
	ClipRect core.Rect
	Shape    Shape
}

// ClippedTriangles is one draw call: a mesh sharing a single texture, to be
// drawn with ClipRect as the scissor rectangle.
type ClippedTriangles struct {
	ClipRect  core.Rect
	Triangles *core.Triangles
}
