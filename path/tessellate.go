package path

import (
	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
)

// Fill tessellates the closed convex outline of the path.
//
// With feathering > 0 an extra ring of transparent vertices is placed half
// a feather outside the outline and the opaque fill is pulled half a feather
// in. A transparent color or fewer than 3 points add nothing.
func (p *Path) Fill(feathering float32, color core.Color32, out *core.Triangles) {
	fillClosed(feathering, p.points, color, out)
}

// Stroke tessellates a stroke along the path.
func (p *Path) Stroke(feathering float32, typ PathType, stroke core.Stroke, out *core.Triangles) {
	strokePath(feathering, p.points, typ, stroke, out)
}

// StrokeOpen strokes the path without connecting its ends.
func (p *Path) StrokeOpen(feathering float32, stroke core.Stroke, out *core.Triangles) {
	strokePath(feathering, p.points, Open, stroke, out)
}

// StrokeClosed strokes the path including the edge from last to first point.
func (p *Path) StrokeClosed(feathering float32, stroke core.Stroke, out *core.Triangles) {
	strokePath(feathering, p.points, Closed, stroke, out)
}

func fillClosed(feathering float32, points []PathPoint, color core.Color32, out *core.Triangles) {
	if color.IsTransparent() {
		return
	}
	n := uint32(len(points))
	if n < 3 {
		return
	}
	assertUnitNormals(points)

	if feathering <= 0 {
		out.ReserveTriangles(int(n))
		out.ReserveVertices(int(n))
		idx := uint32(len(out.Vertices))
		for _, pt := range points {
			out.AddColoredVertex(pt.Pos, color)
		}
		for i := uint32(2); i < n; i++ {
			out.AddTriangle(idx, idx+i-1, idx+i)
		}
		return
	}

	if clockwiseArea(points) < 0 {
		reverse(points)
	}

	out.ReserveTriangles(3 * int(n))
	out.ReserveVertices(2 * int(n))
	idxInner := uint32(len(out.Vertices))
	idxOuter := idxInner + 1

	// Fan over the inner ring.
	for i := uint32(2); i < n; i++ {
		out.AddTriangle(idxInner+2*(i-1), idxInner, idxInner+2*i)
	}

	// Feather band.
	i0 := n - 1
	for i1 := range n {
		pt := points[i1]
		dm := pt.Offset().Mul(0.5 * feathering)
		out.AddColoredVertex(pt.Pos.Add(dm.Neg()), color)
		out.AddColoredVertex(pt.Pos.Add(dm), core.Transparent)
		out.AddTriangle(idxInner+2*i1, idxInner+2*i0, idxOuter+2*i0)
		out.AddTriangle(idxOuter+2*i0, idxOuter+2*i1, idxInner+2*i1)
		i0 = i1
	}
}

// clockwiseArea returns twice the signed area, positive for outlines that
// are clockwise on screen.
func clockwiseArea(points []PathPoint) float64 {
	if len(points) == 0 {
		return 0
	}
	prev := points[len(points)-1].Pos
	var area float64
	for _, pt := range points {
		area += float64(prev.X*pt.Pos.Y - pt.Pos.X*prev.Y)
		prev = pt.Pos
	}
	return area
}

func reverse(points []PathPoint) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	for i := range points {
		points[i].Normal = points[i].Normal.Neg()
	}
}

func strokePath(feathering float32, points []PathPoint, typ PathType, stroke core.Stroke, out *core.Triangles) {
	n := uint32(len(points))
	if stroke.IsEmpty() || n < 2 {
		return
	}
	assertUnitNormals(points)

	idx := uint32(len(out.Vertices))

	if feathering <= 0 {
		strokePlain(points, typ, stroke, out)
		return
	}

	inner := stroke.Color
	outer := core.Transparent

	if stroke.Width <= feathering {
		// Three rings: outer, inner, outer. Thinner lines fade out
		// instead of getting narrower.
		inner = inner.GammaMultiply(stroke.Width / feathering)
		if inner.IsTransparent() {
			return
		}

		out.ReserveTriangles(4 * int(n))
		out.ReserveVertices(3 * int(n))
		i0 := n - 1
		for i1 := range n {
			pt := points[i1]
			off := pt.Offset().Mul(feathering)
			out.AddColoredVertex(pt.Pos.Add(off), outer)
			out.AddColoredVertex(pt.Pos, inner)
			out.AddColoredVertex(pt.Pos.Add(off.Neg()), outer)

			if typ == Closed || i1 > 0 {
				out.AddTriangle(idx+3*i0+0, idx+3*i0+1, idx+3*i1+0)
				out.AddTriangle(idx+3*i0+1, idx+3*i1+0, idx+3*i1+1)
				out.AddTriangle(idx+3*i0+1, idx+3*i0+2, idx+3*i1+1)
				out.AddTriangle(idx+3*i0+2, idx+3*i1+1, idx+3*i1+2)
			}
			i0 = i1
		}
		return
	}

	// Four rings: outer, inner, inner, outer.
	innerRad := 0.5 * (stroke.Width - feathering)
	outerRad := 0.5 * (stroke.Width + feathering)

	addRing := func(pt PathPoint, backExtrude core.Vec2) {
		off := pt.Offset()
		out.AddColoredVertex(pt.Pos.Add(off.Mul(outerRad)).Add(backExtrude), outer)
		out.AddColoredVertex(pt.Pos.Add(off.Mul(innerRad)), inner)
		out.AddColoredVertex(pt.Pos.Add(off.Mul(-innerRad)), inner)
		out.AddColoredVertex(pt.Pos.Add(off.Mul(-outerRad)).Add(backExtrude), outer)
	}
	connect := func(i0, i1 uint32) {
		out.AddTriangle(idx+4*i0+0, idx+4*i0+1, idx+4*i1+0)
		out.AddTriangle(idx+4*i0+1, idx+4*i1+0, idx+4*i1+1)
		out.AddTriangle(idx+4*i0+1, idx+4*i0+2, idx+4*i1+1)
		out.AddTriangle(idx+4*i0+2, idx+4*i1+1, idx+4*i1+2)
		out.AddTriangle(idx+4*i0+2, idx+4*i0+3, idx+4*i1+2)
		out.AddTriangle(idx+4*i0+3, idx+4*i1+2, idx+4*i1+3)
	}

	if typ == Closed {
		out.ReserveTriangles(6 * int(n))
		out.ReserveVertices(4 * int(n))
		i0 := n - 1
		for i1 := range n {
			addRing(points[i1], core.Vec2{})
			connect(i0, i1)
			i0 = i1
		}
		return
	}

	// Open: the outer vertices at both ends are pushed out along the path
	// by one feather and two extra triangles close each end cap.
	out.ReserveTriangles(6*int(n) + 4)
	out.ReserveVertices(4 * int(n))

	start := points[0]
	addRing(start, start.Normal.Rot90().Mul(feathering))
	out.AddTriangle(idx+0, idx+1, idx+2)
	out.AddTriangle(idx+0, idx+2, idx+3)

	for i1 := uint32(1); i1 < n-1; i1++ {
		addRing(points[i1], core.Vec2{})
		connect(i1-1, i1)
	}

	last := n - 1
	end := points[last]
	addRing(end, end.Normal.Rot90().Mul(-feathering))
	connect(last-1, last)
	out.AddTriangle(idx+4*last+0, idx+4*last+1, idx+4*last+2)
	out.AddTriangle(idx+4*last+0, idx+4*last+2, idx+4*last+3)
}

// strokePlain draws a two-ring ribbon without anti-aliasing.
func strokePlain(points []PathPoint, typ PathType, stroke core.Stroke, out *core.Triangles) {
	n := uint32(len(points))
	idx := uint32(len(out.Vertices))
	out.ReserveTriangles(2 * int(n))
	out.ReserveVertices(2 * int(n))

	segments := n - 1
	if typ == Closed {
		segments = n
	}
	for i := range segments {
		out.AddTriangle(idx+(2*i+0)%(2*n), idx+(2*i+1)%(2*n), idx+(2*i+2)%(2*n))
		out.AddTriangle(idx+(2*i+2)%(2*n), idx+(2*i+1)%(2*n), idx+(2*i+3)%(2*n))
	}

	radius := stroke.Width / 2
	for _, pt := range points {
		off := pt.Offset().Mul(radius)
		out.AddColoredVertex(pt.Pos.Add(off), stroke.Color)
		out.AddColoredVertex(pt.Pos.Add(off.Neg()), stroke.Color)
	}

	debug.Assert(out.IsValid(), "path: plain stroke produced invalid mesh")
}
