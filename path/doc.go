// Package path builds polylines with per-point normals and tessellates them
// into anti-aliased triangle meshes.
//
// A [Path] is a scratch buffer: clear it, add points, then either fill it
// (closed convex outlines) or stroke it. Every point carries a unit outward
// normal and a miter scale, so strokes keep their width at corners.
//
// # Anti-aliasing
//
// Anti-aliasing is done with feathering instead of multisampling. Every
// edge is drawn as a thin band of triangles whose outer vertices are fully
// transparent and whose inner vertices carry the full color:
//
//	. outer   inner          inner   outer
//	.   |-------|              |-------|
//	.   feather                 feather
//
// The feather width is usually one physical pixel, i.e. 1/pixelsPerPoint.
// A feathering of zero disables anti-aliasing and produces plain ribbons.
//
// # Orientation
//
// Outlines are expected clockwise on screen (y pointing down), which is
// what [Path.AddCircle], [RoundedRectangle] and rectangles built from
// core.Rect corners produce. Fill reverses counter-clockwise outlines.
//
// # Usage
//
//	var p path.Path
//	p.AddCircle(core.Pt(50, 50), 20)
//	p.Fill(1, core.Red, mesh)
//	p.StrokeClosed(1, core.NewStroke(2, core.Black), mesh)
package path
