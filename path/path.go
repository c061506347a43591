package path

import (
	"math"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
)

// PathPoint is one vertex of a Path.
type PathPoint struct {
	Pos core.Point

	// Normal is the unit outward normal.
	Normal core.Vec2

	// Miter scales offsets along Normal so that parallel edges stay at
	// their intended distance around a corner. Always >= 1.
	Miter float32
}

// Offset returns Normal scaled by the miter.
func (p PathPoint) Offset() core.Vec2 {
	return p.Normal.Mul(p.Miter)
}

// PathType tells whether the last point of a path connects back to the first.
type PathType uint8

const (
	// Open paths have two ends, which get feathered caps.
	Open PathType = iota

	// Closed paths connect the last point to the first.
	Closed
)

// String returns the path type name.
func (t PathType) String() string {
	if t == Closed {
		return "Closed"
	}
	return "Open"
}

// Path is a reusable buffer of points with normals.
// The zero value is an empty path ready to use.
type Path struct {
	points []PathPoint
}

// Clear removes all points, keeping capacity.
func (p *Path) Clear() {
	p.points = p.points[:0]
}

// Reserve grows capacity for n more points.
func (p *Path) Reserve(n int) {
	if need := len(p.points) + n; need > cap(p.points) {
		grown := make([]PathPoint, len(p.points), need)
		copy(grown, p.points)
		p.points = grown
	}
}

// Len returns the number of points.
func (p *Path) Len() int {
	return len(p.points)
}

// Points returns the current points. The slice is reused by later calls.
func (p *Path) Points() []PathPoint {
	return p.points
}

// AddPoint appends a point. normal need not be unit length; its length is
// kept as the miter scale. A zero normal is replaced by the normal of the
// previous point.
func (p *Path) AddPoint(pos core.Point, normal core.Vec2) {
	p.push(pos, normal)
}

// push stores v as a unit normal plus miter.
func (p *Path) push(pos core.Point, v core.Vec2) {
	length := v.Length()
	if length == 0 || !isFinite(length) {
		p.points = append(p.points, PathPoint{Pos: pos, Normal: p.lastNormal(), Miter: 1})
		return
	}
	p.points = append(p.points, PathPoint{Pos: pos, Normal: v.Div(length), Miter: max(length, 1)})
}

func (p *Path) lastNormal() core.Vec2 {
	if n := len(p.points); n > 0 {
		return p.points[n-1].Normal
	}
	return core.V2(0, -1)
}

// AddCircle appends a full circle, clockwise on screen starting at the
// rightmost point.
func (p *Path) AddCircle(center core.Point, radius float32) {
	n := CirclePointCount(radius)
	p.Reserve(n)
	for i := range n {
		angle := core.Remap(float32(i), 0, float32(n), 0, 2*math.Pi)
		normal := core.Angled(angle)
		p.points = append(p.points, PathPoint{
			Pos:    center.Add(normal.Mul(radius)),
			Normal: normal,
			Miter:  1,
		})
	}
}

// CirclePointCount returns how many points AddCircle uses for radius.
func CirclePointCount(radius float32) int {
	n := int(math.Round(float64(radius * 4)))
	return min(max(n, 4), 64)
}

// AddLineSegment appends both ends of a segment sharing one normal.
func (p *Path) AddLineSegment(points [2]core.Point) {
	p.Reserve(2)
	normal := points[1].Sub(points[0]).Normalized().Rot90()
	p.push(points[0], normal)
	p.push(points[1], normal)
}

// AddOpenPoints appends a polyline. Interior points get the bisector of the
// adjacent segment normals. Corners sharper than a right angle are cut off
// with two points so the stroke does not spike.
//
// Panics if len(points) < 2.
func (p *Path) AddOpenPoints(points []core.Point) {
	n := len(points)
	if n < 2 {
		panic("path: AddOpenPoints needs at least 2 points")
	}
	if n == 2 {
		p.AddLineSegment([2]core.Point{points[0], points[1]})
		return
	}

	p.Reserve(n)
	n0 := segmentNormal(points[0], points[1])
	first := n0
	if first.IsZero() {
		first = firstNonZeroNormal(points)
	}
	p.push(points[0], first)

	for i := 1; i < n-1; i++ {
		n1 := segmentNormal(points[i], points[i+1])

		// Duplicated points.
		if n0.IsZero() {
			n0 = n1
		} else if n1.IsZero() {
			n1 = n0
		}

		normal := n0.Add(n1).Div(2)
		lengthSq := normal.LengthSq()

		const rightAngleLengthSq = 0.5
		if lengthSq < rightAngleLengthSq {
			center := normal.Normalized()
			n0c := n0.Add(center).Div(2)
			n1c := n1.Add(center).Div(2)
			p.push(points[i], miterVector(n0c))
			p.push(points[i], miterVector(n1c))
		} else {
			p.push(points[i], normal.Div(lengthSq))
		}
		n0 = n1
	}

	last := segmentNormal(points[n-2], points[n-1])
	if last.IsZero() {
		last = n0
	}
	p.push(points[n-1], last)
}

// AddLineLoop appends a closed polyline. Every point gets the miter of the
// two adjacent segments; corners are never cut since the outline may be
// filled.
//
// Panics if len(points) < 2.
func (p *Path) AddLineLoop(points []core.Point) {
	n := len(points)
	if n < 2 {
		panic("path: AddLineLoop needs at least 2 points")
	}

	p.Reserve(n)
	for i := range n {
		n0 := segmentNormal(points[(i+n-1)%n], points[i])
		n1 := segmentNormal(points[i], points[(i+1)%n])

		if n0.IsZero() {
			n0 = n1
		} else if n1.IsZero() {
			n1 = n0
		}

		normal := n0.Add(n1).Div(2)
		lengthSq := normal.LengthSq()
		if lengthSq == 0 {
			p.push(points[i], n0)
			continue
		}
		p.push(points[i], normal.Div(lengthSq))
	}
}

func segmentNormal(a, b core.Point) core.Vec2 {
	return b.Sub(a).Normalized().Rot90()
}

func firstNonZeroNormal(points []core.Point) core.Vec2 {
	for i := 1; i < len(points); i++ {
		if n := segmentNormal(points[i-1], points[i]); !n.IsZero() {
			return n
		}
	}
	return core.Vec2{}
}

// miterVector returns v / |v|^2: the direction of v with length 1/|v|.
func miterVector(v core.Vec2) core.Vec2 {
	lengthSq := v.LengthSq()
	if lengthSq == 0 {
		return core.Vec2{}
	}
	return v.Div(lengthSq)
}

func isFinite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}

func assertUnitNormals(points []PathPoint) {
	if !debug.Enabled {
		return
	}
	for i, pt := range points {
		l := pt.Normal.Length()
		debug.Assert(math.Abs(float64(l-1)) < 1e-3, "path: point %d has normal of length %v", i, l)
	}
}
