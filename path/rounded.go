package path

import (
	"math"

	"github.com/gogpu/paint/core"
)

// RoundedRectangle writes the outline of rect with rounded corners into dst,
// clockwise on screen starting at the bottom-right corner, and returns it.
// Radii larger than half the shorter side are clamped.
func RoundedRectangle(dst []core.Point, rect core.Rect, cr core.CornerRadius) []core.Point {
	dst = dst[:0]
	minP, maxP := rect.Min, rect.Max

	cr = cr.AtMost(min(rect.Width(), rect.Height()) * 0.5).AtLeast(0)

	if cr.IsZero() {
		return append(dst,
			core.Pt(minP.X, minP.Y),
			core.Pt(maxP.X, minP.Y),
			core.Pt(maxP.X, maxP.Y),
			core.Pt(minP.X, maxP.Y),
		)
	}

	// When a side is all rounding, neighbouring quadrants share an end
	// point; duplicated vertices produce zero-length edges.
	eps := float32(epsilon32) * rect.Size().MaxElem()

	dst = AddCircleQuadrant(dst, core.Pt(maxP.X-cr.SE, maxP.Y-cr.SE), cr.SE, 0)
	if rect.Width() <= cr.SE+cr.SW+eps {
		dst = dst[:len(dst)-1]
	}
	dst = AddCircleQuadrant(dst, core.Pt(minP.X+cr.SW, maxP.Y-cr.SW), cr.SW, 1)
	if rect.Height() <= cr.SW+cr.NW+eps {
		dst = dst[:len(dst)-1]
	}
	dst = AddCircleQuadrant(dst, core.Pt(minP.X+cr.NW, minP.Y+cr.NW), cr.NW, 2)
	if rect.Width() <= cr.NW+cr.NE+eps {
		dst = dst[:len(dst)-1]
	}
	dst = AddCircleQuadrant(dst, core.Pt(maxP.X-cr.NE, minP.Y+cr.NE), cr.NE, 3)
	if rect.Height() <= cr.NE+cr.SE+eps {
		dst = dst[:len(dst)-1]
	}
	return dst
}

// epsilon32 is the difference between 1 and the next float32.
const epsilon32 = 1.1920929e-07

// AddCircleQuadrant appends a quarter circle. Quadrant 0 sweeps from east to
// south, 1 from south to west, 2 from west to north and 3 from north to east.
// A non-positive radius appends only the center.
func AddCircleQuadrant(dst []core.Point, center core.Point, radius float32, quadrant int) []core.Point {
	if radius <= 0 {
		return append(dst, center)
	}
	n := QuadrantSegmentCount(radius)
	const rightAngle = math.Pi / 2
	q := float32(quadrant)
	for i := 0; i <= n; i++ {
		angle := core.Remap(float32(i), 0, float32(n), q*rightAngle, (q+1)*rightAngle)
		dst = append(dst, center.Add(core.Angled(angle).Mul(radius)))
	}
	return dst
}

// QuadrantSegmentCount returns the number of segments AddCircleQuadrant uses.
func QuadrantSegmentCount(radius float32) int {
	n := int(math.Round(float64(radius * 0.75)))
	return min(max(n, 2), 32)
}
