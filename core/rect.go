// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import "math"

// Rect is an axis-aligned rectangle spanning Min to Max (inclusive).
// A rectangle with Min > Max on either axis is negative and contains nothing.
type Rect struct {
	Min, Max Point
}

var (
	// Everything is the infinite rectangle that contains every point.
	Everything = Rect{
		Min: Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
		Max: Point{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
	}

	// Nothing is the inverted infinite rectangle. Union with Nothing is the
	// identity, which makes it the starting value for bounds accumulation.
	Nothing = Rect{
		Min: Point{X: float32(math.Inf(1)), Y: float32(math.Inf(1))},
		Max: Point{X: float32(math.Inf(-1)), Y: float32(math.Inf(-1))},
	}
)

// RectFromMinMax creates a rectangle from its corners.
func RectFromMinMax(minP, maxP Point) Rect {
	return Rect{Min: minP, Max: maxP}
}

// RectFromMinSize creates a rectangle from its top-left corner and size.
func RectFromMinSize(minP Point, size Vec2) Rect {
	return Rect{Min: minP, Max: minP.Add(size)}
}

// RectFromTwoPos returns the smallest rectangle containing both points.
func RectFromTwoPos(a, b Point) Rect {
	return Rect{Min: a.AtMost(b), Max: a.AtLeast(b)}
}

// RectFromXYRanges creates a rectangle from inclusive x and y ranges.
func RectFromXYRanges(minX, maxX, minY, maxY float32) Rect {
	return Rect{Min: Point{X: minX, Y: minY}, Max: Point{X: maxX, Y: maxY}}
}

// Width returns Max.X - Min.X.
func (r Rect) Width() float32 { return r.Max.X - r.Min.X }

// Height returns Max.Y - Min.Y.
func (r Rect) Height() float32 { return r.Max.Y - r.Min.Y }

// Size returns the width and height as a vector.
func (r Rect) Size() Vec2 { return r.Max.Sub(r.Min) }

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Left returns Min.X.
func (r Rect) Left() float32 { return r.Min.X }

// Right returns Max.X.
func (r Rect) Right() float32 { return r.Max.X }

// Top returns Min.Y.
func (r Rect) Top() float32 { return r.Min.Y }

// Bottom returns Max.Y.
func (r Rect) Bottom() float32 { return r.Max.Y }

// LeftTop returns the top-left corner.
func (r Rect) LeftTop() Point { return r.Min }

// RightTop returns the top-right corner.
func (r Rect) RightTop() Point { return Point{X: r.Max.X, Y: r.Min.Y} }

// LeftBottom returns the bottom-left corner.
func (r Rect) LeftBottom() Point { return Point{X: r.Min.X, Y: r.Max.Y} }

// RightBottom returns the bottom-right corner.
func (r Rect) RightBottom() Point { return r.Max }

// LeftCenter returns the middle of the left edge.
func (r Rect) LeftCenter() Point { return Point{X: r.Min.X, Y: r.Center().Y} }

// RightCenter returns the middle of the right edge.
func (r Rect) RightCenter() Point { return Point{X: r.Max.X, Y: r.Center().Y} }

// CenterTop returns the middle of the top edge.
func (r Rect) CenterTop() Point { return Point{X: r.Center().X, Y: r.Min.Y} }

// CenterBottom returns the middle of the bottom edge.
func (r Rect) CenterBottom() Point { return Point{X: r.Center().X, Y: r.Max.Y} }

// IsPositive reports whether the rectangle has a strictly positive area.
func (r Rect) IsPositive() bool {
	return r.Min.X < r.Max.X && r.Min.Y < r.Max.Y
}

// IsNegative reports whether Min > Max on either axis.
func (r Rect) IsNegative() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// IsFinite reports whether all four coordinates are finite.
func (r Rect) IsFinite() bool {
	return r.Min.IsFinite() && r.Max.IsFinite()
}

// Contains reports whether p lies inside or on the border of r.
func (r Rect) Contains(p Point) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X && r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

// Intersects reports whether the two rectangles overlap or touch.
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Intersect returns the overlapping region, which may be negative.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{Min: r.Min.AtLeast(o.Min), Max: r.Max.AtMost(o.Max)}
}

// Union returns the smallest rectangle containing both.
func (r Rect) Union(o Rect) Rect {
	return Rect{Min: r.Min.AtMost(o.Min), Max: r.Max.AtLeast(o.Max)}
}

// ExtendWith grows the rectangle to contain p.
func (r Rect) ExtendWith(p Point) Rect {
	return Rect{Min: r.Min.AtMost(p), Max: r.Max.AtLeast(p)}
}

// Expand grows the rectangle by amount on every side.
func (r Rect) Expand(amount float32) Rect {
	return r.Expand2(Splat(amount))
}

// Expand2 grows the rectangle by amount.X horizontally and amount.Y
// vertically on each side.
func (r Rect) Expand2(amount Vec2) Rect {
	return Rect{Min: r.Min.Add(amount.Neg()), Max: r.Max.Add(amount)}
}

// Shrink is Expand with a negated amount.
func (r Rect) Shrink(amount float32) Rect {
	return r.Expand(-amount)
}

// Translate moves the rectangle by v.
func (r Rect) Translate(v Vec2) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}
