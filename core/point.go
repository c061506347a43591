// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import "math"

// Point represents a 2D position in points.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
func (p Point) Lerp(q Point, t float32) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// ToVec2 treats the position as a displacement from the origin.
func (p Point) ToVec2() Vec2 {
	return Vec2(p)
}

// AtLeast returns the component-wise maximum of p and q.
func (p Point) AtLeast(q Point) Point {
	return Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)}
}

// AtMost returns the component-wise minimum of p and q.
func (p Point) AtMost(q Point) Point {
	return Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)}
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}
