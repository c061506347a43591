// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import "math"

// RoundToPixel snaps a coordinate in points to the nearest physical pixel.
func RoundToPixel(v, pixelsPerPoint float32) float32 {
	return float32(math.Round(float64(v*pixelsPerPoint))) / pixelsPerPoint
}

// FloorToPixel snaps a coordinate in points down to a physical pixel.
func FloorToPixel(v, pixelsPerPoint float32) float32 {
	return float32(math.Floor(float64(v*pixelsPerPoint))) / pixelsPerPoint
}

// RoundPointToPixel snaps both coordinates of p.
func RoundPointToPixel(p Point, pixelsPerPoint float32) Point {
	return Point{X: RoundToPixel(p.X, pixelsPerPoint), Y: RoundToPixel(p.Y, pixelsPerPoint)}
}

// Remap maps x from the range [fromMin, fromMax] to [toMin, toMax].
func Remap(x, fromMin, fromMax, toMin, toMax float32) float32 {
	t := (x - fromMin) / (fromMax - fromMin)
	return toMin + (toMax-toMin)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	return max(lo, min(v, hi))
}
