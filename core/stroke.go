// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

// Stroke describes the outline of a shape: a width in points and a color.
type Stroke struct {
	Width float32
	Color Color32
}

// NewStroke creates a stroke.
func NewStroke(width float32, color Color32) Stroke {
	return Stroke{Width: width, Color: color}
}

// IsEmpty reports whether painting the stroke would produce nothing.
func (s Stroke) IsEmpty() bool {
	return s.Width <= 0 || s.Color.IsTransparent()
}

// CornerRadius holds the radius of each corner of a rounded rectangle.
type CornerRadius struct {
	NW, NE, SW, SE float32
}

// Same returns a CornerRadius with all four corners set to r.
func Same(r float32) CornerRadius {
	return CornerRadius{NW: r, NE: r, SW: r, SE: r}
}

// IsZero reports whether every corner is sharp.
func (c CornerRadius) IsZero() bool {
	return c.NW == 0 && c.NE == 0 && c.SW == 0 && c.SE == 0
}

// AtMost clamps every corner to at most r.
func (c CornerRadius) AtMost(r float32) CornerRadius {
	return CornerRadius{NW: min(c.NW, r), NE: min(c.NE, r), SW: min(c.SW, r), SE: min(c.SE, r)}
}

// AtLeast clamps every corner to at least r.
func (c CornerRadius) AtLeast(r float32) CornerRadius {
	return CornerRadius{NW: max(c.NW, r), NE: max(c.NE, r), SW: max(c.SW, r), SE: max(c.SE, r)}
}
