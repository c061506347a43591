// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Rgba is a linear-space color with premultiplied alpha, float32 channels
// in [0, 1]. Blending and interpolation should happen in this space.
type Rgba struct {
	R, G, B, A float32
}

// RgbaFromColor32 converts gamma-space bytes to linear floats.
func RgbaFromColor32(c Color32) Rgba {
	if c.A == 0 {
		return Rgba{}
	}
	a := float32(c.A) / 255
	// Undo premultiplication before leaving gamma space: the sRGB curve is
	// not linear, so it must be applied to straight channels.
	straight := colorful.Color{
		R: float64(c.R) / 255 / float64(a),
		G: float64(c.G) / 255 / float64(a),
		B: float64(c.B) / 255 / float64(a),
	}
	r, g, b := straight.Clamped().LinearRgb()
	return Rgba{R: float32(r) * a, G: float32(g) * a, B: float32(b) * a, A: a}
}

// ToColor32 converts back to premultiplied gamma-space bytes.
func (c Rgba) ToColor32() Color32 {
	if c.A <= 0 {
		return Transparent
	}
	a := min(c.A, 1)
	r, g, b := colorful.LinearRgb(
		float64(c.R/a), float64(c.G/a), float64(c.B/a),
	).Clamped().RGB255()
	return RGBAUnmultiplied(r, g, b, uint8(math.Round(float64(a)*255)))
}

// Multiply scales all channels, fading the color towards transparent.
func (c Rgba) Multiply(factor float32) Rgba {
	return Rgba{R: c.R * factor, G: c.G * factor, B: c.B * factor, A: c.A * factor}
}

// Lerp interpolates linearly between two colors.
func (c Rgba) Lerp(o Rgba, t float32) Rgba {
	return Rgba{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}
