// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color32 is an sRGB color with premultiplied alpha, one byte per channel.
// This is the vertex color format consumed by the GPU.
//
// Color32 implements image/color.Color.
type Color32 struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Transparent = Color32{}
	Black       = Color32{0, 0, 0, 255}
	DarkGray    = Color32{96, 96, 96, 255}
	Gray        = Color32{160, 160, 160, 255}
	LightGray   = Color32{220, 220, 220, 255}
	White       = Color32{255, 255, 255, 255}
	Red         = Color32{255, 0, 0, 255}
	Green       = Color32{0, 255, 0, 255}
	Blue        = Color32{0, 0, 255, 255}
	Yellow      = Color32{255, 255, 0, 255}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: 255}
}

// RGBAPremultiplied returns a color from channels that are already
// multiplied by alpha.
func RGBAPremultiplied(r, g, b, a uint8) Color32 {
	return Color32{R: r, G: g, B: b, A: a}
}

// RGBAUnmultiplied premultiplies straight-alpha channels.
func RGBAUnmultiplied(r, g, b, a uint8) Color32 {
	if a == 255 {
		return RGB(r, g, b)
	}
	if a == 0 {
		return Transparent
	}
	mul := func(c uint8) uint8 {
		return uint8((uint32(c)*uint32(a) + 127) / 255)
	}
	return Color32{R: mul(r), G: mul(g), B: mul(b), A: a}
}

// GrayColor returns an opaque gray.
func GrayColor(l uint8) Color32 {
	return Color32{R: l, G: l, B: l, A: 255}
}

// BlackAlpha returns black with the given alpha.
func BlackAlpha(a uint8) Color32 {
	return Color32{A: a}
}

// WhiteAlpha returns premultiplied white with the given alpha.
func WhiteAlpha(a uint8) Color32 {
	return Color32{R: a, G: a, B: a, A: a}
}

// Hex parses "#rgb", "#rrggbb" or "#rrggbbaa" (straight alpha).
func Hex(s string) (Color32, error) {
	var alpha uint8 = 255
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color32{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color32{}, fmt.Errorf("core: invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGBAUnmultiplied(r, g, b, alpha), nil
}

// HSV returns an opaque color from hue in degrees [0, 360) and
// saturation/value in [0, 1].
func HSV(h, s, v float64) Color32 {
	r, g, b := colorful.Hsv(h, s, v).Clamped().RGB255()
	return RGB(r, g, b)
}

// RGBA implements image/color.Color. Channels are already premultiplied.
func (c Color32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return r, g, b, a
}

// IsOpaque reports whether alpha is 255.
func (c Color32) IsOpaque() bool {
	return c.A == 255
}

// IsTransparent reports whether the color paints nothing.
func (c Color32) IsTransparent() bool {
	return c == Transparent
}

// GammaMultiply scales every premultiplied channel by factor in [0, 1].
// Used to fade thin strokes and disabled widgets.
func (c Color32) GammaMultiply(factor float32) Color32 {
	if factor >= 1 {
		return c
	}
	if factor <= 0 {
		return Transparent
	}
	mul := func(v uint8) uint8 {
		return uint8(math.Round(float64(float32(v) * factor)))
	}
	return Color32{R: mul(c.R), G: mul(c.G), B: mul(c.B), A: mul(c.A)}
}

// String returns the color as "#rrggbbaa" of the premultiplied bytes.
func (c Color32) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
