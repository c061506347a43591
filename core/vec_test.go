// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"math"
	"testing"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestVec2_Rot90(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
		want Vec2
	}{
		{"right", V2(1, 0), V2(0, -1)},
		{"down", V2(0, 1), V2(1, 0)},
		{"left", V2(-1, 0), V2(0, 1)},
		{"up", V2(0, -1), V2(-1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Rot90(); got != tt.want {
				t.Errorf("%v.Rot90() = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec2_Normalized(t *testing.T) {
	v := V2(3, 4).Normalized()
	if !approx(v.Length(), 1) {
		t.Errorf("length = %v, want 1", v.Length())
	}
	if !approx(v.X, 0.6) || !approx(v.Y, 0.8) {
		t.Errorf("Normalized = %v, want (0.6, 0.8)", v)
	}
	if z := V2(0, 0).Normalized(); !z.IsZero() {
		t.Errorf("zero.Normalized() = %v, want zero", z)
	}
}

func TestVec2_Angled(t *testing.T) {
	v := Angled(math.Pi / 2)
	if !approx(v.X, 0) || !approx(v.Y, 1) {
		t.Errorf("Angled(pi/2) = %v, want (0, 1)", v)
	}
}

func TestPoint_Arithmetic(t *testing.T) {
	p := Pt(1, 2)
	q := p.Add(V2(3, 4))
	if q != Pt(4, 6) {
		t.Errorf("Add = %v", q)
	}
	if d := q.Sub(p); d != V2(3, 4) {
		t.Errorf("Sub = %v", d)
	}
	if !approx(p.Distance(q), 5) {
		t.Errorf("Distance = %v, want 5", p.Distance(q))
	}
	if m := p.Lerp(q, 0.5); m != Pt(2.5, 4) {
		t.Errorf("Lerp = %v", m)
	}
}

func TestPoint_IsFinite(t *testing.T) {
	inf := float32(math.Inf(1))
	nan := float32(math.NaN())
	if !Pt(1, 2).IsFinite() {
		t.Error("finite point reported infinite")
	}
	if Pt(inf, 0).IsFinite() || Pt(0, nan).IsFinite() {
		t.Error("non-finite point reported finite")
	}
}

func TestPixelRounding(t *testing.T) {
	tests := []struct {
		name  string
		v     float32
		ppp   float32
		round float32
		floor float32
	}{
		{"ppp1", 1.4, 1, 1, 1},
		{"ppp1 half", 1.6, 1, 2, 1},
		{"ppp2", 1.3, 2, 1.5, 1},
		{"negative", -0.6, 1, -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundToPixel(tt.v, tt.ppp); got != tt.round {
				t.Errorf("RoundToPixel(%v, %v) = %v, want %v", tt.v, tt.ppp, got, tt.round)
			}
			if got := FloorToPixel(tt.v, tt.ppp); got != tt.floor {
				t.Errorf("FloorToPixel(%v, %v) = %v, want %v", tt.v, tt.ppp, got, tt.floor)
			}
		})
	}
}

func TestRemap(t *testing.T) {
	if got := Remap(5, 0, 10, 100, 200); got != 150 {
		t.Errorf("Remap = %v, want 150", got)
	}
}
