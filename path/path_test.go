package path

import (
	"math"
	"testing"

	"github.com/gogpu/paint/core"
)

func assertUnit(t *testing.T, p *Path) {
	t.Helper()
	for i, pt := range p.Points() {
		if l := pt.Normal.Length(); math.Abs(float64(l-1)) > 1e-4 {
			t.Errorf("point %d: |normal| = %v, want 1", i, l)
		}
		if pt.Miter < 1 {
			t.Errorf("point %d: miter = %v, want >= 1", i, pt.Miter)
		}
	}
}

func TestAddCircle_PointCount(t *testing.T) {
	tests := []struct {
		radius float32
		want   int
	}{
		{0, 4},
		{0.5, 4},
		{2, 8},
		{10, 40},
		{16, 64},
		{100, 64},
	}

	for _, tt := range tests {
		var p Path
		p.AddCircle(core.Pt(0, 0), tt.radius)
		if p.Len() != tt.want {
			t.Errorf("AddCircle(r=%v) has %d points, want %d", tt.radius, p.Len(), tt.want)
		}
		assertUnit(t, &p)
	}
}

func TestAddCircle_NormalsPointOutward(t *testing.T) {
	var p Path
	center := core.Pt(10, 10)
	p.AddCircle(center, 5)
	for i, pt := range p.Points() {
		radial := pt.Pos.Sub(center).Normalized()
		if radial.Dot(pt.Normal) < 0.999 {
			t.Errorf("point %d: normal %v not radial %v", i, pt.Normal, radial)
		}
	}
}

func TestAddLineSegment(t *testing.T) {
	var p Path
	p.AddLineSegment([2]core.Point{core.Pt(0, 0), core.Pt(10, 0)})
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	for _, pt := range p.Points() {
		if pt.Normal != core.V2(0, -1) {
			t.Errorf("normal = %v, want (0, -1)", pt.Normal)
		}
	}
}

func TestAddOpenPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Point
		want   int
	}{
		{"two points", []core.Point{core.Pt(0, 0), core.Pt(1, 0)}, 2},
		{"straight", []core.Point{core.Pt(0, 0), core.Pt(1, 0), core.Pt(2, 0)}, 3},
		{"right angle", []core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(10, 10)}, 3},
		{"sharp corner cut", []core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(0, 1)}, 4},
		{"duplicate", []core.Point{core.Pt(0, 0), core.Pt(5, 0), core.Pt(5, 0), core.Pt(10, 0)}, 4},
		{"leading duplicate", []core.Point{core.Pt(0, 0), core.Pt(0, 0), core.Pt(10, 0)}, 3},
		{"all identical", []core.Point{core.Pt(1, 1), core.Pt(1, 1), core.Pt(1, 1)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Path
			p.AddOpenPoints(tt.points)
			if p.Len() != tt.want {
				t.Errorf("Len = %d, want %d", p.Len(), tt.want)
			}
			assertUnit(t, &p)
		})
	}
}

func TestAddOpenPoints_MiterKeepsWidth(t *testing.T) {
	var p Path
	p.AddOpenPoints([]core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(10, 10)})
	corner := p.Points()[1]
	want := float32(math.Sqrt2)
	if math.Abs(float64(corner.Miter-want)) > 1e-4 {
		t.Errorf("miter = %v, want %v", corner.Miter, want)
	}
}

func TestAddOpenPoints_PanicsOnShortInput(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	var p Path
	p.AddOpenPoints([]core.Point{core.Pt(0, 0)})
}

func TestAddLineLoop(t *testing.T) {
	var p Path
	p.AddLineLoop([]core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(10, 10), core.Pt(0, 10)})
	if p.Len() != 4 {
		t.Fatalf("Len = %d, want 4", p.Len())
	}
	assertUnit(t, &p)

	// Top-left corner of a clockwise square points up-left.
	n := p.Points()[0].Normal
	if n.X >= 0 || n.Y >= 0 {
		t.Errorf("corner normal = %v, want pointing up-left", n)
	}
}

func TestAddLineLoop_Degenerate(t *testing.T) {
	var p Path
	p.AddLineLoop([]core.Point{core.Pt(0, 0), core.Pt(10, 0)})
	assertUnit(t, &p)
}

func TestClear(t *testing.T) {
	var p Path
	p.AddCircle(core.Pt(0, 0), 10)
	p.Clear()
	if p.Len() != 0 {
		t.Errorf("Len after Clear = %d", p.Len())
	}
}
