package path

import (
	"math"
	"testing"

	"github.com/gogpu/paint/core"
)

func squarePath() *Path {
	var p Path
	p.AddLineLoop([]core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(10, 10), core.Pt(0, 10)})
	return &p
}

func openPath() *Path {
	var p Path
	p.AddOpenPoints([]core.Point{core.Pt(0, 0), core.Pt(10, 0), core.Pt(10, 10), core.Pt(20, 10)})
	return &p
}

func TestFill(t *testing.T) {
	tests := []struct {
		name       string
		feathering float32
		vertices   int
		indices    int
	}{
		{"plain", 0, 4, 6},
		{"feathered", 1, 8, 3 * (2 + 2*4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out core.Triangles
			squarePath().Fill(tt.feathering, core.Red, &out)
			if len(out.Vertices) != tt.vertices || len(out.Indices) != tt.indices {
				t.Errorf("got %d vertices / %d indices, want %d / %d",
					len(out.Vertices), len(out.Indices), tt.vertices, tt.indices)
			}
			if !out.IsValid() {
				t.Error("mesh invalid")
			}
		})
	}
}

func TestFill_TransparentIsNoop(t *testing.T) {
	var out core.Triangles
	squarePath().Fill(1, core.Transparent, &out)
	if !out.IsEmpty() {
		t.Errorf("transparent fill added %d vertices", len(out.Vertices))
	}
}

func TestFill_FeatherRings(t *testing.T) {
	var out core.Triangles
	squarePath().Fill(1, core.Red, &out)
	for i, v := range out.Vertices {
		if i%2 == 0 && v.Color != core.Red {
			t.Errorf("inner vertex %d color = %v", i, v.Color)
		}
		if i%2 == 1 && v.Color != core.Transparent {
			t.Errorf("outer vertex %d color = %v", i, v.Color)
		}
	}
	// Inner ring is inside the outline, outer ring outside.
	outline := core.RectFromMinMax(core.Pt(0, 0), core.Pt(10, 10))
	if !outline.Contains(out.Vertices[0].Pos) || outline.Contains(out.Vertices[1].Pos) {
		t.Errorf("feather rings misplaced: %v %v", out.Vertices[0].Pos, out.Vertices[1].Pos)
	}
}

func TestFill_CounterClockwiseIsFixed(t *testing.T) {
	var p Path
	p.AddLineLoop([]core.Point{core.Pt(0, 0), core.Pt(0, 10), core.Pt(10, 10), core.Pt(10, 0)})
	var out core.Triangles
	p.Fill(1, core.Red, &out)

	outline := core.RectFromMinMax(core.Pt(0, 0), core.Pt(10, 10))
	for i := 0; i < len(out.Vertices); i += 2 {
		if !outline.Contains(out.Vertices[i].Pos) {
			t.Errorf("opaque vertex %d at %v outside outline", i, out.Vertices[i].Pos)
		}
	}
}

func TestStroke_Variants(t *testing.T) {
	tests := []struct {
		name       string
		path       *Path
		typ        PathType
		width      float32
		feathering float32
		vertices   int
		indices    int
	}{
		{"closed thin", squarePath(), Closed, 0.5, 1, 12, 3 * 4 * 4},
		{"open thin", openPath(), Open, 0.5, 1, 12, 3 * 4 * 3},
		{"closed thick", squarePath(), Closed, 4, 1, 16, 3 * 6 * 4},
		{"open thick", openPath(), Open, 4, 1, 16, 3 * (6*3 + 4)},
		{"closed plain", squarePath(), Closed, 4, 0, 8, 3 * 2 * 4},
		{"open plain", openPath(), Open, 4, 0, 8, 3 * 2 * 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out core.Triangles
			tt.path.Stroke(tt.feathering, tt.typ, core.NewStroke(tt.width, core.White), &out)
			if len(out.Vertices) != tt.vertices || len(out.Indices) != tt.indices {
				t.Errorf("got %d vertices / %d indices, want %d / %d",
					len(out.Vertices), len(out.Indices), tt.vertices, tt.indices)
			}
			if !out.IsValid() {
				t.Error("mesh invalid")
			}
		})
	}
}

func TestStroke_EmptyIsNoop(t *testing.T) {
	for _, s := range []core.Stroke{
		core.NewStroke(0, core.White),
		core.NewStroke(2, core.Transparent),
	} {
		var out core.Triangles
		squarePath().StrokeClosed(1, s, &out)
		if !out.IsEmpty() {
			t.Errorf("stroke %v added geometry", s)
		}
	}
}

func TestStroke_ThinAlphaScalesWithWidth(t *testing.T) {
	for _, w := range []float32{0.25, 0.5, 0.75, 1} {
		var out core.Triangles
		squarePath().StrokeClosed(1, core.NewStroke(w, core.White), &out)
		got := float64(out.Vertices[1].Color.A)
		want := 255 * float64(w)
		if math.Abs(got-want) > 1 {
			t.Errorf("width %v: inner alpha = %v, want ~%v", w, got, want)
		}
		if out.Vertices[0].Color != core.Transparent {
			t.Errorf("width %v: outer vertex not transparent", w)
		}
	}
}

func TestStroke_ThickWidth(t *testing.T) {
	var p Path
	p.AddLineSegment([2]core.Point{core.Pt(0, 0), core.Pt(10, 0)})
	var out core.Triangles
	p.StrokeOpen(1, core.NewStroke(4, core.White), &out)

	bounds := out.CalcBounds()
	// Outer rings at +-(4+1)/2.
	if bounds.Min.Y != -2.5 || bounds.Max.Y != 2.5 {
		t.Errorf("vertical extent = [%v, %v], want [-2.5, 2.5]", bounds.Min.Y, bounds.Max.Y)
	}
	// End caps extruded by one feather.
	if bounds.Min.X != -1 || bounds.Max.X != 11 {
		t.Errorf("horizontal extent = [%v, %v], want [-1, 11]", bounds.Min.X, bounds.Max.X)
	}
}

func TestStroke_SinglePointIsNoop(t *testing.T) {
	var p Path
	p.AddPoint(core.Pt(0, 0), core.V2(0, 1))
	var out core.Triangles
	p.StrokeOpen(1, core.NewStroke(2, core.White), &out)
	if !out.IsEmpty() {
		t.Error("single point stroke added geometry")
	}
}

func BenchmarkFillCircle(b *testing.B) {
	var p Path
	var out core.Triangles
	for b.Loop() {
		p.Clear()
		out.Clear()
		p.AddCircle(core.Pt(50, 50), 20)
		p.Fill(1, core.Red, &out)
	}
}

func BenchmarkStrokeRoundedRect(b *testing.B) {
	var p Path
	var out core.Triangles
	var pts []core.Point
	r := core.RectFromMinMax(core.Pt(0, 0), core.Pt(200, 100))
	for b.Loop() {
		p.Clear()
		out.Clear()
		pts = RoundedRectangle(pts, r, core.Same(8))
		p.AddLineLoop(pts)
		p.StrokeClosed(1, core.NewStroke(2, core.Black), &out)
	}
}
