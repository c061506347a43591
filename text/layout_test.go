package text

import (
	"math"
	"slices"
	"testing"

	"github.com/gogpu/paint/core"
)

func rowTexts(g *Galley) []string {
	rows := make([]string, len(g.Rows))
	for i, row := range g.Rows {
		s := make([]rune, len(row.Glyphs))
		for j, gl := range row.Glyphs {
			s[j] = gl.Chr
		}
		rows[i] = string(s)
	}
	return rows
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func layoutSimple(text string, wrapWidth float32) *Galley {
	return Layout(newTestFonts(), SimpleJob(text, Proportional(14), core.White, wrapWidth))
}

func TestLayoutEmpty(t *testing.T) {
	g := layoutSimple("", float32(math.Inf(1)))
	if len(g.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(g.Rows))
	}
	row := &g.Rows[0]
	if len(row.Glyphs) != 0 || row.EndsWithNewline {
		t.Errorf("row = %+v", row)
	}
	if row.Height() != 14 {
		t.Errorf("empty row height = %v, want 14", row.Height())
	}
	if g.Size() != core.V2(0, 14) {
		t.Errorf("Size = %v", g.Size())
	}
	if !g.IsEmpty() {
		t.Error("IsEmpty = false")
	}
	if g.NumVertices != 0 {
		t.Errorf("NumVertices = %d", g.NumVertices)
	}
}

func TestLayoutNewlineOnly(t *testing.T) {
	g := layoutSimple("\n", float32(math.Inf(1)))
	if len(g.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(g.Rows))
	}
	if !g.Rows[0].EndsWithNewline || g.Rows[1].EndsWithNewline {
		t.Errorf("EndsWithNewline = %v, %v", g.Rows[0].EndsWithNewline, g.Rows[1].EndsWithNewline)
	}
	if g.Rows[1].MinY() != 14 || g.Size().Y != 28 {
		t.Errorf("second row at %v, galley height %v", g.Rows[1].MinY(), g.Size().Y)
	}
}

func TestLayoutRowOffsets(t *testing.T) {
	inf := float32(math.Inf(1))
	tests := []struct {
		name          string
		text          string
		width         float32
		breakAnywhere bool
		rows          []string
		offsets       [][]float32
	}{
		{"empty zero width", "", 0, false, []string{""}, [][]float32{{0}}},
		{"empty no wrap", "", inf, false, []string{""}, [][]float32{{0}}},
		{"newline only", "\n", inf, false, []string{"", ""}, [][]float32{{0}, {0}}},
		// Nothing to break at: one overflowing row.
		{"word zero width", "abc", 0, false, []string{"abc"}, [][]float32{{0, 6, 12, 18}}},
		{"break anywhere zero width", "abc", 0, true, []string{"a", "b", "c"}, [][]float32{{0, 6}, {0, 6}, {0, 6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := SimpleJob(tt.text, Proportional(14), core.White, tt.width)
			job.Wrap.BreakAnywhere = tt.breakAnywhere
			g := Layout(newTestFonts(), job)

			if got := rowTexts(g); !equalStrings(got, tt.rows) {
				t.Fatalf("rows = %q, want %q", got, tt.rows)
			}
			for i, row := range g.Rows {
				if !slices.Equal(row.XOffsets, tt.offsets[i]) {
					t.Errorf("row %d XOffsets = %v, want %v", i, row.XOffsets, tt.offsets[i])
				}
			}
			if err := g.CheckRowSum(); err != nil {
				t.Error(err)
			}
		})
	}
}

func TestLayoutRoundOutputToGUI(t *testing.T) {
	for _, round := range []bool{true, false} {
		job := NewLayoutJob()
		job.Append("a", 0.01, Simple(Proportional(14), core.White))
		job.RoundOutputToGUI = round
		g := Layout(newTestFonts(), job)

		row := &g.Rows[0]
		if x := row.Glyphs[0].Pos.X; x != 0.01 {
			t.Errorf("round=%v: glyph moved to %v", round, x)
		}
		if x := row.XOffsets[0]; x != 0.01 {
			t.Errorf("round=%v: XOffsets[0] = %v", round, x)
		}
		rounded := row.Rect.Min.X == 0 && row.Rect.Max.X == 6 && g.Rect.Max.X == 6
		if rounded != round {
			t.Errorf("round=%v: row rect %v, galley rect %v", round, row.Rect, g.Rect)
		}
	}
}

func TestLayoutNoBreakOnNewline(t *testing.T) {
	job := SimpleSingleLine("a\nb", Proportional(14), core.White)
	g := Layout(newTestFonts(), job)
	if len(g.Rows) != 1 || len(g.Rows[0].Glyphs) != 3 {
		t.Errorf("rows = %q, want one row of 3 glyphs", rowTexts(g))
	}
}

func TestLayoutWordWrap(t *testing.T) {
	g := layoutSimple("word wrap.\nNew paragraph.", 40)
	want := []string{"word ", "wrap.", "New ", "paragraph."}
	if got := rowTexts(g); !equalStrings(got, want) {
		t.Fatalf("rows = %q, want %q", got, want)
	}
	newlines := []bool{false, true, false, false}
	for i, row := range g.Rows {
		if row.EndsWithNewline != newlines[i] {
			t.Errorf("row %d EndsWithNewline = %v", i, row.EndsWithNewline)
		}
		if row.Rect.Min.X != 0 || row.Glyphs[0].Pos.X != 0 {
			t.Errorf("row %d does not start at x=0: %v", i, row.Rect)
		}
		if row.MinY() != float32(14*i) {
			t.Errorf("row %d at y=%v", i, row.MinY())
		}
	}
	// "paragraph." has no break opportunity and overflows.
	if w := g.Rows[3].Rect.Width(); w != 60 {
		t.Errorf("overflowing row width = %v, want 60", w)
	}
}

func TestLayoutCJK(t *testing.T) {
	tests := []struct {
		width float32
		want  []string
	}{
		{90, []string{"日本語と", "Englishの混在", "した文章"}},
		{110, []string{"日本語とEnglish", "の混在した文章"}},
	}
	for _, tt := range tests {
		g := layoutSimple("日本語とEnglishの混在した文章", tt.width)
		if got := rowTexts(g); !equalStrings(got, tt.want) {
			t.Errorf("width %v: rows = %q, want %q", tt.width, got, tt.want)
		}
	}
}

func TestLayoutCJKNoLineStart(t *testing.T) {
	// 。 may not start a row, so the break goes before 本.
	g := layoutSimple("日本。", 30)
	want := []string{"日", "本。"}
	if got := rowTexts(g); !equalStrings(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestLayoutBreakAnywhere(t *testing.T) {
	job := SimpleJob("abcdefgh", Proportional(14), core.White, 20)
	job.Wrap.BreakAnywhere = true
	g := Layout(newTestFonts(), job)
	want := []string{"abc", "def", "gh"}
	if got := rowTexts(g); !equalStrings(got, want) {
		t.Errorf("rows = %q, want %q", got, want)
	}
}

func TestLayoutTruncate(t *testing.T) {
	job := SingleSection("Hello world", Simple(Proportional(14), core.White))
	job.Wrap = Truncate(30)
	g := Layout(newTestFonts(), job)

	if !g.Elided {
		t.Error("Elided = false")
	}
	if got := rowTexts(g); !equalStrings(got, []string{"Hell…"}) {
		t.Errorf("rows = %q", got)
	}
	if g.Rows[0].EndsWithNewline {
		t.Error("elided row ends with newline")
	}
	if w := g.Rows[0].Rect.Width(); w != 30 {
		t.Errorf("row width = %v, want 30", w)
	}
}

func TestLayoutMaxRows(t *testing.T) {
	job := SimpleJob("a\nb\nc", Proportional(14), core.White, float32(math.Inf(1)))
	job.Wrap.MaxRows = 2
	g := Layout(newTestFonts(), job)
	if !g.Elided {
		t.Error("Elided = false")
	}
	if got := rowTexts(g); !equalStrings(got, []string{"a", "b"}) {
		t.Errorf("rows = %q", got)
	}
	if g.Rows[1].EndsWithNewline {
		t.Error("last elided row ends with newline")
	}
}

func TestLayoutHAlign(t *testing.T) {
	tests := []struct {
		align      Align
		minX, maxX float32
	}{
		{AlignLeft, 0, 18},
		{AlignCenter, -9, 9},
		{AlignRight, -18, 0},
	}
	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			job := SimpleSingleLine("abc", Proportional(14), core.White)
			job.HAlign = tt.align
			g := Layout(newTestFonts(), job)
			row := &g.Rows[0]
			if row.Rect.Min.X != tt.minX || row.Rect.Max.X != tt.maxX {
				t.Errorf("row x range = [%v, %v], want [%v, %v]", row.Rect.Min.X, row.Rect.Max.X, tt.minX, tt.maxX)
			}
			if row.Glyphs[0].Pos.X != tt.minX {
				t.Errorf("first glyph at %v, want %v", row.Glyphs[0].Pos.X, tt.minX)
			}
			if g.Rect.Min.X != min(tt.minX, 0) {
				t.Errorf("galley min x = %v", g.Rect.Min.X)
			}
		})
	}
}

func TestLayoutJustify(t *testing.T) {
	job := SimpleJob("aaa bbb ccc", Proportional(14), core.White, 50)
	job.Justify = true
	g := Layout(newTestFonts(), job)

	if got := rowTexts(g); !equalStrings(got, []string{"aaa bbb ", "ccc"}) {
		t.Fatalf("rows = %q", got)
	}
	first := g.Rows[0].Glyphs
	if got := first[len(first)-2].MaxX(); got != 50 {
		t.Errorf("justified row ends at %v, want 50", got)
	}
	// The last row is never justified.
	last := g.Rows[1].Glyphs
	if got := last[2].MaxX() - last[0].Pos.X; got != 18 {
		t.Errorf("last row width = %v, want 18", got)
	}
}

func TestLayoutSections(t *testing.T) {
	job := NewLayoutJob()
	job.Append("ab", 0, Simple(Proportional(14), core.White))
	job.Append("cd", 4, TextFormat{FontID: Proportional(14), Color: core.Red, LineHeight: 20})
	g := Layout(newTestFonts(), job)

	row := &g.Rows[0]
	if row.Height() != 20 {
		t.Errorf("row height = %v, want the tallest section's 20", row.Height())
	}
	if x := row.Glyphs[2].Pos.X; x != 16 {
		t.Errorf("leading space ignored: 'c' at %v, want 16", x)
	}
	// VAlignBottom places the shorter glyphs at the bottom of the row.
	if y := row.Glyphs[0].Pos.Y; y != 6 {
		t.Errorf("'a' at y=%v, want 6", y)
	}
	if row.Glyphs[2].SectionIndex != 1 {
		t.Errorf("'c' section = %d", row.Glyphs[2].SectionIndex)
	}
	if row.Glyphs[0].SectionIndex != 0 || row.SectionIndexAtStart != 0 {
		t.Error("section index at start")
	}
}

func TestLayoutVAlignTop(t *testing.T) {
	job := NewLayoutJob()
	job.Append("a", 0, TextFormat{FontID: Proportional(14), Color: core.White, VAlign: VAlignTop})
	job.Append("b", 0, TextFormat{FontID: Proportional(14), Color: core.White, LineHeight: 30})
	g := Layout(newTestFonts(), job)
	if y := g.Rows[0].Glyphs[0].Pos.Y; y != 0 {
		t.Errorf("top aligned glyph at y=%v", y)
	}
}

func TestLayoutFirstRowMinHeight(t *testing.T) {
	job := SimpleJob("a\nb", Proportional(14), core.White, float32(math.Inf(1)))
	job.FirstRowMinHeight = 30
	g := Layout(newTestFonts(), job)
	if g.Rows[0].Height() != 30 || g.Rows[1].Height() != 14 {
		t.Errorf("heights = %v, %v", g.Rows[0].Height(), g.Rows[1].Height())
	}
}

func TestLayoutRowSum(t *testing.T) {
	texts := []string{
		"",
		"\n",
		"\n\n",
		"a",
		"hello world",
		"hello\nworld\n",
		"a b c d e f g h i j k",
		"日本語とEnglishの混在した文章",
		"    leading spaces",
		"verylongwordwithoutanybreaks and more",
	}
	widths := []float32{10, 25, 40, 100, float32(math.Inf(1))}
	for _, text := range texts {
		for _, w := range widths {
			g := layoutSimple(text, w)
			if err := g.CheckRowSum(); err != nil {
				t.Errorf("%q at %v: %v", text, w, err)
			}
			if g.Rows[len(g.Rows)-1].EndsWithNewline {
				t.Errorf("%q at %v: last row ends with newline", text, w)
			}
			for i := range g.Rows {
				if err := g.Rows[i].Visuals.Mesh.Validate(); err != nil {
					t.Errorf("%q at %v row %d: %v", text, w, i, err)
				}
			}
		}
	}
}

func TestLayoutVisuals(t *testing.T) {
	format := Simple(Proportional(14), core.White)
	format.Background = core.Blue
	format.Underline = core.NewStroke(1, core.Red)
	job := SingleSection("ab c", format)
	g := Layout(newTestFonts(), job)

	row := &g.Rows[0]
	vr := row.Visuals.GlyphVertexRange
	if got := vr.End - vr.Start; got != 12 {
		t.Errorf("glyph vertices = %d, want 3 quads", got)
	}
	if vr.Start != 4 {
		t.Errorf("glyph vertices start at %d, want after one background quad", vr.Start)
	}
	if len(row.Visuals.Mesh.Vertices) <= vr.End {
		t.Error("no underline vertices")
	}
	if g.NumVertices != len(row.Visuals.Mesh.Vertices) {
		t.Errorf("NumVertices = %d", g.NumVertices)
	}
	if !g.MeshBounds.Contains(core.Pt(1, 5)) {
		t.Errorf("MeshBounds = %v", g.MeshBounds)
	}
	for _, v := range row.Visuals.Mesh.Vertices[vr.Start:vr.End] {
		if v.Color != core.White {
			t.Fatalf("glyph vertex color = %v", v.Color)
		}
	}
}

func TestLayoutItalics(t *testing.T) {
	format := Simple(Proportional(14), core.White)
	format.Italics = true
	g := Layout(newTestFonts(), SingleSection("a", format))
	v := g.Rows[0].Visuals.Mesh.Vertices
	if len(v) != 4 {
		t.Fatalf("vertices = %d", len(v))
	}
	if v[0].Pos.X <= v[2].Pos.X {
		t.Errorf("top-left %v is not skewed right of bottom-left %v", v[0].Pos, v[2].Pos)
	}
}

func TestLayoutDoesNotAliasJob(t *testing.T) {
	job := SimpleJob("abc", Proportional(14), core.White, 100)
	g := Layout(newTestFonts(), job)
	job.Sections[0].Format.Color = core.Red
	job.Text = "changed"
	if g.Text() != "abc" || g.Job.Sections[0].Format.Color != core.White {
		t.Error("galley shares state with the job")
	}
}

func TestRowXOffsets(t *testing.T) {
	g := layoutSimple("ab", float32(math.Inf(1)))
	row := &g.Rows[0]
	want := []float32{0, 6, 12}
	for i, x := range want {
		if row.XOffset(i) != x {
			t.Errorf("XOffset(%d) = %v, want %v", i, row.XOffset(i), x)
		}
	}
	if row.XOffset(99) != 12 || row.XOffset(-1) != 0 {
		t.Error("XOffset does not clamp")
	}
	tests := []struct {
		x    float32
		want int
	}{{-5, 0}, {2.9, 0}, {3.1, 1}, {8, 1}, {9.5, 2}, {100, 2}}
	for _, tt := range tests {
		if got := row.CharAt(tt.x); got != tt.want {
			t.Errorf("CharAt(%v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func BenchmarkLayout(b *testing.B) {
	fonts := newTestFonts()
	job := SimpleJob("The quick brown fox jumps over the lazy dog. 日本語の文章もあります。\n", Proportional(14), core.White, 200)
	for range 5 {
		job.Text += job.Text
	}
	job.Sections[0].ByteRange.End = len(job.Text)
	for b.Loop() {
		Layout(fonts, job)
	}
}
