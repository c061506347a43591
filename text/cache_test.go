package text

import (
	"math"
	"sync"
	"testing"

	"github.com/gogpu/paint/core"
)

func TestGalleyCacheReuse(t *testing.T) {
	c := NewGalleyCache(newTestFonts())
	job := SimpleJob("hello", Proportional(14), core.White, 100)

	a := c.Layout(job)
	b := c.Layout(SimpleJob("hello", Proportional(14), core.White, 100))
	if a != b {
		t.Error("equal jobs produced different galleys")
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	tests := []struct {
		name   string
		modify func(*LayoutJob)
	}{
		{"text", func(j *LayoutJob) { j.Text = "hellO" }},
		{"wrap", func(j *LayoutJob) { j.Wrap.MaxWidth = 50 }},
		{"color", func(j *LayoutJob) { j.Sections[0].Format.Color = core.Red }},
		{"size", func(j *LayoutJob) { j.Sections[0].Format.FontID.Size = 20 }},
		{"halign", func(j *LayoutJob) { j.HAlign = AlignRight }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := SimpleJob("hello", Proportional(14), core.White, 100)
			tt.modify(j)
			if c.Layout(j) == a {
				t.Error("different job hit the cached galley")
			}
		})
	}
}

func TestGalleyCacheFlushUnused(t *testing.T) {
	c := NewGalleyCache(newTestFonts())
	jobA := SimpleJob("a", Proportional(14), core.White, float32(math.Inf(1)))
	jobB := SimpleJob("b", Proportional(14), core.White, float32(math.Inf(1)))

	c.Layout(jobA)
	c.Layout(jobB)
	if n := c.FlushUnused(); n != 0 {
		t.Errorf("first flush evicted %d, want 0", n)
	}

	c.Layout(jobA)
	if n := c.FlushUnused(); n != 1 {
		t.Errorf("second flush evicted %d, want 1", n)
	}
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}
}

func TestGalleyCacheLimit(t *testing.T) {
	c := NewGalleyCache(newTestFonts(), WithGalleyLimit(2))
	for _, s := range []string{"a", "b", "c"} {
		c.Layout(SimpleJob(s, Proportional(14), core.White, 100))
	}
	// Three galleys over a limit of two shrink to one.
	if c.Len() != 1 {
		t.Errorf("Len = %d, want 1", c.Len())
	}

	c.Layout(SimpleJob("c", Proportional(14), core.White, 100))
	want := CacheStats{Galleys: 1, Limit: 2, Hits: 1, Misses: 3, Evictions: 2}
	if got := c.Stats(); got != want {
		t.Errorf("Stats = %+v, want %+v", got, want)
	}
}

func TestGalleyCacheUnlimitedByDefault(t *testing.T) {
	c := NewGalleyCache(newTestFonts())
	for i := range 100 {
		c.Layout(SimpleJob(string(rune('A'+i)), Proportional(14), core.White, 100))
	}
	if s := c.Stats(); s.Galleys != 100 || s.Limit != 0 || s.Evictions != 0 {
		t.Errorf("Stats = %+v", s)
	}
}

func TestGalleyCacheConcurrent(t *testing.T) {
	c := NewGalleyCache(newTestFonts())
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				text := string(rune('a' + (i+j)%5))
				g := c.Layout(SimpleJob(text, Proportional(14), core.White, 100))
				if g.Text() != text {
					t.Errorf("galley text = %q, want %q", g.Text(), text)
					return
				}
			}
		}()
	}
	wg.Wait()
	if c.Len() != 5 {
		t.Errorf("Len = %d, want 5", c.Len())
	}
}

func BenchmarkGalleyCacheHit(b *testing.B) {
	c := NewGalleyCache(newTestFonts())
	job := SimpleJob("The quick brown fox", Proportional(14), core.White, 100)
	c.Layout(job)
	for b.Loop() {
		c.Layout(job)
	}
}
