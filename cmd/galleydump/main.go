// Command galleydump lays out text on a terminal cell grid and prints the
// resulting rows together with row and cursor data.
//
// Usage:
//
//	galleydump [flags] [file]
//
// The text is read from file, or from stdin when no file is given.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/text"
)

var (
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#243141"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type config struct {
	width         int
	maxRows       int
	halign        text.Align
	justify       bool
	breakAnywhere bool
	ambiguousWide bool
	color         core.Color32
	stats         bool
	cursors       []int
	path          string
}

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatalf("galleydump: %v", err)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	src := stdin
	if cfg.path != "" {
		f, err := os.Open(cfg.path)
		if err != nil {
			return err
		}
		defer f.Close()
		src = f
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	fonts := text.NewCellFonts(text.WithEastAsianAmbiguousWide(cfg.ambiguousWide))
	galleys := text.NewGalleyCache(fonts, text.WithGalleyLimit(galleyLimit))
	g := galleys.Layout(newJob(strings.TrimSuffix(string(data), "\n"), cfg))
	if err := dump(stdout, fonts, g, cfg.cursors); err != nil {
		return err
	}
	if !cfg.stats {
		return nil
	}
	s := galleys.Stats()
	_, err = fmt.Fprintln(stdout, dimStyle.Render(fmt.Sprintf("cache %d/%d galleys, %d hits, %d misses",
		s.Galleys, s.Limit, s.Hits, s.Misses)))
	return err
}

const galleyLimit = 16

// parseColor accepts "#rgb", "#rrggbb", "#rrggbbaa" or "h,s,v" with hue
// in degrees and saturation and value in [0, 1].
func parseColor(s string) (core.Color32, error) {
	if strings.HasPrefix(s, "#") {
		return core.Hex(s)
	}
	var h, sat, v float64
	if _, err := fmt.Sscanf(s, "%g,%g,%g", &h, &sat, &v); err != nil {
		return core.Color32{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	return core.HSV(h, sat, v), nil
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("galleydump", flag.ContinueOnError)
	var (
		cfg     config
		align   = fs.String("align", "left", "row alignment: left, center or right")
		color   = fs.String("color", "#ffffff", "text color as #rrggbb or h,s,v")
		cursors = fs.String("cursor", "", "comma separated character indices to report")
	)
	fs.IntVar(&cfg.width, "width", 0, "wrap width in cells, 0 disables wrapping")
	fs.IntVar(&cfg.maxRows, "max-rows", 0, "maximum number of rows, 0 for no limit")
	fs.BoolVar(&cfg.justify, "justify", false, "stretch wrapped rows to the wrap width")
	fs.BoolVar(&cfg.breakAnywhere, "break-anywhere", false, "break between any two characters")
	fs.BoolVar(&cfg.ambiguousWide, "ambiguous-wide", false, "treat East Asian ambiguous characters as wide")
	fs.BoolVar(&cfg.stats, "stats", false, "print galley cache statistics")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch *align {
	case "left":
		cfg.halign = text.AlignLeft
	case "center":
		cfg.halign = text.AlignCenter
	case "right":
		cfg.halign = text.AlignRight
	default:
		return cfg, fmt.Errorf("unknown alignment %q", *align)
	}

	c, err := parseColor(*color)
	if err != nil {
		return cfg, err
	}
	cfg.color = c

	if *cursors != "" {
		for _, s := range strings.Split(*cursors, ",") {
			var n int
			if _, err := fmt.Sscan(strings.TrimSpace(s), &n); err != nil {
				return cfg, fmt.Errorf("bad cursor %q: %w", s, err)
			}
			cfg.cursors = append(cfg.cursors, n)
		}
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.path = fs.Arg(0)
	default:
		return cfg, fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}
	return cfg, nil
}

func newJob(s string, cfg config) *text.LayoutJob {
	job := text.SingleSection(s, text.Simple(text.Monospace(1), cfg.color))
	if cfg.width > 0 {
		job.Wrap.MaxWidth = float32(cfg.width)
	}
	job.Wrap.MaxRows = cfg.maxRows
	job.Wrap.BreakAnywhere = cfg.breakAnywhere
	if cfg.maxRows > 0 {
		job.Wrap.OverflowCharacter = '…'
	}
	job.HAlign = cfg.halign
	job.Justify = cfg.justify
	// Cell positions are whole numbers already.
	job.RoundOutputToGUI = false
	return job
}

func dump(w io.Writer, fonts *text.CellFonts, g *text.Galley, cursors []int) error {
	lines := make([]string, len(g.Rows))
	for i := range g.Rows {
		row := &g.Rows[i]
		style := textStyle(g.Job.Sections[row.SectionIndexAtStart].Format.Color)
		lines[i] = style.Render(renderRow(fonts, row, g.Rect.Min.X))
	}
	if _, err := fmt.Fprintln(w, boxStyle.Render(strings.Join(lines, "\n"))); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintln(&b, headerStyle.Render(fmt.Sprintf("%-4s %-12s %-6s %s", "row", "x", "chars", "newline")))
	for i := range g.Rows {
		row := &g.Rows[i]
		fmt.Fprintf(&b, "%-4d %-12s %-6d %t\n",
			i,
			fmt.Sprintf("%g..%g", row.Rect.Min.X, row.Rect.Max.X),
			row.CharCountExcludingNewline(),
			row.EndsWithNewline)
	}
	size := g.Size()
	fmt.Fprintln(&b, dimStyle.Render(fmt.Sprintf("size %gx%g elided %t", size.X, size.Y, g.Elided)))

	for _, n := range cursors {
		c := g.FromCCursor(text.CCursor{Index: n})
		pos := g.PosFromCursor(c)
		fmt.Fprintf(&b, "cursor %d: row %d column %d paragraph %d offset %d at (%g, %g)\n",
			c.CCursor.Index,
			c.RCursor.Row, c.RCursor.Column,
			c.PCursor.Paragraph, c.PCursor.Offset,
			pos.Min.X, pos.Min.Y)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// textStyle renders in c. Color32 is premultiplied, so translucent colors
// come out darker.
func textStyle(c core.Color32) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
}

// renderRow places every glyph at its cell column, shifted so that the
// leftmost row of the galley starts at column 0.
func renderRow(fonts *text.CellFonts, row *text.Row, minX float32) string {
	var b strings.Builder
	col := 0
	for _, g := range row.Glyphs {
		target := int(math.Round(float64(g.Pos.X - minX)))
		if target > col {
			b.WriteString(strings.Repeat(" ", target-col))
			col = target
		}
		b.WriteRune(g.Chr)
		col += fonts.Cells(g.Chr)
	}
	return b.String()
}
