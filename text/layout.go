package text

import (
	"context"
	"log/slog"
	"math"
	"unicode"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/debug"
	"github.com/gogpu/paint/path"
)

// paragraph is the text between two newlines, before line breaking.
type paragraph struct {
	// cursorX is where the next glyph goes.
	cursorX float32

	sectionIndexAtStart int
	glyphs              []Glyph

	// emptyHeight is the row height used if the paragraph has no glyphs.
	emptyHeight float32
}

// Layout lays out job. The job is copied; later changes to it do not
// affect the returned galley.
func Layout(fonts Fonts, job *LayoutJob) *Galley {
	job = job.Clone()
	s := scale(fonts.PixelsPerPoint())

	paragraphs := []paragraph{{}}
	for i := range job.Sections {
		paragraphs = layoutSection(fonts, s, job, i, paragraphs)
	}

	rows, elided := rowsFromParagraphs(paragraphs, job)
	if elided && len(rows) > 0 {
		last := &rows[len(rows)-1]
		replaceLastGlyphWithOverflow(fonts, job, last)
		if n := len(last.Glyphs); n > 0 {
			last.Rect.Max.X = last.Glyphs[n-1].MaxX()
		}
	}

	justify := job.Justify && isFinite(job.Wrap.MaxWidth)
	if justify || job.HAlign != AlignLeft {
		for i := range rows {
			isLast := i+1 == len(rows)
			justifyRow := justify && !rows[i].EndsWithNewline && !isLast
			halignAndJustifyRow(s, &rows[i], job.HAlign, job.Wrap.MaxWidth, justifyRow)
		}
	}

	g := galleyFromRows(fonts, s, job, rows, elided)

	if l := debug.Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("text: layout",
			"chars", len(job.Text),
			"rows", len(g.Rows),
			"elided", g.Elided,
			"vertices", g.NumVertices)
	}
	if err := g.CheckRowSum(); err != nil {
		debug.Assert(false, "%v", err)
	}
	return g
}

func layoutSection(fonts Fonts, s scale, job *LayoutJob, sectionIndex int, paragraphs []paragraph) []paragraph {
	section := &job.Sections[sectionIndex]
	format := &section.Format
	lineHeight := format.LineHeight
	if lineHeight == 0 {
		lineHeight = fonts.RowHeight(format.FontID)
	}
	ascent := fonts.Ascent(format.FontID)

	para := &paragraphs[len(paragraphs)-1]
	if len(para.glyphs) == 0 {
		para.emptyHeight = lineHeight
	}
	para.cursorX += section.LeadingSpace

	var lastID GlyphID
	hasLast := false
	for _, c := range job.Text[section.ByteRange.Start:section.ByteRange.End] {
		if job.BreakOnNewline && c == '\n' {
			paragraphs = append(paragraphs, paragraph{sectionIndexAtStart: sectionIndex, emptyHeight: lineHeight})
			para = &paragraphs[len(paragraphs)-1]
			continue
		}

		info := fonts.GlyphInfo(format.FontID, c)
		if hasLast {
			para.cursorX += fonts.PairKerning(format.FontID, lastID, info.ID)
			para.cursorX += format.ExtraLetterSpacing
		}

		para.glyphs = append(para.glyphs, Glyph{
			Chr:          c,
			Pos:          core.Pt(para.cursorX, 0),
			Size:         core.V2(info.AdvanceWidth, lineHeight),
			Ascent:       ascent,
			UVRect:       info.UVRect,
			SectionIndex: sectionIndex,
		})

		para.cursorX += info.AdvanceWidth
		para.cursorX = s.round(para.cursorX)
		lastID, hasLast = info.ID, true
	}
	return paragraphs
}

func xRangeRect(minX, maxX float32) core.Rect {
	return core.RectFromXYRanges(minX, maxX, 0, 0)
}

func rowFromGlyphs(glyphs []Glyph) Row {
	return Row{
		SectionIndexAtStart: glyphs[0].SectionIndex,
		Glyphs:              glyphs,
		Rect:                xRangeRect(glyphs[0].Pos.X, glyphs[len(glyphs)-1].MaxX()),
	}
}

func rowsFromParagraphs(paragraphs []paragraph, job *LayoutJob) (rows []Row, elided bool) {
	maxRows := job.maxRows()
	wrapWidth := job.EffectiveWrapWidth()

	for i := range paragraphs {
		if len(rows) >= maxRows {
			elided = true
			break
		}
		para := &paragraphs[i]
		isLastParagraph := i+1 == len(paragraphs)

		if len(para.glyphs) == 0 {
			rows = append(rows, Row{
				SectionIndexAtStart: para.sectionIndexAtStart,
				Rect:                core.RectFromMinSize(core.Pt(para.cursorX, 0), core.V2(0, para.emptyHeight)),
				EndsWithNewline:     !isLastParagraph,
			})
			continue
		}

		if para.glyphs[len(para.glyphs)-1].MaxX() <= wrapWidth {
			// The whole paragraph fits on one row.
			row := rowFromGlyphs(para.glyphs)
			row.SectionIndexAtStart = para.sectionIndexAtStart
			row.EndsWithNewline = !isLastParagraph
			rows = append(rows, row)
			continue
		}

		var paraElided bool
		rows, paraElided = lineBreak(para, job, rows)
		elided = elided || paraElided
		rows[len(rows)-1].EndsWithNewline = !isLastParagraph && !paraElided
	}

	if elided && len(rows) > 0 {
		// The text goes on, but not on another row.
		rows[len(rows)-1].EndsWithNewline = false
	}
	return rows, elided
}

// lineBreak splits a paragraph that is wider than the wrap width.
func lineBreak(para *paragraph, job *LayoutJob, rows []Row) ([]Row, bool) {
	wrapWidth := job.EffectiveWrapWidth()
	maxRows := job.maxRows()
	breakAnywhere := job.Wrap.BreakAnywhere
	glyphs := para.glyphs

	candidates := newBreakCandidates()
	firstRowIndentation := glyphs[0].Pos.X
	var rowStartX float32
	rowStart := 0
	elided := false

	for i := range glyphs {
		if len(rows) >= maxRows {
			elided = true
			break
		}

		if wrapWidth < glyphs[i].MaxX()-rowStartX {
			switch {
			case firstRowIndentation > 0 && !candidates.hasGoodCandidate(breakAnywhere):
				// Nothing fits after the indentation; leave the first row
				// empty and start over at the left margin.
				rows = append(rows, Row{
					SectionIndexAtStart: para.sectionIndexAtStart,
					Rect:                xRangeRect(firstRowIndentation, firstRowIndentation),
				})
				rowStartX += firstRowIndentation
				firstRowIndentation = 0

			case candidates.get(breakAnywhere) >= 0:
				lastKept := candidates.get(breakAnywhere)
				rows = append(rows, rowFromGlyphs(shiftGlyphs(glyphs[rowStart:lastKept+1], rowStartX)))
				rowStart = lastKept + 1
				rowStartX = glyphs[rowStart].Pos.X
				candidates.forgetBefore(rowStart)

			default:
				// No place to break: the row overflows.
			}
		}

		candidates.add(i, glyphs[i:])
	}

	if rowStart < len(glyphs) {
		if len(rows) >= maxRows {
			elided = true
		} else {
			rows = append(rows, rowFromGlyphs(shiftGlyphs(glyphs[rowStart:], rowStartX)))
		}
	}
	return rows, elided
}

func shiftGlyphs(glyphs []Glyph, dx float32) []Glyph {
	out := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		g.Pos.X -= dx
		out[i] = g
	}
	return out
}

// replaceLastGlyphWithOverflow appends the overflow character to an elided
// row, or replaces trailing glyphs with it until the row fits.
func replaceLastGlyphWithOverflow(fonts Fonts, job *LayoutJob, row *Row) {
	overflow := job.Wrap.OverflowCharacter
	if overflow == 0 {
		return
	}
	wrapWidth := job.EffectiveWrapWidth()

	rowWidth := func() float32 {
		if len(row.Glyphs) == 0 {
			return 0
		}
		return row.Glyphs[len(row.Glyphs)-1].MaxX() - row.Glyphs[0].Pos.X
	}
	lineHeight := func(format *TextFormat) float32 {
		if format.LineHeight != 0 {
			return format.LineHeight
		}
		return fonts.RowHeight(format.FontID)
	}

	// First just try to append it.
	if n := len(row.Glyphs); n > 0 {
		last := row.Glyphs[n-1]
		format := &job.Sections[last.SectionIndex].Format
		lastInfo := fonts.GlyphInfo(format.FontID, last.Chr)
		info := fonts.GlyphInfo(format.FontID, overflow)

		x := last.MaxX() + format.ExtraLetterSpacing + fonts.PairKerning(format.FontID, lastInfo.ID, info.ID)
		row.Glyphs = append(row.Glyphs, Glyph{
			Chr:          overflow,
			Pos:          core.Pt(x, 0),
			Size:         core.V2(info.AdvanceWidth, lineHeight(format)),
			Ascent:       fonts.Ascent(format.FontID),
			UVRect:       info.UVRect,
			SectionIndex: last.SectionIndex,
		})
	} else {
		format := &job.Sections[row.SectionIndexAtStart].Format
		info := fonts.GlyphInfo(format.FontID, overflow)
		row.Glyphs = append(row.Glyphs, Glyph{
			Chr:          overflow,
			Pos:          core.Pt(row.Rect.Min.X, 0),
			Size:         core.V2(info.AdvanceWidth, lineHeight(format)),
			Ascent:       fonts.Ascent(format.FontID),
			UVRect:       info.UVRect,
			SectionIndex: row.SectionIndexAtStart,
		})
	}

	if rowWidth() <= wrapWidth || len(row.Glyphs) == 1 {
		return
	}

	// It did not fit. Remove it again and instead replace the last glyph
	// with it until the row fits.
	row.Glyphs = row.Glyphs[:len(row.Glyphs)-1]

	for {
		n := len(row.Glyphs)
		last := &row.Glyphs[n-1]
		format := &job.Sections[last.SectionIndex].Format
		info := fonts.GlyphInfo(format.FontID, overflow)

		if n == 1 {
			last.Chr = overflow
			last.Size.X = info.AdvanceWidth
			last.UVRect = info.UVRect
			return
		}

		prevID := fonts.GlyphInfo(format.FontID, row.Glyphs[n-2].Chr).ID
		oldID := fonts.GlyphInfo(format.FontID, last.Chr).ID

		// Undo kerning with the previous glyph, swap, kern again.
		last.Pos.X -= format.ExtraLetterSpacing + fonts.PairKerning(format.FontID, prevID, oldID)
		last.Chr = overflow
		last.Size.X = info.AdvanceWidth
		last.UVRect = info.UVRect
		last.Pos.X += format.ExtraLetterSpacing + fonts.PairKerning(format.FontID, prevID, info.ID)

		if rowWidth() <= wrapWidth || len(row.Glyphs) == 1 {
			return
		}
		row.Glyphs = row.Glyphs[:n-1]
	}
}

// halignAndJustifyRow moves the glyphs of row according to halign, and
// stretches the gaps between them to wrapWidth when justify is set.
// Leading and trailing whitespace is ignored when measuring.
func halignAndJustifyRow(s scale, row *Row, halign Align, wrapWidth float32, justify bool) {
	glyphs := row.Glyphs
	if len(glyphs) == 0 {
		return
	}

	leading := 0
	for leading < len(glyphs) && unicode.IsSpace(glyphs[leading].Chr) {
		leading++
	}
	start, end := 0, len(glyphs)
	if leading < len(glyphs) {
		trailing := 0
		for trailing < len(glyphs) && unicode.IsSpace(glyphs[len(glyphs)-1-trailing].Chr) {
			trailing++
		}
		start, end = leading, len(glyphs)-trailing
	}
	numInRange := end - start
	debug.Assert(numInRange > 0, "text: empty alignment range")

	originalMinX := glyphs[start].LogicalRect().Min.X
	originalMaxX := glyphs[end-1].LogicalRect().Max.X
	originalWidth := originalMaxX - originalMinX

	targetWidth := originalWidth
	if justify && numInRange > 1 {
		targetWidth = wrapWidth
	}

	var targetMinX, targetMaxX float32
	switch halign {
	case AlignCenter:
		targetMinX, targetMaxX = -targetWidth/2, targetWidth/2
	case AlignRight:
		targetMinX, targetMaxX = -targetWidth, 0
	default:
		targetMinX, targetMaxX = 0, targetWidth
	}

	numSpaces := 0
	for _, g := range glyphs[start:end] {
		if unicode.IsSpace(g.Chr) {
			numSpaces++
		}
	}

	var extraPerGlyph float32
	if numInRange > 1 {
		extraPerGlyph = (targetWidth - originalWidth) / float32(numInRange-1)
	}
	extraPerGlyph = max(extraPerGlyph, 0) // never contract

	var extraPerSpace float32
	if numSpaces > 0 && numSpaces < numInRange {
		// Whole pixels between every glyph, the balance goes to the spaces.
		extraPerGlyph = s.floor(extraPerGlyph)
		extraPerSpace = (targetWidth - originalWidth - extraPerGlyph*float32(numInRange-1)) / float32(numSpaces)
	}

	translateX := targetMinX - originalMinX - extraPerGlyph*float32(start)
	for i := range glyphs {
		g := &glyphs[i]
		g.Pos.X = s.round(g.Pos.X + translateX)
		translateX += extraPerGlyph
		if unicode.IsSpace(g.Chr) {
			translateX += extraPerSpace
		}
	}

	row.Rect.Min.X = targetMinX
	row.Rect.Max.X = targetMaxX
}

// galleyFromRows assigns vertical positions and tessellates every row.
func galleyFromRows(fonts Fonts, s scale, job *LayoutJob, rows []Row, elided bool) *Galley {
	firstRowMinHeight := job.FirstRowMinHeight
	var cursorY, minX, maxX float32

	for i := range rows {
		row := &rows[i]

		height := max(firstRowMinHeight, row.Rect.Height())
		firstRowMinHeight = 0
		var tallest *Glyph
		for j := range row.Glyphs {
			g := &row.Glyphs[j]
			height = max(height, g.Size.Y)
			if tallest == nil || g.Size.Y > tallest.Size.Y {
				tallest = g
			}
		}
		height = s.round(height)

		for j := range row.Glyphs {
			g := &row.Glyphs[j]
			valign := job.Sections[g.SectionIndex].Format.VAlign
			g.Pos.Y = s.round(cursorY + valign.factor()*(height-g.Size.Y))
		}

		if tallest != nil {
			row.Ascent = tallest.Pos.Y - cursorY + tallest.Ascent
		} else if len(job.Sections) > 0 {
			row.Ascent = fonts.Ascent(job.Sections[row.SectionIndexAtStart].Format.FontID)
		}

		row.Rect.Min.Y = cursorY
		row.Rect.Max.Y = cursorY + height
		row.XOffsets = xOffsets(row)

		minX = min(minX, row.Rect.Min.X)
		maxX = max(maxX, row.Rect.Max.X)
		cursorY = s.round(cursorY + height)
	}

	rect := core.RectFromMinMax(core.Pt(minX, 0), core.Pt(maxX, cursorY))
	if job.RoundOutputToGUI {
		for i := range rows {
			rows[i].Rect = roundToGUI(rows[i].Rect)
		}
		rect = roundToGUI(rect)
	}

	g := &Galley{
		Job:            job,
		Rows:           rows,
		Elided:         elided,
		Rect:           rect,
		MeshBounds:     core.Nothing,
		PixelsPerPoint: float32(s),
	}

	summary := summarizeFormats(job)
	for i := range rows {
		rows[i].Visuals = tessellateRow(s, job, summary, &rows[i])
		g.MeshBounds = g.MeshBounds.Union(rows[i].Visuals.MeshBounds)
		g.NumVertices += len(rows[i].Visuals.Mesh.Vertices)
		g.NumIndices += len(rows[i].Visuals.Mesh.Indices)
	}
	return g
}

// guiGrid is the number of GUI rounding steps per point.
const guiGrid = 32

// roundToGUI snaps r to 1/32 of a point. Glyph positions are left alone.
func roundToGUI(r core.Rect) core.Rect {
	return core.RectFromMinMax(
		core.Pt(core.RoundToPixel(r.Min.X, guiGrid), core.RoundToPixel(r.Min.Y, guiGrid)),
		core.Pt(core.RoundToPixel(r.Max.X, guiGrid), core.RoundToPixel(r.Max.Y, guiGrid)),
	)
}

func xOffsets(row *Row) []float32 {
	offsets := make([]float32, 0, len(row.Glyphs)+1)
	for _, g := range row.Glyphs {
		offsets = append(offsets, g.Pos.X)
	}
	if n := len(row.Glyphs); n > 0 {
		return append(offsets, row.Glyphs[n-1].MaxX())
	}
	return append(offsets, row.Rect.Min.X)
}

type formatSummary struct {
	anyBackground    bool
	anyUnderline     bool
	anyStrikethrough bool
}

func summarizeFormats(job *LayoutJob) formatSummary {
	var fs formatSummary
	for _, sec := range job.Sections {
		fs.anyBackground = fs.anyBackground || !sec.Format.Background.IsTransparent()
		fs.anyUnderline = fs.anyUnderline || !sec.Format.Underline.IsEmpty()
		fs.anyStrikethrough = fs.anyStrikethrough || !sec.Format.Strikethrough.IsEmpty()
	}
	return fs
}

func tessellateRow(s scale, job *LayoutJob, summary formatSummary, row *Row) RowVisuals {
	if len(row.Glyphs) == 0 {
		return RowVisuals{MeshBounds: core.Nothing}
	}

	var mesh core.Triangles
	mesh.ReserveTriangles(2 * len(row.Glyphs))
	mesh.ReserveVertices(4 * len(row.Glyphs))

	if summary.anyBackground {
		addRowBackgrounds(job, row, &mesh)
	}

	glyphStart := len(mesh.Vertices)
	tessellateGlyphs(s, job, row, &mesh)
	glyphEnd := len(mesh.Vertices)

	if summary.anyUnderline {
		addRowLine(s, row, &mesh, func(g *Glyph) (core.Stroke, float32) {
			return job.Sections[g.SectionIndex].Format.Underline, g.LogicalRect().Bottom()
		})
	}
	if summary.anyStrikethrough {
		addRowLine(s, row, &mesh, func(g *Glyph) (core.Stroke, float32) {
			return job.Sections[g.SectionIndex].Format.Strikethrough, g.LogicalRect().Center().Y
		})
	}

	return RowVisuals{
		Mesh:             mesh,
		MeshBounds:       mesh.CalcBounds(),
		GlyphVertexRange: VertexRange{Start: glyphStart, End: glyphEnd},
	}
}

// addRowBackgrounds paints one rectangle per run of glyphs sharing a
// background color and vertical extent.
func addRowBackgrounds(job *LayoutJob, row *Row, mesh *core.Triangles) {
	var (
		runColor  core.Color32
		runRect   core.Rect
		inRun     bool
		lastRight float32
	)
	endRun := func() {
		if !inRun {
			return
		}
		r := core.RectFromMinMax(runRect.LeftTop(), core.Pt(lastRight, runRect.Bottom()))
		mesh.AddColoredRect(r.Expand(1), runColor)
		inRun = false
	}

	for i := range row.Glyphs {
		g := &row.Glyphs[i]
		color := job.Sections[g.SectionIndex].Format.Background
		rect := g.LogicalRect()

		switch {
		case color.IsTransparent():
			endRun()
		case inRun && runColor == color && runRect.Top() == rect.Top() && runRect.Bottom() == rect.Bottom():
			// Same run continues.
		default:
			endRun()
			runColor, runRect, inRun = color, rect, true
		}
		lastRight = rect.Right()
	}
	endRun()
}

func tessellateGlyphs(s scale, job *LayoutJob, row *Row, mesh *core.Triangles) {
	for i := range row.Glyphs {
		g := &row.Glyphs[i]
		uv := g.UVRect
		if uv.IsNothing() {
			continue
		}

		leftTop := g.Pos.Add(uv.Offset)
		leftTop = core.Pt(s.round(leftTop.X), s.round(leftTop.Y))
		rect := core.RectFromMinSize(leftTop, uv.Size)
		texels := core.RectFromMinMax(
			core.Pt(float32(uv.Min[0]), float32(uv.Min[1])),
			core.Pt(float32(uv.Max[0]), float32(uv.Max[1])),
		)

		format := &job.Sections[g.SectionIndex].Format
		color := format.Color

		if !format.Italics {
			mesh.AddRectWithUV(rect, texels, color)
			continue
		}

		idx := uint32(len(mesh.Vertices))
		mesh.AddTriangle(idx, idx+1, idx+2)
		mesh.AddTriangle(idx+2, idx+1, idx+3)
		skew := core.V2(rect.Height()*0.25, 0)
		mesh.Vertices = append(mesh.Vertices,
			core.Vertex{Pos: rect.LeftTop().Add(skew), UV: texels.LeftTop(), Color: color},
			core.Vertex{Pos: rect.RightTop().Add(skew), UV: texels.RightTop(), Color: color},
			core.Vertex{Pos: rect.LeftBottom(), UV: texels.LeftBottom(), Color: color},
			core.Vertex{Pos: rect.RightBottom(), UV: texels.RightBottom(), Color: color},
		)
	}
}

// addRowLine draws one horizontal line per run of glyphs sharing the same
// stroke and height.
func addRowLine(s scale, row *Row, mesh *core.Triangles, strokeAndY func(*Glyph) (core.Stroke, float32)) {
	var (
		p          path.Path
		runStroke  core.Stroke
		runStart   core.Point
		inRun      bool
		lastRightX float32
	)
	feathering := 1 / float32(s)
	endLine := func() {
		if !inRun {
			return
		}
		p.Clear()
		p.AddLineSegment([2]core.Point{runStart, core.Pt(lastRightX, runStart.Y)})
		p.StrokeOpen(feathering, runStroke, mesh)
		inRun = false
	}

	for i := range row.Glyphs {
		g := &row.Glyphs[i]
		stroke, y := strokeAndY(g)

		switch {
		case stroke.IsEmpty():
			endLine()
		case inRun && runStroke == stroke && runStart.Y == y:
			// Same line continues.
		default:
			endLine()
			runStroke, runStart, inRun = stroke, core.Pt(g.Pos.X, y), true
		}
		lastRightX = g.MaxX()
	}
	endLine()
}

func isFinite(f float32) bool {
	return !math.IsInf(float64(f), 0) && !math.IsNaN(float64(f))
}
