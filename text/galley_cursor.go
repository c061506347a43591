package text

import "github.com/gogpu/paint/core"

// rowWalker accumulates cursor counters row by row.
// Every conversion below walks the rows the same way; the row preference
// is only ever resolved by selectNextRow.
type rowWalker struct {
	ccursor CCursor
	pcursor PCursor
}

func (w *rowWalker) advance(row *Row) {
	w.ccursor.Index += row.CharCountIncludingNewline()
	if row.EndsWithNewline {
		w.pcursor.Paragraph++
		w.pcursor.Offset = 0
	} else {
		w.pcursor.Offset += row.CharCountIncludingNewline()
	}
}

// selectNextRow reports whether a position at column of row belongs to the
// start of the following row instead.
func selectNextRow(preferNextRow bool, row *Row, column int) bool {
	return preferNextRow && !row.EndsWithNewline && column >= row.CharCountExcludingNewline()
}

// inParagraphRow reports whether paragraph offset off falls in row, which
// starts at paragraph offset rowOffset.
func inParagraphRow(row *Row, rowOffset, off int) bool {
	return rowOffset <= off && (off <= rowOffset+row.CharCountExcludingNewline() || row.EndsWithNewline)
}

// Begin returns the cursor before the first character.
func (g *Galley) Begin() Cursor {
	return Cursor{}
}

// End returns the cursor after the last character.
func (g *Galley) End() Cursor {
	if len(g.Rows) == 0 {
		return Cursor{}
	}
	w := rowWalker{
		ccursor: CCursor{PreferNextRow: true},
		pcursor: PCursor{PreferNextRow: true},
	}
	for i := range g.Rows {
		w.advance(&g.Rows[i])
	}
	return Cursor{CCursor: w.ccursor, RCursor: g.EndRCursor(), PCursor: w.pcursor}
}

// EndRCursor returns the row cursor after the last character.
func (g *Galley) EndRCursor() RCursor {
	if len(g.Rows) == 0 {
		return RCursor{}
	}
	last := &g.Rows[len(g.Rows)-1]
	return RCursor{Row: len(g.Rows) - 1, Column: last.CharCountExcludingNewline()}
}

// FromCCursor converts a character index. Indices past the end are
// clamped to End.
func (g *Galley) FromCCursor(c CCursor) Cursor {
	prefer := c.PreferNextRow
	w := rowWalker{
		ccursor: CCursor{PreferNextRow: prefer},
		pcursor: PCursor{PreferNextRow: prefer},
	}
	for i := range g.Rows {
		row := &g.Rows[i]
		if w.ccursor.Index <= c.Index && c.Index <= w.ccursor.Index+row.CharCountExcludingNewline() {
			column := c.Index - w.ccursor.Index
			if !selectNextRow(prefer, row, column) {
				p := w.pcursor
				p.Offset += column
				return Cursor{
					CCursor: c,
					RCursor: RCursor{Row: i, Column: column},
					PCursor: p,
				}
			}
		}
		w.advance(row)
	}
	return Cursor{CCursor: w.ccursor, RCursor: g.EndRCursor(), PCursor: w.pcursor}
}

// FromRCursor converts a row cursor. Columns past the row end are clamped
// and rows past the last row give End.
func (g *Galley) FromRCursor(r RCursor) Cursor {
	if r.Row >= len(g.Rows) {
		return g.End()
	}
	if r.Row < 0 {
		return g.Begin()
	}
	r.Column = min(max(r.Column, 0), g.Rows[r.Row].CharCountExcludingNewline())

	prefer := r.Column < g.Rows[r.Row].CharCountExcludingNewline()
	w := rowWalker{
		ccursor: CCursor{PreferNextRow: prefer},
		pcursor: PCursor{PreferNextRow: prefer},
	}
	for i := range r.Row {
		w.advance(&g.Rows[i])
	}
	w.ccursor.Index += r.Column
	w.pcursor.Offset += r.Column
	return Cursor{CCursor: w.ccursor, RCursor: r, PCursor: w.pcursor}
}

// FromPCursor converts a paragraph cursor. Offsets past the paragraph end
// are clamped to the paragraph's last row.
func (g *Galley) FromPCursor(p PCursor) Cursor {
	prefer := p.PreferNextRow
	w := rowWalker{
		ccursor: CCursor{PreferNextRow: prefer},
		pcursor: PCursor{PreferNextRow: prefer},
	}
	for i := range g.Rows {
		row := &g.Rows[i]
		if w.pcursor.Paragraph == p.Paragraph && inParagraphRow(row, w.pcursor.Offset, p.Offset) {
			column := min(p.Offset-w.pcursor.Offset, row.CharCountExcludingNewline())
			if !selectNextRow(prefer, row, column) {
				c := w.ccursor
				c.Index += column
				return Cursor{
					CCursor: c,
					RCursor: RCursor{Row: i, Column: column},
					PCursor: PCursor{Paragraph: p.Paragraph, Offset: w.pcursor.Offset + column, PreferNextRow: prefer},
				}
			}
		}
		w.advance(row)
	}
	return Cursor{CCursor: w.ccursor, RCursor: g.EndRCursor(), PCursor: w.pcursor}
}

// PosFromCursor returns a zero-width rectangle spanning the row height at
// the cursor position.
func (g *Galley) PosFromCursor(c Cursor) core.Rect {
	return g.PosFromPCursor(c.PCursor)
}

// PosFromPCursor is PosFromCursor for a paragraph cursor.
func (g *Galley) PosFromPCursor(p PCursor) core.Rect {
	var w rowWalker
	for i := range g.Rows {
		row := &g.Rows[i]
		if w.pcursor.Paragraph == p.Paragraph && inParagraphRow(row, w.pcursor.Offset, p.Offset) {
			column := p.Offset - w.pcursor.Offset
			if !selectNextRow(p.PreferNextRow, row, column) {
				x := row.XOffset(column)
				return core.RectFromMinMax(core.Pt(x, row.MinY()), core.Pt(x, row.MaxY()))
			}
		}
		w.advance(row)
	}
	return g.endPos()
}

func (g *Galley) endPos() core.Rect {
	if len(g.Rows) == 0 {
		return core.Rect{}
	}
	row := &g.Rows[len(g.Rows)-1]
	x := row.XOffset(row.CharCountExcludingNewline())
	return core.RectFromMinMax(core.Pt(x, row.MinY()), core.Pt(x, row.MaxY()))
}

// CursorFromPos returns the cursor closest to pos, relative to the galley.
func (g *Galley) CursorFromPos(pos core.Vec2) Cursor {
	if len(g.Rows) == 0 {
		return Cursor{}
	}
	if pos.Y < g.Rows[0].MinY() {
		return g.Begin()
	}
	if g.Rows[len(g.Rows)-1].MaxY() < pos.Y {
		return g.End()
	}

	var (
		w        rowWalker
		best     Cursor
		bestDist = float32(1e30)
	)
	for i := range g.Rows {
		row := &g.Rows[i]
		within := row.MinY() <= pos.Y && pos.Y <= row.MaxY()
		dist := min(abs32(row.MinY()-pos.Y), abs32(row.MaxY()-pos.Y))
		if within || dist < bestDist {
			bestDist = dist
			column := row.CharAt(pos.X)
			prefer := column < row.CharCountExcludingNewline()
			best = Cursor{
				CCursor: CCursor{Index: w.ccursor.Index + column, PreferNextRow: prefer},
				RCursor: RCursor{Row: i, Column: column},
				PCursor: PCursor{Paragraph: w.pcursor.Paragraph, Offset: w.pcursor.Offset + column, PreferNextRow: prefer},
			}
			if within {
				return best
			}
		}
		w.advance(row)
	}
	return best
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// CursorLeftOneCharacter moves one character back.
func (g *Galley) CursorLeftOneCharacter(c Cursor) Cursor {
	if c.CCursor.Index == 0 {
		return g.Begin()
	}
	// Landing at the start of a row is more useful than at the end of
	// the previous one.
	return g.FromCCursor(CCursor{Index: c.CCursor.Index - 1, PreferNextRow: true})
}

// CursorRightOneCharacter moves one character forward.
func (g *Galley) CursorRightOneCharacter(c Cursor) Cursor {
	return g.FromCCursor(CCursor{Index: c.CCursor.Index + 1, PreferNextRow: true})
}

// CursorUpOneRow moves to the previous row, keeping the horizontal screen
// position where possible.
func (g *Galley) CursorUpOneRow(c Cursor) Cursor {
	if c.RCursor.Row <= 0 || c.RCursor.Row >= len(g.Rows) {
		return g.Begin()
	}
	return g.FromRCursor(g.verticalMove(c, c.RCursor.Row-1))
}

// CursorDownOneRow moves to the next row, keeping the horizontal screen
// position where possible.
func (g *Galley) CursorDownOneRow(c Cursor) Cursor {
	if c.RCursor.Row < 0 || c.RCursor.Row+1 >= len(g.Rows) {
		return g.End()
	}
	return g.FromRCursor(g.verticalMove(c, c.RCursor.Row+1))
}

func (g *Galley) verticalMove(c Cursor, newRow int) RCursor {
	if c.RCursor.Column >= g.Rows[c.RCursor.Row].CharCountExcludingNewline() {
		// At the end of the row: stay at the end.
		return RCursor{Row: newRow, Column: c.RCursor.Column}
	}

	x := g.PosFromCursor(c).Center().X
	row := &g.Rows[newRow]
	column := c.RCursor.Column
	if x <= row.Rect.Right() {
		column = row.CharAt(x)
	}
	return RCursor{Row: newRow, Column: column}
}

// CursorBeginOfRow moves to the start of the cursor's row.
func (g *Galley) CursorBeginOfRow(c Cursor) Cursor {
	return g.FromRCursor(RCursor{Row: c.RCursor.Row, Column: 0})
}

// CursorEndOfRow moves to the end of the cursor's row.
func (g *Galley) CursorEndOfRow(c Cursor) Cursor {
	if c.RCursor.Row < 0 || c.RCursor.Row >= len(g.Rows) {
		return g.End()
	}
	return g.FromRCursor(RCursor{Row: c.RCursor.Row, Column: g.Rows[c.RCursor.Row].CharCountExcludingNewline()})
}
