package text

// CCursor is a character index into the whole text.
type CCursor struct {
	// Index counts characters (not bytes) from the start of the text.
	Index int

	// PreferNextRow picks the start of the next row over the end of the
	// previous one when both are at Index.
	PreferNextRow bool
}

// Equal reports whether both cursors denote the same character boundary,
// ignoring the row preference.
func (c CCursor) Equal(o CCursor) bool {
	return c.Index == o.Index
}

// Add moves the cursor forward by n characters.
func (c CCursor) Add(n int) CCursor {
	return CCursor{Index: c.Index + n, PreferNextRow: c.PreferNextRow}
}

// Sub moves the cursor back by n characters, stopping at zero.
func (c CCursor) Sub(n int) CCursor {
	return CCursor{Index: max(c.Index-n, 0), PreferNextRow: c.PreferNextRow}
}

// RCursor is a row and column in a laid out galley.
type RCursor struct {
	// Row is an index into Galley.Rows.
	Row int

	// Column counts characters from the start of the row. A column equal
	// to the row's character count is the end of the row.
	Column int
}

// PCursor is a position within a paragraph. Unlike RCursor it stays valid
// when the wrap width changes.
type PCursor struct {
	// Paragraph counts newlines before the position.
	Paragraph int

	// Offset counts characters from the start of the paragraph.
	Offset int

	// PreferNextRow has the same meaning as in CCursor.
	PreferNextRow bool
}

// Equal reports whether both cursors denote the same position, ignoring
// the row preference.
func (c PCursor) Equal(o PCursor) bool {
	return c.Paragraph == o.Paragraph && c.Offset == o.Offset
}

// Cursor holds one position in all three forms.
type Cursor struct {
	CCursor CCursor
	RCursor RCursor
	PCursor PCursor
}

// Equal compares positions, ignoring row preferences.
func (c Cursor) Equal(o Cursor) bool {
	return c.CCursor.Equal(o.CCursor) && c.RCursor == o.RCursor && c.PCursor.Equal(o.PCursor)
}
