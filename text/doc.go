// Package text lays out styled text into galleys: rows of positioned glyphs
// with pre-tessellated meshes and a cursor model for editing.
//
// The pipeline follows a separation of concerns:
//
//   - Fonts: glyph metrics, kerning and atlas coordinates (pluggable backend)
//   - LayoutJob: the text, its styled sections and the wrap policy
//   - Layout: turns a job into an immutable *Galley
//   - Galley: rows, meshes and cursor conversions
//
// # Example usage
//
//	fonts, err := text.NewOpenTypeFonts(text.WithPixelsPerPoint(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	job := text.SimpleJob("Hello, GoGPU!", text.Proportional(14), core.White, 200)
//	galley := text.Layout(fonts, job)
//
//	cursor := galley.CursorFromPos(core.V2(30, 5))
//	caret := galley.PosFromCursor(cursor)
//
// # Font backends
//
//   - OpenTypeFonts: golang.org/x/image/font/opentype, with a glyph atlas
//   - GoTextFonts: github.com/go-text/typesetting, metrics and HarfBuzz kerning
//   - CellFonts: fixed terminal cells sized with github.com/mattn/go-runewidth
//
// # Cursors
//
// A text position has three equivalent forms. CCursor counts characters
// from the start of the text, RCursor names a row and column of the laid
// out galley, PCursor names a paragraph and an offset into it. At the
// boundary between two wrapped rows the same character index is both the
// end of one row and the start of the next; the PreferNextRow bit picks one.
// Only the Galley conversion methods ever resolve that ambiguity.
package text
