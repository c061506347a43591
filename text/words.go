package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wordSpan is a segment of text between two Unicode word boundaries,
// in character indices.
type wordSpan struct {
	start, end int
	isWord     bool
}

// wordSpans segments text with the UAX #29 word boundary rules.
func wordSpans(text string) []wordSpan {
	var spans []wordSpan
	index := 0
	state := -1
	for text != "" {
		var segment string
		segment, text, state = uniseg.FirstWordInString(text, state)
		n := utf8.RuneCountInString(segment)
		spans = append(spans, wordSpan{start: index, end: index + n, isWord: containsWordChar(segment)})
		index += n
	}
	return spans
}

func containsWordChar(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// CursorNextWord moves to the end of the word at or after the cursor.
func (g *Galley) CursorNextWord(c Cursor) Cursor {
	idx := c.CCursor.Index
	for _, span := range wordSpans(g.Text()) {
		if span.isWord && span.end > idx {
			return g.FromCCursor(CCursor{Index: span.end})
		}
	}
	return g.End()
}

// CursorPreviousWord moves to the start of the word at or before the cursor.
func (g *Galley) CursorPreviousWord(c Cursor) Cursor {
	idx := c.CCursor.Index
	spans := wordSpans(g.Text())
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].isWord && spans[i].start < idx {
			return g.FromCCursor(CCursor{Index: spans[i].start, PreferNextRow: true})
		}
	}
	return g.Begin()
}
