package text

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// noLineStart holds characters that may not begin a line in Chinese and
// Japanese text (closing brackets, small kana, iteration marks, some
// punctuation). A CJK character directly before one of them is not a
// break opportunity.
var noLineStart = rangetable.New([]rune(
	")]｝〕〉》」』】〙〗〟'\"｠»" +
		"ヽヾーァィゥェォッャュョヮヵヶ" +
		"ぁぃぅぇぉっゃゅょゎゕゖ" +
		"ㇰㇱㇲㇳㇴㇵㇶㇷㇸㇹㇺㇻㇼㇽㇾㇿ" +
		"々〻‐゠–〜？!‼⁇⁈⁉・、:;,。.",
)...)

// cjkIdeographs covers CJK Unified Ideographs, Extension A and
// Extension D.
var cjkIdeographs = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3400, Hi: 0x4DBF, Stride: 1},
		{Lo: 0x4E00, Hi: 0x9FFF, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x2B740, Hi: 0x2B81F, Stride: 1},
	},
}

// kana covers Hiragana and Katakana.
var kana = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x3040, Hi: 0x309F, Stride: 1},
		{Lo: 0x30A0, Hi: 0x30FF, Stride: 1},
	},
}

func isCJK(r rune) bool {
	return unicode.Is(cjkIdeographs, r) || unicode.Is(kana, r)
}

func isCJKBreakAllowed(r rune) bool {
	return !unicode.Is(noLineStart, r)
}

const nonBreakingSpace = '\u00a0'

func isBreakingSpace(r rune) bool {
	return unicode.IsSpace(r) && r != nonBreakingSpace
}

func isASCIIPunctuation(r rune) bool {
	return r < unicode.MaxASCII && (unicode.IsPunct(r) || unicode.IsSymbol(r))
}

// breakCandidates tracks the best places seen so far to end a row.
// Each field is the index of the last glyph that would stay on the row,
// or -1.
type breakCandidates struct {
	space       int
	cjk         int
	preCJK      int
	dash        int
	punctuation int
	any         int
}

func newBreakCandidates() breakCandidates {
	return breakCandidates{space: -1, cjk: -1, preCJK: -1, dash: -1, punctuation: -1, any: -1}
}

// add classifies glyphs[0], which sits at index in the paragraph.
// glyphs[1], if present, is the following glyph.
func (b *breakCandidates) add(index int, glyphs []Glyph) {
	c := glyphs[0].Chr
	hasNext := len(glyphs) > 1

	switch {
	case isBreakingSpace(c):
		b.space = index
	case isCJK(c) && (!hasNext || isCJKBreakAllowed(glyphs[1].Chr)):
		b.cjk = index
	case c == '-':
		b.dash = index
	case isASCIIPunctuation(c):
		b.punctuation = index
	case hasNext && isCJK(glyphs[1].Chr):
		b.preCJK = index
	}
	b.any = index
}

func (b *breakCandidates) wordBoundary() int {
	return max(b.space, b.cjk, b.preCJK)
}

func (b *breakCandidates) hasGoodCandidate(breakAnywhere bool) bool {
	if breakAnywhere {
		return b.any >= 0
	}
	return b.wordBoundary() >= 0
}

// get returns the index of the last glyph to keep on the row, or -1.
func (b *breakCandidates) get(breakAnywhere bool) int {
	if breakAnywhere {
		return b.any
	}
	if w := b.wordBoundary(); w >= 0 {
		return w
	}
	if b.dash >= 0 {
		return b.dash
	}
	return b.punctuation
}

func (b *breakCandidates) forgetBefore(index int) {
	forget := func(v *int) {
		if *v < index {
			*v = -1
		}
	}
	forget(&b.space)
	forget(&b.cjk)
	forget(&b.preCJK)
	forget(&b.dash)
	forget(&b.punctuation)
	forget(&b.any)
}
