package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidPixelsPerPoint is returned for a non-positive scale factor.
	ErrInvalidPixelsPerPoint = errors.New("text: pixels per point must be positive")
)

// AtlasFullError is returned when a glyph does not fit in the atlas.
type AtlasFullError struct {
	Width, Height int
	AtlasWidth    int
	AtlasHeight   int
}

func (e *AtlasFullError) Error() string {
	return fmt.Sprintf("text: no room for %dx%d glyph in %dx%d atlas",
		e.Width, e.Height, e.AtlasWidth, e.AtlasHeight)
}

// RowSumError reports rows that do not partition the galley text.
type RowSumError struct {
	RowChars  int
	TextChars int
}

func (e *RowSumError) Error() string {
	return fmt.Sprintf("text: rows cover %d characters, text has %d", e.RowChars, e.TextChars)
}
