package text

import (
	"math"

	"github.com/gogpu/paint/core"
)

// Align positions rows horizontally within the wrap width.
type Align uint8

const (
	// AlignLeft puts the row's left edge at x = 0.
	AlignLeft Align = iota

	// AlignCenter centers the row on x = 0.
	AlignCenter

	// AlignRight puts the row's right edge at x = 0.
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return unknownStr
	}
}

// VAlign positions a glyph vertically inside a row taller than the glyph.
type VAlign uint8

const (
	// VAlignBottom puts small glyphs on the bottom of the row.
	VAlignBottom VAlign = iota

	// VAlignCenter centers glyphs in the row.
	VAlignCenter

	// VAlignTop puts glyphs at the top of the row (superscript).
	VAlignTop
)

// factor returns how much of the spare row height goes above the glyph.
func (v VAlign) factor() float32 {
	switch v {
	case VAlignTop:
		return 0
	case VAlignCenter:
		return 0.5
	default:
		return 1
	}
}

// TextFormat styles a section of text.
type TextFormat struct {
	FontID FontID

	// ExtraLetterSpacing is added between consecutive characters, in points.
	ExtraLetterSpacing float32

	// LineHeight overrides the row height of the font. Zero means use the
	// font's own row height.
	LineHeight float32

	// Color of the text. Transparent means the painter picks a color.
	Color core.Color32

	// Background is painted behind the glyphs.
	Background core.Color32

	// Italics skews the glyph images.
	Italics bool

	Underline     core.Stroke
	Strikethrough core.Stroke

	// VAlign places the glyph in rows taller than itself.
	VAlign VAlign
}

// Simple returns a format with only a font and color set.
func Simple(font FontID, color core.Color32) TextFormat {
	return TextFormat{FontID: font, Color: color}
}

// LayoutSection applies a format to a byte range of the job's text.
type LayoutSection struct {
	// LeadingSpace is extra horizontal space before the section, in points.
	// Used for the first-row indentation of a paragraph.
	LeadingSpace float32

	// ByteRange is the half-open range [Start, End) into LayoutJob.Text.
	// Ranges must lie on UTF-8 boundaries.
	ByteRange ByteRange

	Format TextFormat
}

// ByteRange is a half-open range of byte offsets.
type ByteRange struct {
	Start, End int
}

// Len returns End - Start.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// TextWrapping controls line breaking and truncation.
type TextWrapping struct {
	// MaxWidth is the wrap width in points. +Inf disables wrapping.
	MaxWidth float32

	// MaxRows limits the number of rows. Zero means no limit.
	MaxRows int

	// BreakAnywhere allows breaking between any two characters instead of
	// looking for word boundaries.
	BreakAnywhere bool

	// OverflowCharacter replaces the end of the last row when text is
	// cut off by MaxRows. Zero means no replacement.
	OverflowCharacter rune
}

// NoWrap returns wrapping disabled.
func NoWrap() TextWrapping {
	return TextWrapping{MaxWidth: float32(math.Inf(1))}
}

// WrapAt returns word wrapping at width.
func WrapAt(width float32) TextWrapping {
	return TextWrapping{MaxWidth: width}
}

// Truncate returns a single row cut off with an ellipsis at width.
func Truncate(width float32) TextWrapping {
	return TextWrapping{MaxWidth: width, MaxRows: 1, BreakAnywhere: true, OverflowCharacter: '…'}
}

// LayoutJob describes text to lay out.
type LayoutJob struct {
	// Text is the complete text; sections index into it.
	Text string

	// Sections style the text, in order. Text not covered by any section
	// is not laid out.
	Sections []LayoutSection

	Wrap TextWrapping

	// FirstRowMinHeight is the minimum height of the first row, used to
	// line up text that continues after an inline widget.
	FirstRowMinHeight float32

	// BreakOnNewline starts a new paragraph at every '\n'. When false,
	// '\n' is laid out as a regular glyph.
	BreakOnNewline bool

	// HAlign positions each row relative to x = 0.
	HAlign Align

	// Justify stretches all rows but the last of each paragraph to the
	// wrap width.
	Justify bool

	// RoundOutputToGUI grants half a point of slack to the wrap width so
	// that text measured in a previous frame still fits after rounding.
	RoundOutputToGUI bool
}

// NewLayoutJob returns an empty job with wrapping disabled.
func NewLayoutJob() *LayoutJob {
	return &LayoutJob{
		Wrap:             NoWrap(),
		BreakOnNewline:   true,
		RoundOutputToGUI: true,
	}
}

// SimpleJob lays out text in a single format, wrapped at wrapWidth.
func SimpleJob(text string, font FontID, color core.Color32, wrapWidth float32) *LayoutJob {
	job := SingleSection(text, Simple(font, color))
	job.Wrap.MaxWidth = wrapWidth
	return job
}

// SimpleSingleLine lays out text without wrapping or paragraph breaks.
func SimpleSingleLine(text string, font FontID, color core.Color32) *LayoutJob {
	job := SingleSection(text, Simple(font, color))
	job.BreakOnNewline = false
	return job
}

// SingleSection returns a job covering text with one format.
func SingleSection(text string, format TextFormat) *LayoutJob {
	job := NewLayoutJob()
	job.Text = text
	job.Sections = []LayoutSection{{
		ByteRange: ByteRange{Start: 0, End: len(text)},
		Format:    format,
	}}
	return job
}

// Append adds text with its own format at the end of the job.
func (j *LayoutJob) Append(text string, leadingSpace float32, format TextFormat) {
	start := len(j.Text)
	j.Text += text
	j.Sections = append(j.Sections, LayoutSection{
		LeadingSpace: leadingSpace,
		ByteRange:    ByteRange{Start: start, End: len(j.Text)},
		Format:       format,
	})
}

// IsEmpty reports whether the job has no sections.
func (j *LayoutJob) IsEmpty() bool {
	return len(j.Sections) == 0
}

// EffectiveWrapWidth is the width rows are broken against.
func (j *LayoutJob) EffectiveWrapWidth() float32 {
	if j.RoundOutputToGUI {
		// Text measured last frame may be a fraction wider once rounded;
		// the slack keeps it on one row.
		return j.Wrap.MaxWidth + 0.5
	}
	return j.Wrap.MaxWidth
}

// Clone returns a deep copy of the job.
func (j *LayoutJob) Clone() *LayoutJob {
	c := *j
	c.Sections = append([]LayoutSection(nil), j.Sections...)
	return &c
}

func (j *LayoutJob) maxRows() int {
	if j.Wrap.MaxRows <= 0 {
		return math.MaxInt
	}
	return j.Wrap.MaxRows
}
