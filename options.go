package paint

// Options control tessellation quality and debug overlays.
type Options struct {
	// Feathering enables anti-aliasing by a transparent ring of vertices
	// around every filled and stroked outline.
	Feathering bool

	// FeatheringSizeInPixels is the width of that ring in physical pixels.
	// One pixel gives the sharpest result that still looks smooth.
	FeatheringSizeInPixels float32

	// CoarseTessellationCulling skips shapes whose bounding rectangle is
	// entirely outside the clip rectangle.
	CoarseTessellationCulling bool

	// RoundTextToPixels snaps text positions to the physical pixel grid so
	// glyphs are not blurred by sub-pixel sampling.
	RoundTextToPixels bool

	// DebugPaintClipRects outlines every clip rectangle.
	DebugPaintClipRects bool

	// DebugPaintTextRects outlines the rectangle of every galley.
	DebugPaintTextRects bool

	// DebugIgnoreClipRects replaces every clip rectangle with core.Everything.
	DebugIgnoreClipRects bool
}

// DefaultOptions returns the options used for normal rendering.
func DefaultOptions() Options {
	return Options{
		Feathering:                true,
		FeatheringSizeInPixels:    1,
		CoarseTessellationCulling: true,
		RoundTextToPixels:         true,
	}
}
