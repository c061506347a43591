package text

// FontsOption configures a Fonts implementation.
type FontsOption func(*fontsConfig)

// fontsConfig holds configuration shared by the Fonts backends.
type fontsConfig struct {
	pixelsPerPoint float32
	atlasWidth     int
	atlasHeight    int
	atlasPadding   int
	families       map[FontFamily][]byte
	cellWidth      float32
	cellHeight     float32
	ambiguousWide  bool
}

// defaultFontsConfig returns the default configuration.
func defaultFontsConfig() fontsConfig {
	return fontsConfig{
		pixelsPerPoint: 1,
		atlasWidth:     1024,
		atlasHeight:    1024,
		atlasPadding:   1,
		cellWidth:      1,
		cellHeight:     1,
	}
}

// WithPixelsPerPoint sets the number of physical pixels per logical point.
// Non-positive values are ignored.
func WithPixelsPerPoint(ppp float32) FontsOption {
	return func(c *fontsConfig) {
		if ppp > 0 {
			c.pixelsPerPoint = ppp
		}
	}
}

// WithAtlasSize sets the glyph atlas dimensions in texels.
func WithAtlasSize(width, height int) FontsOption {
	return func(c *fontsConfig) {
		if width > 0 && height > 0 {
			c.atlasWidth, c.atlasHeight = width, height
		}
	}
}

// WithAtlasPadding sets the empty texels kept between glyph images.
func WithAtlasPadding(padding int) FontsOption {
	return func(c *fontsConfig) {
		if padding >= 0 {
			c.atlasPadding = padding
		}
	}
}

// WithFamilyFont uses the given font file for a family instead of the
// default font.
func WithFamilyFont(family FontFamily, data []byte) FontsOption {
	return func(c *fontsConfig) {
		if c.families == nil {
			c.families = make(map[FontFamily][]byte)
		}
		c.families[family] = data
	}
}

// WithCellSize sets the size of one terminal cell in points.
// Only used by CellFonts.
func WithCellSize(width, height float32) FontsOption {
	return func(c *fontsConfig) {
		if width > 0 && height > 0 {
			c.cellWidth, c.cellHeight = width, height
		}
	}
}

// WithEastAsianAmbiguousWide treats East Asian ambiguous-width characters
// as two cells wide. Only used by CellFonts.
func WithEastAsianAmbiguousWide(wide bool) FontsOption {
	return func(c *fontsConfig) {
		c.ambiguousWide = wide
	}
}

func newFontsConfig(opts []FontsOption) fontsConfig {
	cfg := defaultFontsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
