package text

import (
	"context"
	"encoding/binary"
	"hash"
	"hash/fnv"
	"log/slog"
	"math"

	"github.com/gogpu/paint/core"
	"github.com/gogpu/paint/internal/cache"
	"github.com/gogpu/paint/internal/debug"
)

// GalleyCache memoizes Layout for jobs requested frame after frame.
//
// Call FlushUnused once per frame; galleys that were not requested since
// the previous flush are dropped.
//
// GalleyCache is safe for concurrent use.
type GalleyCache struct {
	fonts Fonts
	cache *cache.Cache[uint64, *Galley]
}

// GalleyCacheOption configures a GalleyCache.
type GalleyCacheOption func(*galleyCacheConfig)

type galleyCacheConfig struct {
	limit int
}

// WithGalleyLimit bounds the number of galleys kept between flushes.
// Past the limit the least recently used galleys are dropped early.
// 0, the default, means unlimited.
func WithGalleyLimit(n int) GalleyCacheOption {
	return func(c *galleyCacheConfig) {
		c.limit = n
	}
}

// NewGalleyCache creates a cache laying out text with fonts.
func NewGalleyCache(fonts Fonts, opts ...GalleyCacheOption) *GalleyCache {
	var cfg galleyCacheConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GalleyCache{
		fonts: fonts,
		cache: cache.New[uint64, *Galley](cfg.limit),
	}
}

// Layout returns the galley for job, laying it out on a miss.
func (c *GalleyCache) Layout(job *LayoutJob) *Galley {
	key := hashJob(job, c.fonts.PixelsPerPoint())
	return c.cache.GetOrCreate(key, func() *Galley {
		return Layout(c.fonts, job)
	})
}

// FlushUnused evicts galleys not used since the previous call.
func (c *GalleyCache) FlushUnused() int {
	n := c.cache.FlushUnused()
	if l := debug.Logger(); n > 0 && l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("text: galley cache flush", "evicted", n, "kept", c.cache.Len())
	}
	return n
}

// Len returns the number of cached galleys.
func (c *GalleyCache) Len() int {
	return c.cache.Len()
}

// CacheStats reports how a GalleyCache has been used.
type CacheStats struct {
	Galleys   int
	Limit     int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// Stats returns a snapshot of the cache counters.
func (c *GalleyCache) Stats() CacheStats {
	s := c.cache.Stats()
	return CacheStats{
		Galleys:   s.Len,
		Limit:     s.Limit,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}

// jobHasher writes layout inputs into an FNV-1a hash.
type jobHasher struct {
	buf [8]byte
	h   hash.Hash64
}

func (w *jobHasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:], v)
	_, _ = w.h.Write(w.buf[:]) // fnv.Write never returns an error
}

func (w *jobHasher) f32(v float32) { w.u64(uint64(math.Float32bits(v))) }

func (w *jobHasher) color(c core.Color32) {
	w.u64(uint64(c.R)<<24 | uint64(c.G)<<16 | uint64(c.B)<<8 | uint64(c.A))
}

func (w *jobHasher) flag(b bool) {
	if b {
		w.u64(1)
	} else {
		w.u64(0)
	}
}

func hashJob(job *LayoutJob, pixelsPerPoint float32) uint64 {
	w := jobHasher{h: fnv.New64a()}
	w.f32(pixelsPerPoint)
	_, _ = w.h.Write([]byte(job.Text))
	w.u64(uint64(len(job.Text)))

	for _, s := range job.Sections {
		w.f32(s.LeadingSpace)
		w.u64(uint64(s.ByteRange.Start))
		w.u64(uint64(s.ByteRange.End))
		f := &s.Format
		w.f32(f.FontID.Size)
		w.u64(uint64(f.FontID.Family))
		w.f32(f.ExtraLetterSpacing)
		w.f32(f.LineHeight)
		w.color(f.Color)
		w.color(f.Background)
		w.flag(f.Italics)
		w.f32(f.Underline.Width)
		w.color(f.Underline.Color)
		w.f32(f.Strikethrough.Width)
		w.color(f.Strikethrough.Color)
		w.u64(uint64(f.VAlign))
	}

	w.f32(job.Wrap.MaxWidth)
	w.u64(uint64(job.Wrap.MaxRows))
	w.flag(job.Wrap.BreakAnywhere)
	w.u64(uint64(job.Wrap.OverflowCharacter))
	w.f32(job.FirstRowMinHeight)
	w.flag(job.BreakOnNewline)
	w.u64(uint64(job.HAlign))
	w.flag(job.Justify)
	w.flag(job.RoundOutputToGUI)
	return w.h.Sum64()
}
