// Package cache provides bounded LRU caches: LRU, which fonts use to
// memoize glyph metrics, and Sharded, which the engine uses to keep
// finished paragraphs.
//
//	c := cache.New[glyphKey, fonts.GlyphMetrics](512)
//	m := c.GetOrCreate(key, func() fonts.GlyphMetrics { return measure(key) })
//
// LRU is safe for concurrent use, so a Paragraph can be laid out on one
// goroutine while another measures text with the same font.
package cache
