// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paragraph/cache.go
// Summary: Cache maintains a sliding window of laid-out lines over a document.
//
// Architecture:
//
//	Cache owns a contiguous window of laid-out lines covering the viewport
//	plus prefetch margins. window[0] is document line start, so the
//	materialized set is exactly [start, start+len(window)).
//
//	Each Scroll translates the pixel range to a line range with the
//	BoundsCache, then:
//
//	  - drops the whole window on a disjoint jump
//	  - trims lines that left the range at either end
//	  - re-wraps the remaining lines if the layout width changed
//	  - lays out missing lines at the front (descending) and back (ascending)
//
//	Heights of newly laid-out and re-wrapped lines are written back to the
//	BoundsCache immediately, and tops are accumulated to the window end so
//	Paragraphs can pair every line with its bounds.
//
//	LayoutEverything is the one-off O(N) pass that measures each line to
//	learn the total document height without keeping N lines alive.

package paragraph

import (
	"fmt"
	"iter"
	"log"
)

// Stats counts layout work done by a Cache.
type Stats struct {
	Layouts   int // lines laid out into the window
	Measured  int // lines laid out by LayoutEverything and discarded
	Resizes   int // windowed lines re-wrapped for a new width
	Evictions int // lines dropped from the window
	Jumps     int // disjoint jumps that discarded the whole window
}

// Cache keeps laid-out lines for the visible region of a document.
// Not safe for concurrent use; the owner drives it from its layout pass.
type Cache[L Line] struct {
	window    []L
	start     int
	lastWidth float64

	bounds   *BoundsCache
	prefetch Prefetch
	stats    Stats
}

// NewCache creates an empty cache sized for roughly lineCapacity lines.
func NewCache[L Line](lineCapacity int) *Cache[L] {
	return &Cache[L]{
		window:   make([]L, 0, 64),
		bounds:   NewBoundsCache(lineCapacity),
		prefetch: DefaultPrefetch(),
	}
}

// SetPrefetch changes the prefetch margins. Negative values are treated as 0.
func (c *Cache[L]) SetPrefetch(p Prefetch) {
	c.prefetch = Prefetch{Above: max(p.Above, 0), Below: max(p.Below, 0)}
}

// Prefetch returns the current prefetch margins.
func (c *Cache[L]) Prefetch() Prefetch {
	return c.prefetch
}

// Bounds exposes the underlying bounds cache.
func (c *Cache[L]) Bounds() *BoundsCache {
	return c.bounds
}

// Stats returns the layout counters.
func (c *Cache[L]) Stats() Stats {
	return c.stats
}

// Window returns the materialized line range [start, end).
func (c *Cache[L]) Window() (start, end int) {
	return c.start, c.start + len(c.window)
}

// Len returns the number of materialized lines.
func (c *Cache[L]) Len() int {
	return len(c.window)
}

// Reset drops the window and all recorded bounds, e.g. for a new document.
func (c *Cache[L]) Reset() {
	c.clearWindow()
	c.start = 0
	c.lastWidth = 0
	c.bounds.Reset()
}

// Scroll updates the window for a viewport at offset top with the given
// height. The window covers the viewport plus the prefetch margins.
func (c *Cache[L]) Scroll(top, viewportHeight float64, buf Buffer, cfg TextConfig[L]) {
	layoutTop := max(0, top-viewportHeight*c.prefetch.Above)
	layoutBottom := top + viewportHeight*c.prefetch.Below

	lo := max(c.bounds.FindNearestParagraph(layoutTop)-1, 0)
	hi := c.bounds.FindNearestParagraph(layoutBottom) + 1

	c.ScrollToLines(lo, hi, buf, cfg)
}

// ScrollToLines moves the window to cover lines [lo, hi), reusing every
// laid-out line already in the window. The range is clamped to the buffer.
func (c *Cache[L]) ScrollToLines(lo, hi int, buf Buffer, cfg TextConfig[L]) {
	hi = min(hi, buf.LineCount())
	lo = min(max(lo, 0), max(hi, 0))
	if hi < lo {
		hi = lo
	}

	if end := c.start + len(c.window); lo >= end || hi <= c.start {
		if len(c.window) > 0 {
			c.stats.Jumps++
		}
		c.clearWindow()
		c.start = lo
	}

	if c.start < lo {
		c.trimFront(lo - c.start)
		c.start = lo
	}
	if end := c.start + len(c.window); end > hi {
		c.trimBack(hi - c.start)
	}

	if cfg.Width != c.lastWidth {
		for i, line := range c.window {
			line.Resize(cfg.Width)
			c.recordHeight(c.start+i, line.MinHeight())
			c.stats.Resizes++
		}
	}

	if lo < c.start {
		front := make([]L, c.start-lo)
		for i := c.start - 1; i >= lo; i-- {
			front[i-lo] = c.layout(i, buf, cfg)
		}
		c.window = append(front, c.window...)
	}

	for i := lo + len(c.window); i < hi; i++ {
		c.window = append(c.window, c.layout(i, buf, cfg))
	}

	c.start = lo
	c.lastWidth = cfg.Width
	if hi > lo {
		c.bounds.CalcBounds(hi - 1)
	}
}

// layout lays out line idx and records its height.
func (c *Cache[L]) layout(idx int, buf Buffer, cfg TextConfig[L]) L {
	line := cfg.Engine.Layout(buf.LineAt(idx), cfg.Width)
	c.recordHeight(idx, line.MinHeight())
	c.stats.Layouts++
	return line
}

func (c *Cache[L]) recordHeight(idx int, height float64) {
	if err := c.bounds.SetHeight(idx, height); err != nil {
		// Lines past the measured prefix stay without bounds until a full
		// pass reaches them.
		log.Printf("Paragraph: %v", err)
	}
}

func (c *Cache[L]) trimFront(n int) {
	n = min(n, len(c.window))
	clear(c.window[:n])
	c.window = c.window[n:]
	c.stats.Evictions += n
}

func (c *Cache[L]) trimBack(keep int) {
	keep = max(keep, 0)
	c.stats.Evictions += len(c.window) - keep
	clear(c.window[keep:])
	c.window = c.window[:keep]
}

func (c *Cache[L]) clearWindow() {
	c.stats.Evictions += len(c.window)
	clear(c.window)
	c.window = c.window[:0]
}

// LayoutEverything measures every line of buf once to record its height,
// discarding each laid-out line immediately. It sizes the scrollable area
// and is meant to run once per load or width change, not per frame.
func (c *Cache[L]) LayoutEverything(buf Buffer, cfg TextConfig[L]) error {
	n := buf.LineCount()
	c.bounds.Truncate(n)
	if c.start >= n {
		c.clearWindow()
		c.start = 0
	} else if c.start+len(c.window) > n {
		c.trimBack(n - c.start)
	}
	for i := range n {
		line := cfg.Engine.Layout(buf.LineAt(i), cfg.Width)
		if err := c.bounds.SetHeight(i, line.MinHeight()); err != nil {
			return fmt.Errorf("layout line %d: %w", i, err)
		}
		c.stats.Measured++
	}
	return nil
}

// FullHeight returns the bottom offset of the last known line, accumulating
// tops as needed. It is 0 for an unmeasured document.
func (c *Cache[L]) FullHeight() float64 {
	last := c.bounds.LinesLen() - 1
	if last < 0 {
		return 0
	}
	c.bounds.CalcBounds(last)
	b, _ := c.bounds.GetBounds(last)
	return b.Bottom()
}

// Paragraphs returns the windowed lines paired with their bounds, in line
// order. It fails with ErrInconsistentBounds if any windowed line has no
// accumulated bounds. The sequence may be ranged over repeatedly; it panics
// if bounds disappear between creation and iteration, since that means the
// caller interleaved height changes with painting.
func (c *Cache[L]) Paragraphs() (iter.Seq2[L, Bounds], error) {
	if n := len(c.window); n > 0 {
		// tops are contiguous, so the last line having bounds covers all.
		if _, ok := c.bounds.GetBounds(c.start + n - 1); !ok {
			return nil, fmt.Errorf("%w: line %d", ErrInconsistentBounds, c.start+n-1)
		}
	}
	return func(yield func(L, Bounds) bool) {
		for i, line := range c.window {
			b, ok := c.bounds.GetBounds(c.start + i)
			if !ok {
				panic(fmt.Errorf("%w: line %d", ErrInconsistentBounds, c.start+i))
			}
			if !yield(line, b) {
				return
			}
		}
	}, nil
}
