// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paragraph/bounds.go
// Summary: BoundsCache tracks the height and top offset of every laid-out line.
//
// Architecture:
//
//	BoundsCache keeps two parallel slices: heights (one entry per line whose
//	height has been recorded, contiguous from line 0) and tops (cumulative
//	offsets, tops[i] = sum(heights[0..i-1])). tops may lag behind heights.
//
//	A height change on line n truncates tops to n because every line below
//	moved by the height delta. Recomputation is lazy: CalcBounds resumes from
//	the last valid top and walks forward only as far as the caller asks, so
//	a single change costs O(1) to record and O(distance) to re-accumulate.
//
//	FindNearestParagraph binary searches tops, giving O(log N) "which line is
//	at pixel Y" lookups.

package paragraph

import (
	"fmt"
	"sort"
)

// Bounds is the vertical extent of one laid-out line.
type Bounds struct {
	Top    float64
	Height float64
}

// Bottom returns the offset just past the line.
func (b Bounds) Bottom() float64 {
	return b.Top + b.Height
}

// BoundsCache tracks per-line heights and lazily accumulated top offsets.
// Not safe for concurrent use.
type BoundsCache struct {
	heights []float64

	// tops[i] is the top offset of line i. len(tops) <= len(heights).
	tops []float64
}

// NewBoundsCache creates a cache sized for roughly capacity lines.
func NewBoundsCache(capacity int) *BoundsCache {
	if capacity < 0 {
		capacity = 0
	}
	return &BoundsCache{
		heights: make([]float64, 0, capacity),
		tops:    make([]float64, 0, capacity),
	}
}

// LinesLen returns the number of lines with a recorded height.
func (bc *BoundsCache) LinesLen() int {
	return len(bc.heights)
}

// TopsLen returns how many top offsets are currently accumulated.
func (bc *BoundsCache) TopsLen() int {
	return len(bc.tops)
}

// SetHeight records the height of line idx.
//
// Lines must be introduced in order: idx may be at most LinesLen(). A larger
// index returns ErrOutOfOrderInsertion and leaves the cache untouched.
// Changing the height of a known line discards every cached top at or after
// idx; recording the same height again is a no-op.
func (bc *BoundsCache) SetHeight(idx int, height float64) error {
	n := len(bc.heights)
	switch {
	case idx < 0 || idx > n:
		return fmt.Errorf("%w: index %d with %d known lines", ErrOutOfOrderInsertion, idx, n)
	case idx == n:
		bc.heights = append(bc.heights, height)
		// Only extend tops when they are contiguous up to the new line.
		if len(bc.tops) == idx {
			bc.tops = append(bc.tops, bc.nextTop())
		}
		return nil
	}

	if bc.heights[idx] == height && len(bc.tops) > idx {
		return nil
	}

	bc.heights[idx] = height
	if len(bc.tops) > idx {
		bc.tops = bc.tops[:idx]
	}
	return nil
}

// nextTop returns the top of the first line without a cached top.
func (bc *BoundsCache) nextTop() float64 {
	last := len(bc.tops) - 1
	if last < 0 {
		return 0
	}
	return bc.tops[last] + bc.heights[last]
}

// CalcBounds accumulates tops up to and including idx. Indices beyond the
// last known line are clamped to it.
func (bc *BoundsCache) CalcBounds(idx int) {
	if idx >= len(bc.heights) {
		idx = len(bc.heights) - 1
	}
	if idx < len(bc.tops) {
		return
	}

	current := bc.nextTop()
	for i := len(bc.tops); i <= idx; i++ {
		bc.tops = append(bc.tops, current)
		current += bc.heights[i]
	}
}

// GetBounds returns the bounds of line idx, or false when its top has not
// been accumulated yet. Call CalcBounds first to guarantee a result.
func (bc *BoundsCache) GetBounds(idx int) (Bounds, bool) {
	if idx < 0 || idx >= len(bc.tops) {
		return Bounds{}, false
	}
	return Bounds{Top: bc.tops[idx], Height: bc.heights[idx]}, true
}

// FindNearestParagraph returns the line whose range contains or precedes
// offset. An exact match on a top returns that line. Offsets at or before
// the start of the document return 0. Tops are accumulated as far as offset
// first, so a height change earlier in the document never hides later lines.
func (bc *BoundsCache) FindNearestParagraph(offset float64) int {
	for len(bc.tops) < len(bc.heights) && bc.nextTop() <= offset {
		bc.tops = append(bc.tops, bc.nextTop())
	}

	// Smallest i with tops[i] >= offset.
	i := sort.Search(len(bc.tops), func(j int) bool {
		return bc.tops[j] >= offset
	})
	if i < len(bc.tops) && bc.tops[i] == offset {
		return i
	}
	if i == 0 {
		return 0
	}
	return i - 1
}

// Truncate forgets every line at or after n.
func (bc *BoundsCache) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(bc.heights) {
		bc.heights = bc.heights[:n]
	}
	if n < len(bc.tops) {
		bc.tops = bc.tops[:n]
	}
}

// Reset clears all heights and tops, keeping allocated capacity.
func (bc *BoundsCache) Reset() {
	bc.heights = bc.heights[:0]
	bc.tops = bc.tops[:0]
}
