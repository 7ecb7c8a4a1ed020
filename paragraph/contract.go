// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: paragraph/contract.go
// Summary: Contracts the cache consumes: the text buffer and the layout engine.

package paragraph

// Buffer is a random-access, line-indexed document that does not change
// while a cache session is using it.
type Buffer interface {
	// LineCount returns the number of lines in the document.
	LineCount() int
	// LineAt returns the text of line i without its terminator.
	LineAt(i int) string
}

// Line is an opaque laid-out line. The cache only reads its height and asks
// it to re-wrap; painting is up to the renderer.
type Line interface {
	MinHeight() float64
	Resize(width float64)
}

// Engine lays out a single line of text at the given width.
type Engine[L Line] interface {
	Layout(text string, width float64) L
}

// TextConfig carries the layout engine and measurement width into every
// layout-producing call. There is no ambient layout state.
type TextConfig[L Line] struct {
	Engine Engine[L]
	Width  float64
}

// Prefetch sets how far beyond the viewport lines are kept laid out, in
// multiples of the viewport height.
type Prefetch struct {
	Above float64
	Below float64
}

// DefaultPrefetch keeps two viewports above and three below, biasing toward
// downward scrolling.
func DefaultPrefetch() Prefetch {
	return Prefetch{Above: 2, Below: 3}
}
