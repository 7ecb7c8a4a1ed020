// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/viewer.go
// Summary: Terminal document viewer driving one paragraph cache.
//
// Architecture:
//
//	The viewer owns the layout cache for the document it shows. Every draw
//	first makes sure the bounds cache was filled for the current text width
//	(a full pass on the first draw and on every width change), then moves the
//	layout window to the scroll offset and paints the windowed lines.
//
//	Scroll state is kept in rows. Event handling runs on the caller's
//	goroutine; Run only forwards tcell events from a polling goroutine.

package viewer

import (
	"context"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelview/buffer"
	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/paragraph"
	"github.com/framegrace/texelview/textlayout"
)

const sampleSize = 4096

// Options configures a Viewer.
type Options struct {
	Layout    config.Layout
	Highlight config.Highlight
	Viewer    config.Viewer
}

// DefaultOptions returns the options of an empty configuration.
func DefaultOptions() Options {
	cfg := config.Default()
	return Options{
		Layout:    config.LayoutOptions(cfg),
		Highlight: config.HighlightOptions(cfg),
		Viewer:    config.ViewerOptions(cfg),
	}
}

// Viewer shows a document on a tcell screen.
type Viewer struct {
	screen tcell.Screen
	doc    *buffer.Lines
	opts   Options

	engine *textlayout.CellEngine
	cache  *paragraph.Cache[*textlayout.CellLine]

	top           float64
	measuredWidth int
	fullHeight    float64
}

// New creates a viewer for doc. The screen must already be initialised.
func New(screen tcell.Screen, doc *buffer.Lines, opts Options) *Viewer {
	engine := textlayout.NewCellEngine()
	engine.Wrap = opts.Layout.Wrap
	if opts.Layout.TabWidth > 0 {
		engine.TabWidth = opts.Layout.TabWidth
	}
	if opts.Highlight.Enabled {
		h := textlayout.NewHighlighter(doc.Name(), doc.Sample(sampleSize), opts.Highlight.Style)
		log.Printf("Viewer: Highlighting %q as %s", doc.Name(), h.Language)
		engine.Styler = h
	}
	if opts.Viewer.ScrollStep < 1 {
		opts.Viewer.ScrollStep = 1
	}

	cache := paragraph.NewCache[*textlayout.CellLine](doc.LineCount())
	cache.SetPrefetch(opts.Layout.Prefetch)

	return &Viewer{
		screen:        screen,
		doc:           doc,
		opts:          opts,
		engine:        engine,
		cache:         cache,
		measuredWidth: -1,
	}
}

// Cache exposes the layout cache, mainly for tests and diagnostics.
func (v *Viewer) Cache() *paragraph.Cache[*textlayout.CellLine] {
	return v.cache
}

// Top returns the scroll offset in rows.
func (v *Viewer) Top() float64 {
	return v.top
}

// FullHeight returns the document height measured at the current width.
func (v *Viewer) FullHeight() float64 {
	return v.fullHeight
}

// textWidth returns the number of columns available for text.
func (v *Viewer) textWidth() int {
	w, _ := v.screen.Size()
	if v.opts.Viewer.Scrollbar && w > 1 {
		w--
	}
	return max(w, 0)
}

func (v *Viewer) viewportHeight() float64 {
	_, h := v.screen.Size()
	return float64(max(h, 0))
}

func (v *Viewer) textConfig() paragraph.TextConfig[*textlayout.CellLine] {
	return paragraph.TextConfig[*textlayout.CellLine]{
		Engine: v.engine,
		Width:  float64(v.textWidth()),
	}
}

// measure runs a full layout pass when the text width changed since the last
// one.
func (v *Viewer) measure() {
	width := v.textWidth()
	if width == v.measuredWidth {
		return
	}
	if err := v.cache.LayoutEverything(v.doc, v.textConfig()); err != nil {
		log.Printf("Viewer: Full layout pass failed: %v", err)
	}
	v.measuredWidth = width
	v.fullHeight = v.cache.FullHeight()
	log.Printf("Viewer: Measured %d lines at width %d, height %.0f",
		v.doc.LineCount(), width, v.fullHeight)
}

// update brings the layout window in line with the scroll offset.
func (v *Viewer) update() {
	v.measure()
	v.top = v.clamp(v.top)
	v.cache.Scroll(v.top, v.viewportHeight(), v.doc, v.textConfig())
	v.fullHeight = v.cache.FullHeight()
}

// Run draws the document and processes events until the user quits, the
// screen is finalised, or ctx is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		}
	}
}
