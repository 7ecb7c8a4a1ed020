// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelview/measure.go
// Summary: Non-interactive measuring mode using the font face engine.

package main

import (
	"fmt"
	"io"
	"log"

	"golang.org/x/image/font"

	"github.com/framegrace/texelview/buffer"
	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/paragraph"
	"github.com/framegrace/texelview/textlayout"
)

type measureOptions struct {
	Layout   config.Layout
	FontPath string
	FontSize float64
	Page     string
	Width    float64
}

// layoutWidth resolves the pixel width from -width or the page size.
func (o measureOptions) layoutWidth() (float64, error) {
	if o.Width > 0 {
		return o.Width, nil
	}
	p, ok := textlayout.LookupPage(o.Page)
	if !ok {
		return 0, fmt.Errorf("unknown page size %q", o.Page)
	}
	return p.Width, nil
}

// measure lays out every line of doc and reports the document height.
func measure(w io.Writer, doc *buffer.Lines, opts measureOptions) error {
	width, err := opts.layoutWidth()
	if err != nil {
		return err
	}

	var face font.Face
	if opts.FontPath != "" {
		face, err = textlayout.LoadFace(opts.FontPath, opts.FontSize)
		if err != nil {
			return err
		}
	}
	engine := textlayout.NewFaceEngine(face)
	engine.Wrap = opts.Layout.Wrap
	if opts.Layout.TabWidth > 0 {
		engine.TabWidth = opts.Layout.TabWidth
	}

	cache := paragraph.NewCache[*textlayout.FaceLine](doc.LineCount())
	cache.SetPrefetch(opts.Layout.Prefetch)
	cfg := paragraph.TextConfig[*textlayout.FaceLine]{Engine: engine, Width: width}
	if err := cache.LayoutEverything(doc, cfg); err != nil {
		return fmt.Errorf("measure: %w", err)
	}
	full := cache.FullHeight()
	log.Printf("Measure: %d lines at width %.0f, height %.0f", doc.LineCount(), width, full)

	name := doc.Name()
	if name == "" {
		name = "<stdin>"
	}
	_, err = fmt.Fprintf(w, "%s: %d lines, width %.0f, height %.0f\n", name, doc.LineCount(), width, full)
	return err
}
