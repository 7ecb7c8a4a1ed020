// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/options.go
// Summary: Typed views over the layout, highlight and viewer sections.

package config

import (
	"log"

	"github.com/framegrace/texelview/paragraph"
	"github.com/framegrace/texelview/textlayout"
)

// Layout holds the layout section.
type Layout struct {
	Prefetch paragraph.Prefetch
	Wrap     textlayout.WrapMode
	TabWidth int
}

// Highlight holds the highlight section.
type Highlight struct {
	Enabled bool
	Style   string
}

// Viewer holds the viewer section.
type Viewer struct {
	ScrollStep int
	Scrollbar  bool
}

// LayoutOptions reads the layout section. Invalid values fall back to
// defaults and are logged.
func LayoutOptions(c Config) Layout {
	def := paragraph.DefaultPrefetch()
	opts := Layout{
		Prefetch: paragraph.Prefetch{
			Above: c.GetFloat("layout", "prefetch_above", def.Above),
			Below: c.GetFloat("layout", "prefetch_below", def.Below),
		},
		Wrap:     textlayout.WrapWord,
		TabWidth: c.GetInt("layout", "tab_width", 4),
	}
	if opts.Prefetch.Above < 0 || opts.Prefetch.Below < 0 {
		log.Printf("Config: Negative prefetch margins %+v, using defaults", opts.Prefetch)
		opts.Prefetch = def
	}
	if mode, err := textlayout.ParseWrapMode(c.GetString("layout", "wrap", "word")); err != nil {
		log.Printf("Config: %v, using word wrap", err)
	} else {
		opts.Wrap = mode
	}
	if opts.TabWidth < 1 {
		opts.TabWidth = 4
	}
	return opts
}

// HighlightOptions reads the highlight section.
func HighlightOptions(c Config) Highlight {
	return Highlight{
		Enabled: c.GetBool("highlight", "enabled", true),
		Style:   c.GetString("highlight", "style", ""),
	}
}

// ViewerOptions reads the viewer section.
func ViewerOptions(c Config) Viewer {
	opts := Viewer{
		ScrollStep: c.GetInt("viewer", "scroll_step", 1),
		Scrollbar:  c.GetBool("viewer", "scrollbar", true),
	}
	if opts.ScrollStep < 1 {
		opts.ScrollStep = 1
	}
	return opts
}
