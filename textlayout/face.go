// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: textlayout/face.go
// Summary: FaceEngine lays out lines in pixels using a font.Face.
//
// Architecture:
//
//	Each grapheme cluster is measured by summing the glyph advances of its
//	runes plus the kerning against the previous rune. Rows are broken by
//	pixel width and every row is the face's line height tall, so MinHeight is
//	rows x Metrics().Height.
//
//	The engine holds the face explicitly; nothing about fonts is global, so
//	several engines with different faces can measure side by side.

package textlayout

import (
	"fmt"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// FaceEngine lays out lines with pixel measurements from Face.
type FaceEngine struct {
	Face     font.Face
	Wrap     WrapMode
	TabWidth int
}

// NewFaceEngine returns a word-wrapping engine for face. A nil face uses
// basicfont.Face7x13.
func NewFaceEngine(face font.Face) *FaceEngine {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &FaceEngine{Face: face, Wrap: WrapWord, TabWidth: defaultTabWidth}
}

// LoadFace parses a TrueType font file and returns a face at size points,
// 72 DPI.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

// Layout measures text and wraps it to width pixels.
func (e *FaceEngine) Layout(text string, width float64) *FaceLine {
	face := e.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	text = strings.TrimRight(text, "\r\n")

	tabWidth := e.TabWidth
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}
	spaceAdv, _ := face.GlyphAdvance(' ')
	tabStop := toFloat(spaceAdv) * float64(tabWidth)

	l := &FaceLine{
		lineHeight: toFloat(face.Metrics().Height),
		wrap:       e.Wrap,
	}

	x := 0.0
	prev := rune(-1)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		var w float64
		if cluster == "\t" {
			if tabStop > 0 {
				w = tabStop - mod(x, tabStop)
			}
			prev = -1
		} else {
			for _, r := range cluster {
				if prev >= 0 {
					w += toFloat(face.Kern(prev, r))
				}
				adv, ok := face.GlyphAdvance(r)
				if !ok {
					adv, _ = face.GlyphAdvance('?')
				}
				w += toFloat(adv)
				prev = r
			}
		}
		l.clusters = append(l.clusters, cluster)
		l.units = append(l.units, unit{width: w, space: isSpace(cluster)})
		x += w
	}

	l.Resize(width)
	return l
}

func mod(x, m float64) float64 {
	return x - m*float64(int(x/m))
}

// FaceLine is a line laid out in pixels.
type FaceLine struct {
	clusters   []string
	units      []unit
	rows       []span
	width      float64
	lineHeight float64
	wrap       WrapMode
}

// MinHeight returns rows x line height.
func (l *FaceLine) MinHeight() float64 {
	return float64(len(l.rows)) * l.lineHeight
}

// Resize re-wraps the line to width pixels.
func (l *FaceLine) Resize(width float64) {
	l.width = width
	l.rows = breakRows(l.units, width, l.wrap)
}

// Rows returns the number of rows.
func (l *FaceLine) Rows() int {
	return len(l.rows)
}

// RowText returns the text of row i.
func (l *FaceLine) RowText(i int) string {
	r := l.rows[i]
	return strings.Join(l.clusters[r.start:r.end], "")
}

// RowWidth returns the measured pixel width of row i.
func (l *FaceLine) RowWidth(i int) float64 {
	r := l.rows[i]
	w := 0.0
	for _, u := range l.units[r.start:r.end] {
		w += u.width
	}
	return w
}
