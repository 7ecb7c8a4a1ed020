// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: textlayout/cell.go
// Summary: CellEngine lays out lines on a terminal cell grid.
//
// Architecture:
//
//	A line is segmented into grapheme clusters once, at layout time. Each
//	cluster gets a cell width (go-runewidth, with uniseg as fallback for
//	clusters runewidth reports as zero) and a style from the optional Styler.
//	Tabs expand to spaces up to the next tab stop of the unwrapped line.
//
//	Rows are recomputed on Resize from the cached glyphs, so re-wrapping for
//	a new width never re-segments or re-highlights the text.

package textlayout

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	defaultTabWidth = 4
	replacementText = "�"
)

// Span styles the byte range [Start, End) of a line.
type Span struct {
	Start, End int
	Style      tcell.Style
}

// Styler produces style spans for a line of text.
type Styler interface {
	StyleLine(text string) []Span
}

// Glyph is one painted grapheme cluster.
type Glyph struct {
	Text  string
	Width int
	Style tcell.Style
}

// CellEngine lays out lines for a terminal. Width is measured in cells and
// each row is RowHeight tall.
type CellEngine struct {
	TabWidth  int
	Wrap      WrapMode
	RowHeight float64
	Styler    Styler
	Base      tcell.Style
}

// NewCellEngine returns an engine with one-cell rows and word wrapping.
func NewCellEngine() *CellEngine {
	return &CellEngine{
		TabWidth:  defaultTabWidth,
		Wrap:      WrapWord,
		RowHeight: 1,
		Base:      tcell.StyleDefault,
	}
}

// Layout segments text and wraps it to width cells.
func (e *CellEngine) Layout(text string, width float64) *CellLine {
	text = strings.TrimRight(text, "\r\n")

	var spans []Span
	if e.Styler != nil && text != "" {
		spans = e.Styler.StyleLine(text)
	}

	tabWidth := e.TabWidth
	if tabWidth < 1 {
		tabWidth = defaultTabWidth
	}
	rowHeight := e.RowHeight
	if rowHeight <= 0 {
		rowHeight = 1
	}

	l := &CellLine{
		glyphs:    make([]Glyph, 0, len(text)),
		rowHeight: rowHeight,
		wrap:      e.Wrap,
	}

	col, offset, si := 0, 0, 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		for si < len(spans) && spans[si].End <= offset {
			si++
		}
		style := e.Base
		if si < len(spans) && spans[si].Start <= offset {
			style = spans[si].Style
		}
		offset += len(cluster)

		if cluster == "\t" {
			n := tabWidth - col%tabWidth
			for range n {
				l.glyphs = append(l.glyphs, Glyph{Text: " ", Width: 1, Style: style})
			}
			col += n
			continue
		}

		w := clusterWidth(cluster)
		if w == 0 && isControl(cluster) {
			cluster, w = replacementText, 1
		}
		l.glyphs = append(l.glyphs, Glyph{Text: cluster, Width: w, Style: style})
		col += w
	}

	l.units = make([]unit, len(l.glyphs))
	for i, gl := range l.glyphs {
		l.units[i] = unit{width: float64(gl.Width), space: isSpace(gl.Text)}
	}
	l.Resize(width)
	return l
}

func clusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = max(uniseg.StringWidth(cluster), 0)
	}
	return w
}

func isControl(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return unicode.IsControl(r)
}

func isSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// CellLine is a line laid out on a cell grid.
type CellLine struct {
	glyphs    []Glyph
	units     []unit
	rows      []span
	width     int
	rowHeight float64
	wrap      WrapMode
}

// MinHeight returns the number of rows times the row height.
func (l *CellLine) MinHeight() float64 {
	return float64(len(l.rows)) * l.rowHeight
}

// Resize re-wraps the line to width cells.
func (l *CellLine) Resize(width float64) {
	l.width = int(width)
	l.rows = breakRows(l.units, float64(l.width), l.wrap)
}

// Width returns the layout width in cells.
func (l *CellLine) Width() int {
	return l.width
}

// Rows returns the number of rows.
func (l *CellLine) Rows() int {
	return len(l.rows)
}

// RowHeight returns the height of one row.
func (l *CellLine) RowHeight() float64 {
	return l.rowHeight
}

// Row returns the glyphs of row i. The slice must not be modified.
func (l *CellLine) Row(i int) []Glyph {
	r := l.rows[i]
	return l.glyphs[r.start:r.end]
}

// RowText returns row i as plain text.
func (l *CellLine) RowText(i int) string {
	var sb strings.Builder
	for _, g := range l.Row(i) {
		sb.WriteString(g.Text)
	}
	return sb.String()
}
