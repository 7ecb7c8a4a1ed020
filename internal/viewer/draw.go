// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/draw.go
// Summary: Paints the layout window and the scrollbar.

package viewer

import (
	"log"
	"math"

	"github.com/gdamore/tcell/v2"
)

const (
	trackRune = '│'
	thumbRune = '█'
)

// Draw repaints the screen for the current scroll offset.
func (v *Viewer) Draw() {
	v.update()
	v.screen.Clear()

	seq, err := v.cache.Paragraphs()
	if err != nil {
		log.Printf("Viewer: %v", err)
		v.screen.Show()
		return
	}

	width := v.textWidth()
	height := v.viewportHeight()
	for line, b := range seq {
		if b.Bottom() <= v.top {
			continue
		}
		if b.Top >= v.top+height {
			break
		}
		rowHeight := line.RowHeight()
		for r := 0; r < line.Rows(); r++ {
			y := int(math.Floor(b.Top + float64(r)*rowHeight - v.top))
			if y < 0 {
				continue
			}
			if float64(y) >= height {
				break
			}
			x := 0
			for _, g := range line.Row(r) {
				if g.Width == 0 {
					continue
				}
				if x+g.Width > width {
					break
				}
				runes := []rune(g.Text)
				v.screen.SetContent(x, y, runes[0], runes[1:], g.Style)
				x += g.Width
			}
		}
	}

	if v.opts.Viewer.Scrollbar {
		v.drawScrollbar()
	}
	v.screen.Show()
}

// thumb returns the first row and length of the scrollbar thumb. A zero
// length means the whole document fits.
func (v *Viewer) thumb() (int, int) {
	_, h := v.screen.Size()
	if h <= 0 || v.fullHeight <= float64(h) {
		return 0, 0
	}
	size := max(1, int(math.Round(float64(h)*float64(h)/v.fullHeight)))
	size = min(size, h)
	limit := v.fullHeight - float64(h)
	pos := int(math.Round(v.top / limit * float64(h-size)))
	return min(max(pos, 0), h-size), size
}

func (v *Viewer) drawScrollbar() {
	w, h := v.screen.Size()
	if w < 2 {
		return
	}
	x := w - 1
	pos, size := v.thumb()
	track := tcell.StyleDefault.Dim(true)
	for y := 0; y < h; y++ {
		if size > 0 && y >= pos && y < pos+size {
			v.screen.SetContent(x, y, thumbRune, nil, tcell.StyleDefault)
			continue
		}
		v.screen.SetContent(x, y, trackRune, nil, track)
	}
}
