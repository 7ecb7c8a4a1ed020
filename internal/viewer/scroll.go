// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/viewer/scroll.go
// Summary: Scroll offset handling and input dispatch.

package viewer

import (
	"github.com/gdamore/tcell/v2"
)

const wheelLines = 3

// clamp limits top to [0, max(0, full-viewport)].
func (v *Viewer) clamp(top float64) float64 {
	limit := max(0, v.fullHeight-v.viewportHeight())
	return min(max(top, 0), limit)
}

// ScrollTo moves the viewport so that its first row is top.
func (v *Viewer) ScrollTo(top float64) {
	v.measure()
	v.top = v.clamp(top)
}

// ScrollBy moves the viewport by delta rows.
func (v *Viewer) ScrollBy(delta float64) {
	v.ScrollTo(v.top + delta)
}

// page returns the distance of a page scroll, keeping one row of context.
func (v *Viewer) page() float64 {
	return max(1, v.viewportHeight()-1)
}

// HandleEvent applies ev and reports whether the viewer should quit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	step := float64(v.opts.Viewer.ScrollStep)
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyUp:
			v.ScrollBy(-step)
		case tcell.KeyDown:
			v.ScrollBy(step)
		case tcell.KeyPgUp:
			v.ScrollBy(-v.page())
		case tcell.KeyPgDn:
			v.ScrollBy(v.page())
		case tcell.KeyHome:
			v.ScrollTo(0)
		case tcell.KeyEnd:
			v.ScrollTo(v.fullHeight)
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 'k':
				v.ScrollBy(-step)
			case 'j':
				v.ScrollBy(step)
			case ' ':
				v.ScrollBy(v.page())
			case 'b':
				v.ScrollBy(-v.page())
			case 'g':
				v.ScrollTo(0)
			case 'G':
				v.ScrollTo(v.fullHeight)
			}
		}
	case *tcell.EventMouse:
		buttons := ev.Buttons()
		if buttons&tcell.WheelUp != 0 {
			v.ScrollBy(-step * wheelLines)
		}
		if buttons&tcell.WheelDown != 0 {
			v.ScrollBy(step * wheelLines)
		}
	}
	return false
}
