// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: textlayout/wrap.go
// Summary: Wrap modes and the row breaker shared by the layout engines.

package textlayout

import (
	"fmt"
	"strings"
)

// WrapMode controls how a line longer than the layout width is broken.
//
// WrapNone keeps one row per line. WrapGrapheme breaks at any grapheme
// boundary. WrapWord prefers breaking after whitespace and falls back to a
// grapheme break for words longer than the width.
type WrapMode int

const (
	WrapNone WrapMode = iota
	WrapWord
	WrapGrapheme
)

func (m WrapMode) String() string {
	switch m {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapGrapheme:
		return "grapheme"
	}
	return fmt.Sprintf("WrapMode(%d)", int(m))
}

// ParseWrapMode parses "none", "word" or "grapheme" (also "char").
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "off":
		return WrapNone, nil
	case "word", "":
		return WrapWord, nil
	case "grapheme", "char":
		return WrapGrapheme, nil
	}
	return WrapNone, fmt.Errorf("unknown wrap mode %q", s)
}

// unit is one breakable element: a grapheme cluster or one cell of an
// expanded tab.
type unit struct {
	width float64
	space bool
}

// span is a half-open range of units forming one row.
type span struct {
	start, end int
}

// breakRows splits units into rows no wider than limit. A unit wider than
// limit gets a row of its own. There is always at least one row.
func breakRows(units []unit, limit float64, mode WrapMode) []span {
	if len(units) == 0 {
		return []span{{0, 0}}
	}
	if mode == WrapNone || limit <= 0 {
		return []span{{0, len(units)}}
	}

	rows := make([]span, 0, 1)
	for start := 0; start < len(units); {
		used := 0.0
		end := start
		for end < len(units) {
			w := units[end].width
			if end > start && used+w > limit {
				break
			}
			used += w
			end++
		}

		if mode == WrapWord && end < len(units) {
			if br := wordBreak(units, start, end); br > start {
				end = br
			}
		}

		rows = append(rows, span{start, end})
		start = end
	}
	return rows
}

// wordBreak returns where a word-wrapped row starting at start should end
// when units[end] no longer fits. Whitespace at the break hangs past the
// margin on the current row. It returns start when the row holds a single
// word.
func wordBreak(units []unit, start, end int) int {
	if units[end].space {
		for end < len(units) && units[end].space {
			end++
		}
		return end
	}
	for i := end - 1; i > start; i-- {
		if units[i].space {
			return i + 1
		}
	}
	return start
}
