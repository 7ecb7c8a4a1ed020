// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package textlayout

import "testing"

func unitsOf(s string) []unit {
	out := make([]unit, 0, len(s))
	for _, r := range s {
		out = append(out, unit{width: 1, space: r == ' '})
	}
	return out
}

func TestBreakRows(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		limit float64
		mode  WrapMode
		want  []span
	}{
		{"empty", "", 4, WrapWord, []span{{0, 0}}},
		{"fits", "abc", 4, WrapWord, []span{{0, 3}}},
		{"none", "abcdefgh", 4, WrapNone, []span{{0, 8}}},
		{"zero limit", "abcdefgh", 0, WrapGrapheme, []span{{0, 8}}},
		{"grapheme", "abcdefgh", 3, WrapGrapheme, []span{{0, 3}, {3, 6}, {6, 8}}},
		{"word", "ab cd ef", 5, WrapWord, []span{{0, 6}, {6, 8}}},
		{"hanging spaces", "ab   cd", 2, WrapWord, []span{{0, 5}, {5, 7}}},
	}
	for _, tc := range cases {
		got := breakRows(unitsOf(tc.text), tc.limit, tc.mode)
		if len(got) != len(tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("%s: row %d expected %v, got %v", tc.name, i, tc.want[i], got[i])
			}
		}
	}
}

func TestBreakRows_WideUnitGetsOwnRow(t *testing.T) {
	units := []unit{{width: 1}, {width: 5}, {width: 1}}
	got := breakRows(units, 3, WrapGrapheme)
	want := []span{{0, 1}, {1, 2}, {2, 3}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("row %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestParseWrapMode(t *testing.T) {
	cases := map[string]WrapMode{
		"none":     WrapNone,
		"Word":     WrapWord,
		"":         WrapWord,
		"grapheme": WrapGrapheme,
		"char":     WrapGrapheme,
	}
	for in, want := range cases {
		got, err := ParseWrapMode(in)
		if err != nil {
			t.Errorf("ParseWrapMode(%q): %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseWrapMode(%q): expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseWrapMode("sideways"); err == nil {
		t.Errorf("expected error for unknown mode")
	}
}
