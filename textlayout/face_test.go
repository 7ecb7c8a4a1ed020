// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package textlayout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
)

func faceMetrics(t *testing.T) (advance, height float64) {
	t.Helper()
	face := basicfont.Face7x13
	adv, ok := face.GlyphAdvance('a')
	if !ok {
		t.Fatalf("basic face has no advance for 'a'")
	}
	return toFloat(adv), toFloat(face.Metrics().Height)
}

func TestFaceEngine_GraphemeWrapHeight(t *testing.T) {
	adv, lineHeight := faceMetrics(t)
	e := NewFaceEngine(nil)
	e.Wrap = WrapGrapheme

	l := e.Layout(strings.Repeat("a", 25), 10*adv)
	if got := l.Rows(); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}
	if got := l.MinHeight(); got != 3*lineHeight {
		t.Errorf("expected height %v, got %v", 3*lineHeight, got)
	}
	if got := l.RowWidth(2); got != 5*adv {
		t.Errorf("expected last row width %v, got %v", 5*adv, got)
	}
}

func TestFaceEngine_WordWrap(t *testing.T) {
	adv, _ := faceMetrics(t)
	e := NewFaceEngine(basicfont.Face7x13)

	l := e.Layout("aaaa bbbb", 5*adv)
	if l.Rows() != 2 {
		t.Fatalf("expected 2 rows, got %d", l.Rows())
	}
	if got := l.RowText(0); got != "aaaa " {
		t.Errorf("expected %q, got %q", "aaaa ", got)
	}
	if got := l.RowText(1); got != "bbbb" {
		t.Errorf("expected %q, got %q", "bbbb", got)
	}
}

func TestFaceEngine_ResizeChangesHeight(t *testing.T) {
	adv, lineHeight := faceMetrics(t)
	e := NewFaceEngine(nil)
	e.Wrap = WrapGrapheme

	l := e.Layout(strings.Repeat("x", 20), 20*adv)
	if got := l.MinHeight(); got != lineHeight {
		t.Fatalf("expected one row, got height %v", got)
	}
	l.Resize(5 * adv)
	if got := l.MinHeight(); got != 4*lineHeight {
		t.Errorf("expected 4 rows after resize, got height %v", got)
	}
}

func TestFaceEngine_TabAdvancesToStop(t *testing.T) {
	adv, _ := faceMetrics(t)
	e := NewFaceEngine(nil)
	e.TabWidth = 4

	l := e.Layout("a\tb", 100*adv)
	// 'a' then a tab to column 4, then 'b'.
	if got := l.RowWidth(0); got != 5*adv {
		t.Errorf("expected width %v, got %v", 5*adv, got)
	}
}

func TestFaceEngine_EmptyLine(t *testing.T) {
	_, lineHeight := faceMetrics(t)
	l := NewFaceEngine(nil).Layout("", 100)
	if got := l.MinHeight(); got != lineHeight {
		t.Errorf("expected one line of height %v, got %v", lineHeight, got)
	}
}

func TestLoadFace_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadFace(filepath.Join(dir, "missing.ttf"), 12); err == nil {
		t.Errorf("expected error for missing font")
	}

	bogus := filepath.Join(dir, "bogus.ttf")
	if err := os.WriteFile(bogus, []byte("not a font"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFace(bogus, 12); err == nil {
		t.Errorf("expected parse error for bogus font")
	}
}

func TestLookupPage(t *testing.T) {
	for _, name := range []string{"A4", "a4", "US Letter", "us-letter", "USLetter"} {
		if _, ok := LookupPage(name); !ok {
			t.Errorf("expected %q to resolve", name)
		}
	}
	p, _ := LookupPage("us_letter")
	if p.Width != 612 {
		t.Errorf("expected US Letter width 612, got %v", p.Width)
	}
	if _, ok := LookupPage("B5"); ok {
		t.Errorf("expected unknown page to fail")
	}
}
