// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package buffer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLines_Count(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"", 1},
		{"one", 1},
		{"one\n", 2},
		{"one\ntwo", 2},
		{"one\ntwo\n", 3},
		{"\n\n", 3},
	}
	for _, tc := range cases {
		if got := FromString(tc.text).LineCount(); got != tc.want {
			t.Errorf("LineCount(%q): expected %d, got %d", tc.text, tc.want, got)
		}
	}
}

func TestLines_LineAtStripsTerminators(t *testing.T) {
	l := FromString("alpha\r\nbeta\n\ngamma")
	want := []string{"alpha", "beta", "", "gamma"}
	if got := l.LineCount(); got != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), got)
	}
	for i, w := range want {
		if got := l.LineAt(i); got != w {
			t.Errorf("line %d: expected %q, got %q", i, w, got)
		}
	}
}

func TestLines_TrailingNewlineGivesEmptyLine(t *testing.T) {
	l := FromString("a\nb\n")
	if got := l.LineAt(2); got != "" {
		t.Errorf("expected empty last line, got %q", got)
	}
}

func TestFromReader(t *testing.T) {
	l, err := FromReader(strings.NewReader("x\ny"))
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if l.LineCount() != 2 || l.LineAt(1) != "y" {
		t.Errorf("unexpected document: %d lines, last %q", l.LineCount(), l.LineAt(1))
	}
	if l.Name() != "" {
		t.Errorf("expected no name, got %q", l.Name())
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.go")
	if err := os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if l.Name() != path {
		t.Errorf("expected name %q, got %q", path, l.Name())
	}
	if got := l.LineCount(); got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
	if got := string(l.Sample(7)); got != "package" {
		t.Errorf("expected sample %q, got %q", "package", got)
	}
	if got := len(l.Sample(1 << 20)); got != l.Len() {
		t.Errorf("expected sample clamped to %d, got %d", l.Len(), got)
	}

	if _, err := Open(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
