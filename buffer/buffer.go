// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: buffer/buffer.go
// Summary: Lines is an immutable, line-indexed text document.
//
// Architecture:
//
//	The document is read once and split on '\n'. A trailing newline yields
//	a final empty line and empty input is a single empty line, so LineCount
//	is always newline count + 1. Line terminators ("\n" and "\r\n") are not
//	part of the returned line text.

package buffer

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Lines is a read-only document addressed by line index.
type Lines struct {
	name string
	text string

	// starts[i] is the byte offset of line i in text.
	starts []int
}

// FromString builds a document from s.
func FromString(s string) *Lines {
	l := &Lines{text: s}
	l.index()
	return l
}

// FromReader reads r to EOF and builds a document from its contents.
func FromReader(r io.Reader) (*Lines, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return FromString(sb.String()), nil
}

// Open reads the file at path.
func Open(path string) (*Lines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	l := &Lines{name: path, text: string(data)}
	l.index()
	return l, nil
}

func (l *Lines) index() {
	n := strings.Count(l.text, "\n") + 1
	l.starts = make([]int, 1, n)
	for i := 0; i < len(l.text); {
		j := strings.IndexByte(l.text[i:], '\n')
		if j < 0 {
			break
		}
		i += j + 1
		l.starts = append(l.starts, i)
	}
}

// Name returns the source path, or "" for in-memory documents.
func (l *Lines) Name() string {
	return l.name
}

// LineCount returns the number of lines.
func (l *Lines) LineCount() int {
	return len(l.starts)
}

// LineAt returns line i without its terminator. It panics if i is out of
// range, like a slice index.
func (l *Lines) LineAt(i int) string {
	start := l.starts[i]
	end := len(l.text)
	if i+1 < len(l.starts) {
		end = l.starts[i+1] - 1
	}
	line := l.text[start:end]
	return strings.TrimSuffix(line, "\r")
}

// Sample returns up to n bytes from the start of the document, for content
// sniffing.
func (l *Lines) Sample(n int) []byte {
	if n > len(l.text) {
		n = len(l.text)
	}
	return []byte(l.text[:n])
}

// Len returns the document size in bytes.
func (l *Lines) Len() int {
	return len(l.text)
}
