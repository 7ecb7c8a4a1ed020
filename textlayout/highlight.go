// Copyright 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: textlayout/highlight.go
// Summary: Chroma-based Styler with go-enry language detection.

package textlayout

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const defaultStyleName = "catppuccin-mocha"

// Highlighter styles lines with a Chroma lexer. Lines are tokenised one at
// a time, so constructs spanning lines (block comments, raw strings) are
// only coloured on the line where the lexer can see them start.
type Highlighter struct {
	Language string

	lexer chroma.Lexer
	style *chroma.Style
	base  tcell.Style
}

// NewHighlighter picks a lexer for filename and sample content and a Chroma
// style by name ("" selects the default style).
func NewHighlighter(filename string, sample []byte, styleName string) *Highlighter {
	language := ""
	if filename != "" || len(sample) > 0 {
		language = enry.GetLanguage(filepath.Base(filename), sample)
	}

	var lexer chroma.Lexer
	if language != "" {
		lexer = lexers.Get(language)
	}
	if lexer == nil && filename != "" {
		lexer = lexers.Match(filepath.Base(filename))
	}
	if lexer == nil && len(sample) > 0 {
		lexer = lexers.Analyse(string(sample))
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	if language == "" {
		language = lexer.Config().Name
	}

	if styleName == "" {
		styleName = defaultStyleName
	}

	return &Highlighter{
		Language: language,
		lexer:    chroma.Coalesce(lexer),
		style:    styles.Get(styleName),
		base:     tcell.StyleDefault,
	}
}

// StyleLine tokenises text and returns contiguous spans covering it.
func (h *Highlighter) StyleLine(text string) []Span {
	tokens, err := chroma.Tokenise(h.lexer, nil, text)
	if err != nil {
		return nil
	}

	spans := make([]Span, 0, len(tokens))
	offset := 0
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType || offset >= len(text) {
			break
		}
		end := min(offset+len(tok.Value), len(text))
		spans = append(spans, Span{Start: offset, End: end, Style: h.tokenStyle(tok.Type)})
		offset = end
	}
	return spans
}

func (h *Highlighter) tokenStyle(t chroma.TokenType) tcell.Style {
	entry := h.style.Get(t)
	st := h.base
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
