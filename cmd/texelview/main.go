// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelview/main.go
// Summary: texelview command, an interactive viewer and measuring tool for text documents.
// Usage: Run `texelview FILE` to browse a file, or `texelview -measure FILE` to print its laid-out height.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelview/buffer"
	"github.com/framegrace/texelview/config"
	"github.com/framegrace/texelview/internal/viewer"
	"github.com/framegrace/texelview/textlayout"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelview", flag.ContinueOnError)

	configPath := fs.String("config", "", "Config file (default: <user config dir>/texelview/texelview.json)")
	logPath := fs.String("log", "", "Append log output to this file")

	// Layout flags
	wrap := fs.String("wrap", "", "Wrap mode: word, grapheme or none (overrides config)")
	tabWidth := fs.Int("tab", 0, "Tab width in columns (overrides config)")
	noHighlight := fs.Bool("no-highlight", false, "Disable syntax highlighting")
	style := fs.String("style", "", "Chroma style name (overrides config)")

	// Measure flags
	measureOnly := fs.Bool("measure", false, "Print line count and laid-out height instead of opening the viewer")
	fontPath := fs.String("font", "", "TrueType font used by -measure (default: built-in 7x13 bitmap face)")
	fontSize := fs.Float64("font-size", 12, "Font size in points for -font")
	page := fs.String("page", "A4", "Page size whose width -measure lays out to")
	width := fs.Float64("width", 0, "Explicit layout width in pixels for -measure (overrides -page)")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: texelview [flags] [FILE]\n\nReads standard input when FILE is omitted.\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one file, got %d", fs.NArg())
	}

	interactive := !*measureOnly && term.IsTerminal(int(os.Stdout.Fd()))

	closeLog, err := setupLogging(*logPath, interactive)
	if err != nil {
		return err
	}
	defer closeLog()

	if *configPath != "" {
		config.SetPath(*configPath)
	}
	cfg := config.System()
	if err := config.Err(); err != nil {
		log.Printf("Config: Using defaults: %v", err)
	}

	opts := viewer.Options{
		Layout:    config.LayoutOptions(cfg),
		Highlight: config.HighlightOptions(cfg),
		Viewer:    config.ViewerOptions(cfg),
	}
	if *wrap != "" {
		mode, err := textlayout.ParseWrapMode(*wrap)
		if err != nil {
			return err
		}
		opts.Layout.Wrap = mode
	}
	if *tabWidth > 0 {
		opts.Layout.TabWidth = *tabWidth
	}
	if *noHighlight {
		opts.Highlight.Enabled = false
	}
	if *style != "" {
		opts.Highlight.Style = *style
	}

	doc, err := openDocument(fs.Arg(0))
	if err != nil {
		return err
	}

	if !interactive {
		return measure(os.Stdout, doc, measureOptions{
			Layout:   opts.Layout,
			FontPath: *fontPath,
			FontSize: *fontSize,
			Page:     *page,
			Width:    *width,
		})
	}
	return browse(doc, opts)
}

func openDocument(path string) (*buffer.Lines, error) {
	if path == "" || path == "-" {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, errors.New("no file given and standard input is a terminal")
		}
		return buffer.FromReader(os.Stdin)
	}
	return buffer.Open(path)
}

// setupLogging sends log output to path, or discards it while the terminal
// UI owns the screen.
func setupLogging(path string, interactive bool) (func(), error) {
	if path == "" {
		if interactive {
			log.SetOutput(io.Discard)
		}
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { _ = f.Close() }, nil
}

func browse(doc *buffer.Lines, opts viewer.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	v := viewer.New(screen, doc, opts)
	if err := v.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
