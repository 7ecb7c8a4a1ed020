// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/framegrace/texelview/paragraph"
	"github.com/framegrace/texelview/textlayout"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
	override = ""
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	resetStore()

	cfg := System()
	if got := cfg.GetString("layout", "wrap", ""); got != "word" {
		t.Fatalf("expected default wrap word, got %q", got)
	}
	if err := Err(); err != nil {
		t.Fatalf("unexpected load error: %v", err)
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal config: %v", err)
	}
	if disk.Section("highlight") == nil {
		t.Fatalf("expected highlight section to be present")
	}
}

func TestSetPathLoadsOverride(t *testing.T) {
	resetStore()
	path := filepath.Join(t.TempDir(), "custom.json")
	content := `{"layout": {"prefetch_above": 1, "wrap": "none"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	SetPath(path)

	cfg := System()
	opts := LayoutOptions(cfg)
	if opts.Prefetch.Above != 1 {
		t.Errorf("expected prefetch_above 1, got %v", opts.Prefetch.Above)
	}
	if opts.Prefetch.Below != 3 {
		t.Errorf("expected default prefetch_below 3, got %v", opts.Prefetch.Below)
	}
	if opts.Wrap != textlayout.WrapNone {
		t.Errorf("expected wrap none, got %v", opts.Wrap)
	}
}

func TestMalformedConfigFallsBack(t *testing.T) {
	resetStore()
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	SetPath(path)

	cfg := System()
	if Err() == nil {
		t.Errorf("expected load error for malformed config")
	}
	if got := cfg.GetInt("layout", "tab_width", 0); got != 4 {
		t.Errorf("expected default tab width 4, got %d", got)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "{not json" {
		t.Errorf("expected malformed file to be left alone")
	}
}

func TestSaveWritesUpdates(t *testing.T) {
	resetStore()
	path := filepath.Join(t.TempDir(), "nested", "texelview.json")
	SetPath(path)

	cfg := Default()
	cfg.Set("highlight", "style", "monokai")
	SetSystem(cfg)
	if err := Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if got := HighlightOptions(System()).Style; got != "monokai" {
		t.Errorf("expected style monokai after reload, got %q", got)
	}
}

func TestSetSystemClones(t *testing.T) {
	resetStore()
	SetPath(filepath.Join(t.TempDir(), "texelview.json"))

	cfg := Config{"viewer": Section{"scroll_step": 3}}
	SetSystem(cfg)
	cfg.Set("viewer", "scroll_step", 9)

	if got := ViewerOptions(System()).ScrollStep; got != 3 {
		t.Errorf("expected stored config to be independent, got %d", got)
	}
}

func TestLayoutOptionsRejectsBadValues(t *testing.T) {
	cfg := Config{"layout": Section{
		"prefetch_above": -1,
		"wrap":           "diagonal",
		"tab_width":      0,
	}}
	opts := LayoutOptions(cfg)
	if opts.Prefetch != paragraph.DefaultPrefetch() {
		t.Errorf("expected default prefetch, got %+v", opts.Prefetch)
	}
	if opts.Wrap != textlayout.WrapWord {
		t.Errorf("expected word wrap fallback, got %v", opts.Wrap)
	}
	if opts.TabWidth != 4 {
		t.Errorf("expected tab width 4, got %d", opts.TabWidth)
	}
}

func TestTypedGetters(t *testing.T) {
	cfg := Config{"s": map[string]interface{}{
		"f":   "2.5",
		"i":   json.Number("7"),
		"b":   "true",
		"str": 12,
		"n":   json.Number("1"),
		"z":   json.Number("0"),
	}}
	if got := cfg.GetFloat("s", "f", 0); got != 2.5 {
		t.Errorf("GetFloat: expected 2.5, got %v", got)
	}
	if got := cfg.GetInt("s", "i", 0); got != 7 {
		t.Errorf("GetInt: expected 7, got %d", got)
	}
	if got := cfg.GetBool("s", "b", false); !got {
		t.Errorf("GetBool: expected true")
	}
	if got := cfg.GetBool("s", "n", false); !got {
		t.Errorf("GetBool: expected json.Number 1 to be true")
	}
	if got := cfg.GetBool("s", "z", true); got {
		t.Errorf("GetBool: expected json.Number 0 to be false")
	}
	if got := cfg.GetString("s", "str", "fallback"); got != "fallback" {
		t.Errorf("GetString: expected fallback for non-string, got %q", got)
	}
	if got := cfg.GetInt("missing", "i", 5); got != 5 {
		t.Errorf("expected default for missing section, got %d", got)
	}
}
