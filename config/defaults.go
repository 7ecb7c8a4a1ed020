// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values filled into every loaded configuration.

package config

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults("layout", Section{
		"prefetch_above": 2.0,
		"prefetch_below": 3.0,
		"wrap":           "word",
		"tab_width":      4,
	})
	cfg.RegisterDefaults("highlight", Section{
		"enabled": true,
		"style":   "catppuccin-mocha",
	})
	cfg.RegisterDefaults("viewer", Section{
		"scroll_step": 1,
		"scrollbar":   true,
	})
}
