// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/clone.go
// Summary: Clone helper for config maps.

package config

// Clone returns a copy of the config with every section copied one level
// deep, so callers can change section keys without touching the original.
func Clone(cfg Config) Config {
	if cfg == nil {
		return nil
	}
	out := make(Config, len(cfg))
	for name, raw := range cfg {
		switch v := raw.(type) {
		case map[string]interface{}:
			out[name] = cloneSection(v)
		case Section:
			out[name] = cloneSection(v)
		default:
			out[name] = v
		}
	}
	return out
}

func cloneSection(src map[string]interface{}) Section {
	dst := make(Section, len(src))
	for key, value := range src {
		dst[key] = value
	}
	return dst
}
