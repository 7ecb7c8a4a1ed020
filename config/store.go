// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/store.go
// Summary: Load logic for the config store.

package config

import "log"

// loadSystemLocked reads texelview.json. A missing or empty file is seeded
// with the embedded defaults; a malformed file falls back to defaults in
// memory and reports the parse error.
func loadSystemLocked() error {
	path, err := systemConfigPath()
	if err != nil {
		log.Printf("Config: Failed to resolve config path: %v", err)
		system = Default()
		return err
	}

	cfg, exists, readErr := readConfig(path)
	if readErr != nil {
		log.Printf("Config: Failed to read config %s: %v", path, readErr)
		cfg = nil
	}

	if readErr == nil && len(cfg) == 0 {
		cfg = defaultSystemConfig()
		if cfg != nil {
			if err := writeConfig(path, cfg); err != nil {
				log.Printf("Config: Failed to write default config: %v", err)
				readErr = err
			}
		}
	}
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)

	system = cfg
	if readErr == nil && exists {
		log.Printf("Config: Loaded config from %s", path)
	}
	return readErr
}
