// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Configuration store for texelview (texelview.json).

package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/framegrace/texelview/defaults"
)

const systemConfigName = "texelview.json"

// Config stores configuration sections as JSON-compatible data.
type Config map[string]interface{}

// Section stores key/value pairs for a configuration section.
type Section map[string]interface{}

var (
	mu       sync.RWMutex
	once     sync.Once
	system   Config
	loadErr  error
	override string
)

// SetPath makes the store read and write path instead of the default
// location. It must be called before the first System call or be followed
// by Reload.
func SetPath(path string) {
	mu.Lock()
	defer mu.Unlock()
	override = path
}

// Err returns the most recent config load error.
func Err() error {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return loadErr
}

// System returns the loaded configuration with defaults applied.
func System() Config {
	once.Do(initStore)
	mu.RLock()
	defer mu.RUnlock()
	return system
}

// Reload re-reads the configuration file.
func Reload() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	loadErr = loadSystemLocked()
	return loadErr
}

// Save persists the current configuration to disk.
func Save() error {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	path, err := systemConfigPath()
	if err != nil {
		return err
	}
	return writeConfig(path, system)
}

// SetSystem replaces the in-memory configuration.
func SetSystem(cfg Config) {
	once.Do(initStore)
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = make(Config)
	}
	system = Clone(cfg)
	applySystemDefaults(system)
}

// Default returns a fresh copy of the built-in configuration.
func Default() Config {
	cfg := defaultSystemConfig()
	if cfg == nil {
		cfg = make(Config)
	}
	applySystemDefaults(cfg)
	return cfg
}

func initStore() {
	mu.Lock()
	defer mu.Unlock()
	system = make(Config)
	loadErr = loadSystemLocked()
}

// defaultSystemConfig parses the embedded defaults file.
func defaultSystemConfig() Config {
	var cfg Config
	if err := json.Unmarshal(defaults.SystemConfig(), &cfg); err != nil {
		log.Printf("Config: Failed to parse embedded defaults: %v", err)
		return nil
	}
	return cfg
}

func readConfig(path string) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func writeConfig(path string, cfg Config) error {
	if cfg == nil {
		cfg = make(Config)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
