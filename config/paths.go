// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for texelview configuration.

package config

import (
	"os"
	"path/filepath"
)

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "texelview"), nil
}

// DefaultPath returns the config file location under the user config dir.
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, systemConfigName), nil
}

// systemConfigPath honours SetPath. Callers hold mu.
func systemConfigPath() (string, error) {
	if override != "" {
		return override, nil
	}
	return DefaultPath()
}
