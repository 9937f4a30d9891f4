// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

const appDirName = "augmd"

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return homeJoin(".config")
}

// XDGDataHome returns $XDG_DATA_HOME or ~/.local/share.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	return homeJoin(".local", "share")
}

// XDGDownloadDir returns $XDG_DOWNLOAD_DIR or ~/Downloads.
func XDGDownloadDir() string {
	if v := os.Getenv("XDG_DOWNLOAD_DIR"); v != "" {
		return v
	}
	return homeJoin("Downloads")
}

// DefaultConfigPath is the config file read when none is given explicitly.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDirName, "config.toml")
}

func homeJoin(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(append([]string{os.TempDir()}, elem...)...)
	}
	return filepath.Join(append([]string{home}, elem...)...)
}
