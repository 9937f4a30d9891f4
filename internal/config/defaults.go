// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"time"
)

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultServerTimeout   = 30 * time.Second
	defaultAdapterTimeout  = 10 * time.Second
	defaultCleanupInterval = time.Hour
	defaultArtifactTTL     = 24 * time.Hour
	defaultServiceName     = "augmd-server"
	defaultVersion         = "dev"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Storage: Storage{
			Files: Files{
				ArtifactDir: filepath.Join(XDGDataHome(), appDirName, "artifacts"),
			},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultServerTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
		Client: Client{
			DownloadDir: XDGDownloadDir(),
		},
		Workers: Workers{
			CleanupInterval: defaultCleanupInterval,
			ArtifactTTL:     defaultArtifactTTL,
		},
		Telemetry: Telemetry{
			ServiceName: defaultServiceName,
		},
	}
}
