// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
)

// ClientStorages groups the storage used by the terminal client.
type ClientStorages struct {
	// Downloads receives submitted designs.
	Downloads ArtifactStorage
}

// NewClientStorages builds the client storage layer for cfg.
func NewClientStorages(cfg config.ClientSettings, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("download_dir", cfg.DownloadDir).Msg("creating client storages")
	return &ClientStorages{
		Downloads: NewFileArtifactStorage(cfg.DownloadDir),
	}
}
