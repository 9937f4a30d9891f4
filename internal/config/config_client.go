// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// HashKey verifies the HashSHA256 header on downloaded artifacts.
	HashKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the design server address.
	HTTPAddress string
	// RequestTimeout bounds every outbound request.
	RequestTimeout time.Duration
}

// ClientSettings holds terminal client behaviour.
type ClientSettings struct {
	// DownloadDir is where submitted designs are written.
	DownloadDir string
	// PreviewDebounce is the input quiescence delay before a preview request.
	PreviewDebounce time.Duration
	// LogFile is the client log destination.
	LogFile string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Client  ClientSettings
}

// GetClientConfig builds and validates the client view of the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the client-relevant fields of cfg.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey: cfg.App.HashKey,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Client: ClientSettings{
			DownloadDir:     cfg.Client.DownloadDir,
			PreviewDebounce: cfg.Client.PreviewDebounce,
			LogFile:         cfg.Client.LogFile,
		},
	}
}

// MarshalZerologObject logs the client settings without the hash key.
func (c *ClientConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("hash_key_set", c.App.HashKey != "").
		Str("adapter_address", c.Adapter.HTTPAddress).
		Dur("adapter_timeout", c.Adapter.RequestTimeout).
		Str("download_dir", c.Client.DownloadDir).
		Dur("preview_debounce", c.Client.PreviewDebounce).
		Str("log_file", c.Client.LogFile)
}
