// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged [StructuredConfig] for values that are wrong in
// either binary. Role-specific requirements live in the view validators.
func (cfg *StructuredConfig) validate() error {
	if cfg.Client.PreviewDebounce < 0 {
		return fmt.Errorf("%w: negative preview debounce", ErrInvalidClientConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Client.DownloadDir == "" || cfg.Client.PreviewDebounce < 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.Files.ArtifactDir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.CleanupInterval <= 0 || cfg.Workers.ArtifactTTL <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
