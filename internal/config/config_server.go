// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ServerConfig is the design server view of [StructuredConfig].
type ServerConfig struct {
	App       App
	Server    Server
	Storage   Storage
	Workers   Workers
	Telemetry Telemetry
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the server-relevant fields of cfg.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		App:       cfg.App,
		Server:    cfg.Server,
		Storage:   cfg.Storage,
		Workers:   cfg.Workers,
		Telemetry: cfg.Telemetry,
	}
}

// MarshalZerologObject logs the server settings without the hash key or the
// database DSN, which may carry credentials.
func (c *ServerConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", c.App.Version).
		Bool("hash_key_set", c.App.HashKey != "").
		Str("address", c.Server.HTTPAddress).
		Dur("request_timeout", c.Server.RequestTimeout).
		Bool("archive_enabled", c.Storage.DB.DSN != "").
		Str("artifact_dir", c.Storage.Files.ArtifactDir).
		Dur("cleanup_interval", c.Workers.CleanupInterval).
		Dur("artifact_ttl", c.Workers.ArtifactTTL).
		Str("otlp_endpoint", c.Telemetry.OTLPEndpoint)
}
