// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.HashKey = "k"
	cfg.Client.PreviewDebounce = time.Second

	got := NewClientConfig(cfg)

	assert.Equal(t, "k", got.App.HashKey)
	assert.Equal(t, defaultHTTPAddress, got.Adapter.HTTPAddress)
	assert.Equal(t, defaultAdapterTimeout, got.Adapter.RequestTimeout)
	assert.Equal(t, time.Second, got.Client.PreviewDebounce)
	assert.NoError(t, got.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClientConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{name: "no address", mutate: func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "no timeout", mutate: func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, want: ErrInvalidAdapterConfigs},
		{name: "no download dir", mutate: func(c *ClientConfig) { c.Client.DownloadDir = "" }, want: ErrInvalidClientConfigs},
		{name: "negative debounce", mutate: func(c *ClientConfig) { c.Client.PreviewDebounce = -1 }, want: ErrInvalidClientConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClientConfig(defaultConfig())
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ServerConfig)
		want   error
	}{
		{name: "defaults are valid", mutate: func(*ServerConfig) {}},
		{name: "no address", mutate: func(c *ServerConfig) { c.Server.HTTPAddress = "" }, want: ErrInvalidServerConfigs},
		{name: "no artifact dir", mutate: func(c *ServerConfig) { c.Storage.Files.ArtifactDir = "" }, want: ErrInvalidStorageConfigs},
		{name: "no ttl", mutate: func(c *ServerConfig) { c.Workers.ArtifactTTL = 0 }, want: ErrInvalidWorkerConfigs},
		{name: "no version", mutate: func(c *ServerConfig) { c.App.Version = "" }, want: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewServerConfig(defaultConfig())
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestXDG_EnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_DOWNLOAD_DIR", "/dl")

	assert.Equal(t, "/cfg", XDGConfigHome())
	assert.Equal(t, "/data", XDGDataHome())
	assert.Equal(t, "/dl", XDGDownloadDir())
	assert.Equal(t, filepath.Join("/cfg", "augmd", "config.toml"), DefaultConfigPath())
}

func TestClientConfig_LogObjectOmitsHashKey(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.HashKey = "super-secret-key"
	var buf bytes.Buffer

	zerolog.New(&buf).Info().Object("config", NewClientConfig(cfg)).Msg("configs")

	assert.NotContains(t, buf.String(), "super-secret-key")
	assert.Contains(t, buf.String(), `"hash_key_set":true`)
	assert.Contains(t, buf.String(), defaultHTTPAddress)
}

func TestServerConfig_LogObjectOmitsSecrets(t *testing.T) {
	cfg := defaultConfig()
	cfg.App.HashKey = "super-secret-key"
	cfg.Storage.DB.DSN = "postgres://augmd:hunter2@db:5432/augmd"
	var buf bytes.Buffer

	zerolog.New(&buf).Info().Object("config", NewServerConfig(cfg)).Msg("configs")

	assert.NotContains(t, buf.String(), "super-secret-key")
	assert.NotContains(t, buf.String(), "hunter2")
	assert.Contains(t, buf.String(), `"archive_enabled":true`)
}
