// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML files.
type fileConfig struct {
	App struct {
		HashKey string `json:"hash_key" toml:"hash_key"`
		Version string `json:"version" toml:"version"`
	} `json:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
		Files struct {
			ArtifactDir string `json:"artifact_dir" toml:"artifact_dir"`
		} `json:"files" toml:"files"`
	} `json:"storage" toml:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	Client struct {
		DownloadDir     string   `json:"download_dir" toml:"download_dir"`
		PreviewDebounce Duration `json:"preview_debounce" toml:"preview_debounce"`
		LogFile         string   `json:"log_file" toml:"log_file"`
	} `json:"client" toml:"client"`

	Workers struct {
		CleanupInterval Duration `json:"cleanup_interval" toml:"cleanup_interval"`
		ArtifactTTL     Duration `json:"artifact_ttl" toml:"artifact_ttl"`
	} `json:"workers" toml:"workers"`

	Telemetry struct {
		OTLPEndpoint string `json:"otlp_endpoint" toml:"otlp_endpoint"`
		ServiceName  string `json:"service_name" toml:"service_name"`
	} `json:"telemetry" toml:"telemetry"`
}

// parseFile reads a config file, choosing TOML for a ".toml" extension and
// JSON otherwise.
func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(path string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fc fileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fc); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fc.toStructured(), nil
}

func parseTOML(path string) (*StructuredConfig, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			HashKey: fc.App.HashKey,
			Version: fc.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: fc.Storage.DB.DSN},
			Files: Files{ArtifactDir: fc.Storage.Files.ArtifactDir},
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Client: Client{
			DownloadDir:     fc.Client.DownloadDir,
			PreviewDebounce: time.Duration(fc.Client.PreviewDebounce),
			LogFile:         fc.Client.LogFile,
		},
		Workers: Workers{
			CleanupInterval: time.Duration(fc.Workers.CleanupInterval),
			ArtifactTTL:     time.Duration(fc.Workers.ArtifactTTL),
		},
		Telemetry: Telemetry{
			OTLPEndpoint: fc.Telemetry.OTLPEndpoint,
			ServiceName:  fc.Telemetry.ServiceName,
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// in both JSON and TOML, and from integer nanoseconds in JSON.
type Duration time.Duration

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler, used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
