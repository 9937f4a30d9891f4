// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// design server and the terminal client. It is populated by merging values
// from command-line flags, environment variables, an optional JSON or TOML
// file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings shared by both binaries: the integrity hash key
	// and the reported version.
	App App `envPrefix:"APP_"`

	// Storage holds the design archive database and artifact directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the design server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the address and timeout the client uses to reach the
	// design server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds terminal client settings.
	Client Client `envPrefix:"CLIENT_"`

	// Workers holds background job settings of the design server.
	Workers Workers `envPrefix:"WORKERS_"`

	// Telemetry holds the optional OpenTelemetry exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// FilePath is the optional path to a JSON or TOML configuration file,
	// chosen by extension. Populated via the CONFIG environment variable or
	// the -c / -config flag.
	FilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// HashKey is the HMAC key used for the HashSHA256 integrity header on
	// generated artifacts. Empty disables signing and verification.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the persistence settings of the design server.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Files Files `envPrefix:"FILES_"`
}

// DB holds the design archive connection settings.
type DB struct {
	// DSN selects the archive backend: a postgres:// URL opens PostgreSQL
	// through pgx, anything else is treated as a SQLite file. Empty
	// disables the archive.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds the artifact directory settings.
type Files struct {
	// ArtifactDir is where generated design CSV files are written.
	// Env: STORAGE_FILES_ARTIFACT_DIR
	ArtifactDir string `env:"ARTIFACT_DIR"`
}

// Server holds inbound transport settings.
type Server struct {
	// HTTPAddress is the "host:port" the design server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds outbound transport settings of the client.
type Adapter struct {
	// HTTPAddress is the design server base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every preview and artifact request. A preview
	// that times out is reported as a rejection rather than staying pending.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds terminal client settings.
type Client struct {
	// DownloadDir is where submitted designs are saved.
	// Env: CLIENT_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`

	// PreviewDebounce delays preview requests until input has been quiet for
	// this long. Zero sends a request on every change.
	// Env: CLIENT_PREVIEW_DEBOUNCE
	PreviewDebounce time.Duration `env:"PREVIEW_DEBOUNCE"`

	// LogFile is the path the client logs to. Empty selects a "logs" file
	// next to the executable.
	// Env: CLIENT_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Workers holds design server background job settings.
type Workers struct {
	// CleanupInterval is how often expired artifacts are removed.
	// Env: WORKERS_CLEANUP_INTERVAL
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// ArtifactTTL is how long a generated artifact is kept on disk.
	// Env: WORKERS_ARTIFACT_TTL
	ArtifactTTL time.Duration `env:"ARTIFACT_TTL"`
}

// Telemetry holds tracing exporter settings.
type Telemetry struct {
	// OTLPEndpoint is the OTLP/HTTP traces endpoint URL. Empty disables
	// tracing.
	// Env: TELEMETRY_OTLP_ENDPOINT
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`

	// ServiceName is reported as the service.name resource attribute.
	// Env: TELEMETRY_SERVICE_NAME
	ServiceName string `env:"SERVICE_NAME"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. For every field the first non-zero value wins, in this
// order:
//  1. Command-line flags
//  2. Environment variables
//  3. Config file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withFile().
		withDefaults().
		build()
}
