// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses args into a partial [StructuredConfig].
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-s design server address used by the client
//	-request-timeout server request timeout (e.g. "30s")
//	-adapter-timeout client request timeout (e.g. "10s")
//	-d archive database DSN
//	-f artifact directory
//	-o download directory
//	-debounce preview debounce (e.g. "250ms")
//	-k integrity hash key
//	-c/-config JSON or TOML config file path
//	-otlp-endpoint OTLP/HTTP traces endpoint
//	-log-file client log file
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("augmd", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var requestTimeout, adapterTimeout, debounce time.Duration
	var dsn, artifactDir, downloadDir string
	var hashKey, configPath, otlpEndpoint, logFile string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "s", "", "Design server address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout (e.g., 10s)")
	fs.StringVar(&dsn, "d", "", "Archive database DSN")
	fs.StringVar(&artifactDir, "f", "", "Artifact directory")
	fs.StringVar(&downloadDir, "o", "", "Download directory")
	fs.DurationVar(&debounce, "debounce", 0, "Preview debounce (e.g., 250ms)")
	fs.StringVar(&hashKey, "k", "", "Integrity hash key")
	fs.StringVar(&configPath, "c", "", "Config file path (.json or .toml)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&otlpEndpoint, "otlp-endpoint", "", "OTLP/HTTP traces endpoint")
	fs.StringVar(&logFile, "log-file", "", "Client log file")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			HashKey: hashKey,
		},
		Storage: Storage{
			DB:    DB{DSN: dsn},
			Files: Files{ArtifactDir: artifactDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Client: Client{
			DownloadDir:     downloadDir,
			PreviewDebounce: debounce,
			LogFile:         logFile,
		},
		Telemetry: Telemetry{
			OTLPEndpoint: otlpEndpoint,
		},
		FilePath: configPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
