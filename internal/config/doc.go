// Package config provides configuration loading, merging, and validation
// for the design server and the terminal client.
//
// Configuration is assembled from multiple sources; for each field the first
// non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON or TOML config file
//  4. Built-in defaults
//
// The entry points are [GetServerConfig] and [GetClientConfig], each
// returning the validated view its binary needs.
package config
