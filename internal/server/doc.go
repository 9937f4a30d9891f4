// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the design server's HTTP transport and background
// workers, and shuts them down together on a termination signal.
package server
