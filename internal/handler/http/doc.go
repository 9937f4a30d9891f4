// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http is the REST transport of the design server.
//
// It wires the preview, artifact, archive and version routes onto a chi
// router. Request tracing, access logging, compression and the artifact
// integrity header are handled by middleware before requests reach the
// service layer.
package http
