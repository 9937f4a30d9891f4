// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the remote design service.
//
// The primary abstraction is [DesignServiceAdapter], which decouples the
// preview synchronizer and the submission controller from the underlying
// protocol. The package ships an HTTP/REST implementation
// ([NewHTTPDesignServiceAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling. A validation rejection (HTTP 400 with a message body) is reported
// as a [*RejectionError], which matches [ErrValidationRejected].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-augmd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/design_service_adapter_mock.go -package=mock

// DesignServiceAdapter defines transport-agnostic communication with the
// remote design service. Implementations are responsible for serialisation,
// integrity checks, and mapping transport-level errors to the sentinel values
// defined in this package.
type DesignServiceAdapter interface {
	// PreviewFor requests a sample design for the complete configuration cfg.
	// A server-side validation failure is returned as a [*RejectionError];
	// every other failure is a transport error.
	PreviewFor(ctx context.Context, cfg models.Configuration) (models.PreviewResult, error)

	// GenerateArtifact requests the full design for cfg and returns the
	// response body untouched. Any 2xx response is accepted regardless of
	// its content type.
	GenerateArtifact(ctx context.Context, cfg models.Configuration) (models.Artifact, error)

	// ServerVersion returns the build version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
