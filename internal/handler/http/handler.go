// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/MKhiriev/go-augmd/internal/handler/http"

type Handler struct {
	services *service.Services
	hasher   *utils.Hasher
	tracer   trace.Tracer
	cfg      config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hasher:   utils.NewHasher(cfg.App.HashKey),
		tracer:   otel.Tracer(tracerName),
		cfg:      cfg.Server,
		logger:   logger,
	}
}

// requestLogger returns the logger withTraceID attached to r, or the
// handler logger when r did not pass through it.
func (h *Handler) requestLogger(r *http.Request) *logger.Logger {
	if l := logger.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return h.logger
}
