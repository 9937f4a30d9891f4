// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	previewRoute  = "/api/get_version_preview"
	artifactRoute = "/api/get_aug_md_design"
	designsRoute  = "/api/designs"
	versionRoute  = "/api/version"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withTracing, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Post(previewRoute, h.getVersionPreview)
	router.With(h.withArtifactHash).Post(artifactRoute, h.getAugMDDesign)
	router.Get(designsRoute, h.listDesigns)
	router.Get(versionRoute, h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
