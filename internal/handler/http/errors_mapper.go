// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/MKhiriev/go-augmd/internal/validators"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrInvalidLimit: http.StatusBadRequest,

	validators.ErrInvalidDesignParams:  http.StatusBadRequest,
	validators.ErrMissingParams:        http.StatusBadRequest,
	service.ErrIncompleteConfiguration: http.StatusBadRequest,
	service.ErrDesignGeneration:        http.StatusInternalServerError,

	store.ErrArchiveDisabled:   http.StatusNotFound,
	store.ErrArtifactNotFound:  http.StatusNotFound,
	store.ErrWritingArtifact:   http.StatusInternalServerError,
	store.ErrNoArtifactDir:     http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:  http.StatusInternalServerError,
	store.ErrExecutingQuery:    http.StatusInternalServerError,
	store.ErrScanningRow:       http.StatusInternalServerError,
	store.ErrScanningRows:      http.StatusInternalServerError,
	store.ErrDesignNotArchived: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError picks the {"message"} text for err. Validation messages
// are passed through verbatim; server faults are not described.
func messageFromError(err error) string {
	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, service.ErrIncompleteConfiguration):
		return "Missing design parameters."
	case errors.Is(err, ErrInvalidJSON):
		return "Request body must be a JSON design configuration."
	case errors.Is(err, ErrInvalidLimit):
		return "limit must be a non-negative integer."
	case errors.Is(err, store.ErrArchiveDisabled):
		return "Design archive is disabled."
	default:
		return http.StatusText(statusFromError(err))
	}
}

// writeError logs err with the request logger and answers with its status
// and message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	log := h.requestLogger(r)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Int("status", status).Msg("request failed")

	_, _ = utils.WriteMessage(w, messageFromError(err), status)
}
