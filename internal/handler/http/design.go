// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/MKhiriev/go-augmd/models"
)

// designIDHeader carries the id the generated design was stored under.
const designIDHeader = "X-Design-ID"

func decodeConfiguration(r *http.Request) (models.Configuration, error) {
	var cfg models.Configuration
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		return models.Configuration{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return cfg, nil
}

func (h *Handler) getVersionPreview(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfiguration(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	sample, err := h.services.DesignService.SampleDesign(r.Context(), cfg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.PreviewResponse{SampleDesign: sample}, http.StatusOK)
}

func (h *Handler) getAugMDDesign(w http.ResponseWriter, r *http.Request) {
	cfg, err := decodeConfiguration(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	design, err := h.services.DesignService.GenerateDesign(r.Context(), cfg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": models.ArtifactFileName}))
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set(designIDHeader, design.ID.String())
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(design.Content)
}

func (h *Handler) listDesigns(w http.ResponseWriter, r *http.Request) {
	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %q", ErrInvalidLimit, raw))
			return
		}
		limit = parsed
	}

	records, err := h.services.DesignService.RecentDesigns(r.Context(), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.DesignRecord{}
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}
