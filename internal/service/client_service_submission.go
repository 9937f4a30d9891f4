// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/MKhiriev/go-augmd/models"
)

type submissionController struct {
	adapter   adapter.DesignServiceAdapter
	downloads store.ArtifactStorage
	ids       utils.IDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewSubmissionController returns a [SubmissionController] that saves
// artifacts into downloads.
func NewSubmissionController(designAdapter adapter.DesignServiceAdapter, downloads store.ArtifactStorage, logger *logger.Logger) SubmissionController {
	return &submissionController{
		adapter:   designAdapter,
		downloads: downloads,
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}
}

// Submit implements [SubmissionController]. Each call issues exactly one
// request and writes a new file, so repeating a submission yields
// "AugMD Design (1).csv" and so on rather than overwriting.
func (s *submissionController) Submit(ctx context.Context, cfg models.Configuration) (models.ArtifactHandle, error) {
	if !cfg.IsComplete() {
		return models.ArtifactHandle{}, ErrIncompleteConfiguration
	}

	artifact, err := s.adapter.GenerateArtifact(ctx, cfg)
	if err != nil {
		s.logger.Err(err).Stringer("config", cfg).Msg("artifact request failed")
		return models.ArtifactHandle{}, &SubmissionError{Stage: StageRequest, Config: cfg, Err: err}
	}

	stored, err := s.downloads.SaveUnique(ctx, models.ArtifactFileName, artifact.Content)
	if err != nil {
		s.logger.Err(err).Str("dir", s.downloads.Dir()).Msg("saving artifact failed")
		return models.ArtifactHandle{}, &SubmissionError{Stage: StageSave, Config: cfg, Err: err}
	}

	handle := models.ArtifactHandle{
		ID:          s.ids.Generate(),
		Path:        stored.Path,
		Size:        stored.Size,
		ContentType: artifact.ContentType,
		Config:      cfg,
		SavedAt:     s.now(),
	}

	s.logger.Info().
		Str("artifact_id", handle.ID.String()).
		Str("path", handle.Path).
		Int64("size", handle.Size).
		Msg("design saved")

	return handle, nil
}
