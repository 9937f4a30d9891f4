// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/rs/zerolog"
)

const defaultRecentDesigns = 50

type designService struct {
	artifacts store.ArtifactStorage
	archive   store.DesignArchiveRepository
	ids       utils.IDGenerator
	shuffle   shuffleFunc

	logger *logger.Logger
}

// NewDesignService returns a DesignService writing CSV files to artifacts.
// archive may be nil, in which case generations are not recorded and
// RecentDesigns reports store.ErrArchiveDisabled. Configurations are assumed
// valid; wrap the result with NewDesignValidationService to enforce that.
func NewDesignService(artifacts store.ArtifactStorage, archive store.DesignArchiveRepository, logger *logger.Logger) DesignService {
	return &designService{
		artifacts: artifacts,
		archive:   archive,
		ids:       utils.NewUUIDGenerator(),
		shuffle:   rand.Shuffle,
		logger:    logger,
	}
}

func (s *designService) SampleDesign(ctx context.Context, cfg models.Configuration) (models.PreviewResult, error) {
	if !cfg.IsComplete() {
		return nil, ErrIncompleteConfiguration
	}

	layout := designLayout(cfg)
	sample := shuffledVersion(cfg.NumOfItems(), layout, s.shuffle)

	s.log(ctx).Debug().
		Stringer("config", cfg).
		Ints("items_per_screen", layout.ItemsPerScreen).
		Msg("sample design built")

	return sample, nil
}

func (s *designService) GenerateDesign(ctx context.Context, cfg models.Configuration) (models.GeneratedDesign, error) {
	if !cfg.IsComplete() {
		return models.GeneratedDesign{}, ErrIncompleteConfiguration
	}
	log := s.log(ctx)

	design := buildDesign(cfg, s.shuffle)
	report, err := checkDesign(design)
	if err != nil {
		log.Err(err).Stringer("config", cfg).Msg("design failed its checks")
		return models.GeneratedDesign{}, err
	}
	if len(report.Duplicates) > 0 {
		log.Warn().Ints("versions", report.Duplicates).Msg("duplicate versions detected")
	} else {
		log.Debug().Msg("no duplicate versions detected")
	}
	log.Debug().Int("blanks", report.BlanksPerVersion).Msg("every version has the same number of blanks")

	content, err := encodeDesignCSV(design)
	if err != nil {
		return models.GeneratedDesign{}, fmt.Errorf("%w: %w", ErrDesignGeneration, err)
	}

	id := s.ids.Generate()
	stored, err := s.artifacts.Save(ctx, "design-"+id.String()+".csv", content)
	if err != nil {
		return models.GeneratedDesign{}, fmt.Errorf("error storing design: %w", err)
	}

	if s.archive != nil {
		rec := models.NewDesignRecord(id, cfg, stored.Name, stored.Size)
		if _, err = s.archive.Save(ctx, rec); err != nil {
			// the file is already served from disk, a missing record only
			// hides it from the listing
			log.Err(err).Str("design_id", id.String()).Msg("failed to archive design record")
		}
	}

	log.Info().
		Str("design_id", id.String()).
		Stringer("config", cfg).
		Int64("size", stored.Size).
		Msg("design generated")

	return models.GeneratedDesign{
		ID:       id,
		FileName: stored.Name,
		Content:  content,
		Design:   design,
	}, nil
}

func (s *designService) RecentDesigns(ctx context.Context, limit uint64) ([]models.DesignRecord, error) {
	if s.archive == nil {
		return nil, store.ErrArchiveDisabled
	}
	if limit == 0 {
		limit = defaultRecentDesigns
	}

	records, err := s.archive.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing archived designs: %w", err)
	}
	return records, nil
}

// log prefers the request-scoped logger and falls back to the service one.
func (s *designService) log(ctx context.Context) *logger.Logger {
	if l := logger.FromContext(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return s.logger
}
