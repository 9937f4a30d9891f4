// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-augmd/models"
)

// DesignService lays out designs for a configuration.
type DesignService interface {
	// SampleDesign returns one shuffled version, one row per screen, padded
	// with blanks to the maximum screen width.
	SampleDesign(ctx context.Context, cfg models.Configuration) (models.PreviewResult, error)

	// GenerateDesign builds every version, renders it as CSV, stores the file
	// and archives a record of it when an archive is configured.
	GenerateDesign(ctx context.Context, cfg models.Configuration) (models.GeneratedDesign, error)

	// RecentDesigns lists archived generations, newest first.
	RecentDesigns(ctx context.Context, limit uint64) ([]models.DesignRecord, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DesignServiceWrapper defines middleware composition for DesignService.
// Implementations wrap an existing DesignService to add behavior such as
// validation.
type DesignServiceWrapper interface {
	Wrap(DesignService) DesignService
}
