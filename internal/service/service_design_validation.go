// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-augmd/internal/validators"
	"github.com/MKhiriev/go-augmd/models"
)

// DesignValidationService rejects configurations that cannot be laid out
// before they reach the wrapped DesignService. Returned errors wrap
// *validators.ValidationError, whose message is meant for the user.
type DesignValidationService struct {
	inner     DesignService
	validator validators.Validator
}

func NewDesignValidationService() DesignServiceWrapper {
	return &DesignValidationService{
		validator: validators.NewDesignParamsValidator(),
	}
}

func (v *DesignValidationService) SampleDesign(ctx context.Context, cfg models.Configuration) (models.PreviewResult, error) {
	if err := v.validator.Validate(ctx, cfg); err != nil {
		return nil, fmt.Errorf("error during design validation before sampling: %w", err)
	}

	return v.inner.SampleDesign(ctx, cfg)
}

func (v *DesignValidationService) GenerateDesign(ctx context.Context, cfg models.Configuration) (models.GeneratedDesign, error) {
	if err := v.validator.Validate(ctx, cfg); err != nil {
		return models.GeneratedDesign{}, fmt.Errorf("error during design validation before generating: %w", err)
	}

	return v.inner.GenerateDesign(ctx, cfg)
}

func (v *DesignValidationService) RecentDesigns(ctx context.Context, limit uint64) ([]models.DesignRecord, error) {
	return v.inner.RecentDesigns(ctx, limit)
}

func (v *DesignValidationService) Wrap(inner DesignService) DesignService {
	v.inner = inner
	return v
}
