// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/store"
)

// Services groups everything the design server exposes.
type Services struct {
	DesignService  DesignService
	AppInfoService AppInfoService
}

// NewServices wires the server services. The design service is always
// wrapped with validation.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	designs := NewDesignService(storages.Artifacts, storages.Archive, logger)

	return &Services{
		DesignService:  NewDesignValidationService().Wrap(designs),
		AppInfoService: appInfo,
	}, nil
}
