// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-augmd/internal/adapter"
	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/MKhiriev/go-augmd/models"
)

// ClientServices groups everything the terminal client drives.
type ClientServices struct {
	ConfigurationStore   ConfigurationStore
	PreviewSynchronizer  PreviewSynchronizer
	SubmissionController SubmissionController
	InfoService          ClientInfoService
}

// NewClientServices wires the client services around one adapter.
func NewClientServices(storages *store.ClientStorages, designAdapter adapter.DesignServiceAdapter, cfg config.ClientSettings, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		ConfigurationStore:   NewConfigurationStore(models.Configuration{}),
		PreviewSynchronizer:  NewPreviewSynchronizer(designAdapter, cfg.PreviewDebounce, logger),
		SubmissionController: NewSubmissionController(designAdapter, storages.Downloads, logger),
		InfoService:          NewClientInfoService(designAdapter),
	}
}
