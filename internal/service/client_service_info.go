// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-augmd/internal/adapter"
)

type clientInfoService struct {
	adapter adapter.DesignServiceAdapter
}

// NewClientInfoService returns a [ClientInfoService] backed by designAdapter.
func NewClientInfoService(designAdapter adapter.DesignServiceAdapter) ClientInfoService {
	return &clientInfoService{adapter: designAdapter}
}

// ServerVersion implements [ClientInfoService].
func (s *clientInfoService) ServerVersion(ctx context.Context) (string, error) {
	return s.adapter.ServerVersion(ctx)
}
