// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/service"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Fakes ──

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// fakeDesignService answers with whatever the test configured and records
// the configuration it was called with.
type fakeDesignService struct {
	sample    models.PreviewResult
	generated models.GeneratedDesign
	records   []models.DesignRecord
	err       error

	gotConfig models.Configuration
	gotLimit  uint64
}

func (f *fakeDesignService) SampleDesign(_ context.Context, cfg models.Configuration) (models.PreviewResult, error) {
	f.gotConfig = cfg
	return f.sample, f.err
}

func (f *fakeDesignService) GenerateDesign(_ context.Context, cfg models.Configuration) (models.GeneratedDesign, error) {
	f.gotConfig = cfg
	return f.generated, f.err
}

func (f *fakeDesignService) RecentDesigns(_ context.Context, limit uint64) ([]models.DesignRecord, error) {
	f.gotLimit = limit
	return f.records, f.err
}

func newTestHandler(t *testing.T, designs service.DesignService, hashKey string) *Handler {
	t.Helper()
	return NewHandler(
		&service.Services{
			DesignService:  designs,
			AppInfoService: &mockAppInfoService{version: "test-version"},
		},
		&config.ServerConfig{App: config.App{HashKey: hashKey}},
		logger.Nop(),
	)
}

const scenarioBody = `{"versions":100,"numOfItems":20,"screens":5,"maxItemsPerScreen":4,"screensWithMaxItems":5}`

// ── NewHandler ──

func TestNewHandler_StoresDependencies(t *testing.T) {
	svcs := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svcs, &config.ServerConfig{App: config.App{HashKey: "k"}}, log)

	require.NotNil(t, h)
	assert.Same(t, svcs, h.services)
	assert.Equal(t, log, h.logger)
	assert.True(t, h.hasher.Enabled())
	assert.NotNil(t, h.tracer)
}

// ── Init / routes ──

func TestInit_RegistersAllRoutes(t *testing.T) {
	router := newTestHandler(t, &fakeDesignService{}, "").Init()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, previewRoute, scenarioBody},
		{http.MethodPost, artifactRoute, scenarioBody},
		{http.MethodGet, designsRoute, ""},
		{http.MethodGet, versionRoute, ""},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.NotEqual(t, http.StatusNotFound, rec.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	router := newTestHandler(t, &fakeDesignService{}, "").Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, &fakeDesignService{}, "").Init()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, previewRoute},
		{http.MethodGet, artifactRoute},
		{http.MethodPost, versionRoute},
		{http.MethodDelete, designsRoute},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_SetsTraceIDHeader(t *testing.T) {
	router := newTestHandler(t, &fakeDesignService{}, "").Init()

	req := httptest.NewRequest(http.MethodGet, versionRoute, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}

// ── Version ──

func TestGetServerVersion_WritesVersion(t *testing.T) {
	h := newTestHandler(t, nil, "")

	req := httptest.NewRequest(http.MethodGet, versionRoute, nil)
	rec := httptest.NewRecorder()
	h.getServerVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "test-version", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}
