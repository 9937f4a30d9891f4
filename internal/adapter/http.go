// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/utils"
	"github.com/MKhiriev/go-augmd/models"
)

const (
	previewPath  = "/api/get_version_preview"
	artifactPath = "/api/get_aug_md_design"
	versionPath  = "/api/version"
)

type httpDesignServiceAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	logger *logger.Logger
}

// NewHTTPDesignServiceAdapter constructs an HTTP/REST implementation of
// [DesignServiceAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. When appCfg.HashKey is set, artifact
// bodies are checked against the HashSHA256 response header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPDesignServiceAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (DesignServiceAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpDesignServiceAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		hasher: utils.NewHasher(appCfg.HashKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// PreviewFor implements [DesignServiceAdapter]. It POSTs cfg to
// POST /api/get_version_preview and decodes the sample_design matrix.
func (h *httpDesignServiceAdapter) PreviewFor(ctx context.Context, cfg models.Configuration) (models.PreviewResult, error) {
	if !cfg.IsComplete() {
		return nil, ErrIncompleteRequest
	}

	resp, err := h.client.RWithContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cfg).
		Post(previewPath)
	if err != nil {
		return nil, fmt.Errorf("preview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var pr models.PreviewResponse
	if err = json.Unmarshal(resp.Body(), &pr); err != nil {
		return nil, fmt.Errorf("%w: decode preview response: %w", ErrMalformedResponse, err)
	}

	h.logger.Debug().
		Stringer("config", cfg).
		Int("rows", len(pr.SampleDesign)).
		Msg("preview received")

	return pr.SampleDesign, nil
}

// GenerateArtifact implements [DesignServiceAdapter]. It POSTs cfg to
// POST /api/get_aug_md_design and returns the raw body. Returns
// [ErrIntegrityCheckFailed] when a hash key is configured and the HashSHA256
// header does not match the body.
func (h *httpDesignServiceAdapter) GenerateArtifact(ctx context.Context, cfg models.Configuration) (models.Artifact, error) {
	if !cfg.IsComplete() {
		return models.Artifact{}, ErrIncompleteRequest
	}

	resp, err := h.client.RWithContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(cfg).
		Post(artifactPath)
	if err != nil {
		return models.Artifact{}, fmt.Errorf("artifact request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Artifact{}, err
	}

	artifact := models.Artifact{
		Content:     resp.Body(),
		ContentType: resp.Header().Get("Content-Type"),
		Hash:        resp.Header().Get(utils.HashHeader),
	}

	if !h.hasher.Verify(artifact.Content, artifact.Hash) {
		h.logger.Error().
			Stringer("config", cfg).
			Str("hash", artifact.Hash).
			Msg("artifact hash mismatch")
		return models.Artifact{}, ErrIntegrityCheckFailed
	}

	return artifact, nil
}

// ServerVersion implements [DesignServiceAdapter] via GET /api/version.
func (h *httpDesignServiceAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.RWithContext(ctx).Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}
