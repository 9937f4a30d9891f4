// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/store"
)

const (
	defaultCleanupInterval = time.Hour
	defaultArtifactTTL     = 24 * time.Hour
)

// CleanupReport counts what a single sweep removed.
type CleanupReport struct {
	Files   int
	Records int64
}

// ArtifactCleanup removes generated designs older than the configured TTL
// from the artifact directory and, when present, from the archive.
type ArtifactCleanup struct {
	artifacts store.ArtifactStorage
	archive   store.DesignArchiveRepository
	interval  time.Duration
	ttl       time.Duration
	now       func() time.Time

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewArtifactCleanup returns an idle cleanup job. archive may be nil.
// Non-positive durations in cfg fall back to hourly sweeps with a one day TTL.
func NewArtifactCleanup(artifacts store.ArtifactStorage, archive store.DesignArchiveRepository, cfg config.Workers, logger *logger.Logger) *ArtifactCleanup {
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	ttl := cfg.ArtifactTTL
	if ttl <= 0 {
		ttl = defaultArtifactTTL
	}

	return &ArtifactCleanup{
		artifacts: artifacts,
		archive:   archive,
		interval:  interval,
		ttl:       ttl,
		now:       time.Now,
		logger:    logger,
	}
}

// Start implements Worker. A previous run is stopped first. The job sweeps
// every interval until ctx is canceled or Stop is called.
func (c *ArtifactCleanup) Start(ctx context.Context) {
	c.Stop()

	c.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.wg.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.wg.Done()
		t := time.NewTicker(c.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_, _ = c.Sweep(jobCtx)
			}
		}
	}()
}

// Stop implements Worker.
func (c *ArtifactCleanup) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	c.cancel = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
}

// Sweep removes everything older than the TTL once. Files and archive
// records are handled independently; both errors are returned joined.
func (c *ArtifactCleanup) Sweep(ctx context.Context) (CleanupReport, error) {
	cutoff := c.now().Add(-c.ttl)
	var report CleanupReport

	files, fileErr := c.artifacts.RemoveOlderThan(ctx, cutoff)
	report.Files = files
	if fileErr != nil {
		c.logger.Err(fileErr).Time("cutoff", cutoff).Msg("artifact cleanup failed")
	}

	var archiveErr error
	if c.archive != nil {
		report.Records, archiveErr = c.archive.DeleteOlderThan(ctx, cutoff)
		if archiveErr != nil {
			c.logger.Err(archiveErr).Time("cutoff", cutoff).Msg("archive cleanup failed")
		}
	}

	if report.Files > 0 || report.Records > 0 {
		c.logger.Info().
			Int("files", report.Files).
			Int64("records", report.Records).
			Time("cutoff", cutoff).
			Msg("expired designs removed")
	}

	return report, errors.Join(fileErr, archiveErr)
}
