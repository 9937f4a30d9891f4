// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/internal/mock"
	"github.com/MKhiriev/go-augmd/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func writeAged(t *testing.T, dir, name string, age time.Duration) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("Version,Set\n"), 0o644))
	mod := fixedNow.Add(-age)
	require.NoError(t, os.Chtimes(path, mod, mod))
}

// ── Sweep ──

func TestArtifactCleanup_Sweep_RemovesExpiredFiles(t *testing.T) {
	dir := t.TempDir()
	writeAged(t, dir, "design-old.csv", 48*time.Hour)
	writeAged(t, dir, "design-new.csv", time.Hour)

	c := NewArtifactCleanup(store.NewFileArtifactStorage(dir), nil,
		config.Workers{CleanupInterval: time.Minute, ArtifactTTL: 24 * time.Hour}, logger.Nop())
	c.now = func() time.Time { return fixedNow }

	report, err := c.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Files)
	assert.Zero(t, report.Records)
	assert.NoFileExists(t, filepath.Join(dir, "design-old.csv"))
	assert.FileExists(t, filepath.Join(dir, "design-new.csv"))
}

func TestArtifactCleanup_Sweep_PrunesArchive(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactStorage(ctrl)
	archive := mock.NewMockDesignArchiveRepository(ctrl)
	cutoff := fixedNow.Add(-time.Hour)

	artifacts.EXPECT().RemoveOlderThan(gomock.Any(), cutoff).Return(2, nil)
	archive.EXPECT().DeleteOlderThan(gomock.Any(), cutoff).Return(int64(2), nil)

	c := NewArtifactCleanup(artifacts, archive, config.Workers{ArtifactTTL: time.Hour}, logger.Nop())
	c.now = func() time.Time { return fixedNow }

	report, err := c.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, CleanupReport{Files: 2, Records: 2}, report)
}

func TestArtifactCleanup_Sweep_ErrorsAreIndependent(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactStorage(ctrl)
	archive := mock.NewMockDesignArchiveRepository(ctrl)

	artifacts.EXPECT().RemoveOlderThan(gomock.Any(), gomock.Any()).Return(0, store.ErrRemovingArtifact)
	archive.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(3), nil)

	c := NewArtifactCleanup(artifacts, archive, config.Workers{}, logger.Nop())
	report, err := c.Sweep(context.Background())

	assert.ErrorIs(t, err, store.ErrRemovingArtifact)
	assert.Equal(t, int64(3), report.Records)
}

func TestNewArtifactCleanup_Defaults(t *testing.T) {
	c := NewArtifactCleanup(nil, nil, config.Workers{}, logger.Nop())

	assert.Equal(t, defaultCleanupInterval, c.interval)
	assert.Equal(t, defaultArtifactTTL, c.ttl)
}

// ── Start / Stop ──

func TestArtifactCleanup_Start_SweepsOnTicker(t *testing.T) {
	ctrl := gomock.NewController(t)
	artifacts := mock.NewMockArtifactStorage(ctrl)
	artifacts.EXPECT().RemoveOlderThan(gomock.Any(), gomock.Any()).Return(0, nil).MinTimes(2)

	c := NewArtifactCleanup(artifacts, nil, config.Workers{CleanupInterval: 10 * time.Millisecond}, logger.Nop())
	c.Start(context.Background())

	time.Sleep(55 * time.Millisecond)
	c.Stop()
}

func TestArtifactCleanup_Stop_Idempotent(t *testing.T) {
	c := NewArtifactCleanup(nil, nil, config.Workers{}, logger.Nop())

	c.Stop()
	c.Stop()
}

func TestArtifactCleanup_Start_StopsOnContextCancel(t *testing.T) {
	c := NewArtifactCleanup(nil, nil, config.Workers{CleanupInterval: time.Hour}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	c.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		c.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup job did not stop after context cancel")
	}
}
