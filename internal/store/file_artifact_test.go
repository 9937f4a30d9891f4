// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configDB(dsn string) config.DB {
	return config.DB{DSN: dsn}
}

func TestFileArtifactStorage_SaveUnique_NumbersCollisions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "downloads")
	s := NewFileArtifactStorage(dir)
	ctx := context.Background()

	first, err := s.SaveUnique(ctx, "AugMD Design.csv", []byte("a"))
	require.NoError(t, err)
	second, err := s.SaveUnique(ctx, "AugMD Design.csv", []byte("bb"))
	require.NoError(t, err)
	third, err := s.SaveUnique(ctx, "AugMD Design.csv", []byte("ccc"))
	require.NoError(t, err)

	assert.Equal(t, "AugMD Design.csv", first.Name)
	assert.Equal(t, "AugMD Design (1).csv", second.Name)
	assert.Equal(t, "AugMD Design (2).csv", third.Name)
	assert.Equal(t, int64(2), second.Size)

	content, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "a", string(content))
}

func TestFileArtifactStorage_SaveReplaces(t *testing.T) {
	s := NewFileArtifactStorage(t.TempDir())
	ctx := context.Background()

	_, err := s.Save(ctx, "x.csv", []byte("old content"))
	require.NoError(t, err)
	_, err = s.Save(ctx, "x.csv", []byte("new"))
	require.NoError(t, err)

	got, err := s.Read(ctx, "x.csv")
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestFileArtifactStorage_ReadMissing(t *testing.T) {
	s := NewFileArtifactStorage(t.TempDir())

	_, err := s.Read(context.Background(), "nope.csv")
	assert.ErrorIs(t, err, ErrArtifactNotFound)
}

func TestFileArtifactStorage_NameCannotEscapeDir(t *testing.T) {
	dir := t.TempDir()
	s := NewFileArtifactStorage(dir)

	stored, err := s.Save(context.Background(), "../escape.csv", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.csv"), stored.Path)
}

func TestFileArtifactStorage_NoDir(t *testing.T) {
	s := NewFileArtifactStorage("")

	_, err := s.SaveUnique(context.Background(), "a.csv", nil)
	assert.ErrorIs(t, err, ErrNoArtifactDir)
}

func TestFileArtifactStorage_ListAndRemoveOlderThan(t *testing.T) {
	dir := t.TempDir()
	s := NewFileArtifactStorage(dir)
	ctx := context.Background()

	old, err := s.Save(ctx, "old.csv", []byte("1"))
	require.NoError(t, err)
	_, err = s.Save(ctx, "new.csv", []byte("2"))
	require.NoError(t, err)

	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(old.Path, past, past))

	files, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "old.csv", files[0].Name)

	removed, err := s.RemoveOlderThan(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	files, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestFileArtifactStorage_ListMissingDir(t *testing.T) {
	s := NewFileArtifactStorage(filepath.Join(t.TempDir(), "missing"))

	files, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileArtifactStorage_CanceledContext(t *testing.T) {
	s := NewFileArtifactStorage(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.SaveUnique(ctx, "a.csv", []byte("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
