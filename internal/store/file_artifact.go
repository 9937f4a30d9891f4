// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-augmd/models"
)

// maxNameAttempts bounds the " (n)" suffix search in SaveUnique.
const maxNameAttempts = 10000

// fileArtifactStorage keeps artifacts as plain files in a single directory.
// The client uses it for its download directory and the server for its
// generated-design directory.
type fileArtifactStorage struct {
	dir string
}

// NewFileArtifactStorage returns an [ArtifactStorage] rooted at dir. The
// directory is created on first write.
func NewFileArtifactStorage(dir string) ArtifactStorage {
	return &fileArtifactStorage{dir: dir}
}

// Dir implements [ArtifactStorage].
func (s *fileArtifactStorage) Dir() string {
	return s.dir
}

// SaveUnique implements [ArtifactStorage]. If name is taken, "base (n).ext"
// is tried for n = 1, 2, ... so an existing file is never overwritten.
func (s *fileArtifactStorage) SaveUnique(ctx context.Context, name string, content []byte) (models.StoredFile, error) {
	if err := s.ensureDir(); err != nil {
		return models.StoredFile{}, err
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for n := 0; n < maxNameAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return models.StoredFile{}, err
		}

		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", base, n, ext)
		}

		stored, err := s.create(candidate, content, os.O_EXCL)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return stored, err
	}

	return models.StoredFile{}, fmt.Errorf("%w: %s", ErrNoFreeFileName, name)
}

// Save implements [ArtifactStorage]. It replaces name if it exists.
func (s *fileArtifactStorage) Save(ctx context.Context, name string, content []byte) (models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return models.StoredFile{}, err
	}
	if err := s.ensureDir(); err != nil {
		return models.StoredFile{}, err
	}
	return s.create(name, content, os.O_TRUNC)
}

// Read implements [ArtifactStorage].
func (s *fileArtifactStorage) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	content, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingArtifact, err)
	}
	return content, nil
}

// List implements [ArtifactStorage]. Files are returned oldest first; a
// missing directory lists as empty.
func (s *fileArtifactStorage) List(ctx context.Context) ([]models.StoredFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadingArtifact, err)
	}

	files := make([]models.StoredFile, 0, len(entries))
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, models.StoredFile{
			Name:    e.Name(),
			Path:    filepath.Join(s.dir, e.Name()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})
	return files, nil
}

// RemoveOlderThan implements [ArtifactStorage].
func (s *fileArtifactStorage) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	files, err := s.List(ctx)
	if err != nil {
		return 0, err
	}

	removed := 0
	var errs []error
	for _, f := range files {
		if !f.ModTime.Before(cutoff) {
			break
		}
		if err = os.Remove(f.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, err)
			continue
		}
		removed++
	}

	if len(errs) > 0 {
		return removed, fmt.Errorf("%w: %w", ErrRemovingArtifact, errors.Join(errs...))
	}
	return removed, nil
}

func (s *fileArtifactStorage) ensureDir() error {
	if s.dir == "" {
		return ErrNoArtifactDir
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}
	return nil
}

func (s *fileArtifactStorage) create(name string, content []byte, mode int) (models.StoredFile, error) {
	path := filepath.Join(s.dir, filepath.Base(name))

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|mode, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return models.StoredFile{}, err
		}
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}

	n, err := f.Write(content)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrWritingArtifact, err)
	}

	return models.StoredFile{
		Name:    filepath.Base(path),
		Path:    path,
		Size:    int64(n),
		ModTime: time.Now(),
	}, nil
}
