// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store contains the persistence layer: the file storage used for
// generated and downloaded designs, and the SQL-backed design archive.
//
// The archive runs on PostgreSQL (pgx) or SQLite (mattn/go-sqlite3),
// selected from the DSN. Queries are built with squirrel using the
// placeholder format of the active dialect.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-augmd/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ArtifactStorage persists design files in a directory.
type ArtifactStorage interface {
	// Dir returns the directory the storage writes to.
	Dir() string
	// SaveUnique writes content under name, or under the first free
	// "name (n).ext" variant when name is taken.
	SaveUnique(ctx context.Context, name string, content []byte) (models.StoredFile, error)
	// Save writes content under name, replacing any existing file.
	Save(ctx context.Context, name string, content []byte) (models.StoredFile, error)
	// Read returns the content stored under name.
	Read(ctx context.Context, name string) ([]byte, error)
	// List returns every stored file, oldest first.
	List(ctx context.Context) ([]models.StoredFile, error)
	// RemoveOlderThan deletes files last modified before cutoff and reports
	// how many were removed.
	RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// DesignArchiveRepository records every generated design.
type DesignArchiveRepository interface {
	// Save inserts rec and returns it with CreatedAt filled in.
	Save(ctx context.Context, rec models.DesignRecord) (models.DesignRecord, error)
	// List returns at most limit records, newest first.
	List(ctx context.Context, limit uint64) ([]models.DesignRecord, error)
	// DeleteOlderThan removes records created before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
