// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-augmd/internal/config"
	"github.com/MKhiriev/go-augmd/internal/logger"
)

// Storages groups the server-side persistence. Archive is nil when no DSN
// is configured.
type Storages struct {
	Artifacts ArtifactStorage
	Archive   DesignArchiveRepository

	db *DB
}

// NewStorages initialises the server storage layer. It performs the
// following steps:
//  1. Creates the file storage rooted at cfg.Files.ArtifactDir.
//  2. If cfg.DB.DSN is set, opens the archive database (PostgreSQL or
//     SQLite depending on the DSN) and runs pending migrations.
//
// Returns an error if the database connection or migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	storages := &Storages{
		Artifacts: NewFileArtifactStorage(cfg.Files.ArtifactDir),
	}

	if cfg.DB.DSN == "" {
		logger.Info().Msg("no archive DSN configured, design archive disabled")
		return storages, nil
	}

	db, err := NewConnectDB(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("archive connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages.db = db
	storages.Archive = NewDesignArchiveRepository(db, logger)
	return storages, nil
}

// Close releases the archive connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
