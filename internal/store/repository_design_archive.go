// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-augmd/internal/logger"
	"github.com/MKhiriev/go-augmd/models"
	"github.com/google/uuid"
)

// defaultListLimit caps List when the caller passes zero.
const defaultListLimit = 50

// designArchiveRepository is the SQL-backed implementation of
// [DesignArchiveRepository]. It works against the "design_archive" table on
// either supported dialect.
type designArchiveRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewDesignArchiveRepository constructs a [DesignArchiveRepository] backed
// by db.
func NewDesignArchiveRepository(db *DB, logger *logger.Logger) DesignArchiveRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating design archive repository")
	return &designArchiveRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

// Save inserts rec. A zero CreatedAt is replaced by the current UTC time.
//
// Error handling:
//   - duplicate id on either backend → [ErrDesignAlreadyArchived].
//   - zero affected rows → [ErrDesignNotArchived].
func (r *designArchiveRepository) Save(ctx context.Context, rec models.DesignRecord) (models.DesignRecord, error) {
	log := logger.FromContext(ctx)

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now().UTC()
	}

	query, args, err := buildInsertDesignQuery(r.db.builder(), rec)
	if err != nil {
		log.Err(err).Str("func", "*designArchiveRepository.Save").Msg("failed to create query")
		return models.DesignRecord{}, err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "*designArchiveRepository.Save").
			Str("design_id", rec.ID.String()).
			Msg("failed to insert design record")
		if isUniqueViolation(err) {
			return models.DesignRecord{}, ErrDesignAlreadyArchived
		}
		return models.DesignRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.DesignRecord{}, ErrDesignNotArchived
	}

	return rec, nil
}

// List returns the newest records first. A zero limit means
// defaultListLimit.
func (r *designArchiveRepository) List(ctx context.Context, limit uint64) ([]models.DesignRecord, error) {
	log := logger.FromContext(ctx)

	if limit == 0 {
		limit = defaultListLimit
	}

	query, args, err := buildListDesignsQuery(r.db.builder(), limit)
	if err != nil {
		log.Err(err).Str("func", "*designArchiveRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*designArchiveRepository.List").Msg("failed to execute query for listing designs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.DesignRecord, 0, min(limit, defaultListLimit))
	for rows.Next() {
		var (
			rec models.DesignRecord
			id  string
		)
		scanErr := rows.Scan(
			&id,
			&rec.Versions,
			&rec.NumOfItems,
			&rec.Screens,
			&rec.MaxItemsPerScreen,
			&rec.ScreensWithMaxItems,
			&rec.FileName,
			&rec.Size,
			&rec.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*designArchiveRepository.List").Msg("failed to scan design record row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		if rec.ID, scanErr = uuid.Parse(id); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, rec)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*designArchiveRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// DeleteOlderThan removes records created before cutoff.
func (r *designArchiveRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteDesignsQuery(r.db.builder(), cutoff.UTC())
	if err != nil {
		return 0, err
	}

	var affected int64
	err = r.db.withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, query, args...)
		if execErr != nil {
			return execErr
		}
		affected, execErr = res.RowsAffected()
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*designArchiveRepository.DeleteOlderThan").Msg("failed to delete old design records")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
