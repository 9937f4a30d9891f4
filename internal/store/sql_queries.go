// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-augmd/models"
)

const designArchiveTable = "design_archive"

var designArchiveColumns = []string{
	"id",
	"versions",
	"num_of_items",
	"screens",
	"max_items_per_screen",
	"screens_with_max_items",
	"file_name",
	"size",
	"created_at",
}

func buildInsertDesignQuery(b sq.StatementBuilderType, rec models.DesignRecord) (string, []any, error) {
	query, args, err := b.
		Insert(designArchiveTable).
		Columns(designArchiveColumns...).
		Values(
			rec.ID.String(),
			rec.Versions,
			rec.NumOfItems,
			rec.Screens,
			rec.MaxItemsPerScreen,
			rec.ScreensWithMaxItems,
			rec.FileName,
			rec.Size,
			rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListDesignsQuery(b sq.StatementBuilderType, limit uint64) (string, []any, error) {
	query, args, err := b.
		Select(designArchiveColumns...).
		From(designArchiveTable).
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteDesignsQuery(b sq.StatementBuilderType, cutoff time.Time) (string, []any, error) {
	query, args, err := b.
		Delete(designArchiveTable).
		Where(sq.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
