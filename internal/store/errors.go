// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDesignAlreadyArchived is returned when a record with the same id is
	// already present in the design archive.
	ErrDesignAlreadyArchived = errors.New("design is already archived")

	// ErrDesignNotArchived is returned when an INSERT completes without error
	// but affects no rows.
	ErrDesignNotArchived = errors.New("design was not archived")

	// ErrArchiveDisabled is returned by the server when no archive DSN is
	// configured.
	ErrArchiveDisabled = errors.New("design archive is disabled")

	// ErrArtifactNotFound is returned when a requested artifact file does
	// not exist.
	ErrArtifactNotFound = errors.New("artifact was not found")

	// ErrNoFreeFileName is returned when every numbered variant of a file
	// name is already taken.
	ErrNoFreeFileName = errors.New("no free file name")

	// ErrNoArtifactDir is returned when a file storage has no directory.
	ErrNoArtifactDir = errors.New("artifact directory is not set")

	ErrWritingArtifact  = errors.New("error writing artifact")
	ErrReadingArtifact  = errors.New("error reading artifact")
	ErrRemovingArtifact = errors.New("error removing artifact")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan design record row")

	// ErrScanningRows is returned when iterating a result set fails midway.
	ErrScanningRows = errors.New("failed to scan design record rows")

	// ErrUnknownDialect is returned when a DSN cannot be mapped to a driver.
	ErrUnknownDialect = errors.New("unknown database dialect")
)
