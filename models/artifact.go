// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArtifactFileName is the name under which a downloaded design is saved.
const ArtifactFileName = "AugMD Design.csv"

// Artifact is the raw payload returned by the artifact endpoint.
type Artifact struct {
	// Content is the body exactly as received.
	Content []byte
	// ContentType is the declared media type, informational only.
	ContentType string
	// Hash is the integrity header value, empty when the server sent none.
	Hash string
}

// ArtifactHandle describes a design that was written to local storage.
type ArtifactHandle struct {
	ID          uuid.UUID
	Path        string
	Size        int64
	ContentType string
	Config      Configuration
	SavedAt     time.Time
}

// StoredFile describes a file kept by an artifact storage.
type StoredFile struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
}
