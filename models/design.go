// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// DesignLayout is how many items each screen of every version holds.
// Screens narrower than Width are padded with blanks.
type DesignLayout struct {
	ItemsPerScreen []int
	Width          int
}

// Blanks returns the number of filler cells a single version carries.
func (l DesignLayout) Blanks() int {
	blanks := 0
	for _, n := range l.ItemsPerScreen {
		blanks += l.Width - n
	}
	return blanks
}

// DesignRow is one screen of one version in a full design.
type DesignRow struct {
	Version int
	Set     int
	Items   []PreviewItem
}

// Design is the complete generated design for every version.
type Design struct {
	Config Configuration
	Layout DesignLayout
	Rows   []DesignRow
}

// DesignRecord is an archived artifact generation.
type DesignRecord struct {
	ID                  uuid.UUID `json:"id"`
	Versions            int       `json:"versions"`
	NumOfItems          int       `json:"numOfItems"`
	Screens             int       `json:"screens"`
	MaxItemsPerScreen   int       `json:"maxItemsPerScreen"`
	ScreensWithMaxItems int       `json:"screensWithMaxItems"`
	FileName            string    `json:"file_name"`
	Size                int64     `json:"size"`
	CreatedAt           time.Time `json:"created_at"`
}

// NewDesignRecord fills the parameter columns of a record from cfg.
func NewDesignRecord(id uuid.UUID, cfg Configuration, fileName string, size int64) DesignRecord {
	return DesignRecord{
		ID:                  id,
		Versions:            cfg.Versions(),
		NumOfItems:          cfg.NumOfItems(),
		Screens:             cfg.Screens(),
		MaxItemsPerScreen:   cfg.MaxItemsPerScreen(),
		ScreensWithMaxItems: cfg.ScreensWithMaxItems(),
		FileName:            fileName,
		Size:                size,
	}
}

// GeneratedDesign is a full design rendered as CSV and stored by the server.
type GeneratedDesign struct {
	ID       uuid.UUID
	FileName string
	Content  []byte
	Design   Design
}
