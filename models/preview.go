// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// PreviewItem is one cell of a preview matrix. It holds an item identifier
// or the empty string for a blank slot.
type PreviewItem string

// BlankItem is the filler placed in screens narrower than the maximum.
const BlankItem PreviewItem = ""

// ItemID returns the cell for item number n.
func ItemID(n int) PreviewItem {
	return PreviewItem(strconv.Itoa(n))
}

// IsBlank reports whether the cell is a filler slot.
func (p PreviewItem) IsBlank() bool {
	return p == BlankItem
}

// MarshalJSON writes canonical integers as JSON numbers and everything
// else, blanks and forms like "007" or "+5" included, as strings.
func (p PreviewItem) MarshalJSON() ([]byte, error) {
	if n, err := strconv.Atoi(string(p)); err == nil && strconv.Itoa(n) == string(p) {
		return []byte(strconv.Itoa(n)), nil
	}
	return json.Marshal(string(p))
}

// UnmarshalJSON accepts numbers, strings, and null (read as blank).
func (p *PreviewItem) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*p = BlankItem
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = PreviewItem(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("preview item must be a number or string: %w", err)
	}
	*p = PreviewItem(n.String())
	return nil
}

// PreviewResult is the sample version returned by the design service: one
// row per screen, each row an ordered list of items. Clients treat it as an
// opaque matrix and never reshape it.
type PreviewResult [][]PreviewItem

// Shape returns the row count and the width of the widest row.
func (r PreviewResult) Shape() (rows, cols int) {
	for _, row := range r {
		cols = max(cols, len(row))
	}
	return len(r), cols
}

// IsEmpty reports whether the result has no rows.
func (r PreviewResult) IsEmpty() bool {
	return len(r) == 0
}

// TSV renders the result as tab separated lines, one per screen, each
// prefixed with its screen label.
func (r PreviewResult) TSV() string {
	var b strings.Builder
	for i, row := range r {
		b.WriteString("Screen ")
		b.WriteString(strconv.Itoa(i + 1))
		for _, item := range row {
			b.WriteByte('\t')
			b.WriteString(string(item))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
