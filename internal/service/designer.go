// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-augmd/models"
)

// shuffleFunc permutes n elements through swap, like rand.Shuffle.
type shuffleFunc func(n int, swap func(i, j int))

// designLayout computes how many items each screen holds. The first
// screensWithMaxItems screens are full; the rest share what is left,
// ceil(left/remaining screens) each, with the last ones taking whatever
// remains. cfg must already be valid.
func designLayout(cfg models.Configuration) models.DesignLayout {
	items := cfg.NumOfItems()
	screens := cfg.Screens()
	maxItems := cfg.MaxItemsPerScreen()
	withMax := cfg.ScreensWithMaxItems()

	perRemaining := maxItems
	if screensRemaining := screens - withMax; screensRemaining > 0 {
		itemsRemaining := items - maxItems*withMax
		perRemaining = (itemsRemaining + screensRemaining - 1) / screensRemaining
	}

	perScreen := make([]int, 0, screens)
	seen := 0
	for i := 0; i < screens; i++ {
		n := perRemaining
		switch left := items - seen; {
		case i < withMax:
			n = maxItems
		case maxItems > left:
			n = left
		}
		perScreen = append(perScreen, n)
		seen += n
	}

	return models.DesignLayout{ItemsPerScreen: perScreen, Width: maxItems}
}

// shuffledVersion returns the items 1..n in an order picked by shuffle and
// split into screens according to layout.
func shuffledVersion(n int, layout models.DesignLayout, shuffle shuffleFunc) [][]models.PreviewItem {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	rows := make([][]models.PreviewItem, 0, len(layout.ItemsPerScreen))
	start := 0
	for _, count := range layout.ItemsPerScreen {
		row := make([]models.PreviewItem, layout.Width)
		for k := 0; k < count && start+k < n; k++ {
			row[k] = models.ItemID(items[start+k])
		}
		rows = append(rows, row)
		start += count
	}
	return rows
}

// buildDesign lays out cfg.Versions() independent shuffles.
func buildDesign(cfg models.Configuration, shuffle shuffleFunc) models.Design {
	layout := designLayout(cfg)
	design := models.Design{
		Config: cfg,
		Layout: layout,
		Rows:   make([]models.DesignRow, 0, cfg.Versions()*cfg.Screens()),
	}

	for v := 1; v <= cfg.Versions(); v++ {
		for s, items := range shuffledVersion(cfg.NumOfItems(), layout, shuffle) {
			design.Rows = append(design.Rows, models.DesignRow{Version: v, Set: s + 1, Items: items})
		}
	}
	return design
}

// designReport is the outcome of checking a built design.
type designReport struct {
	BlanksPerVersion int
	Duplicates       []int
}

// checkDesign verifies that every version shows each item exactly once and
// carries the same number of blanks. Duplicate versions are allowed but
// reported.
func checkDesign(d models.Design) (designReport, error) {
	var report designReport

	blanks := make(map[int]int)
	counts := make(map[int]map[models.PreviewItem]int)
	sequences := make(map[int]*strings.Builder)
	var order []int

	for _, row := range d.Rows {
		if _, ok := counts[row.Version]; !ok {
			counts[row.Version] = make(map[models.PreviewItem]int, d.Config.NumOfItems())
			sequences[row.Version] = &strings.Builder{}
			order = append(order, row.Version)
		}
		for _, item := range row.Items {
			if item.IsBlank() {
				blanks[row.Version]++
			} else {
				counts[row.Version][item]++
			}
			sequences[row.Version].WriteString(string(item))
			sequences[row.Version].WriteByte(',')
		}
		sequences[row.Version].WriteByte('|')
	}

	seen := make(map[string]struct{}, len(order))
	for i, v := range order {
		if i == 0 {
			report.BlanksPerVersion = blanks[v]
		} else if blanks[v] != report.BlanksPerVersion {
			return report, fmt.Errorf("%w: version %d has %d blanks, want %d",
				ErrDesignGeneration, v, blanks[v], report.BlanksPerVersion)
		}

		if len(counts[v]) != d.Config.NumOfItems() {
			return report, fmt.Errorf("%w: version %d shows %d distinct items, want %d",
				ErrDesignGeneration, v, len(counts[v]), d.Config.NumOfItems())
		}
		for item, c := range counts[v] {
			if c != 1 {
				return report, fmt.Errorf("%w: item %s appears %d times in version %d",
					ErrDesignGeneration, item, c, v)
			}
		}

		key := sequences[v].String()
		if _, dup := seen[key]; dup {
			report.Duplicates = append(report.Duplicates, v)
			continue
		}
		seen[key] = struct{}{}
	}

	return report, nil
}

// encodeDesignCSV renders d with a Version,Set,Item1..ItemN header. Blank
// slots become empty cells.
func encodeDesignCSV(d models.Design) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, d.Layout.Width+2)
	header = append(header, "Version", "Set")
	for i := 1; i <= d.Layout.Width; i++ {
		header = append(header, "Item"+strconv.Itoa(i))
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("error writing design header: %w", err)
	}

	record := make([]string, len(header))
	for _, row := range d.Rows {
		record[0] = strconv.Itoa(row.Version)
		record[1] = strconv.Itoa(row.Set)
		for i := range d.Layout.Width {
			record[i+2] = ""
			if i < len(row.Items) {
				record[i+2] = string(row.Items[i])
			}
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("error writing design row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("error flushing design: %w", err)
	}
	return buf.Bytes(), nil
}
