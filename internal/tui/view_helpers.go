// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-augmd/models"
	"github.com/mattn/go-runewidth"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return appStyle.Render(b.String())
}

// fitText truncates v to max display cells.
func fitText(v string, max int) string {
	if max <= 0 || runewidth.StringWidth(v) <= max {
		return v
	}
	if max <= 3 {
		return runewidth.Truncate(v, max, "")
	}
	return runewidth.Truncate(v, max, "...")
}

// renderPreviewTable lays the matrix out one screen per line. Columns are
// right aligned to the widest cell; blank slots render as a faint dot.
func renderPreviewTable(result models.PreviewResult) string {
	_, cols := result.Shape()

	labels := make([]string, len(result))
	labelWidth := 0
	for i := range result {
		labels[i] = "Screen " + strconv.Itoa(i+1)
		labelWidth = max(labelWidth, runewidth.StringWidth(labels[i]))
	}

	cellWidth := 1
	for _, row := range result {
		for _, item := range row {
			cellWidth = max(cellWidth, runewidth.StringWidth(string(item)))
		}
	}

	var b strings.Builder
	b.WriteString(runewidth.FillRight("", labelWidth))
	for c := range cols {
		b.WriteString("  ")
		b.WriteString(headerStyle.Render(runewidth.FillLeft(strconv.Itoa(c+1), cellWidth)))
	}
	b.WriteString("\n")

	for i, row := range result {
		b.WriteString(runewidth.FillRight(labels[i], labelWidth))
		for c := range cols {
			b.WriteString("  ")
			if c >= len(row) || row[c].IsBlank() {
				b.WriteString(blankStyle.Render(runewidth.FillLeft("·", cellWidth)))
				continue
			}
			b.WriteString(runewidth.FillLeft(string(row[c]), cellWidth))
		}
		if i < len(result)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
