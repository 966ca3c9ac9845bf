package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable renders header and rows as left-aligned columns separated by
// two spaces. Widths are measured in terminal cells so station names with
// wide runes stay aligned. A nil header renders rows only. Every line,
// including the last, ends in a newline; trailing padding is trimmed.
func FormatTable(header []string, rows [][]string) string {
	ncols := len(header)
	for _, r := range rows {
		if len(r) > ncols {
			ncols = len(r)
		}
	}
	if ncols == 0 {
		return ""
	}

	widths := make([]int, ncols)
	measure := func(r []string) {
		for i, cell := range r {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(header)
	for _, r := range rows {
		measure(r)
	}

	var sb strings.Builder
	writeRow := func(r []string) {
		var line strings.Builder
		for i := 0; i < ncols; i++ {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(runewidth.FillRight(cell, widths[i]))
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	if header != nil {
		writeRow(header)
	}
	for _, r := range rows {
		writeRow(r)
	}
	return sb.String()
}
