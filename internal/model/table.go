package model

import (
	"regexp"
	"strings"
)

var headerMarkup = regexp.MustCompile(`(?i)'{2,}|<br\s*/?>|&nbsp;`)

// ParsedTable is a wiki table split into a header row and data rows.
// Columns are positional: row[i] belongs to Headers[i]. A row may be shorter
// than the header when cells were merged, so every lookup is bounds-checked.
type ParsedTable struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Cell returns the cell at (row, col). The second result is false when the
// row or column does not exist.
func (t ParsedTable) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t.Rows) {
		return "", false
	}
	return CellAt(t.Rows[row], col)
}

// CellAt returns the cell at col in row, or false when the row is too short.
func CellAt(row []string, col int) (string, bool) {
	if col < 0 || col >= len(row) {
		return "", false
	}
	return row[col], true
}

// Column returns the index of the first header equal (case-insensitively)
// to one of the labels, or -1. Emphasis, line breaks and non-breaking spaces
// in a header are ignored.
func (t ParsedTable) Column(labels ...string) int {
	for i, h := range t.Headers {
		h = headerLabel(h)
		for _, l := range labels {
			if strings.EqualFold(h, l) {
				return i
			}
		}
	}
	return -1
}

func headerLabel(h string) string {
	return strings.Join(strings.Fields(headerMarkup.ReplaceAllString(h, " ")), " ")
}
