package wikitext

import (
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

// tableRow accumulates the cells of one row while a table is being read.
type tableRow struct {
	cells []string
}

// tableBuilder collects rows between {| and |}.
type tableBuilder struct {
	rows []tableRow
	cur  *tableRow
}

func (b *tableBuilder) endRow() {
	if b.cur != nil && len(b.cur.cells) > 0 {
		b.rows = append(b.rows, *b.cur)
	}
	b.cur = nil
}

func (b *tableBuilder) addCells(cells []string) {
	if b.cur == nil {
		b.cur = &tableRow{}
	}
	for _, c := range cells {
		b.cur.cells = append(b.cur.cells, cleanCell(c))
	}
}

// continueCell appends a continuation line to the last cell of the row.
func (b *tableBuilder) continueCell(line string) {
	if b.cur == nil || len(b.cur.cells) == 0 {
		return
	}
	last := len(b.cur.cells) - 1
	b.cur.cells[last] = strings.TrimSpace(b.cur.cells[last] + "\n" + line)
}

func (b *tableBuilder) build() (model.ParsedTable, bool) {
	b.endRow()
	if len(b.rows) == 0 {
		return model.ParsedTable{}, false
	}
	t := model.ParsedTable{
		Headers: b.rows[0].cells,
		Rows:    make([][]string, 0, len(b.rows)-1),
	}
	for _, r := range b.rows[1:] {
		t.Rows = append(t.Rows, r.cells)
	}
	return t, true
}

// ParseTables returns every first-level {| ... |} table in markup. The first
// row of a table is its header. Nested tables are skipped whole, and an
// unterminated table is closed at the end of the text.
func ParseTables(markup string) []model.ParsedTable {
	var tables []model.ParsedTable
	var b *tableBuilder
	depth := 0

	for _, raw := range strings.Split(markup, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case strings.HasPrefix(line, "{|"):
			depth++
			if depth == 1 {
				b = &tableBuilder{}
			}
			continue
		case depth == 0:
			continue
		case strings.HasPrefix(line, "|}"):
			depth--
			if depth == 0 {
				if t, ok := b.build(); ok {
					tables = append(tables, t)
				}
				b = nil
			}
			continue
		case depth > 1:
			continue
		}

		switch {
		case strings.HasPrefix(line, "|+"):
			// caption
		case strings.HasPrefix(line, "|-"):
			b.endRow()
		case strings.HasPrefix(line, "!"):
			b.addCells(splitCells(line[1:], "!!", "||"))
		case strings.HasPrefix(line, "|"):
			b.addCells(splitCells(line[1:], "||"))
		case line != "":
			b.continueCell(line)
		}
	}

	if b != nil {
		if t, ok := b.build(); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// splitCells splits a row line at any of the separators, ignoring separators
// inside [[...]] links and {{...}} templates.
func splitCells(line string, seps ...string) []string {
	var cells []string
	depth := 0
	start := 0
	for i := 0; i < len(line); i++ {
		switch {
		case strings.HasPrefix(line[i:], "[[") || strings.HasPrefix(line[i:], "{{"):
			depth++
			i++
			continue
		case (strings.HasPrefix(line[i:], "]]") || strings.HasPrefix(line[i:], "}}")) && depth > 0:
			depth--
			i++
			continue
		}
		if depth > 0 {
			continue
		}
		for _, sep := range seps {
			if strings.HasPrefix(line[i:], sep) {
				cells = append(cells, line[start:i])
				start = i + len(sep)
				i += len(sep) - 1
				break
			}
		}
	}
	return append(cells, line[start:])
}

// cleanCell drops a leading attribute block ("style=... | content") and
// trims the result.
func cleanCell(cell string) string {
	parts := splitCells(cell, "|")
	if len(parts) > 1 && strings.Contains(parts[0], "=") && !strings.Contains(parts[0], "[[") {
		cell = strings.Join(parts[1:], "|")
	}
	return strings.TrimSpace(cell)
}
