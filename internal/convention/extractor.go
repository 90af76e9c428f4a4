package convention

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/fancyindex/internal/daterange"
	"github.com/nao1215/fancyindex/internal/locale"
	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/wikitext"
)

// DefaultMaxDays is the longest range accepted without a warning.
const DefaultMaxDays = 6

// Header synonyms used to find the semantic columns of a series table.
var (
	nameHeaders     = []string{"Convention", "Convention Name", "Name"}
	dateHeaders     = []string{"Date", "Dates"}
	locationHeaders = []string{"Location"}
)

// Result holds everything the extractor derives.
type Result struct {
	Conventions   []model.ConventionInstance
	Discrepancies []model.Discrepancy
	Oddities      []model.DateOddity
}

// Extractor builds the convention timeline. It keeps no state between
// calls to Extract.
type Extractor struct {
	scanner *locale.Scanner
	logger  *slog.Logger
	maxDays int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger for row and table diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithMaxDays sets the range length above which a date is reported as
// suspiciously long.
func WithMaxDays(days int) Option {
	return func(e *Extractor) {
		if days > 0 {
			e.maxDays = days
		}
	}
}

// New creates an Extractor that resolves locations with scanner.
func New(scanner *locale.Scanner, opts ...Option) *Extractor {
	e := &Extractor{scanner: scanner, maxDays: DefaultMaxDays}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.scanner == nil {
		e.scanner = locale.NewScanner(nil, locale.WithLogger(e.logger))
	}
	return e
}

// Extract walks every Conseries page, cross-checks the result against the
// individual convention pages and returns the timeline sorted by date.
// redirects maps redirect page names to their ultimate targets.
func (e *Extractor) Extract(pages []*model.Page, redirects map[string]string) Result {
	var res Result
	set := NewSet()
	for _, p := range pages {
		if p.IsConseries() && !p.IsRedirect() {
			e.extractSeries(p, set, &res)
		}
	}

	items := set.Items()
	res.Discrepancies = e.crossCheck(pages, items, redirects)
	e.normalizeLocations(items)

	slices.SortStableFunc(items, func(a, b model.ConventionInstance) int {
		if c := daterange.Compare(a.Dates, b.Dates); c != 0 {
			return c
		}
		return cmp.Or(strings.Compare(a.Display, b.Display), strings.Compare(a.Series, b.Series))
	})
	res.Conventions = items

	e.logger.Debug("conventions extracted",
		"conventions", len(res.Conventions),
		"discrepancies", len(res.Discrepancies),
		"oddities", len(res.Oddities))
	return res
}

// extractSeries reads every table of one series page.
func (e *Extractor) extractSeries(page *model.Page, set *Set, res *Result) {
	for ti, table := range page.Tables {
		nameCol := table.Column(nameHeaders...)
		dateCol := table.Column(dateHeaders...)
		if nameCol < 0 || dateCol < 0 {
			e.logger.Error("series table lacks a name or date column",
				"series", page.Name, "table", ti, "headers", table.Headers)
			continue
		}
		locCol := table.Column(locationHeaders...)

		for ri, row := range table.Rows {
			log := e.logger.With("series", page.Name, "table", ti, "row", ri)
			for _, inst := range e.extractRow(log, page.Name, table, row, nameCol, dateCol, locCol, res) {
				set.Add(inst)
			}
		}
	}
}

// extractRow turns one table row into instances. It returns nil for rows
// that are skipped.
func (e *Extractor) extractRow(log *slog.Logger, series string, table model.ParsedTable, row []string,
	nameCol, dateCol, locCol int, res *Result) []model.ConventionInstance {
	if len(row) < len(table.Headers)-1 {
		log.Debug("row too short", "cells", len(row), "headers", len(table.Headers))
		return nil
	}

	cells := make([]string, len(row))
	virtual := false
	for i, c := range row {
		var v bool
		cells[i], v = scanVirtual(c)
		virtual = virtual || v
	}

	nameText, _ := model.CellAt(cells, nameCol)
	dateText, _ := model.CellAt(cells, dateCol)
	if strings.TrimSpace(nameText) == "" || strings.TrimSpace(dateText) == "" {
		log.Debug("row has no name or date")
		return nil
	}
	location := ""
	if locText, ok := model.CellAt(cells, locCol); ok {
		location = cleanLocation(locText)
	}

	names := splitNameCell(nameText)
	plainName := strings.TrimSpace(wikitext.LinkText(strikeTag.ReplaceAllString(nameText, "")))

	var dates []datedFragment
	for _, f := range splitDateCell(dateText) {
		r, err := daterange.Parse(f.text)
		if err != nil {
			reason := "unparseable date"
			if errors.Is(err, daterange.ErrEmpty) {
				reason = "empty date"
			}
			log.Error("date fragment discarded", "cell", f.text, "error", err)
			res.Oddities = append(res.Oddities, model.DateOddity{
				Series: series, Name: plainName, Text: f.text, Reason: reason,
			})
			continue
		}
		if r.Precision == daterange.PrecisionDay && r.Days() > e.maxDays {
			log.Warn("suspiciously long date range", "cell", f.text, "days", r.Days())
			res.Oddities = append(res.Oddities, model.DateOddity{
				Series: series, Name: plainName, Text: f.text,
				Reason: fmt.Sprintf("suspiciously long (%d days)", r.Days()),
			})
		}
		dates = append(dates, datedFragment{dates: r, struck: f.struck})
	}

	out, err := pair(names, dates, virtual)
	if err != nil {
		log.Error("row skipped", "cell", nameText, "error", err)
		res.Oddities = append(res.Oddities, model.DateOddity{
			Series: series, Name: plainName, Text: dateText, Reason: err.Error(),
		})
		return nil
	}
	for i := range out {
		out[i].Series = series
		out[i].Location = location
	}
	return out
}
