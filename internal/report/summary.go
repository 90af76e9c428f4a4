package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/nao1215/fancyindex/internal/model"
)

// Summary is the short account printed at the end of a run.
type Summary struct {
	RunID         string
	Pages         int
	Skipped       int
	Redirects     int
	Cycles        int
	Missing       int
	People        int
	Names         int
	Conventions   int
	Discrepancies int
	Oddities      int
	Warnings      int
	Errors        int
	Elapsed       time.Duration
	Paths         []string
}

// NewSummary collects the counts of index. warnings and errors are the
// diagnostic counts of the run's logger.
func NewSummary(index *model.Index, warnings, errors int) Summary {
	return Summary{
		RunID:         index.RunID,
		Pages:         index.PageCount(),
		Skipped:       index.Skipped,
		Redirects:     len(index.Redirects),
		Cycles:        len(index.Cycles),
		Missing:       len(index.MissingTargets),
		People:        len(index.People),
		Names:         len(index.PeopleNames),
		Conventions:   len(index.Conventions),
		Discrepancies: len(index.Discrepancies),
		Oddities:      len(index.Oddities),
		Warnings:      warnings,
		Errors:        errors,
	}
}

// WriteSummary writes s as aligned text.
func WriteSummary(w io.Writer, s Summary) error {
	var sb strings.Builder
	line := func(label string, n int) {
		fmt.Fprintf(&sb, "  %-15s %s\n", label+":", humanize.Comma(int64(n)))
	}

	sb.WriteString(strings.Repeat("=", 50) + "\n")
	fmt.Fprintf(&sb, "fancyindex run %s\n", s.RunID)
	sb.WriteString(strings.Repeat("=", 50) + "\n")
	line("Pages", s.Pages)
	line("Skipped", s.Skipped)
	line("Redirects", s.Redirects)
	line("Cycles", s.Cycles)
	line("Missing targets", s.Missing)
	line("People", s.People)
	line("People names", s.Names)
	line("Conventions", s.Conventions)
	line("Discrepancies", s.Discrepancies)
	line("Date oddities", s.Oddities)
	line("Warnings", s.Warnings)
	line("Errors", s.Errors)
	if s.Elapsed > 0 {
		fmt.Fprintf(&sb, "  %-15s %s\n", "Elapsed:", s.Elapsed.Round(time.Millisecond))
	}
	if len(s.Paths) > 0 {
		sb.WriteString("\nReports:\n")
		for _, p := range s.Paths {
			sb.WriteString("  " + p + "\n")
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
