package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

// TextWriter outputs reports as plain text and wiki markup. The convention
// timeline is a wiki table per year, ready to paste into a page; the other
// reports are "**heading" lists.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the named report.
func (w *TextWriter) Write(name Name, index *model.Index) (int, error) {
	var sb strings.Builder
	switch name {
	case ReferringPages:
		for _, p := range index.People {
			sb.WriteString("**" + p.Name + "\n")
			for _, r := range p.Referrers {
				sb.WriteString("  " + r + "\n")
			}
		}
	case Redirects:
		for _, g := range index.InverseRedirects {
			sb.WriteString("**" + g.Target + "\n")
			for _, s := range g.Sources {
				sb.WriteString("      \u2b66 " + s + "\n")
			}
		}
	case MissingRedirects:
		for _, e := range index.MissingTargets {
			sb.WriteString(e.From + " --> " + e.To + "\n")
		}
	case Timeline:
		w.writeTimeline(&sb, index)
	case PeopleNames:
		for _, n := range index.PeopleNames {
			sb.WriteString(n + "\n")
		}
	case Discrepancies:
		for _, d := range index.Discrepancies {
			fmt.Fprintf(&sb, "%s (%s): table says %q, page says %q\n", d.Convention, d.Series, d.Recorded, d.Scanned)
		}
	case Oddities:
		for _, o := range index.Oddities {
			fmt.Fprintf(&sb, "%s: %s %q: %s\n", o.Series, o.Name, o.Text, o.Reason)
		}
	default:
		return 0, fmt.Errorf("unknown report %q", name)
	}
	return w.output.Write([]byte(sb.String()))
}

// writeTimeline writes one wiki table per year.
func (w *TextWriter) writeTimeline(sb *strings.Builder, index *model.Index) {
	years, groups := index.ConventionsByYear()
	for _, y := range years {
		if y == 0 {
			sb.WriteString("==Undated==\n")
		} else {
			fmt.Fprintf(sb, "==%d==\n", y)
		}
		sb.WriteString("{| class=\"wikitable\"\n! Dates !! Convention\n")
		for _, c := range groups[y] {
			sb.WriteString("|-\n")
			sb.WriteString("| " + TimelineDate(c) + " || " + TimelineName(c) + "\n")
		}
		sb.WriteString("|}\n\n")
	}
}

// TimelineDate renders the instance's dates, struck through when the dates
// themselves were cancelled.
func TimelineDate(c model.ConventionInstance) string {
	d := c.Dates.String()
	if c.Dates.Cancelled {
		return "<s>" + d + "</s>"
	}
	return d
}

// TimelineName renders the instance's name in wiki markup: struck through
// when cancelled, then "(virtual)" and the location in parentheses.
func TimelineName(c model.ConventionInstance) string {
	s := c.WikiName()
	if c.ShowCancelled() {
		s = "<s>" + s + "</s>"
	}
	if c.Virtual {
		s += " (virtual)"
	}
	if c.Location != "" {
		s += " (" + c.Location + ")"
	}
	return s
}
