package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/fancyindex/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// It is built with the nao1215/markdown library, so tables and alerts
// are rendered as GitHub-flavored Markdown.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the named report in Markdown format.
func (w *MarkdownWriter) Write(name Name, index *model.Index) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(string(name))
	md.PlainTextf("Run `%s`, generated %s.", index.RunID, index.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	md.PlainText("")

	switch name {
	case ReferringPages:
		w.writePeople(md, index)
	case Redirects:
		w.writeRedirects(md, index)
	case MissingRedirects:
		w.writeMissing(md, index)
	case Timeline:
		w.writeTimeline(md, index)
	case PeopleNames:
		w.writeNames(md, index)
	case Discrepancies:
		w.writeDiscrepancies(md, index)
	case Oddities:
		w.writeOddities(md, index)
	default:
		return 0, fmt.Errorf("unknown report %q", name)
	}

	w.writeFooter(md)
	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writePeople(md *markdown.Markdown, index *model.Index) {
	if len(index.People) == 0 {
		md.PlainText("No person pages found.")
		return
	}
	rows := make([][]string, 0, len(index.People))
	for _, p := range index.People {
		rows = append(rows, []string{p.Name, strconv.Itoa(len(p.Referrers)), strings.Join(p.Referrers, ", ")})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Person", "References", "Referring pages"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeRedirects(md *markdown.Markdown, index *model.Index) {
	if len(index.InverseRedirects) == 0 {
		md.PlainText("No redirects found.")
		return
	}
	for _, g := range index.InverseRedirects {
		md.H2(g.Target)
		md.BulletList(g.Sources...)
		md.PlainText("")
	}
	if len(index.Cycles) > 0 {
		md.Warningf("%d redirect page(s) are part of a cycle: %s", len(index.Cycles), strings.Join(index.Cycles, ", "))
		md.PlainText("")
	}
}

func (w *MarkdownWriter) writeMissing(md *markdown.Markdown, index *model.Index) {
	if len(index.MissingTargets) == 0 {
		md.Tip("Every redirect points at an existing page.")
		return
	}
	rows := make([][]string, 0, len(index.MissingTargets))
	for _, e := range index.MissingTargets {
		rows = append(rows, []string{e.From, e.To})
	}
	md.Table(markdown.TableSet{Header: []string{"Redirect", "Missing target"}, Rows: rows})
	md.PlainText("")
}

func (w *MarkdownWriter) writeTimeline(md *markdown.Markdown, index *model.Index) {
	if len(index.Conventions) == 0 {
		md.PlainText("No conventions found.")
		return
	}
	w.writeStatusChart(md, index)

	years, groups := index.ConventionsByYear()
	for _, y := range years {
		if y == 0 {
			md.H2("Undated")
		} else {
			md.H2(strconv.Itoa(y))
		}
		rows := make([][]string, 0, len(groups[y]))
		for _, c := range groups[y] {
			rows = append(rows, []string{markdownDate(c), markdownName(c), c.Location, c.Series})
		}
		md.Table(markdown.TableSet{Header: []string{"Dates", "Convention", "Location", "Series"}, Rows: rows})
		md.PlainText("")
	}
}

// writeStatusChart writes a mermaid pie chart of held, virtual and
// cancelled instances.
func (w *MarkdownWriter) writeStatusChart(md *markdown.Markdown, index *model.Index) {
	var held, virtual, cancelled uint64
	for _, c := range index.Conventions {
		switch {
		case c.IsCancelled():
			cancelled++
		case c.Virtual:
			virtual++
		default:
			held++
		}
	}
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Convention status"),
		piechart.WithShowData(true),
	)
	if held > 0 {
		chart.LabelAndIntValue("Held", held)
	}
	if virtual > 0 {
		chart.LabelAndIntValue("Virtual", virtual)
	}
	if cancelled > 0 {
		chart.LabelAndIntValue("Cancelled", cancelled)
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeNames(md *markdown.Markdown, index *model.Index) {
	if len(index.PeopleNames) == 0 {
		md.PlainText("No names found.")
		return
	}
	md.BulletList(index.PeopleNames...)
	md.PlainText("")
}

func (w *MarkdownWriter) writeDiscrepancies(md *markdown.Markdown, index *model.Index) {
	if len(index.Discrepancies) == 0 {
		md.Tip("Series tables and convention pages agree on every location.")
		return
	}
	md.Importantf("%d location(s) differ between a series table and the convention's page.", len(index.Discrepancies))
	md.PlainText("")
	rows := make([][]string, 0, len(index.Discrepancies))
	for _, d := range index.Discrepancies {
		rows = append(rows, []string{d.Convention, d.Series, d.Recorded, d.Scanned})
	}
	md.Table(markdown.TableSet{Header: []string{"Convention", "Series", "Table", "Page"}, Rows: rows})
	md.PlainText("")
}

func (w *MarkdownWriter) writeOddities(md *markdown.Markdown, index *model.Index) {
	if len(index.Oddities) == 0 {
		md.Tip("Every date cell was understood.")
		return
	}
	rows := make([][]string, 0, len(index.Oddities))
	for _, o := range index.Oddities {
		rows = append(rows, []string{o.Series, o.Name, "`" + o.Text + "`", o.Reason})
	}
	md.Table(markdown.TableSet{Header: []string{"Series", "Convention", "Text", "Problem"}, Rows: rows})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [fancyindex](https://github.com/nao1215/fancyindex)*")
}

func markdownDate(c model.ConventionInstance) string {
	d := c.Dates.String()
	if c.Dates.Cancelled {
		return "~~" + d + "~~"
	}
	return d
}

func markdownName(c model.ConventionInstance) string {
	s := c.PlainName()
	if c.ShowCancelled() {
		s = "~~" + s + "~~"
	}
	if c.Virtual {
		s += " (virtual)"
	}
	return s
}
