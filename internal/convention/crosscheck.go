package convention

import (
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/wikitext"
)

// crossCheck scans every individual convention page for its location and
// compares it with the instances that link to the page. An empty recorded
// location is backfilled; a different one is reported.
func (e *Extractor) crossCheck(pages []*model.Page, items []model.ConventionInstance, redirects map[string]string) []model.Discrepancy {
	byTarget := make(map[string][]int)
	for i, c := range items {
		target := c.LinkTarget()
		if u, ok := redirects[target]; ok {
			target = u
		}
		byTarget[target] = append(byTarget[target], i)
	}

	var out []model.Discrepancy
	for _, p := range pages {
		if !p.IsConvention() || p.IsRedirect() {
			continue
		}
		idx := byTarget[p.Name]
		if len(idx) == 0 {
			continue
		}
		scanned, ok := e.scanner.FindLocale(p.Source)
		if !ok {
			continue
		}
		for _, i := range idx {
			recorded := items[i].Location
			if recorded == "" {
				e.logger.Debug("location backfilled", "page", p.Name, "location", scanned)
				items[i].Location = scanned
				continue
			}
			if e.canonical(recorded) == scanned {
				continue
			}
			e.logger.Info("location discrepancy",
				"page", p.Name, "series", items[i].Series, "recorded", recorded, "scanned", scanned)
			out = append(out, model.Discrepancy{
				Convention: p.Name,
				Series:     items[i].Series,
				Recorded:   recorded,
				Scanned:    scanned,
			})
		}
	}
	return out
}

// normalizeLocations reduces every assigned location to one canonical place.
func (e *Extractor) normalizeLocations(items []model.ConventionInstance) {
	for i := range items {
		if items[i].Location != "" {
			items[i].Location = e.canonical(items[i].Location)
		}
	}
}

// canonical rescans a location string. When it holds several candidates the
// first is kept; when it holds none the plain text is expanded through the
// gazetteer.
func (e *Extractor) canonical(loc string) string {
	cands := e.scanner.FindAllLocaleCandidates("in " + loc)
	switch len(cands) {
	case 0:
		plain := strings.TrimSpace(wikitext.LinkText(loc))
		return e.scanner.Gazetteer().Expand(plain)
	case 1:
		return cands[0]
	}
	e.logger.Info("ambiguous location", "location", loc, "candidates", cands)
	return cands[0]
}
