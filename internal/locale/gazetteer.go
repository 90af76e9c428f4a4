package locale

import (
	"regexp"
	"slices"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

var cityStatePattern = regexp.MustCompile(`^(.+?),\s*([A-Z]{2})$`)

// Gazetteer maps short city names to the full "City, ST" names registered
// as Locale pages. It is built once and never modified.
type Gazetteer struct {
	full       map[string][]string
	multiWord  map[string]struct{}
	exceptions map[string]struct{}
}

// NewGazetteer builds the snapshot from every page tagged Locale whose name
// has the "City, ST" shape, plus the multi-word cities in tables.
func NewGazetteer(pages []*model.Page, tables Tables) *Gazetteer {
	g := &Gazetteer{
		full:       make(map[string][]string),
		multiWord:  toSet(tables.MultiWordCities),
		exceptions: toSet(tables.ShortNameExceptions),
	}
	for _, p := range pages {
		if !p.HasTag(model.TagLocale) {
			continue
		}
		m := cityStatePattern.FindStringSubmatch(p.Name)
		if m == nil {
			continue
		}
		city := m[1]
		if !slices.Contains(g.full[city], p.Name) {
			g.full[city] = append(g.full[city], p.Name)
		}
		if strings.Contains(city, " ") {
			g.multiWord[city] = struct{}{}
		}
	}
	return g
}

// Len returns the number of distinct short names.
func (g *Gazetteer) Len() int {
	return len(g.full)
}

// Expand returns the registered full form of a bare city name. Names that
// already carry a region, exception names and names registered under more
// than one region are returned unchanged.
func (g *Gazetteer) Expand(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ",") {
		return name
	}
	if _, ok := g.exceptions[name]; ok {
		return name
	}
	if forms := g.full[name]; len(forms) == 1 {
		return forms[0]
	}
	return name
}

// IsMultiWordCity reports whether name is a registered multi-word city.
func (g *Gazetteer) IsMultiWordCity(name string) bool {
	_, ok := g.multiWord[name]
	return ok
}
