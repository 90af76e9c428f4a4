package model

import "time"

// Index holds everything derived from one run over the site. Report writers
// render it; nothing in it is mutated once the pipeline's report step starts.
type Index struct {
	// RunID identifies the run in JSON output.
	RunID string `json:"run_id"`

	// GeneratedAt is when the run started.
	GeneratedAt time.Time `json:"generated_at"`

	// Pages holds every digested page sorted by name.
	Pages []*Page `json:"-"`

	// Skipped counts pages whose backing files were missing or empty.
	Skipped int `json:"skipped"`

	// Redirects maps each redirect page name to its ultimate target.
	Redirects map[string]string `json:"redirects"`

	// InverseRedirects lists, per target, the pages that redirect to it.
	InverseRedirects []RedirectGroup `json:"inverse_redirects"`

	// MissingTargets lists redirects whose ultimate target does not exist.
	MissingTargets []RedirectEdge `json:"missing_targets"`

	// Cycles lists pages whose redirect chain loops.
	Cycles []string `json:"cycles,omitempty"`

	// People maps each person page to the pages referring to it.
	People []PersonRefs `json:"people"`

	// PeopleNames is the display-name list sorted by last name.
	PeopleNames []string `json:"people_names"`

	// Conventions is the convention timeline in date order.
	Conventions []ConventionInstance `json:"conventions"`

	// Discrepancies lists location disagreements.
	Discrepancies []Discrepancy `json:"discrepancies"`

	// Oddities lists date cells that were discarded or suspicious.
	Oddities []DateOddity `json:"oddities"`
}

// RedirectGroup is a redirect target with the pages redirecting to it.
type RedirectGroup struct {
	Target  string   `json:"target"`
	Sources []string `json:"sources"`
}

// RedirectEdge is a single redirect from one page name to another.
type RedirectEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PersonRefs is a person page with every page that links to it, in
// discovery order. Duplicates reflect multiple mentions.
type PersonRefs struct {
	Name      string   `json:"name"`
	Referrers []string `json:"referrers"`
}

// NewIndex creates an empty Index.
func NewIndex(runID string, at time.Time) *Index {
	return &Index{
		RunID:       runID,
		GeneratedAt: at,
		Redirects:   make(map[string]string),
	}
}

// PageCount returns the number of digested pages.
func (x *Index) PageCount() int {
	return len(x.Pages)
}

// PageByName returns a lookup from page name to page.
func (x *Index) PageByName() map[string]*Page {
	m := make(map[string]*Page, len(x.Pages))
	for _, p := range x.Pages {
		m[p.Name] = p
	}
	return m
}

// ConventionsByYear groups the timeline by starting year, preserving order.
// Instances without dates fall under year 0.
func (x *Index) ConventionsByYear() ([]int, map[int][]ConventionInstance) {
	var years []int
	groups := make(map[int][]ConventionInstance)
	for _, c := range x.Conventions {
		y := c.Dates.Year()
		if _, ok := groups[y]; !ok {
			years = append(years, y)
		}
		groups[y] = append(groups[y], c)
	}
	return years, groups
}
