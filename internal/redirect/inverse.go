package redirect

import (
	"slices"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

// Inverse groups redirect pages by the page they point at. A page is listed
// under its direct target and, when the chain is longer, under its
// ultimate target too. Groups and their sources are sorted by name.
func Inverse(pages []*model.Page) []model.RedirectGroup {
	groups := make(map[string][]string)
	add := func(target, source string) {
		if !slices.Contains(groups[target], source) {
			groups[target] = append(groups[target], source)
		}
	}
	for _, p := range pages {
		direct, ok := p.RedirectTarget()
		if !ok {
			continue
		}
		add(direct, p.Name)
		if ultimate, ok := p.UltimateTarget(); ok && ultimate != direct {
			add(ultimate, p.Name)
		}
	}

	out := make([]model.RedirectGroup, 0, len(groups))
	for target, sources := range groups {
		slices.Sort(sources)
		out = append(out, model.RedirectGroup{Target: target, Sources: sources})
	}
	slices.SortFunc(out, func(a, b model.RedirectGroup) int {
		return strings.Compare(a.Target, b.Target)
	})
	return out
}

// SourcesByTarget indexes the groups by target name.
func SourcesByTarget(groups []model.RedirectGroup) map[string][]string {
	m := make(map[string][]string, len(groups))
	for _, g := range groups {
		m[g.Target] = g.Sources
	}
	return m
}

// MissingTargets lists the redirects whose ultimate target is not a page in
// the set, sorted by source name.
func MissingTargets(pages []*model.Page, ultimate map[string]string) []model.RedirectEdge {
	known := make(map[string]struct{}, len(pages))
	for _, p := range pages {
		known[p.Name] = struct{}{}
	}

	var out []model.RedirectEdge
	for from, to := range ultimate {
		if _, ok := known[to]; !ok {
			out = append(out, model.RedirectEdge{From: from, To: to})
		}
	}
	slices.SortFunc(out, func(a, b model.RedirectEdge) int {
		return strings.Compare(a.From, b.From)
	})
	return out
}
