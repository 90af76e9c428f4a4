package people

import (
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nao1215/fancyindex/internal/model"
)

var (
	trailingParens = regexp.MustCompile(`\s\(.*\)$`)
	innerCapital   = regexp.MustCompile(`\s\p{Lu}`)
)

// RemoveTrailingParens drops a trailing disambiguation suffix such as
// " (fan)" from a page name.
func RemoveTrailingParens(s string) string {
	return trailingParens.ReplaceAllString(s, "")
}

// Names returns the people-name list: every person page name and every
// page name redirecting to a person, without disambiguation suffixes,
// deduplicated and sorted by last name. inverse maps a page name to the
// pages that redirect to it.
//
// A name is kept only if it has a capitalized word after a space, and a
// name that differs from a kept name only by hyphens is dropped.
func Names(pages []*model.Page, inverse map[string][]string) []string {
	var candidates []string
	for _, p := range pages {
		if !p.IsPerson() || p.IsRedirect() {
			continue
		}
		candidates = append(candidates, RemoveTrailingParens(p.Name))
		for _, r := range inverse[p.Name] {
			candidates = append(candidates, RemoveTrailingParens(r))
		}
	}

	seen := make(map[string]struct{}, len(candidates))
	folded := make(map[string]struct{}, len(candidates))
	var names []string
	for _, n := range candidates {
		if _, dup := seen[n]; dup || !displayWorthy(n) {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	// Hyphen-free spellings win over their hyphenated variants.
	for _, n := range names {
		if !strings.Contains(n, "-") {
			folded[n] = struct{}{}
		}
	}
	names = slices.DeleteFunc(names, func(n string) bool {
		if !strings.Contains(n, "-") {
			return false
		}
		_, variant := folded[strings.ReplaceAll(n, "-", " ")]
		return variant
	})

	SortByLastName(names)
	return names
}

// displayWorthy reports whether n looks like a full personal name.
func displayWorthy(n string) bool {
	if strings.Trim(n, "- ") == "" {
		return false
	}
	return innerCapital.MatchString(n)
}

// SortByLastName sorts names by their last word, then by the words before
// it, using English collation.
func SortByLastName(names []string) {
	col := collate.New(language.English)
	keys := make(map[string]string, len(names))
	for _, n := range names {
		keys[n] = lastNameKey(n)
	}
	slices.SortStableFunc(names, func(a, b string) int {
		if c := col.CompareString(keys[a], keys[b]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// lastNameKey inverts a name so the last word comes first: "Bob Tucker"
// becomes "Tucker,Bob". The last word's initial is upper-cased.
func lastNameKey(n string) string {
	words := strings.Fields(n)
	if len(words) == 0 {
		return ""
	}
	last := cases.Title(language.English, cases.NoLower).String(words[len(words)-1])
	return last + "," + strings.Join(words[:len(words)-1], " ")
}
