package locale

import (
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/nao1215/fancyindex/internal/wikitext"
)

// token is one capitalized word of a place name.
const token = `[A-Z][\p{L}.'\-]*`

var (
	cityStatePhrase = regexp.MustCompile(`\b[Ii]n\s+((?:` + token + `\s+){0,2}` + token + `),?\s+([A-Z]{2})\b`)
	linkedPlace     = regexp.MustCompile(`\b[Ii]n\s+\[\[([A-Z][^\[\]|#]*)(?:[|#][^\[\]]*)?\]\]`)
)

// Scanner finds locations in free text. It is safe for concurrent use.
type Scanner struct {
	gazetteer      *Gazetteer
	skipWords      map[string]struct{}
	falsePositives map[string]struct{}
	abbreviations  map[string]string
	countryPhrase  *regexp.Regexp
	logger         *slog.Logger
}

// Option configures a Scanner.
type Option func(*scannerOptions)

type scannerOptions struct {
	tables Tables
	logger *slog.Logger
}

// WithTables replaces the default lookup tables.
func WithTables(t Tables) Option {
	return func(o *scannerOptions) {
		o.tables = t
	}
}

// WithLogger sets the logger for scanner diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *scannerOptions) {
		o.logger = logger
	}
}

// NewScanner creates a Scanner that expands names through gazetteer.
// A nil gazetteer is treated as empty.
func NewScanner(gazetteer *Gazetteer, opts ...Option) *Scanner {
	o := scannerOptions{tables: DefaultTables()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if gazetteer == nil {
		gazetteer = NewGazetteer(nil, o.tables)
	}
	return &Scanner{
		gazetteer:      gazetteer,
		skipWords:      toSet(o.tables.SkipWords),
		falsePositives: toSet(o.tables.FalsePositives),
		abbreviations:  o.tables.Abbreviations,
		countryPhrase:  countryPattern(o.tables.Countries),
		logger:         o.logger,
	}
}

// countryPattern matches "in <capitalized run> <Country>". Longer country
// names are tried first so "Northern Ireland" wins over "Ireland".
func countryPattern(countries []string) *regexp.Regexp {
	if len(countries) == 0 {
		return nil
	}
	sorted := slices.Clone(countries)
	slices.SortFunc(sorted, func(a, b string) int { return len(b) - len(a) })
	quoted := make([]string, len(sorted))
	for i, c := range sorted {
		quoted[i] = regexp.QuoteMeta(c)
	}
	return regexp.MustCompile(`\b[Ii]n\s+((?:` + token + `,?\s+){1,4})(` + strings.Join(quoted, "|") + `)\b`)
}

// FindLocale returns the first location found in text. The strategies are
// tried in order and the first one that succeeds wins.
func (s *Scanner) FindLocale(text string) (string, bool) {
	plain := plainText(text)
	if found := s.cityStateMatches(plain); len(found) > 0 {
		return found[0], true
	}
	if found := s.countryMatches(plain); len(found) > 0 {
		return found[0], true
	}
	if loc, ok := s.linkedMatch(text); ok {
		return loc, true
	}
	return "", false
}

// FindAllLocaleCandidates returns every distinct location found in text by
// any strategy, in strategy order and then order of appearance. Only the
// first "in [[Place]]" hit is considered.
func (s *Scanner) FindAllLocaleCandidates(text string) []string {
	plain := plainText(text)
	var out []string
	add := func(loc string) {
		if !slices.Contains(out, loc) {
			out = append(out, loc)
		}
	}
	for _, loc := range s.cityStateMatches(plain) {
		add(loc)
	}
	for _, loc := range s.countryMatches(plain) {
		add(loc)
	}
	if loc, ok := s.linkedMatch(text); ok {
		add(loc)
	}
	return out
}

// Gazetteer returns the snapshot the scanner expands names through.
func (s *Scanner) Gazetteer() *Gazetteer {
	return s.gazetteer
}

func (s *Scanner) cityStateMatches(plain string) []string {
	var out []string
	for _, m := range cityStatePhrase.FindAllStringSubmatch(plain, -1) {
		code := m[2]
		if _, bad := s.falsePositives[code]; bad {
			continue
		}
		city, ok := s.city(strings.Fields(m[1]))
		if !ok {
			continue
		}
		out = append(out, city+", "+code)
	}
	return out
}

// city picks the city out of the capitalized run before a state code. A
// run of several words is kept only if its tail is a registered multi-word
// city; otherwise just the last word is used.
func (s *Scanner) city(words []string) (string, bool) {
	for i, w := range words {
		if full, ok := s.abbreviations[w]; ok {
			words[i] = full
		}
	}
	last := words[len(words)-1]
	if _, skip := s.skipWords[last]; skip {
		return "", false
	}
	for start := 0; start < len(words)-1; start++ {
		name := strings.Join(words[start:], " ")
		if s.gazetteer.IsMultiWordCity(name) {
			return name, true
		}
	}
	return last, true
}

func (s *Scanner) countryMatches(plain string) []string {
	if s.countryPhrase == nil {
		return nil
	}
	var out []string
	for _, m := range s.countryPhrase.FindAllStringSubmatch(plain, -1) {
		run := strings.TrimRight(strings.TrimSpace(m[1]), ",")
		if i := strings.LastIndex(run, ","); i >= 0 {
			run = run[i+1:]
		}
		run = strings.TrimSpace(run)
		if run == "" {
			continue
		}
		out = append(out, run+", "+m[2])
	}
	return out
}

func (s *Scanner) linkedMatch(text string) (string, bool) {
	m := linkedPlace.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := wikitext.CanonicalPageName(m[1])
	if name == "" {
		return "", false
	}
	return s.gazetteer.Expand(name), true
}

// plainText reduces markup to the text a reader sees.
func plainText(text string) string {
	text = wikitext.LinkText(text)
	text = wikitext.StripEmphasis(text)
	return wikitext.NormalizeEntities(text)
}
