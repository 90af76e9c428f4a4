package people

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
)

// Indexer builds person reference lists.
type Indexer struct {
	logger *slog.Logger
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(x *Indexer) {
		x.logger = logger
	}
}

// New creates an Indexer.
func New(opts ...Option) *Indexer {
	x := &Indexer{}
	for _, opt := range opts {
		opt(x)
	}
	if x.logger == nil {
		x.logger = slog.Default()
	}
	return x
}

// BuildIndex maps every person page to the pages referring to it, in page
// order and with one entry per link, so a page that mentions a person
// twice is listed twice. Link targets are resolved through ultimate;
// a page is listed under itself only when it links to its own name.
// The result is sorted by person name.
func (x *Indexer) BuildIndex(pages []*model.Page, ultimate map[string]string) []model.PersonRefs {
	refs := make(map[string][]string)
	for _, p := range pages {
		if p.IsPerson() && !p.IsRedirect() {
			refs[p.Name] = []string{}
		}
	}

	for _, p := range pages {
		for _, l := range p.Links {
			person := l.Target
			if u, ok := ultimate[person]; ok {
				person = u
			}
			list, ok := refs[person]
			if !ok {
				continue
			}
			if person == p.Name && l.Target != p.Name {
				continue
			}
			refs[person] = append(list, p.Name)
		}
	}

	out := make([]model.PersonRefs, 0, len(refs))
	for name, referrers := range refs {
		out = append(out, model.PersonRefs{Name: name, Referrers: referrers})
	}
	slices.SortFunc(out, func(a, b model.PersonRefs) int {
		return strings.Compare(a.Name, b.Name)
	})
	x.logger.Debug("people indexed", "people", len(out))
	return out
}
