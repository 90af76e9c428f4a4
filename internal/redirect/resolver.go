package redirect

import (
	"log/slog"
	"slices"

	"github.com/nao1215/fancyindex/internal/model"
)

// Resolver follows redirect chains.
type Resolver struct {
	logger *slog.Logger
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithLogger sets the logger used to report cycles.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// Result is the outcome of resolving a page set.
type Result struct {
	// Ultimate maps each redirect page name to the end of its chain.
	Ultimate map[string]string

	// Cycles lists, sorted, the redirect pages whose chain loops.
	Cycles []string
}

// ResolveAll sets UltimateRedirect on every redirect page and returns the
// name -> ultimate target mapping. Pages without a redirect get a nil
// UltimateRedirect, so a page has one if and only if it has a Redirect.
// Calling it again on the same pages yields the same result.
func (r *Resolver) ResolveAll(pages []*model.Page) Result {
	byName := make(map[string]*model.Page, len(pages))
	for _, p := range pages {
		byName[p.Name] = p
	}

	res := Result{Ultimate: make(map[string]string)}
	for _, p := range pages {
		target, ok := p.RedirectTarget()
		if !ok {
			p.UltimateRedirect = nil
			p.RedirectCycle = false
			continue
		}
		end, cycle := r.follow(byName, p.Name, target)
		p.UltimateRedirect = model.Ptr(end)
		p.RedirectCycle = cycle
		res.Ultimate[p.Name] = end
		if cycle {
			res.Cycles = append(res.Cycles, p.Name)
		}
	}
	slices.Sort(res.Cycles)
	r.logger.Debug("redirects resolved", "redirects", len(res.Ultimate), "cycles", len(res.Cycles))
	return res
}

// follow walks the chain that starts at page from and whose first hop is
// target. The walk ends at a page with no redirect or at a name that is not
// in the page set. If a name repeats, that name is returned with cycle set.
// The visited set is local to each call.
func (r *Resolver) follow(byName map[string]*model.Page, from, target string) (string, bool) {
	visited := map[string]struct{}{from: {}}
	cur := target
	for {
		if _, seen := visited[cur]; seen {
			r.logger.Warn("redirect cycle", "page", from, "target", cur)
			return cur, true
		}
		visited[cur] = struct{}{}

		p, ok := byName[cur]
		if !ok {
			return cur, false
		}
		next, ok := p.RedirectTarget()
		if !ok {
			return p.Name, false
		}
		cur = next
	}
}
