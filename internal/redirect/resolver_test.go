package redirect

import (
	"reflect"
	"testing"

	"github.com/nao1215/fancyindex/internal/model"
)

func page(name string, redirect ...string) *model.Page {
	p := &model.Page{Name: name}
	if len(redirect) > 0 {
		p.Redirect = model.Ptr(redirect[0])
	}
	return p
}

func TestResolveAll(t *testing.T) {
	t.Parallel()

	pages := []*model.Page{
		page("Bob Tucker"),
		page("Wilson Tucker", "Bob Tucker"),
		page("Hoy Ping Pong", "Wilson Tucker"),
		page("Old Name", "Gone Page"),
		page("Loop A", "Loop B"),
		page("Loop B", "Loop A"),
		page("Self", "Self"),
	}

	res := New().ResolveAll(pages)

	want := map[string]string{
		"Wilson Tucker": "Bob Tucker",
		"Hoy Ping Pong": "Bob Tucker",
		"Old Name":      "Gone Page",
		"Loop A":        "Loop A",
		"Loop B":        "Loop B",
		"Self":          "Self",
	}
	if !reflect.DeepEqual(res.Ultimate, want) {
		t.Errorf("got %v, want %v", res.Ultimate, want)
	}
	if !reflect.DeepEqual(res.Cycles, []string{"Loop A", "Loop B", "Self"}) {
		t.Errorf("unexpected cycles %v", res.Cycles)
	}

	t.Run("ultimate redirect iff redirect", func(t *testing.T) {
		t.Parallel()
		for _, p := range pages {
			if (p.Redirect == nil) != (p.UltimateRedirect == nil) {
				t.Errorf("page %q: redirect=%v ultimate=%v", p.Name, p.Redirect, p.UltimateRedirect)
			}
		}
	})

	t.Run("cycle flag", func(t *testing.T) {
		t.Parallel()
		if !pages[4].RedirectCycle || pages[1].RedirectCycle {
			t.Error("cycle flag set on the wrong pages")
		}
	})
}

func TestResolveAllIsIdempotent(t *testing.T) {
	t.Parallel()

	pages := []*model.Page{
		page("A", "B"),
		page("B", "C"),
		page("C"),
		page("D", "E"),
		page("E", "D"),
	}
	r := New()
	first := r.ResolveAll(pages)
	second := r.ResolveAll(pages)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("second resolution differs: %v vs %v", first, second)
	}
}

func TestResolveAllClearsStaleUltimate(t *testing.T) {
	t.Parallel()

	p := page("A")
	p.UltimateRedirect = model.Ptr("stale")
	New().ResolveAll([]*model.Page{p})
	if p.UltimateRedirect != nil {
		t.Error("non-redirect page kept an ultimate redirect")
	}
}

func TestInverse(t *testing.T) {
	t.Parallel()

	pages := []*model.Page{
		page("Bob Tucker"),
		page("Wilson Tucker", "Bob Tucker"),
		page("Hoy Ping Pong", "Wilson Tucker"),
		page("Tucker", "Bob Tucker"),
	}
	New().ResolveAll(pages)

	got := Inverse(pages)
	want := []model.RedirectGroup{
		{Target: "Bob Tucker", Sources: []string{"Hoy Ping Pong", "Tucker", "Wilson Tucker"}},
		{Target: "Wilson Tucker", Sources: []string{"Hoy Ping Pong"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
	if src := SourcesByTarget(got)["Wilson Tucker"]; len(src) != 1 {
		t.Errorf("unexpected lookup %v", src)
	}
}

func TestMissingTargets(t *testing.T) {
	t.Parallel()

	pages := []*model.Page{
		page("Real"),
		page("To Real", "Real"),
		page("To Nowhere", "Nowhere"),
		page("Chain", "To Nowhere"),
	}
	res := New().ResolveAll(pages)

	got := MissingTargets(pages, res.Ultimate)
	want := []model.RedirectEdge{
		{From: "Chain", To: "Nowhere"},
		{From: "To Nowhere", To: "Nowhere"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}
