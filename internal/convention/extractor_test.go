package convention

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/nao1215/fancyindex/internal/locale"
	"github.com/nao1215/fancyindex/internal/model"
)

func seriesFixture() []*model.Page {
	boskone := &model.Page{
		Name: "Boskone",
		Tags: []string{model.TagConseries, model.TagConvention},
		Tables: []model.ParsedTable{
			{
				Headers: []string{"Convention", "Dates", "Location", "GoH"},
				Rows: [][]string{
					{"[[Boskone 1]]", "February 1-3, 1941", "[[Boston, MA]]", "x"},
					{"[[Boskone 2]]", "<s>March 1-3, 2020</s> March 5-7, 2021", "virtual", "y"},
					{"[[Boskone 3]]", "TBD", "", ""},
					{"[[Boskone Four]]", "May 2021", "", ""},
					{"[[Boskone 1]]", "February 1-3, 1941", "", ""},
					{"decoration"},
				},
			},
			{
				Headers: []string{"Year", "GoH"},
				Rows:    [][]string{{"1941", "x"}},
			},
		},
	}
	minicon := &model.Page{
		Name: "Minicon",
		Tags: []string{model.TagConseries},
		Tables: []model.ParsedTable{{
			Headers: []string{"Name", "Date"},
			Rows:    [][]string{{"Minicon 1", "June 1-10, 2020"}},
		}},
	}
	return []*model.Page{
		boskone,
		minicon,
		{Name: "Boskone 1", Tags: []string{model.TagConvention}, Source: "Boskone 1 was held in Worcester, MA."},
		{Name: "Boskone 4", Tags: []string{model.TagConvention}, Source: "It was held in Cambridge, MA."},
		{Name: "Boskone Four", Redirect: model.Ptr("Boskone 4")},
		{Name: "Cambridge, MA", Tags: []string{model.TagLocale}},
	}
}

func TestExtract(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	pages := seriesFixture()
	scanner := locale.NewScanner(locale.NewGazetteer(pages, locale.DefaultTables()))
	e := New(scanner, WithLogger(logger))

	res := e.Extract(pages, map[string]string{"Boskone Four": "Boskone 4"})

	type want struct {
		display   string
		year      int
		location  string
		cancelled bool
		virtual   bool
	}
	wants := []want{
		{"Boskone 1", 1941, "Boston, MA", false, false},
		{"Boskone 2", 2020, "", true, false},
		{"Minicon 1", 2020, "", false, false},
		{"Boskone 2", 2021, "", false, true},
		{"Boskone Four", 2021, "Cambridge, MA", false, false},
	}
	if len(res.Conventions) != len(wants) {
		for _, c := range res.Conventions {
			t.Log(c.String())
		}
		t.Fatalf("expected %d conventions, got %d", len(wants), len(res.Conventions))
	}
	for i, w := range wants {
		c := res.Conventions[i]
		if c.Display != w.display || c.Dates.Year() != w.year || c.Location != w.location ||
			c.IsCancelled() != w.cancelled || c.Virtual != w.virtual {
			t.Errorf("convention %d = %s, want %+v", i, c.String(), w)
		}
	}

	t.Run("discrepancy reported", func(t *testing.T) {
		t.Parallel()
		if len(res.Discrepancies) != 1 {
			t.Fatalf("expected 1 discrepancy, got %+v", res.Discrepancies)
		}
		d := res.Discrepancies[0]
		if d.Convention != "Boskone 1" || d.Series != "Boskone" || d.Scanned != "Worcester, MA" {
			t.Errorf("unexpected discrepancy %+v", d)
		}
	})

	t.Run("oddities reported", func(t *testing.T) {
		t.Parallel()
		var reasons []string
		for _, o := range res.Oddities {
			reasons = append(reasons, o.Reason)
		}
		joined := strings.Join(reasons, "|")
		for _, want := range []string{"unparseable date", "row has 1 names and 0 dates", "suspiciously long (10 days)"} {
			if !strings.Contains(joined, want) {
				t.Errorf("missing oddity %q in %q", want, joined)
			}
		}
	})

	t.Run("table without name column logged", func(t *testing.T) {
		t.Parallel()
		if !strings.Contains(buf.String(), "series table lacks a name or date column") {
			t.Error("expected an error diagnostic for the GoH table")
		}
	})
}

func TestExtractIsOrderIndependent(t *testing.T) {
	t.Parallel()

	pages := seriesFixture()
	reversed := make([]*model.Page, len(pages))
	for i, p := range pages {
		reversed[len(pages)-1-i] = p
	}
	redirects := map[string]string{"Boskone Four": "Boskone 4"}

	a := New(nil, WithLogger(slog.New(slog.DiscardHandler))).Extract(pages, redirects)
	b := New(nil, WithLogger(slog.New(slog.DiscardHandler))).Extract(reversed, redirects)
	if len(a.Conventions) != len(b.Conventions) {
		t.Fatalf("different counts: %d vs %d", len(a.Conventions), len(b.Conventions))
	}
	for i := range a.Conventions {
		if a.Conventions[i].Key() != b.Conventions[i].Key() {
			t.Errorf("convention %d differs: %s vs %s", i, a.Conventions[i], b.Conventions[i])
		}
	}
}

func TestExtractSkipsShortAndEmptyRows(t *testing.T) {
	t.Parallel()

	page := &model.Page{
		Name: "Foo",
		Tags: []string{model.TagConseries},
		Tables: []model.ParsedTable{{
			Headers: []string{"Convention", "Date", "Location"},
			Rows: [][]string{
				{"Foo 1", "June 1-3, 2020"},
				{"Foo 2"},
				{"", "June 1-3, 2021", "Chicago, IL"},
				{"Foo 3", " ", "Chicago, IL"},
			},
		}},
	}
	res := New(nil, WithLogger(slog.New(slog.DiscardHandler))).Extract([]*model.Page{page}, nil)
	if len(res.Conventions) != 1 || res.Conventions[0].Display != "Foo 1" {
		t.Errorf("unexpected conventions %+v", res.Conventions)
	}
}

func TestExtractEmphasizedHeaders(t *testing.T) {
	t.Parallel()

	page := &model.Page{
		Name: "Foo",
		Tags: []string{model.TagConseries},
		Tables: []model.ParsedTable{{
			Headers: []string{"'''Convention'''", "Dates<br>"},
			Rows:    [][]string{{"Foo 1", "June 1-3, 2020"}},
		}},
	}
	res := New(nil, WithLogger(slog.New(slog.DiscardHandler))).Extract([]*model.Page{page}, nil)
	if len(res.Conventions) != 1 || res.Conventions[0].Display != "Foo 1" {
		t.Errorf("unexpected conventions %+v", res.Conventions)
	}
}

func TestWithMaxDays(t *testing.T) {
	t.Parallel()

	page := &model.Page{
		Name: "Foo",
		Tags: []string{model.TagConseries},
		Tables: []model.ParsedTable{{
			Headers: []string{"Convention", "Date"},
			Rows:    [][]string{{"Foo 1", "June 1-10, 2020"}},
		}},
	}
	res := New(nil, WithMaxDays(14), WithLogger(slog.New(slog.DiscardHandler))).Extract([]*model.Page{page}, nil)
	if len(res.Oddities) != 0 {
		t.Errorf("expected no oddities, got %+v", res.Oddities)
	}
}
