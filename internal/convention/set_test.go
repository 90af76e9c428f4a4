package convention

import (
	"testing"

	"github.com/nao1215/fancyindex/internal/daterange"
	"github.com/nao1215/fancyindex/internal/model"
)

func TestSetMergesLocation(t *testing.T) {
	t.Parallel()

	r, err := daterange.Parse("June 1-3, 2020")
	if err != nil {
		t.Fatal(err)
	}
	withLoc := model.ConventionInstance{Display: "Foo 1", Dates: r, Location: "Chicago, IL"}
	noLoc := model.ConventionInstance{Display: "Foo 1", Dates: r}

	tests := []struct {
		name  string
		first model.ConventionInstance
		then  model.ConventionInstance
	}{
		{"empty first", noLoc, withLoc},
		{"located first", withLoc, noLoc},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s := NewSet()
			if !s.Add(tt.first) {
				t.Fatal("first add should be new")
			}
			if s.Add(tt.then) {
				t.Fatal("second add should merge")
			}
			if s.Len() != 1 {
				t.Fatalf("expected 1 instance, got %d", s.Len())
			}
			if got := s.Items()[0].Location; got != "Chicago, IL" {
				t.Errorf("merged location = %q", got)
			}
		})
	}
}

func TestSetKeepsDistinctInstances(t *testing.T) {
	t.Parallel()

	r, err := daterange.Parse("June 1-3, 2020")
	if err != nil {
		t.Fatal(err)
	}
	base := model.ConventionInstance{Display: "Foo 1", Dates: r}
	variants := []model.ConventionInstance{
		base,
		{Display: "Foo 1", Dates: r, Cancelled: true},
		{Display: "Foo 1", Dates: r, Virtual: true},
		{Display: "Foo 1", Dates: r, Override: "[[Foo 1]] / [[Foo I]]"},
		{Display: "Foo 1", Dates: r.WithCancelled(true)},
		{Display: "Foo I", Dates: r},
	}
	s := NewSet()
	for _, v := range variants {
		s.Add(v)
	}
	if s.Len() != len(variants) {
		t.Errorf("expected %d instances, got %d", len(variants), s.Len())
	}
}
