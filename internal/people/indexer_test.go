package people

import (
	"reflect"
	"testing"

	"github.com/nao1215/fancyindex/internal/model"
)

func person(name, tag string, links ...string) *model.Page {
	p := &model.Page{Name: name, Tags: []string{tag}}
	for _, l := range links {
		p.Links = append(p.Links, model.NewLink(l, "", name))
	}
	return p
}

func article(name string, links ...model.Link) *model.Page {
	return &model.Page{Name: name, Links: links}
}

func TestBuildIndex(t *testing.T) {
	t.Parallel()

	pages := []*model.Page{
		person("Bob Tucker", model.TagFan, "Wilson Tucker", "Chicon"),
		person("Forrest J Ackerman", model.TagPro, "Bob Tucker"),
		{Name: "Wilson Tucker", Redirect: model.Ptr("Bob Tucker")},
		article("Chicon",
			model.NewLink("Bob Tucker", "", "Chicon"),
			model.NewLink("Bob Tucker", "Tucker", "Chicon"),
			model.NewLink("Wilson Tucker", "", "Chicon"),
			model.NewLink("Boskone", "", "Chicon"),
		),
		article("Le Zombie", model.NewLink("Wilson Tucker", "", "Le Zombie")),
	}
	ultimate := map[string]string{"Wilson Tucker": "Bob Tucker"}

	got := New().BuildIndex(pages, ultimate)
	want := []model.PersonRefs{
		{Name: "Bob Tucker", Referrers: []string{"Forrest J Ackerman", "Chicon", "Chicon", "Chicon", "Le Zombie"}},
		{Name: "Forrest J Ackerman", Referrers: []string{}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestBuildIndexSelfReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page *model.Page
		want []string
	}{
		{
			name: "no self-link",
			page: person("Bob Tucker", model.TagFan, "Chicon"),
			want: []string{},
		},
		{
			name: "self-link through a redirect is not a reference",
			page: person("Bob Tucker", model.TagFan, "Wilson Tucker"),
			want: []string{},
		},
		{
			name: "literal self-link is kept",
			page: person("Bob Tucker", model.TagFan, "Bob Tucker"),
			want: []string{"Bob Tucker"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pages := []*model.Page{tt.page, {Name: "Wilson Tucker", Redirect: model.Ptr("Bob Tucker")}}
			got := New().BuildIndex(pages, map[string]string{"Wilson Tucker": "Bob Tucker"})
			if len(got) != 1 || !reflect.DeepEqual(got[0].Referrers, tt.want) {
				t.Errorf("got %+v, want referrers %v", got, tt.want)
			}
		})
	}
}
