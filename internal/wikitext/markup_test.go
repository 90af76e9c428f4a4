package wikitext

import (
	"reflect"
	"testing"
)

func TestExtractDisplayTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		src      string
		want     string
		wantOK   bool
		wantRest string
	}{
		{"leading directive", "{{DISPLAYTITLE: ''Le Zombie''}}\nText", "''Le Zombie''", true, "\nText"},
		{"not leading", "Text {{DISPLAYTITLE:X}}", "", false, "Text {{DISPLAYTITLE:X}}"},
		{"absent", "Plain text", "", false, "Plain text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok, rest := ExtractDisplayTitle(tt.src)
			if got != tt.want || ok != tt.wantOK || rest != tt.wantRest {
				t.Errorf("ExtractDisplayTitle(%q) = (%q, %v, %q), want (%q, %v, %q)",
					tt.src, got, ok, rest, tt.want, tt.wantOK, tt.wantRest)
			}
		})
	}
}

func TestExtractCategories(t *testing.T) {
	t.Parallel()

	cats, rest := ExtractCategories("Bio.\n[[Category:fan]]\n[[category: pro|Tucker]]\n")
	if !reflect.DeepEqual(cats, []string{"fan", "pro"}) {
		t.Errorf("unexpected categories %v", cats)
	}
	if rest != "Bio.\n\n\n" {
		t.Errorf("unexpected remainder %q", rest)
	}
}

func TestExtractRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		src    string
		want   string
		wantOK bool
	}{
		{"upper case", "#REDIRECT [[Bob Tucker]]", "Bob Tucker", true},
		{"mixed case", "#Redirect [[bob_Tucker]]", "Bob Tucker", true},
		{"leading whitespace", "\n  #redirect[[Boskone#History]]", "Boskone", true},
		{"not at start", "See #REDIRECT [[Foo]]", "", false},
		{"absent", "Plain page", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractRedirect(tt.src)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ExtractRedirect(%q) = (%q, %v), want (%q, %v)", tt.src, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStripLiteralBlocks(t *testing.T) {
	t.Parallel()

	src := "a [[html]]<a>[[Fake]]</a>[[/html]] b <!-- [[Hidden]] --> c <nowiki>[[Raw]]</nowiki> d"
	got := StripLiteralBlocks(src)
	if got != "a  b  c  d" {
		t.Errorf("unexpected result %q", got)
	}
	if links := ExtractLinks(got); len(links) != 0 {
		t.Errorf("expected no links after stripping, got %v", links)
	}
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("bare and piped links", func(t *testing.T) {
		t.Parallel()
		got := ExtractLinks("See [[Boskone]] and [[Worldcon|the Worldcon]].")
		want := []RawLink{
			{Target: "Boskone", Display: "", Segments: 1},
			{Target: "Worldcon", Display: "the Worldcon", Segments: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("multi-pipe link keeps first two segments", func(t *testing.T) {
		t.Parallel()
		got := ExtractLinks("[[A|b|c]]")
		if len(got) != 1 || got[0].Target != "A" || got[0].Display != "b" || got[0].Segments != 3 {
			t.Errorf("unexpected links %+v", got)
		}
	})

	t.Run("empty targets are skipped", func(t *testing.T) {
		t.Parallel()
		if got := ExtractLinks("[[ ]] [[#anchor]]"); len(got) != 0 {
			t.Errorf("expected no links, got %+v", got)
		}
	})
}

func TestCanonicalPageName(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bob_tucker":    "Bob tucker",
		"  Boskone  ":   "Boskone",
		":Category:Fan": "Category:Fan",
		"Worldcon#1939": "Worldcon",
		"ad  Astra":     "Ad Astra",
		"élan":          "Élan",
		"":              "",
	}
	for in, want := range tests {
		if got := CanonicalPageName(in); got != want {
			t.Errorf("CanonicalPageName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPageNameFromID(t *testing.T) {
	t.Parallel()

	if got := PageNameFromID("Boskone_%281941%29"); got != "Boskone (1941)" {
		t.Errorf("unexpected name %q", got)
	}
	if got := PageNameFromID("Bob_Tucker"); got != "Bob Tucker" {
		t.Errorf("unexpected name %q", got)
	}
}

func TestLinkText(t *testing.T) {
	t.Parallel()

	got := LinkText("[[Chicago, IL|Chicago]], [[Illinois]]")
	if got != "Chicago, Illinois" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestNormalizeEntities(t *testing.T) {
	t.Parallel()

	got := NormalizeEntities("June&nbsp;1&#8209;3 &amp; more")
	if got != "June 1-3 & more" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestStripEmphasis(t *testing.T) {
	t.Parallel()

	if got := StripEmphasis("'''[[Foo]]''' and ''bar''"); got != "[[Foo]] and bar" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestSplitStrikes(t *testing.T) {
	t.Parallel()

	got := SplitStrikes("<s>June 1-3, 2020</s> <S>July 4, 2020</S> August 1-3, 2020")
	want := []Span{
		{Text: "June 1-3, 2020", Struck: true},
		{Text: "July 4, 2020", Struck: true},
		{Text: " August 1-3, 2020", Struck: false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestBreaksToNewlines(t *testing.T) {
	t.Parallel()

	if got := BreaksToNewlines("a<br>b<BR />c<br/>d"); got != "a\nb\nc\nd" {
		t.Errorf("unexpected text %q", got)
	}
}
