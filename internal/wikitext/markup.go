package wikitext

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

var (
	displayTitlePattern = regexp.MustCompile(`^\s*\{\{DISPLAYTITLE:\s*(.+?)\}\}`)
	categoryPattern     = regexp.MustCompile(`(?i)\[\[\s*Category:\s*(.+?)\]\]`)
	redirectPattern     = regexp.MustCompile(`(?i)^\s*#REDIRECT\s*:?\s*\[\[(.+?)\]\]`)
	literalPattern      = regexp.MustCompile(`(?is)\[\[html\]\].*?\[\[/html\]\]`)
	commentPattern      = regexp.MustCompile(`(?s)<!--.*?-->`)
	nowikiPattern       = regexp.MustCompile(`(?is)<nowiki>.*?</nowiki>`)
	linkPattern         = regexp.MustCompile(`\[\[([^\[\]]+?)\]\]`)
	strikePattern       = regexp.MustCompile(`(?is)<(?:s|strike|del)>(.*?)</(?:s|strike|del)>`)
	emphasisPattern     = regexp.MustCompile(`'{2,}`)
	breakPattern        = regexp.MustCompile(`(?i)<br\s*/?>`)
	spacesPattern       = regexp.MustCompile(`[ _\t]+`)
)

// ExtractDisplayTitle finds a leading {{DISPLAYTITLE:...}} directive.
// It returns the title and the text with the directive removed.
func ExtractDisplayTitle(src string) (string, bool, string) {
	loc := displayTitlePattern.FindStringSubmatchIndex(src)
	if loc == nil {
		return "", false, src
	}
	title := strings.TrimSpace(src[loc[2]:loc[3]])
	return title, true, src[:loc[0]] + src[loc[1]:]
}

// ExtractCategories returns every [[Category:...]] name, in order, and the
// text with the directives removed. A sort key after "|" is dropped.
func ExtractCategories(src string) ([]string, string) {
	var cats []string
	for _, m := range categoryPattern.FindAllStringSubmatch(src, -1) {
		name := m[1]
		if i := strings.Index(name, "|"); i >= 0 {
			name = name[:i]
		}
		if name = strings.TrimSpace(name); name != "" {
			cats = append(cats, name)
		}
	}
	return cats, categoryPattern.ReplaceAllString(src, "")
}

// ExtractRedirect finds a #REDIRECT [[target]] directive at the start of the
// text (keyword case-insensitive) and returns the canonical target name.
func ExtractRedirect(src string) (string, bool) {
	m := redirectPattern.FindStringSubmatch(src)
	if m == nil {
		return "", false
	}
	target := m[1]
	if i := strings.Index(target, "|"); i >= 0 {
		target = target[:i]
	}
	target = CanonicalPageName(target)
	return target, target != ""
}

// StripLiteralBlocks removes [[html]]...[[/html]] blocks, HTML comments and
// <nowiki> spans so their contents are never scanned for links.
func StripLiteralBlocks(src string) string {
	src = literalPattern.ReplaceAllString(src, "")
	src = commentPattern.ReplaceAllString(src, "")
	return nowikiPattern.ReplaceAllString(src, "")
}

// RawLink is one [[...]] occurrence split at its pipes.
type RawLink struct {
	Target string
	// Display is empty for a bare [[target]] link.
	Display string
	// Segments is the number of "|"-separated parts; more than two means
	// the link is malformed and only the first two were used.
	Segments int
}

// ExtractLinks returns every bracketed link in src in order of appearance.
// The target is canonicalized.
func ExtractLinks(src string) []RawLink {
	matches := linkPattern.FindAllStringSubmatch(src, -1)
	links := make([]RawLink, 0, len(matches))
	for _, m := range matches {
		parts := strings.Split(m[1], "|")
		target := CanonicalPageName(parts[0])
		if target == "" {
			continue
		}
		var display string
		if len(parts) > 1 {
			display = strings.TrimSpace(parts[1])
		}
		links = append(links, RawLink{Target: target, Display: display, Segments: len(parts)})
	}
	return links
}

// CanonicalPageName turns link text into a page name: a leading colon and
// any #anchor are dropped, underscores become spaces and the first letter is
// upper-cased, as MediaWiki does.
func CanonicalPageName(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, ":")
	if i := strings.Index(s, "#"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(spacesPattern.ReplaceAllString(s, " "))
	return upperFirst(s)
}

// PageNameFromID converts a site file identifier ("Bob_Tucker",
// "Boskone_%281941%29") to a page name.
func PageNameFromID(id string) string {
	if decoded, err := url.PathUnescape(id); err == nil {
		id = decoded
	}
	return CanonicalPageName(id)
}

// LinkText replaces every link in s with its display text.
func LinkText(s string) string {
	return linkPattern.ReplaceAllStringFunc(s, func(m string) string {
		inner := m[2 : len(m)-2]
		if i := strings.LastIndex(inner, "|"); i >= 0 {
			return strings.TrimSpace(inner[i+1:])
		}
		return strings.TrimSpace(inner)
	})
}

// StripEmphasis removes the quote runs that mark italic and bold text.
func StripEmphasis(s string) string {
	return emphasisPattern.ReplaceAllString(s, "")
}

// NormalizeEntities decodes HTML entities and folds the non-breaking space
// and non-breaking hyphen into their plain forms.
func NormalizeEntities(s string) string {
	s = html.UnescapeString(s)
	return strings.NewReplacer("\u00a0", " ", "\u2011", "-").Replace(s)
}

// BreaksToNewlines replaces <br> tags with newlines.
func BreaksToNewlines(s string) string {
	return breakPattern.ReplaceAllString(s, "\n")
}

// Span is a run of text that is either struck through or not.
type Span struct {
	Text   string
	Struck bool
}

// SplitStrikes splits s into struck (<s>...</s>) and plain spans in order.
// Empty spans are omitted.
func SplitStrikes(s string) []Span {
	var spans []Span
	add := func(text string, struck bool) {
		if strings.TrimSpace(text) != "" {
			spans = append(spans, Span{Text: text, Struck: struck})
		}
	}
	last := 0
	for _, loc := range strikePattern.FindAllStringSubmatchIndex(s, -1) {
		add(s[last:loc[0]], false)
		add(s[loc[2]:loc[3]], true)
		last = loc[1]
	}
	add(s[last:], false)
	return spans
}

// upperFirst upper-cases the first rune of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
