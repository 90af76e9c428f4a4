package convention

import (
	"regexp"
	"strings"

	"github.com/nao1215/fancyindex/internal/model"
	"github.com/nao1215/fancyindex/internal/wikitext"
)

const virtualKeywords = `virtual convention|held online|moved online|virtual|online`

var (
	virtualPattern   = regexp.MustCompile(`(?i)\(\s*(?:` + virtualKeywords + `)\s*\)|\b(?:` + virtualKeywords + `)\b`)
	cancelledPattern = regexp.MustCompile(`(?i)\(\s*cancell?ed\s*\)|\bcancell?ed\b`)
	trailingParen    = regexp.MustCompile(`\s*\([^()]*\)\s*$`)
	strikeTag        = regexp.MustCompile(`(?i)</?(?:s|strike|del)>`)
	reschedulePrefix = regexp.MustCompile(`(?i)^(?:rescheduled|moved|postponed)(?:\s+to)?\s+`)
	separators       = " \t,;/"
)

// scanVirtual removes virtual-convention keywords from cell and reports
// whether any were found. Keywords inside [[...]] links are part of a page
// name and are left alone.
func scanVirtual(cell string) (string, bool) {
	out, found := cutOutsideLinks(virtualPattern, cell)
	if !found {
		return cell, false
	}
	return strings.TrimSpace(out), true
}

// cutOutsideLinks removes every match of re that does not fall inside a
// [[...]] link and reports whether any was removed.
func cutOutsideLinks(re *regexp.Regexp, cell string) (string, bool) {
	var sb strings.Builder
	found := false
	last := 0
	for _, loc := range re.FindAllStringIndex(cell, -1) {
		if insideLink(cell, loc[0]) {
			continue
		}
		sb.WriteString(cell[last:loc[0]])
		last = loc[1]
		found = true
	}
	if !found {
		return cell, false
	}
	sb.WriteString(cell[last:])
	return sb.String(), true
}

// insideLink reports whether position i of s falls between "[[" and "]]".
func insideLink(s string, i int) bool {
	prefix := s[:i]
	return strings.LastIndex(prefix, "[[") > strings.LastIndex(prefix, "]]")
}

// cutCancelled removes a "(cancelled)" annotation and reports whether one
// was present. A page name such as [[The Cancelled Con]] is not an
// annotation.
func cutCancelled(cell string) (string, bool) {
	return cutOutsideLinks(cancelledPattern, cell)
}

// stripTrailingParens removes every parenthesized annotation at the end of s.
func stripTrailingParens(s string) string {
	s = strings.TrimSpace(s)
	for {
		t := strings.TrimSpace(trailingParen.ReplaceAllString(s, ""))
		if t == s {
			return s
		}
		s = t
	}
}

// fragment is one piece of a date cell.
type fragment struct {
	text   string
	struck bool
}

// splitDateCell decomposes a date cell into fragments. Every struck-through
// span is a fragment of its own; the remaining text forms one more fragment
// per line.
func splitDateCell(cell string) []fragment {
	cell = wikitext.LinkText(cell)
	cell, marked := cutCancelled(cell)
	cell = stripTrailingParens(cell)
	cell = wikitext.NormalizeEntities(cell)
	cell = wikitext.BreaksToNewlines(cell)

	var frags []fragment
	var rest []string
	for _, sp := range wikitext.SplitStrikes(cell) {
		if sp.Struck {
			if t := cleanFragment(sp.Text); t != "" {
				frags = append(frags, fragment{text: t, struck: true})
			}
			continue
		}
		rest = append(rest, sp.Text)
	}
	for _, line := range strings.Split(strings.Join(rest, " "), "\n") {
		if t := cleanFragment(line); t != "" {
			frags = append(frags, fragment{text: t, struck: marked})
		}
	}
	return frags
}

func cleanFragment(s string) string {
	s = strings.Trim(stripTrailingParens(s), separators)
	s = reschedulePrefix.ReplaceAllString(s, "")
	return strings.Trim(s, separators)
}

// chunk is one convention name from a name cell.
type chunk struct {
	link    string
	display string
	struck  bool
}

// instance returns the link and display fields of a ConventionInstance.
func (c chunk) instance() model.ConventionInstance {
	return model.ConventionInstance{Link: c.link, Display: c.display}
}

// nameCell is a decomposed name cell.
type nameCell struct {
	chunks []chunk
	// alternatives is set when the chunks are alternative names of a
	// single convention rather than names of several conventions.
	alternatives bool
}

// override joins the alternative names into one wiki string.
func (n nameCell) override() string {
	names := make([]string, 0, len(n.chunks))
	for _, c := range n.chunks {
		names = append(names, c.instance().WikiName())
	}
	return strings.Join(names, " / ")
}

// anyStruck reports whether any chunk is struck through.
func (n nameCell) anyStruck() bool {
	for _, c := range n.chunks {
		if c.struck {
			return true
		}
	}
	return false
}

// splitNameCell decomposes a name cell. A top-level "/" marks alternative
// names; otherwise every link, or every bare line, is its own chunk.
func splitNameCell(cell string) nameCell {
	cell = wikitext.StripEmphasis(cell)
	cell = wikitext.NormalizeEntities(cell)
	cell = wikitext.BreaksToNewlines(cell)
	cell, marked := cutCancelled(cell)

	if parts := splitAlternatives(cell); len(parts) > 1 {
		var n nameCell
		n.alternatives = true
		for _, p := range parts {
			struck := marked || strikeTag.MatchString(p)
			p = strikeTag.ReplaceAllString(p, "")
			if cs := lineChunks(p, struck); len(cs) > 0 {
				n.chunks = append(n.chunks, cs[0])
			}
		}
		if len(n.chunks) > 1 {
			return n
		}
	}

	var n nameCell
	for _, sp := range wikitext.SplitStrikes(cell) {
		text := strikeTag.ReplaceAllString(sp.Text, "")
		for _, line := range strings.Split(text, "\n") {
			n.chunks = append(n.chunks, lineChunks(line, sp.Struck || marked)...)
		}
	}
	return n
}

// lineChunks returns one chunk per link on the line, or one chunk for the
// bare text when the line has no links. A subtitle after a top-level colon
// is dropped.
func lineChunks(line string, struck bool) []chunk {
	line = strings.TrimSpace(cutSubtitle(line))
	if line == "" {
		return nil
	}
	links := wikitext.ExtractLinks(line)
	if len(links) == 0 {
		name := strings.Trim(strings.Join(strings.Fields(line), " "), separators)
		if name == "" {
			return nil
		}
		return []chunk{{display: name, struck: struck}}
	}
	out := make([]chunk, 0, len(links))
	for _, l := range links {
		display := l.Display
		if display == "" {
			display = l.Target
		}
		out = append(out, chunk{link: l.Target, display: display, struck: struck})
	}
	return out
}

// cutSubtitle drops everything from the first colon outside [[...]].
func cutSubtitle(s string) string {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "[["):
			depth++
			i++
		case strings.HasPrefix(s[i:], "]]") && depth > 0:
			depth--
			i++
		case s[i] == ':' && depth == 0:
			return s[:i]
		}
	}
	return s
}

// splitAlternatives splits s at every top-level "/". A slash inside a link,
// in a closing tag or between two digits does not split.
func splitAlternatives(s string) []string {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case strings.HasPrefix(s[i:], "[["):
			depth++
			i++
			continue
		case strings.HasPrefix(s[i:], "]]") && depth > 0:
			depth--
			i++
			continue
		}
		if s[i] != '/' || depth > 0 {
			continue
		}
		if i > 0 && s[i-1] == '<' {
			continue
		}
		if i > 0 && i+1 < len(s) && isDigit(s[i-1]) && isDigit(s[i+1]) {
			continue
		}
		parts = append(parts, s[start:i])
		start = i + 1
	}
	return append(parts, s[start:])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// cleanLocation prepares a location cell for normalization.
func cleanLocation(cell string) string {
	cell = wikitext.StripEmphasis(cell)
	cell = wikitext.NormalizeEntities(cell)
	cell = strings.ReplaceAll(wikitext.BreaksToNewlines(cell), "\n", ", ")
	return strings.Trim(strings.Join(strings.Fields(cell), " "), separators)
}
