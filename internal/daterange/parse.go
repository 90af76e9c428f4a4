package daterange

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var (
	// ErrEmpty is returned when the text contains no date at all.
	ErrEmpty = errors.New("empty date text")

	// ErrUnparseable is returned when the text matches none of the known shapes.
	ErrUnparseable = errors.New("unrecognized date range")
)

// Shape fragments. Months are words, days are one or two digits, years four.
const (
	reMonth = `([A-Za-z]+)\.?`
	reDay   = `(\d{1,2})(?:st|nd|rd|th)?`
	reYear  = `(\d{4})`
	reDash  = `\s*-\s*`
)

var (
	crossYearPattern      = regexp.MustCompile(`^` + reMonth + `\s+` + reDay + `,?\s+` + reYear + reDash + reMonth + `\s+` + reDay + `,?\s+` + reYear + `$`)
	crossMonthPattern     = regexp.MustCompile(`^` + reMonth + `\s+` + reDay + reDash + reMonth + `\s+` + reDay + `,?\s+` + reYear + `$`)
	sameMonthPattern      = regexp.MustCompile(`^` + reMonth + `\s+` + reDay + reDash + reDay + `,?\s+` + reYear + `$`)
	singleDayPattern      = regexp.MustCompile(`^` + reMonth + `\s+` + reDay + `,?\s+` + reYear + `$`)
	dayFirstSamePattern   = regexp.MustCompile(`^` + reDay + reDash + reDay + `\s+` + reMonth + `,?\s+` + reYear + `$`)
	dayFirstCrossPattern  = regexp.MustCompile(`^` + reDay + `\s+` + reMonth + reDash + reDay + `\s+` + reMonth + `,?\s+` + reYear + `$`)
	dayFirstSinglePattern = regexp.MustCompile(`^` + reDay + `\s+` + reMonth + `,?\s+` + reYear + `$`)
	monthYearPattern      = regexp.MustCompile(`^` + reMonth + `,?\s+` + reYear + `$`)
	yearPattern           = regexp.MustCompile(`^` + reYear + `$`)

	// numericPattern gates the dateparse fallback to shapes it reads unambiguously.
	numericPattern = regexp.MustCompile(`^(\d{4}-\d{1,2}-\d{1,2}|\d{1,2}/\d{1,2}/\d{4})$`)

	spacePattern = regexp.MustCompile(`\s+`)
)

var months = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// dashReplacer folds the dash variants wiki authors use into a plain hyphen.
var dashReplacer = strings.NewReplacer(
	"\u2010", "-", "\u2011", "-", "\u2012", "-", "\u2013", "-", "\u2014", "-",
	"&ndash;", "-", "&mdash;", "-", "&#8209;", "-", "&#8211;", "-",
	"&nbsp;", " ", "\u00a0", " ",
)

// Parse converts one date fragment into a Range.
func Parse(text string) (Range, error) {
	s := normalize(text)
	if s == "" {
		return Range{}, ErrEmpty
	}

	if m := crossYearPattern.FindStringSubmatch(s); m != nil {
		return build(s, m[1], m[2], m[3], m[4], m[5], m[6])
	}
	if m := crossMonthPattern.FindStringSubmatch(s); m != nil {
		return build(s, m[1], m[2], m[5], m[3], m[4], m[5])
	}
	if m := sameMonthPattern.FindStringSubmatch(s); m != nil {
		return build(s, m[1], m[2], m[4], m[1], m[3], m[4])
	}
	if m := singleDayPattern.FindStringSubmatch(s); m != nil {
		return build(s, m[1], m[2], m[3], m[1], m[2], m[3])
	}
	if m := dayFirstSamePattern.FindStringSubmatch(s); m != nil {
		return build(s, m[3], m[1], m[4], m[3], m[2], m[4])
	}
	if m := dayFirstCrossPattern.FindStringSubmatch(s); m != nil {
		return build(s, m[2], m[1], m[5], m[4], m[3], m[5])
	}
	if m := dayFirstSinglePattern.FindStringSubmatch(s); m != nil {
		return build(s, m[2], m[1], m[3], m[2], m[1], m[3])
	}
	if m := monthYearPattern.FindStringSubmatch(s); m != nil {
		month, ok := lookupMonth(m[1])
		if !ok {
			return Range{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
		}
		year, _ := strconv.Atoi(m[2])
		start := date(year, month, 1)
		return Range{Start: start, End: start.AddDate(0, 1, -1), Precision: PrecisionMonth}, nil
	}
	if m := yearPattern.FindStringSubmatch(s); m != nil {
		year, _ := strconv.Atoi(m[1])
		return Range{Start: date(year, time.January, 1), End: date(year, time.December, 31), Precision: PrecisionYear}, nil
	}
	if numericPattern.MatchString(s) {
		t, err := dateparse.ParseIn(s, time.UTC)
		if err == nil {
			d := date(t.Year(), t.Month(), t.Day())
			return Range{Start: d, End: d}, nil
		}
	}
	return Range{}, fmt.Errorf("%w: %q", ErrUnparseable, text)
}

// normalize folds dashes and entities, collapses whitespace and trims
// punctuation left behind by cell splitting.
func normalize(text string) string {
	s := dashReplacer.Replace(text)
	s = spacePattern.ReplaceAllString(s, " ")
	s = strings.Trim(s, " ,;.")
	return s
}

// build assembles a day-precision range, rejecting impossible dates and
// ranges that end before they start.
func build(text, m1, d1, y1, m2, d2, y2 string) (Range, error) {
	start, err := day(m1, d1, y1)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", err, text)
	}
	end, err := day(m2, d2, y2)
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q", err, text)
	}
	if end.Before(start) {
		return Range{}, fmt.Errorf("%w: %q ends before it starts", ErrUnparseable, text)
	}
	return Range{Start: start, End: end, Precision: PrecisionDay}, nil
}

func day(monthName, dayText, yearText string) (time.Time, error) {
	month, ok := lookupMonth(monthName)
	if !ok {
		return time.Time{}, ErrUnparseable
	}
	d, err := strconv.Atoi(dayText)
	if err != nil {
		return time.Time{}, ErrUnparseable
	}
	year, err := strconv.Atoi(yearText)
	if err != nil {
		return time.Time{}, ErrUnparseable
	}
	t := date(year, month, d)
	if t.Day() != d || t.Month() != month {
		return time.Time{}, ErrUnparseable
	}
	return t, nil
}

// lookupMonth accepts full month names and any prefix of at least three letters.
func lookupMonth(name string) (time.Month, bool) {
	n := strings.ToLower(name)
	if len(n) < 3 {
		return 0, false
	}
	m, ok := months[n[:3]]
	if !ok {
		return 0, false
	}
	full := strings.ToLower(m.String())
	if len(n) > 3 && !strings.HasPrefix(full, n) {
		return 0, false
	}
	return m, true
}
