package locale

import "slices"

// Tables holds the word lists that steer the scanner. Every list can be
// extended from the configuration file.
type Tables struct {
	// SkipWords are capitalized words that end convention names rather
	// than city names ("Ad Astra XI").
	SkipWords []string `yaml:"skipWords"`

	// FalsePositives are two-letter tokens that look like state codes but
	// are not (roman numerals and common abbreviations).
	FalsePositives []string `yaml:"falsePositives"`

	// MultiWordCities are registered city names of more than one word.
	MultiWordCities []string `yaml:"multiWordCities"`

	// Countries are spelled-out country names.
	Countries []string `yaml:"countries"`

	// ShortNameExceptions are ambiguous city names that are never expanded
	// through the gazetteer.
	ShortNameExceptions []string `yaml:"shortNameExceptions"`

	// Abbreviations maps an abbreviated city token to its canonical form.
	Abbreviations map[string]string `yaml:"abbreviations"`
}

// DefaultTables returns the built-in lists.
func DefaultTables() Tables {
	return Tables{
		SkipWords: []string{
			"Astra", "Con", "Cons", "Convention", "Fandom", "Fantasy", "Fest",
			"Fiction", "Party", "Worldcon", "Westercon", "Eastercon", "Minicon",
		},
		FalsePositives: []string{
			"II", "IV", "VI", "IX", "XI", "XV", "XX", "XL", "LX", "XC",
			"AM", "PM", "TV", "SF", "UN", "EU", "DJ", "MC",
		},
		MultiWordCities: []string{
			"Ann Arbor", "Baton Rouge", "Cherry Hill", "College Park",
			"Colorado Springs", "Costa Mesa", "Des Moines", "El Paso",
			"Fort Lauderdale", "Fort Worth", "Grand Rapids", "Jersey City",
			"Kansas City", "Las Vegas", "Long Beach", "Los Angeles",
			"New Haven", "New Orleans", "New York", "Newport Beach",
			"Oklahoma City", "Palm Springs", "Salt Lake City", "San Antonio",
			"San Diego", "San Francisco", "San Jose", "Santa Clara",
			"Santa Rosa", "Silver Spring", "St. Louis", "St. Paul",
			"St. Petersburg", "Virginia Beach",
		},
		Countries: []string{
			"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada",
			"China", "Croatia", "Czech Republic", "Denmark", "England",
			"Finland", "France", "Germany", "Holland", "Hungary", "Iceland",
			"Ireland", "Israel", "Italy", "Japan", "Mexico", "Netherlands",
			"New Zealand", "Northern Ireland", "Norway", "Poland", "Portugal",
			"Russia", "Scotland", "Singapore", "South Africa", "Spain",
			"Sweden", "Switzerland", "Ukraine", "United Kingdom", "Wales",
		},
		ShortNameExceptions: []string{
			"Arlington", "Birmingham", "Cambridge", "Columbus", "London",
			"Manchester", "Paris", "Portland", "Richmond", "Springfield",
			"Washington",
		},
		Abbreviations: map[string]string{
			"Ft":  "Fort",
			"Ft.": "Fort",
			"Mt":  "Mount",
			"Mt.": "Mount",
			"St":  "St.",
			"Ste": "Ste.",
		},
	}
}

// Merge returns t extended with the entries of extra. Abbreviations in
// extra replace those in t.
func (t Tables) Merge(extra Tables) Tables {
	out := Tables{
		SkipWords:           union(t.SkipWords, extra.SkipWords),
		FalsePositives:      union(t.FalsePositives, extra.FalsePositives),
		MultiWordCities:     union(t.MultiWordCities, extra.MultiWordCities),
		Countries:           union(t.Countries, extra.Countries),
		ShortNameExceptions: union(t.ShortNameExceptions, extra.ShortNameExceptions),
		Abbreviations:       make(map[string]string, len(t.Abbreviations)+len(extra.Abbreviations)),
	}
	for k, v := range t.Abbreviations {
		out.Abbreviations[k] = v
	}
	for k, v := range extra.Abbreviations {
		out.Abbreviations[k] = v
	}
	return out
}

func union(a, b []string) []string {
	out := slices.Clone(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}
