// Package locale finds place names in free wiki text.
//
// The Scanner tries three strategies in order: "in City, ST", "in City,
// Country" and "in [[Place]]". Results are expanded through a Gazetteer, an
// immutable snapshot built once from the site's Locale pages, so that a
// bare "Chicago" becomes the registered "Chicago, IL".
//
// The scanner favours recall. A person's name followed by two capitals can
// still look like a city; the lookup tables trim the common cases but do not
// remove them all.
package locale
