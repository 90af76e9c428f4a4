// Package convention rebuilds the convention timeline from the tables on
// convention series pages.
//
// Each table row names one or more conventions and gives one or more date
// ranges. The row is decomposed into name chunks and date fragments, which
// are paired into ConventionInstance records. Struck-through text marks a
// cancelled convention or date; keywords such as "virtual" or "held online"
// mark a virtual one. Instances are deduplicated, cross-checked against the
// locations found on the conventions' own pages and returned in date order.
//
// Authors format these tables inconsistently and the rules here are
// heuristics. Rows that cannot be decomposed are logged and skipped; they
// never stop the extraction.
package convention
