// Package model defines the core data structures shared by the fancyindex
// packages.
//
// This package contains the following main types:
//   - Page: one digested wiki article or redirect stub
//   - Link: one outgoing wiki-link found on a page
//   - ParsedTable: a wiki table split into a header and rows
//   - ConventionInstance: one occurrence of a recurring convention
//   - Index: everything derived from a run, consumed by the report writers
//
// Models live in their own package so that digest, convention, people and
// report can all share them without import cycles. They are serializable to
// JSON for the JSON report format.
package model
