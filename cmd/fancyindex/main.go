// Package main provides the entry point for the fancyindex CLI.
//
// fancyindex mines a local mirror of a fan wiki (one <id>.txt markup file
// and one <id>.xml metadata file per page) and writes cross-reference
// reports: who refers to whom, redirects, people's names and a convention
// timeline.
//
// Usage:
//
//	fancyindex run --site <dir>
//	fancyindex digest --site <dir> <page-id>
//
// See --help for all available options.
package main

// main is the entry point for fancyindex.
func main() {
	Execute()
}
