// Package site reads a local mirror of the wiki.
//
// A mirror is a flat directory holding a pair of files per page:
// "<id>.txt" with the page's current markup and "<id>.xml" with its
// metadata. The identifier is the file name without extension. Site lists
// identifiers and loads both files of a page; it never interprets them.
package site
