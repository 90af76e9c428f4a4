// Package digest turns one page of a wiki mirror into a model.Page.
//
// A page arrives as two blobs: the wiki markup and an XML metadata sidecar.
// Digest decodes the sidecar, captures the DISPLAYTITLE override and the
// category tags, and then either records the page as a redirect or scans
// it for outgoing links and first-level tables.
//
// Malformed markup never fails a page. Problems are logged and recorded on
// Page.Warnings; only a missing markup or metadata blob makes Digest return
// ErrMissingSource.
package digest
