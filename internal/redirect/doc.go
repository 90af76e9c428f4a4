// Package redirect resolves redirect chains across the full page set.
//
// Resolution needs every page to be digested first. The Resolver then
// follows each chain to its end, fills in Page.UltimateRedirect and derives
// the inverse mapping (target -> pages that redirect to it) and the list of
// redirects whose target does not exist.
package redirect
