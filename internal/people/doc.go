// Package people builds the cross-reference of person pages.
//
// A person page is one tagged "fan" or "pro". BuildIndex lists, for every
// person, the pages that link to them directly or through a redirect.
// Names derives the people-name list sorted by last name.
package people
