package model

import (
	"slices"
	"strings"
)

// Tags with special meaning to the indexers.
const (
	TagFan        = "fan"
	TagPro        = "pro"
	TagConseries  = "Conseries"
	TagConvention = "Convention"
	TagLocale     = "Locale"
)

// Page represents one wiki page after digestion.
//
// Absence is explicit: DisplayTitle, Redirect and UltimateRedirect are nil
// when the page has no such value. Redirect and UltimateRedirect are the only
// fields changed after the digester returns; the redirect resolver fills in
// UltimateRedirect once every page is known. A page has an UltimateRedirect
// if and only if it has a Redirect.
type Page struct {
	// ID is the stable identifier derived from the site file name,
	// e.g. "Bob_Tucker".
	ID string `json:"id"`

	// Name is the page's wiki name as used in links, e.g. "Bob Tucker".
	Name string `json:"name"`

	// DisplayTitle is the DISPLAYTITLE override, if the page sets one.
	DisplayTitle *string `json:"display_title,omitempty"`

	// Redirect is the page this page forwards to, if it is a redirect.
	Redirect *string `json:"redirect,omitempty"`

	// UltimateRedirect is the end of the redirect chain starting at Redirect.
	UltimateRedirect *string `json:"ultimate_redirect,omitempty"`

	// RedirectCycle is set when the chain starting at this page loops.
	RedirectCycle bool `json:"redirect_cycle,omitempty"`

	// Tags is the page's category set in first-seen order.
	Tags []string `json:"tags,omitempty"`

	// Links holds the distinct outgoing links in first-seen order.
	Links []Link `json:"links,omitempty"`

	// Tables holds the first-level wiki tables found on the page.
	Tables []ParsedTable `json:"tables,omitempty"`

	// Metadata is the decoded sidecar record.
	Metadata Metadata `json:"metadata"`

	// Source is the raw markup, kept for free-text scanning.
	Source string `json:"-"`

	// Warnings collects non-fatal digestion problems.
	Warnings []string `json:"warnings,omitempty"`
}

// Metadata holds the recognized fields of a page's XML sidecar.
// Unrecognized fields are dropped by the decoder.
type Metadata struct {
	Title          string `json:"title,omitempty"`
	Filename       string `json:"filename,omitempty"`
	URLName        string `json:"urlname,omitempty"`
	IsRedirectPage string `json:"isredirectpage,omitempty"`
	NumRevisions   string `json:"numrevisions,omitempty"`
	PageID         string `json:"pageid,omitempty"`
	RevID          string `json:"revid,omitempty"`
	EditTime       string `json:"edittime,omitempty"`
	Permalink      string `json:"permalink,omitempty"`
	Categories     string `json:"categories,omitempty"`
	Timestamp      string `json:"timestamp,omitempty"`
	User           string `json:"user,omitempty"`
}

// Link is one outgoing wiki-link. It is comparable, so a set of links is a
// map[Link]struct{} and duplicate links on one page collapse.
type Link struct {
	// Target is the canonical name of the linked page.
	Target string `json:"target"`

	// Display is the text shown for the link; it equals Target for bare links.
	Display string `json:"display"`

	// Owner is the name of the page the link appears on.
	Owner string `json:"owner"`
}

// NewLink builds a Link, defaulting the display text to the target.
func NewLink(target, display, owner string) Link {
	if display == "" {
		display = target
	}
	return Link{Target: target, Display: display, Owner: owner}
}

// Title returns the name shown for the page: the DISPLAYTITLE override when
// present, otherwise Name.
func (p *Page) Title() string {
	if p.DisplayTitle != nil {
		return *p.DisplayTitle
	}
	return p.Name
}

// IsRedirect reports whether the page forwards to another page.
func (p *Page) IsRedirect() bool {
	return p.Redirect != nil
}

// RedirectTarget returns the direct redirect target.
func (p *Page) RedirectTarget() (string, bool) {
	if p.Redirect == nil {
		return "", false
	}
	return *p.Redirect, true
}

// UltimateTarget returns the final page of the redirect chain.
func (p *Page) UltimateTarget() (string, bool) {
	if p.UltimateRedirect == nil {
		return "", false
	}
	return *p.UltimateRedirect, true
}

// HasTag reports whether the page carries the tag.
func (p *Page) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// AddTag appends a tag unless it is already present.
func (p *Page) AddTag(tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" || p.HasTag(tag) {
		return
	}
	p.Tags = append(p.Tags, tag)
}

// IsPerson reports whether the page describes a person (tagged fan or pro).
func (p *Page) IsPerson() bool {
	return p.HasTag(TagFan) || p.HasTag(TagPro)
}

// IsConseries reports whether the page lists the instances of a convention series.
func (p *Page) IsConseries() bool {
	return p.HasTag(TagConseries)
}

// IsConvention reports whether the page describes a single convention.
func (p *Page) IsConvention() bool {
	return p.HasTag(TagConvention) && !p.HasTag(TagConseries)
}

// Warn records a non-fatal digestion problem.
func (p *Page) Warn(msg string) {
	p.Warnings = append(p.Warnings, msg)
}

// Ptr returns a pointer to a copy of s.
func Ptr(s string) *string {
	return &s
}
