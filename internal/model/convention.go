package model

import (
	"strings"

	"github.com/nao1215/fancyindex/internal/daterange"
)

// ConventionInstance is one occurrence of a recurring convention, as listed
// in its series table.
//
// Location is empty when no location is known; a real location is never the
// empty string. Cancelled on the instance and Cancelled on Dates are kept
// separately and reconciled at render time by ShowCancelled.
type ConventionInstance struct {
	// Series is the name of the Conseries page the instance was read from.
	Series string `json:"series"`

	// Link is the page the table links to. Empty means the link is the
	// display text itself ([[Simple Link]]).
	Link string `json:"link,omitempty"`

	// Display is the name shown in the series table.
	Display string `json:"display"`

	// Location is the normalized place the convention was held.
	Location string `json:"location,omitempty"`

	// Dates is the date range, which may itself be marked cancelled.
	Dates daterange.Range `json:"dates"`

	// Virtual is set when the convention was held online.
	Virtual bool `json:"virtual,omitempty"`

	// Cancelled is set when the convention did not take place.
	Cancelled bool `json:"cancelled,omitempty"`

	// Override is pre-formatted wiki text used instead of the link when
	// several alternative names apply to one date.
	Override string `json:"override,omitempty"`
}

// ConventionKey is the deduplication key of a ConventionInstance.
type ConventionKey struct {
	Display   string
	Start     int64
	End       int64
	Precision daterange.Precision
	Dates     bool
	Cancelled bool
	Virtual   bool
	Override  string
}

// Key returns the deduplication key: display text, date range, cancelled,
// virtual and override. Location is not part of it.
func (c ConventionInstance) Key() ConventionKey {
	return ConventionKey{
		Display:   c.Display,
		Start:     c.Dates.Start.Unix(),
		End:       c.Dates.End.Unix(),
		Precision: c.Dates.Precision,
		Dates:     c.Dates.Cancelled,
		Cancelled: c.Cancelled,
		Virtual:   c.Virtual,
		Override:  c.Override,
	}
}

// LinkTarget returns the page the instance links to.
func (c ConventionInstance) LinkTarget() string {
	if c.Link == "" {
		return c.Display
	}
	return c.Link
}

// ShowCancelled reports whether the instance-level cancellation needs to be
// rendered. It is false when the date range already shows it.
func (c ConventionInstance) ShowCancelled() bool {
	return c.Cancelled && !c.Dates.Cancelled
}

// IsCancelled reports whether either the instance or its dates are cancelled.
func (c ConventionInstance) IsCancelled() bool {
	return c.Cancelled || c.Dates.Cancelled
}

// WikiName returns the wiki markup naming the instance: the override when
// set, otherwise a link to the instance page.
func (c ConventionInstance) WikiName() string {
	if c.Override != "" {
		return c.Override
	}
	if c.Link == "" || c.Link == c.Display {
		return "[[" + c.Display + "]]"
	}
	return "[[" + c.Link + "|" + c.Display + "]]"
}

// PlainName returns the instance name without wiki markup.
func (c ConventionInstance) PlainName() string {
	if c.Override == "" {
		return c.Display
	}
	r := strings.NewReplacer("[[", "", "]]", "")
	parts := strings.Split(c.Override, " / ")
	for i, p := range parts {
		p = r.Replace(p)
		if j := strings.LastIndex(p, "|"); j >= 0 {
			p = p[j+1:]
		}
		parts[i] = p
	}
	return strings.Join(parts, " / ")
}

// String renders the instance for diagnostics.
func (c ConventionInstance) String() string {
	var sb strings.Builder
	sb.WriteString("Link=" + c.LinkTarget())
	sb.WriteString("  Name=" + c.Display)
	sb.WriteString("  Date=" + c.Dates.String())
	if c.Dates.Cancelled {
		sb.WriteString(" (cancelled)")
	}
	sb.WriteString("  Location=" + c.Location)
	if c.ShowCancelled() {
		sb.WriteString("  cancelled=true")
	}
	if c.Virtual {
		sb.WriteString("  virtual=true")
	}
	if c.Override != "" {
		sb.WriteString("  Override=" + c.Override)
	}
	return sb.String()
}

// Discrepancy records a disagreement between the location in a series table
// and the location scanned from the convention's own page.
type Discrepancy struct {
	Convention string `json:"convention"`
	Series     string `json:"series"`
	Recorded   string `json:"recorded"`
	Scanned    string `json:"scanned"`
}

// DateOddity records a date cell that could not be used as-is.
type DateOddity struct {
	Series string `json:"series"`
	Name   string `json:"name,omitempty"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}
