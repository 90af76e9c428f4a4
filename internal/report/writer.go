package report

import (
	"fmt"
	"io"

	"github.com/nao1215/fancyindex/internal/model"
)

// Name identifies one of the reports produced by a run.
type Name string

// The reports produced by a run.
const (
	ReferringPages   Name = "Referring pages"
	Redirects        Name = "Redirects"
	MissingRedirects Name = "Redirects with missing target"
	Timeline         Name = "Convention timeline"
	PeopleNames      Name = "Peoples names"
	Discrepancies    Name = "Location discrepancies"
	Oddities         Name = "Date oddities"
)

// Names returns every report name in output order.
func Names() []Name {
	return []Name{ReferringPages, Redirects, MissingRedirects, Timeline, PeopleNames, Discrepancies, Oddities}
}

// ParseName returns the report whose name matches s.
func ParseName(s string) (Name, error) {
	for _, n := range Names() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("unknown report %q", s)
}

// Writer defines the interface for report output.
// Implementations render one named report of an index.
type Writer interface {
	// Write outputs the named report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(name Name, index *model.Index) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// records returns the part of the index a report is built from.
func records(name Name, index *model.Index) (any, error) {
	switch name {
	case ReferringPages:
		return index.People, nil
	case Redirects:
		return index.InverseRedirects, nil
	case MissingRedirects:
		return index.MissingTargets, nil
	case Timeline:
		return index.Conventions, nil
	case PeopleNames:
		return index.PeopleNames, nil
	case Discrepancies:
		return index.Discrepancies, nil
	case Oddities:
		return index.Oddities, nil
	}
	return nil, fmt.Errorf("unknown report %q", name)
}
