package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/nao1215/fancyindex/internal/model"
)

// JSONWriter outputs reports in JSON format.
// This format is designed for tool integration and programmatic processing.
type JSONWriter struct {
	baseWriter

	// version is the fancyindex version stamped into every report.
	version string

	// indent enables pretty-printed JSON output.
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion sets the generator version recorded in each report.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// JSONReport wraps the records of one report with run metadata.
type JSONReport struct {
	// Report is the report name.
	Report Name `json:"report"`

	// Version is the fancyindex version that generated the report.
	Version string `json:"version,omitempty"`

	// RunID identifies the run.
	RunID string `json:"run_id"`

	// GeneratedAt is when the run started.
	GeneratedAt time.Time `json:"generated_at"`

	// Records holds the report's entries.
	Records any `json:"records"`
}

// Write outputs the named report wrapped with run metadata.
func (w *JSONWriter) Write(name Name, index *model.Index) (int, error) {
	recs, err := records(name, index)
	if err != nil {
		return 0, err
	}
	return w.writeJSON(JSONReport{
		Report:      name,
		Version:     w.version,
		RunID:       index.RunID,
		GeneratedAt: index.GeneratedAt,
		Records:     recs,
	})
}

// WriteValue outputs any value as JSON with the writer's formatting.
func (w *JSONWriter) WriteValue(v any) (int, error) {
	return w.writeJSON(v)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
