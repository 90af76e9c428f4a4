package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/nao1215/fancyindex/internal/model"
)

// Format selects the output format of a sink.
type Format string

// Supported formats.
const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ErrUnknownFormat is returned for a format other than text, markdown or json.
var ErrUnknownFormat = errors.New("unknown report format")

// Extension returns the file extension used for the format.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	}
	return ".txt"
}

// NewWriter creates the writer for format.
func NewWriter(format Format, output io.Writer, version string) (Writer, error) {
	switch format {
	case FormatText:
		return NewTextWriter(output), nil
	case FormatMarkdown:
		return NewMarkdownWriter(output), nil
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(version)), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// DirSink writes each report to its own file in a directory.
type DirSink struct {
	fs      afero.Fs
	dir     string
	format  Format
	version string
}

// NewDirSink creates a sink writing into dir on fs.
func NewDirSink(fs afero.Fs, dir string, format Format, version string) *DirSink {
	return &DirSink{fs: fs, dir: dir, format: format, version: version}
}

// Path returns the file a report is written to.
func (s *DirSink) Path(name Name) string {
	return filepath.Join(s.dir, string(name)+s.format.Extension())
}

// EmitReport renders one report and writes it to its file, replacing any
// previous file.
func (s *DirSink) EmitReport(name Name, index *model.Index) (string, error) {
	var buf bytes.Buffer
	w, err := NewWriter(s.format, &buf, s.version)
	if err != nil {
		return "", err
	}
	if _, err := w.Write(name, index); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	if err := s.fs.MkdirAll(s.dir, 0o750); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := s.Path(name)
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// EmitAll writes every report. It keeps going after a failure and returns
// the written paths together with the joined errors.
func (s *DirSink) EmitAll(index *model.Index) ([]string, error) {
	var paths []string
	var errs []error
	for _, name := range Names() {
		path, err := s.EmitReport(name, index)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		paths = append(paths, path)
	}
	return paths, errors.Join(errs...)
}
