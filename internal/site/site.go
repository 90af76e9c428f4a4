package site

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

// File extensions of the two halves of a page.
const (
	MarkupExt   = ".txt"
	MetadataExt = ".xml"
)

// ErrPageNotFound is returned by LoadPage when either file of a page is absent.
var ErrPageNotFound = fmt.Errorf("page not found: %w", os.ErrNotExist)

// DefaultExcludePrefixes are identifier prefixes of mirror bookkeeping files
// that are not wiki pages.
func DefaultExcludePrefixes() []string {
	return []string{"index_", "Log 202"}
}

// Site is a page mirror rooted at a directory of an afero filesystem.
type Site struct {
	fs       afero.Fs
	dir      string
	excludes []string
}

// Option configures a Site.
type Option func(*Site)

// WithExcludePrefixes replaces the identifier prefixes skipped by ListPages.
func WithExcludePrefixes(prefixes ...string) Option {
	return func(s *Site) {
		s.excludes = prefixes
	}
}

// New creates a Site reading dir on fs.
func New(fs afero.Fs, dir string, opts ...Option) *Site {
	s := &Site{
		fs:       fs,
		dir:      dir,
		excludes: DefaultExcludePrefixes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListPages returns the identifiers of every page with a markup file, sorted.
// Subdirectories and excluded prefixes are skipped.
func (s *Site) ListPages() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.dir, err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		id, ok := strings.CutSuffix(e.Name(), MarkupExt)
		if !ok || id == "" || s.excluded(id) {
			continue
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Site) excluded(id string) bool {
	for _, p := range s.excludes {
		if p != "" && strings.HasPrefix(id, p) {
			return true
		}
	}
	return false
}

// LoadPage reads the markup and metadata files of a page.
func (s *Site) LoadPage(id string) (markup, metadata []byte, err error) {
	markup, err = s.read(id + MarkupExt)
	if err != nil {
		return nil, nil, err
	}
	metadata, err = s.read(id + MetadataExt)
	if err != nil {
		return nil, nil, err
	}
	return markup, metadata, nil
}

func (s *Site) read(name string) ([]byte, error) {
	path := filepath.Join(s.dir, name)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrPageNotFound, path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
