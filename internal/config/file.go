package config

import (
	"github.com/nao1215/fancyindex/internal/locale"
	"github.com/nao1215/fancyindex/internal/site"
)

// File represents the structure of the .fancyindex configuration file.
type File struct {
	// Locale extends the built-in lookup tables of the location scanner.
	// Entries are added to the defaults, never replace them.
	Locale locale.Tables `yaml:"locale,omitempty"`

	// Site configures the reading of the mirror.
	Site SiteSection `yaml:"site,omitempty"`

	// Conventions configures the timeline extraction.
	Conventions ConventionSection `yaml:"conventions,omitempty"`
}

// SiteSection holds mirror settings.
type SiteSection struct {
	// ExcludePrefixes are page identifier prefixes to skip. When unset the
	// built-in list (index_ pages and Log files) is used; an explicit
	// empty list skips nothing.
	ExcludePrefixes *[]string `yaml:"excludePrefixes,omitempty"`
}

// ConventionSection holds timeline settings.
type ConventionSection struct {
	// MaxDays is the range length above which a date is reported as an
	// oddity. Zero means the built-in default.
	MaxDays int `yaml:"maxDays,omitempty"`
}

// Tables returns the built-in locale tables extended with the file's.
// A nil File yields the built-in tables.
func (f *File) Tables() locale.Tables {
	if f == nil {
		return locale.DefaultTables()
	}
	return locale.DefaultTables().Merge(f.Locale)
}

// ExcludePrefixes returns the identifier prefixes skipped when listing pages.
func (f *File) ExcludePrefixes() []string {
	if f == nil || f.Site.ExcludePrefixes == nil {
		return site.DefaultExcludePrefixes()
	}
	return *f.Site.ExcludePrefixes
}

// MaxDays returns the configured long-range threshold, or 0 for the default.
func (f *File) MaxDays() int {
	if f == nil {
		return 0
	}
	return f.Conventions.MaxDays
}
