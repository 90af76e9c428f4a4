package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() while still showing a readable message.
var (
	// ErrNoSiteDir is returned when no site directory is specified.
	ErrNoSiteDir = errors.New("no site directory specified: provide one with --site or FANCYINDEX_SITE_DIR")

	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrInvalidFormat is returned for a report format other than text,
	// markdown or json.
	ErrInvalidFormat = errors.New("invalid report format: must be text, markdown or json")

	// ErrInvalidJobs is returned when the number of jobs is not positive.
	ErrInvalidJobs = errors.New("invalid jobs: must be positive")

	// ErrInvalidMaxDays is returned when conventions.maxDays in the
	// configuration file is negative.
	ErrInvalidMaxDays = errors.New("invalid conventions.maxDays: must be non-negative")
)
