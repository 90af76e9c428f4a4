package config

import (
	"path/filepath"
	"slices"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "fancyindex"

	// DefaultFormat is the report format used when none is given.
	DefaultFormat = "text"

	// DefaultJobs digests one page at a time. Digestion is I/O bound on a
	// local disk, so higher values help only on large mirrors.
	DefaultJobs = 1
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{"text", "markdown", "json"}
}

// Config holds all configuration options for fancyindex.
// It is populated from CLI flags, environment variables and the
// configuration file, and passed through the application rather than
// kept in global state.
type Config struct {
	// SiteDir is the directory holding the page mirror (<id>.txt and
	// <id>.xml pairs). Required.
	SiteDir string

	// OutputDir is where the reports are written. Existing reports of the
	// same name are replaced.
	// Defaults to the XDG data directory (~/.local/share/fancyindex/reports on Linux).
	OutputDir string

	// Format is the report format: text, markdown or json.
	Format string

	// Jobs is the number of pages digested concurrently.
	Jobs int

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, the tool searches for .fancyindex in the current directory
	// and then in the user's home directory.
	ConfigFilePath string

	// File holds the settings loaded from the configuration file.
	// Nil when no file was found.
	File *File
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		OutputDir: DefaultOutputDir(),
		Format:    DefaultFormat,
		Jobs:      DefaultJobs,
	}
}

// XDGDataDir returns the XDG data directory for fancyindex.
// On Linux: ~/.local/share/fancyindex
// On macOS: ~/Library/Application Support/fancyindex
// On Windows: %LOCALAPPDATA%\fancyindex
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for fancyindex.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// DefaultOutputDir returns the directory reports go to by default.
func DefaultOutputDir() string {
	return filepath.Join(XDGDataDir(), "reports")
}

// Validate checks if the configuration is valid.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.SiteDir == "" {
		return ErrNoSiteDir
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	if !slices.Contains(Formats(), c.Format) {
		return ErrInvalidFormat
	}

	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}

	if c.File != nil && c.File.Conventions.MaxDays < 0 {
		return ErrInvalidMaxDays
	}

	return nil
}
