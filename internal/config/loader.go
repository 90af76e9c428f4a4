package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".fancyindex"

// EnvPrefix is the prefix of the environment variables read by ApplyEnv.
const EnvPrefix = "FANCYINDEX"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// LoadConfigFile loads the YAML configuration file at path.
// If the file does not exist, it returns ErrConfigNotFound.
// Callers should handle this error appropriately based on whether
// the config file path was explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .fancyindex in the current directory
// 3. Look for .fancyindex in the user's home directory
// 4. Look for config.yaml in the XDG config directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), "config.yaml"))

	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c
		}
	}
	return ""
}

// Environment keys and the flags that take precedence over them.
var envFlags = map[string]string{
	"site_dir":   "site",
	"output_dir": "output",
	"format":     "format",
	"jobs":       "jobs",
}

// ApplyEnv overrides c with FANCYINDEX_SITE_DIR, FANCYINDEX_OUTPUT_DIR,
// FANCYINDEX_FORMAT and FANCYINDEX_JOBS. A value is skipped when
// flagChanged reports that its flag was given on the command line; a nil
// flagChanged applies every variable.
func ApplyEnv(c *Config, flagChanged func(name string) bool) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	for key := range envFlags {
		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("bind %s: %w", key, err)
		}
	}

	use := func(key string) bool {
		if !v.IsSet(key) {
			return false
		}
		return flagChanged == nil || !flagChanged(envFlags[key])
	}

	if use("site_dir") {
		c.SiteDir = v.GetString("site_dir")
	}
	if use("output_dir") {
		c.OutputDir = v.GetString("output_dir")
	}
	if use("format") {
		c.Format = v.GetString("format")
	}
	if use("jobs") {
		n, err := strconv.Atoi(v.GetString("jobs"))
		if err != nil {
			return fmt.Errorf("%w: %s_JOBS=%q", ErrInvalidJobs, EnvPrefix, v.GetString("jobs"))
		}
		c.Jobs = n
	}
	return nil
}
