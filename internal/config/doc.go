// Package config provides configuration structures and utilities for fancyindex.
// It defines where the site mirror and reports live, the report format,
// and the lookup tables that can be extended from a YAML file.
package config
