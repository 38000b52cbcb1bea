package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/bountyy/localtap/internal/catalog"
)

// DefaultConfigFile is the default catalog override file name.
const DefaultConfigFile = ".localtap"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the YAML catalog override file.
//
// By default the listed targets extend the built-in catalog, with the
// file winning port conflicts. Setting replace discards the built-in
// catalog entirely and scans only the listed targets.
type File struct {
	// Replace discards the built-in catalog when true.
	Replace bool `yaml:"replace,omitempty"`

	// Targets are the catalog entries to add or scan.
	Targets []catalog.Spec `yaml:"targets"`
}

// Catalog builds the effective scan catalog from the overrides and the
// built-in default catalog. File entries come first so they win the
// first-occurrence port dedup against built-in records.
func (f *File) Catalog() *catalog.Catalog {
	records := make([]catalog.Record, 0, len(f.Targets))
	for _, spec := range f.Targets {
		records = append(records, spec.Record())
	}

	if !f.Replace {
		records = append(records, catalog.Default().Records()...)
	}

	return catalog.New(records)
}

// LoadConfigFile loads catalog overrides from a YAML file.
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
		return nil, err
	}

	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .localtap in the current directory
// 3. Look for .localtap in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	// If explicit path is provided, use it
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
