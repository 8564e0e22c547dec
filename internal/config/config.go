// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"siteflow-quote/internal/errors"
	"siteflow-quote/internal/logging"
)

// DefaultCatalogPath is the price list file name used by the pricing docs
const DefaultCatalogPath = "siteflow-prislista.json"

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains price catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Quote contains quote calculation settings
	Quote QuoteConfig `json:"quote"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig contains catalog-related settings
type CatalogConfig struct {
	// Path is the price list file (.json, .yaml, .yml or .hcl)
	Path string `json:"path"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format for single queries
	DefaultFormat string `json:"default_format"`

	// Locale is the BCP 47 tag used to format amounts
	Locale string `json:"locale"`

	// NoColor disables ANSI colours
	NoColor bool `json:"no_color"`
}

// QuoteConfig contains quote calculation settings
type QuoteConfig struct {
	// StrictOwnership rejects unknown ownership models instead of using multiplier 1
	StrictOwnership bool `json:"strict_ownership"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			Path: DefaultCatalogPath,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			Locale:        "sv",
			NoColor:       false,
		},
		Quote: QuoteConfig{
			StrictOwnership: false,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("cannot read config "+path, err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("cannot parse config "+path, err)
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
