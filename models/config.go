// Package models defines data structures shared between the counter packages.
package models

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultUploadDir  = "src/uploads"
	DefaultCountedDir = "src/counted"
	DefaultInterval   = "5s"
	DefaultDBName     = "words-counter.db"

	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds runtime configuration. Values come from config.yaml and may be
// overridden by CLI flags.
type Config struct {
	UploadDir          string   `yaml:"upload_dir"`
	CountedDir         string   `yaml:"counted_dir"`
	Interval           string   `yaml:"interval"`
	Extensions         []string `yaml:"extensions"`
	HTMLExtensions     []string `yaml:"html_extensions,omitempty"`
	KeepEmptyToken     bool     `yaml:"keep_empty_token"`
	SkipMalformedLines bool     `yaml:"skip_malformed_lines"`
	DetectLanguage     bool     `yaml:"detect_language"`
	Store              string   `yaml:"store"`
	DBPath             string   `yaml:"db_path"`
	ReportsDir         string   `yaml:"reports_dir,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		UploadDir:  DefaultUploadDir,
		CountedDir: DefaultCountedDir,
		Interval:   DefaultInterval,
		Extensions: []string{".txt"},
		Store:      StoreFile,
		DBPath:     DefaultDBName,
	}
}

// LoadConfig reads a YAML config file on top of the defaults.
// A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate fills empty fields with defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.UploadDir == "" {
		c.UploadDir = DefaultUploadDir
	}
	if c.CountedDir == "" {
		c.CountedDir = DefaultCountedDir
	}
	if c.Interval == "" {
		c.Interval = DefaultInterval
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".txt"}
	}
	if c.Store == "" {
		c.Store = StoreFile
	}

	if c.Store != StoreFile && c.Store != StoreSQLite {
		return fmt.Errorf("unknown store %q (want %q or %q)", c.Store, StoreFile, StoreSQLite)
	}
	if c.Store == StoreSQLite && c.DBPath == "" {
		return fmt.Errorf("store %q requires db_path", StoreSQLite)
	}
	if _, err := c.IntervalDuration(); err != nil {
		return err
	}
	return nil
}

// IntervalDuration parses the poll interval.
func (c *Config) IntervalDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Interval)
	if err != nil {
		return 0, fmt.Errorf("invalid interval %q: %w", c.Interval, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %s", d)
	}
	return d, nil
}
