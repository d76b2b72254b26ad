// Package config loads the extraction settings from kms.yaml.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds user-overridable extraction settings. Loaded from
// kms.yaml in the working directory; CLI flags override the file.
type Config struct {
	Extraction ExtractionConfig `yaml:"extraction"`
}

// ExtractionConfig holds the extraction pipeline's settings.
type ExtractionConfig struct {
	// ScanRoot is the directory whose subdirectories are candidate
	// repositories.
	ScanRoot string `yaml:"scan_root"`

	// Output is the N-Triples file the graph is serialized to.
	Output string `yaml:"output"`

	// BaseIRI overrides the identifier prefix.
	BaseIRI string `yaml:"base_iri"`

	// Database is an optional SQLite path backing the graph store
	// instead of memory.
	Database string `yaml:"database"`

	// Workers bounds the extraction worker pool.
	// Default: runtime.NumCPU().
	Workers *int `yaml:"workers"`

	// Languages restricts extraction to the named languages. Empty
	// means every registered language.
	Languages []string `yaml:"languages"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{}
}

// Load reads kms.yaml from the given directory. Returns the default
// config if the file is missing or malformed.
func Load(dir string) *Config {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filepath.Join(dir, "kms.yaml"))
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("config.invalid", "path", filepath.Join(dir, "kms.yaml"), "error", err)
		return DefaultConfig()
	}
	return cfg
}

// EffectiveScanRoot returns the configured scan root, or "." if not set.
func (c *Config) EffectiveScanRoot() string {
	if c.Extraction.ScanRoot != "" {
		return c.Extraction.ScanRoot
	}
	return "."
}

// EffectiveOutput returns the configured output path, or the default
// (kms.nt) if not set.
func (c *Config) EffectiveOutput() string {
	if c.Extraction.Output != "" {
		return c.Extraction.Output
	}
	return "kms.nt"
}

// EffectiveWorkers returns the configured worker bound, or the number
// of CPUs if not set or not positive.
func (c *Config) EffectiveWorkers() int {
	if c.Extraction.Workers != nil && *c.Extraction.Workers > 0 {
		return *c.Extraction.Workers
	}
	return runtime.NumCPU()
}

// LanguageAllowed reports whether a language passes the configured
// restriction list. An empty list allows every language.
func (c *Config) LanguageAllowed(name string) bool {
	if len(c.Extraction.Languages) == 0 {
		return true
	}
	for _, l := range c.Extraction.Languages {
		if l == name {
			return true
		}
	}
	return false
}
