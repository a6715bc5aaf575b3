// Package config loads and validates the borea.config.json file that fills
// in CLI flags the user left unset.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the recognized shape of a borea config file. Every field is
// optional — an absent field simply leaves the corresponding CLI default in
// place, per the CLI-then-config-then-default precedence rule.
type Config struct {
	Input   InputConfig  `json:"input,omitempty"`
	Output  OutputConfig `json:"output,omitempty"`
	Ignores []string     `json:"ignores,omitempty"`
}

// InputConfig names the OpenAPI document to read.
type InputConfig struct {
	OpenAPI string `json:"openapi,omitempty"`
}

// OutputConfig controls where and how much the generator writes.
type OutputConfig struct {
	ClientSDK    string `json:"clientSDK,omitempty"`
	Models       string `json:"models,omitempty"`
	Tests        bool   `json:"tests,omitempty"`
	XCodeSamples bool   `json:"xCodeSamples,omitempty"`
}

// DefaultFileName is the config file Discover and the CLI's -c default look
// for when none is given explicitly.
const DefaultFileName = "borea.config.json"

// Discover looks for borea.config.json in dir and returns its path, or ""
// if not present.
func Discover(dir string) string {
	candidate := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Load reads and parses a borea config file. A missing field is left at its
// zero value — callers apply built-in defaults themselves after merging in
// any CLI flags, per the documented precedence rule.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}

// Validate checks the config for structural problems that would otherwise
// surface as a confusing failure deep in generation.
func (c *Config) Validate() error {
	for _, pattern := range c.Ignores {
		if _, err := filepath.Match(pattern, "probe"); err != nil {
			return fmt.Errorf("ignores: invalid glob %q: %w", pattern, err)
		}
	}
	return nil
}
