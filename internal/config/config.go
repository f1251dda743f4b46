package config

import (
	"fmt"

	"github.com/jeduden/proselens/internal/analysis"
)

// Config is the top-level configuration.
type Config struct {
	// Files lists glob patterns analyzed when no file arguments are given.
	Files     []string       `yaml:"files,omitempty"`
	Settings  map[string]any `yaml:"settings,omitempty"`
	Color     *bool          `yaml:"color,omitempty"`
	Overrides []Override     `yaml:"overrides,omitempty"`
}

// Override applies settings to files matching glob patterns.
type Override struct {
	Files    []string       `yaml:"files"`
	Settings map[string]any `yaml:"settings"`
}

// Options returns the analysis options in effect for filePath. An empty
// filePath (stdin, interactive input) gets the top-level settings only.
func Options(cfg *Config, filePath string) (analysis.Options, error) {
	opts := analysis.DefaultOptions()
	if err := opts.ApplySettings(Effective(cfg, filePath)); err != nil {
		if filePath == "" {
			return analysis.Options{}, fmt.Errorf("invalid settings: %w", err)
		}
		return analysis.Options{}, fmt.Errorf("invalid settings for %s: %w", filePath, err)
	}
	return opts, nil
}

// ColorEnabled reports whether colored output is requested. It defaults
// to true when unset.
func (c *Config) ColorEnabled() bool {
	if c == nil || c.Color == nil {
		return true
	}
	return *c.Color
}
