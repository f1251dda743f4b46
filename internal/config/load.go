package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jeduden/proselens/internal/analysis"
)

// FileName is the name of the config file looked up by Discover.
const FileName = ".proselens.yml"

// Load reads and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .proselens.yml config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns a Config holding the built-in analysis settings.
func Defaults() *Config {
	return &Config{
		Settings: analysis.DefaultSettings(),
	}
}

// DumpDefaults returns the Config written by `proselens init`.
func DumpDefaults() *Config {
	color := true
	cfg := Defaults()
	cfg.Files = []string{"**/*.md", "**/*.txt"}
	cfg.Color = &color
	return cfg
}
