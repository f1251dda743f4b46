package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Settings in loaded
// override the defaults key by key; Files, Color and Overrides come from
// the loaded config when present.
func Merge(defaults, loaded *Config) *Config {
	settings := make(map[string]any, len(defaults.Settings))
	for k, v := range defaults.Settings {
		settings[k] = v
	}

	if loaded == nil {
		return &Config{Files: defaults.Files, Settings: settings, Color: defaults.Color}
	}

	for k, v := range loaded.Settings {
		settings[k] = v
	}

	files := defaults.Files
	if loaded.Files != nil {
		files = loaded.Files
	}

	color := defaults.Color
	if loaded.Color != nil {
		color = loaded.Color
	}

	return &Config{
		Files:     files,
		Settings:  settings,
		Color:     color,
		Overrides: loaded.Overrides,
	}
}

// Effective returns the settings in effect for a given file path. It
// starts with the top-level settings and then applies each override whose
// file patterns match filePath, in order. Later overrides take precedence.
func Effective(cfg *Config, filePath string) map[string]any {
	result := make(map[string]any, len(cfg.Settings))
	for k, v := range cfg.Settings {
		result[k] = v
	}

	if filePath == "" {
		return result
	}

	for _, o := range cfg.Overrides {
		if matchesAny(o.Files, filePath) {
			for k, v := range o.Settings {
				result[k] = v
			}
		}
	}

	return result
}

// matchesAny returns true if filePath matches any of the given glob patterns.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			// Skip invalid patterns silently.
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
