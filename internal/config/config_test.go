package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/proselens/internal/analysis"
)

// --- YAML parsing tests ---

func writeConfig(t *testing.T, yml string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o644))
	return cfgPath
}

func TestParseValidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
files:
  - "essays/**/*.txt"
settings:
  advanced-length: 9
  sample-limit: 3
color: false
overrides:
  - files:
      - "docs/**"
    settings:
      sample-basic-max: 4
  - files:
      - "CHANGELOG.md"
    settings:
      advanced-length: 12
`))
	require.NoError(t, err)

	t.Run("files", func(t *testing.T) {
		assert.Equal(t, []string{"essays/**/*.txt"}, cfg.Files)
	})

	t.Run("settings", func(t *testing.T) {
		assert.Equal(t, 9, cfg.Settings["advanced-length"])
		assert.Equal(t, 3, cfg.Settings["sample-limit"])
	})

	t.Run("color", func(t *testing.T) {
		assert.False(t, cfg.ColorEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		require.Len(t, cfg.Overrides, 2)
		assert.Equal(t, "docs/**", cfg.Overrides[0].Files[0])
		assert.Equal(t, 12, cfg.Overrides[1].Settings["advanced-length"])
	})
}

func TestInvalidYAMLReturnsError(t *testing.T) {
	_, err := Load(writeConfig(t, `
settings: [[[invalid
`))
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load("/nonexistent/path/.proselens.yml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestColorEnabledDefaultsToTrue(t *testing.T) {
	var nilCfg *Config
	assert.True(t, nilCfg.ColorEnabled(), "nil config should enable color")
	assert.True(t, (&Config{}).ColorEnabled(), "unset color should enable color")
}

// --- Discovery tests ---

func TestDiscoverFindsInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("settings: {}"), 0o644))

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestDiscoverFindsInParentDir(t *testing.T) {
	parent := t.TempDir()
	child := filepath.Join(parent, "subdir")
	require.NoError(t, os.MkdirAll(child, 0o755))
	cfgPath := filepath.Join(parent, FileName)
	require.NoError(t, os.WriteFile(cfgPath, []byte("settings: {}"), 0o644))

	found, err := Discover(child)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, found)
}

func TestDiscoverStopsAtGitBoundary(t *testing.T) {
	// grandparent has config, parent has .git, child is startDir.
	grandparent := t.TempDir()
	parent := filepath.Join(grandparent, "repo")
	child := filepath.Join(parent, "src")
	require.NoError(t, os.MkdirAll(child, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(parent, ".git"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(grandparent, FileName), []byte("settings: {}"), 0o644))

	found, err := Discover(child)
	require.NoError(t, err)
	assert.Empty(t, found, "discovery should stop at .git")
}

func TestDiscoverReturnsEmptyWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Empty(t, found)
}

// --- Merge and Effective tests ---

func TestMergeNilLoaded(t *testing.T) {
	merged := Merge(Defaults(), nil)
	assert.Equal(t, 7, merged.Settings["advanced-length"])
	assert.Empty(t, merged.Overrides)
}

func TestMergeOverridesKeyByKey(t *testing.T) {
	loaded := &Config{
		Settings: map[string]any{"sample-limit": 2},
		Overrides: []Override{
			{Files: []string{"*.md"}, Settings: map[string]any{"advanced-length": 9}},
		},
	}
	merged := Merge(Defaults(), loaded)

	assert.Equal(t, 2, merged.Settings["sample-limit"])
	assert.Equal(t, 5, merged.Settings["sample-basic-max"], "unset keys keep their defaults")
	assert.Len(t, merged.Overrides, 1)
}

func TestMergeDoesNotMutateDefaults(t *testing.T) {
	defaults := Defaults()
	Merge(defaults, &Config{Settings: map[string]any{"sample-limit": 1}})
	assert.Equal(t, 5, defaults.Settings["sample-limit"])
}

func TestMergeFiles(t *testing.T) {
	merged := Merge(Defaults(), &Config{Files: []string{"essays/**/*.txt"}})
	assert.Equal(t, []string{"essays/**/*.txt"}, merged.Files)

	defaults := Defaults()
	defaults.Files = []string{"**/*.md"}
	merged = Merge(defaults, &Config{})
	assert.Equal(t, []string{"**/*.md"}, merged.Files, "default files survive an empty config")
}

func TestEffectiveOverrideAppliesPerFile(t *testing.T) {
	cfg := Merge(Defaults(), &Config{
		Overrides: []Override{
			{Files: []string{"docs/**"}, Settings: map[string]any{"advanced-length": 10}},
		},
	})

	assert.Equal(t, 10, Effective(cfg, "docs/guide/intro.md")["advanced-length"])
	assert.Equal(t, 7, Effective(cfg, "README.md")["advanced-length"])
	assert.Equal(t, 7, Effective(cfg, "")["advanced-length"], "stdin gets top-level settings")
}

func TestEffectiveLaterOverridesWin(t *testing.T) {
	cfg := Merge(Defaults(), &Config{
		Overrides: []Override{
			{Files: []string{"*.md"}, Settings: map[string]any{"sample-limit": 2}},
			{Files: []string{"NOTES.md"}, Settings: map[string]any{"sample-limit": 9}},
		},
	})

	assert.Equal(t, 9, Effective(cfg, "NOTES.md")["sample-limit"])
	assert.Equal(t, 2, Effective(cfg, "other.md")["sample-limit"])
}

// --- Options tests ---

func TestOptions(t *testing.T) {
	cfg := Merge(Defaults(), &Config{
		Settings: map[string]any{"sample-limit": 3},
		Overrides: []Override{
			{Files: []string{"docs/**"}, Settings: map[string]any{"advanced-length": 10}},
		},
	})

	opts, err := Options(cfg, "docs/a.md")
	require.NoError(t, err)

	want := analysis.DefaultOptions()
	want.Sample.Limit = 3
	want.Metrics.AdvancedLength = 10
	assert.Equal(t, want, opts)
}

func TestOptionsInvalidSetting(t *testing.T) {
	cfg := Merge(Defaults(), &Config{Settings: map[string]any{"bogus": 1}})

	_, err := Options(cfg, "")
	assert.ErrorContains(t, err, "invalid settings")

	_, err = Options(cfg, "a.md")
	assert.ErrorContains(t, err, "invalid settings for a.md")
}

// --- DumpDefaults tests ---

func TestDumpDefaults_MarshalRoundTrip(t *testing.T) {
	data, err := yaml.Marshal(DumpDefaults())
	require.NoError(t, err)

	var cfg Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	opts, err := Options(&cfg, "")
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultOptions(), opts, "round trip changed options")
	assert.True(t, cfg.ColorEnabled(), "expected color: true in dumped defaults")
	assert.Len(t, cfg.Files, 2, "expected default file patterns")
}
