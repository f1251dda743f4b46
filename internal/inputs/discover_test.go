package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover_MatchesRelativePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "README.md"), "# r")
	writeFile(t, filepath.Join(dir, "essays", "one.txt"), "one")
	writeFile(t, filepath.Join(dir, "essays", "deep", "two.txt"), "two")
	writeFile(t, filepath.Join(dir, "notes.rst"), "n")

	files, err := Discover([]string{"**/*.txt", "*.md"}, dir, ResolveOpts{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "README.md"),
		filepath.Join(dir, "essays", "deep", "two.txt"),
		filepath.Join(dir, "essays", "one.txt"),
	}, files)
}

func TestDiscover_SkipsHiddenDirectories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".git", "notes.md"), "x")
	writeFile(t, filepath.Join(dir, "keep.md"), "k")

	files, err := Discover([]string{"**/*.md"}, dir, ResolveOpts{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
}

func TestDiscover_NoPatterns(t *testing.T) {
	files, err := Discover(nil, t.TempDir(), ResolveOpts{})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestDiscover_InvalidPatternIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "a")

	files, err := Discover([]string{"[", "*.md"}, dir, ResolveOpts{})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.md")}, files)
}

func TestDiscover_DefaultBaseDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.md"), "a")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	files, err := Discover([]string{"*.md"}, "", ResolveOpts{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.md"}, files)
}

func TestDiscover_Exclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.md"), "k")
	writeFile(t, filepath.Join(dir, "CHANGELOG.md"), "c")
	writeFile(t, filepath.Join(dir, "drafts", "wip.md"), "w")

	files, err := Discover([]string{"**/*.md"}, dir, ResolveOpts{Exclude: []string{"CHANGELOG.md", "drafts"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
}
