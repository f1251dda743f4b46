package inputs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// Discover walks baseDir and returns files whose slash-separated path
// relative to baseDir matches any of the doublestar patterns. Hidden
// directories and files matching opts.Exclude are skipped. Invalid
// patterns are ignored. Results are sorted and joined onto baseDir.
func Discover(patterns []string, baseDir string, opts ResolveOpts) ([]string, error) {
	valid := validatePatterns(patterns)
	if len(valid) == 0 {
		return nil, nil
	}
	if baseDir == "" {
		baseDir = "."
	}

	exclude, err := compile(opts.Exclude)
	if err != nil {
		return nil, err
	}

	w := &walker{
		base:     baseDir,
		patterns: valid,
		exclude:  exclude,
	}
	if err := filepath.Walk(baseDir, w.visit); err != nil {
		return nil, err
	}

	sort.Strings(w.result)
	return w.result, nil
}

// validatePatterns returns patterns that are syntactically valid.
func validatePatterns(patterns []string) []string {
	valid := make([]string, 0, len(patterns))
	for _, p := range patterns {
		if doublestar.ValidatePattern(p) {
			valid = append(valid, p)
		}
	}
	return valid
}

type walker struct {
	base     string
	patterns []string
	exclude  []glob.Glob
	result   []string
}

func (w *walker) visit(path string, info os.FileInfo, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.base, path)
	if err != nil || rel == "." {
		return nil
	}

	if info.IsDir() {
		if strings.HasPrefix(info.Name(), ".") || excluded(w.exclude, rel) {
			return filepath.SkipDir
		}
		return nil
	}

	if w.matchesAny(filepath.ToSlash(rel)) && !excluded(w.exclude, rel) {
		w.result = append(w.result, filepath.Join(w.base, rel))
	}
	return nil
}

func (w *walker) matchesAny(rel string) bool {
	for _, p := range w.patterns {
		if ok, err := doublestar.Match(p, rel); err == nil && ok {
			return true
		}
	}
	return false
}
