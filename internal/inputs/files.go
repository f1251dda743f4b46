// Package inputs resolves command-line arguments into passages to analyze.
package inputs

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
)

// isMarkdown returns true if the file extension is .md or .markdown.
func isMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// isPassage returns true for files picked up when walking directories.
func isPassage(path string) bool {
	return isMarkdown(path) || strings.EqualFold(filepath.Ext(path), ".txt")
}

// hasGlobChars returns true if the string contains glob meta-characters.
func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[{")
}

// ResolveOpts controls how file resolution behaves.
type ResolveOpts struct {
	// Exclude is a list of glob patterns. Walked or globbed files whose
	// path or base name matches are skipped. Explicitly named files are
	// never excluded.
	Exclude []string
}

// ResolveFiles takes positional arguments and returns deduplicated, sorted
// passage file paths. It supports individual files, directories (recursive
// *.txt, *.md and *.markdown), and glob patterns. Returns an error for
// nonexistent paths (that are not glob patterns).
func ResolveFiles(args []string, opts ResolveOpts) ([]string, error) {
	exclude, err := compile(opts.Exclude)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var result []string

	addFile := func(path string) {
		abs, err := filepath.Abs(path)
		if err != nil {
			abs = path
		}
		if !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
	}

	for _, arg := range args {
		if err := resolveArg(arg, exclude, addFile); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func compile(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(p, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func excluded(globs []glob.Glob, path string) bool {
	slashed := filepath.ToSlash(filepath.Clean(path))
	base := filepath.Base(path)
	for _, g := range globs {
		if g.Match(slashed) || g.Match(base) {
			return true
		}
	}
	return false
}

// resolveArg resolves a single argument (glob, directory, or file) and calls
// addFile for each passage file found.
func resolveArg(arg string, exclude []glob.Glob, addFile func(string)) error {
	if hasGlobChars(arg) {
		return resolveGlob(arg, exclude, addFile)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}

	if info.IsDir() {
		return walkDir(arg, exclude, addFile)
	}

	addFile(arg)
	return nil
}

// resolveGlob expands a glob pattern, including "**" segments, and adds
// matching passage files.
func resolveGlob(pattern string, exclude []glob.Glob, addFile func(string)) error {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := walkDir(m, exclude, addFile); err != nil {
				return err
			}
		} else if isPassage(m) && !excluded(exclude, m) {
			addFile(m)
		}
	}
	return nil
}

// walkDir recursively walks a directory and adds all passage files.
func walkDir(dir string, exclude []glob.Glob, addFile func(string)) error {
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if path != dir && (strings.HasPrefix(info.Name(), ".") || excluded(exclude, path)) {
				return filepath.SkipDir
			}
			return nil
		}
		if isPassage(path) && !excluded(exclude, path) {
			addFile(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", dir, err)
	}
	return nil
}
