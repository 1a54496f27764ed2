// Package discovery finds text files by expanding glob patterns from config.
package discovery

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns matches the file types textstat measures out of the box.
var DefaultPatterns = []string{"**/*.txt", "**/*.md"}

// Options controls how file discovery behaves.
type Options struct {
	// Patterns is the list of glob patterns to match files against.
	// An empty or nil list means DefaultPatterns.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// Ignore filters out files whose base-relative path matches any of
	// these glob patterns.
	Ignore []string
}

// Discover walks BaseDir and returns files matching any of the configured
// glob patterns. Results are deduplicated and sorted.
func Discover(opts Options) ([]string, error) {
	patterns := opts.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}

	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	validPatterns := validatePatterns(patterns)
	if len(validPatterns) == 0 {
		return nil, nil
	}

	w := &walker{
		absBase:  absBase,
		patterns: validPatterns,
		ignore:   validatePatterns(opts.Ignore),
		seen:     make(map[string]bool),
	}

	if err := filepath.Walk(absBase, w.visit); err != nil {
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

// walker holds state for the directory walk.
type walker struct {
	absBase  string
	patterns []string
	ignore   []string
	seen     map[string]bool
	result   []string
}

// visit is the filepath.WalkFunc callback.
func (w *walker) visit(path string, info os.FileInfo, walkErr error) error {
	if walkErr != nil {
		return walkErr
	}

	rel, err := filepath.Rel(w.absBase, path)
	if err != nil || rel == "." {
		return nil
	}
	rel = filepath.ToSlash(rel)

	if info.IsDir() {
		return nil
	}

	if matchesAny(w.ignore, rel) {
		return nil
	}

	if matchesAny(w.patterns, rel) {
		w.addFile(path)
	}
	return nil
}

// matchesAny returns true if rel matches any of the given patterns.
func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		matched, err := doublestar.Match(p, rel)
		if err == nil && matched {
			return true
		}
	}
	return false
}

// addFile adds a file to the result set if not already seen.
func (w *walker) addFile(path string) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}
	if !w.seen[absPath] {
		w.seen[absPath] = true
		w.result = append(w.result, path)
	}
}
