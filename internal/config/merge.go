package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Scalar fields from the
// loaded config override the defaults when set; Ignore and Overrides come
// from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	if loaded == nil {
		out := *defaults
		return &out
	}

	out := *defaults
	if loaded.Language != "" {
		out.Language = loaded.Language
	}
	if loaded.DictionaryPath != "" {
		out.DictionaryPath = loaded.DictionaryPath
	}
	if len(loaded.Metrics) > 0 {
		out.Metrics = loaded.Metrics
	}
	if loaded.Markdown != nil {
		out.Markdown = loaded.Markdown
	}
	out.Ignore = loaded.Ignore
	out.Overrides = loaded.Overrides
	return &out
}

// matchesAny returns true if filePath matches any of the given glob patterns.
func matchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
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
