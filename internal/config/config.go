// Package config loads and resolves .textstat.yml project configuration.
package config

// Config is the top-level configuration.
type Config struct {
	// Language is the default language code for word lists and
	// hyphenation, e.g. "en_us".
	Language string `yaml:"language"`

	// DictionaryPath points at a directory of replacement easy-word
	// lists, one <language>.txt per language. Empty means the bundled
	// lists.
	DictionaryPath string `yaml:"dictionary-path"`

	// Metrics selects the metrics to compute by name or ID. Empty means
	// the default selection.
	Metrics []string `yaml:"metrics"`

	// Markdown strips Markdown markup before measuring.
	Markdown *bool `yaml:"markdown"`

	Ignore    []string   `yaml:"ignore"`
	Overrides []Override `yaml:"overrides"`
}

// Override applies a different language to files matching glob patterns.
type Override struct {
	Files    []string `yaml:"files"`
	Language string   `yaml:"language"`
}

// LanguageFor returns the effective language for a file path. Overrides
// apply in order; the last matching override wins.
func (c *Config) LanguageFor(filePath string) string {
	lang := c.Language
	for _, o := range c.Overrides {
		if o.Language == "" {
			continue
		}
		if matchesAny(o.Files, filePath) {
			lang = o.Language
		}
	}
	return lang
}

// Ignored returns true if the file path matches an ignore pattern.
func (c *Config) Ignored(filePath string) bool {
	return matchesAny(c.Ignore, filePath)
}

// StripMarkdown reports whether Markdown stripping is enabled.
func (c *Config) StripMarkdown() bool {
	return c.Markdown != nil && *c.Markdown
}
