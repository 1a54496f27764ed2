package readability

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed RD*/README.md
var docsFS embed.FS

// DocInfo holds metadata extracted from a metric README's front matter.
type DocInfo struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Content     string `yaml:"-"`
}

// ListDocs returns all embedded metric docs sorted by ID.
func ListDocs() ([]DocInfo, error) {
	return listDocsFromFS(docsFS)
}

// LookupDoc finds a metric doc by ID (e.g. RD007) or name
// (e.g. flesch-reading-ease).
func LookupDoc(query string) (string, error) {
	docs, err := ListDocs()
	if err != nil {
		return "", err
	}

	q := strings.TrimSpace(query)
	for _, d := range docs {
		if strings.EqualFold(d.ID, q) || d.Name == strings.ToLower(q) {
			return d.Content, nil
		}
	}
	return "", fmt.Errorf("unknown metric %q", query)
}

func listDocsFromFS(fsys fs.FS) ([]DocInfo, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("reading metric docs: %w", err)
	}

	var docs []DocInfo
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := fs.ReadFile(fsys, entry.Name()+"/README.md")
		if err != nil {
			continue
		}

		info, err := parseFrontMatter(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing %s front matter: %w", entry.Name(), err)
		}
		info.Content = string(data)
		docs = append(docs, info)
	}

	sort.Slice(docs, func(i, j int) bool {
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

// parseFrontMatter extracts the YAML front matter between "---" markers.
func parseFrontMatter(content string) (DocInfo, error) {
	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return DocInfo{}, fmt.Errorf("missing front matter")
	}
	head, _, ok := strings.Cut(rest, "\n---")
	if !ok {
		return DocInfo{}, fmt.Errorf("unterminated front matter")
	}

	var info DocInfo
	if err := yaml.Unmarshal([]byte(head), &info); err != nil {
		return DocInfo{}, err
	}
	if info.ID == "" {
		return DocInfo{}, fmt.Errorf("front matter missing id")
	}
	if info.Name == "" {
		return DocInfo{}, fmt.Errorf("front matter missing name")
	}
	return info, nil
}
