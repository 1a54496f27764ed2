package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	parent := filepath.Dir(path)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		t.Fatalf("creating directory %s: %v", parent, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestDiscover_FindsTextFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")
	writeFile(t, dir, "docs/guide.txt", "A guide.\n")
	writeFile(t, dir, "src/main.go", "package main\n")

	files, err := Discover(Options{
		Patterns: []string{"**/*.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}

	found := make(map[string]bool)
	for _, f := range files {
		found[filepath.Base(f)] = true
	}
	if !found["notes.txt"] {
		t.Error("expected notes.txt in results")
	}
	if !found["guide.txt"] {
		t.Error("expected guide.txt in results")
	}
}

func TestDiscover_DefaultPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")
	writeFile(t, dir, "README.md", "# Hello\n")
	writeFile(t, dir, "src/main.go", "package main\n")

	files, err := Discover(Options{BaseDir: dir})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files with default patterns, got %d: %v", len(files), files)
	}
}

func TestDiscover_IgnorePatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")
	writeFile(t, dir, "vendor/lib.txt", "Vendored.\n")

	files, err := Discover(Options{
		Patterns: []string{"**/*.txt"},
		BaseDir:  dir,
		Ignore:   []string{"vendor/**"},
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file (vendor ignored), got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "notes.txt" {
		t.Errorf("expected notes.txt, got %s", files[0])
	}
}

func TestDiscover_NoIgnoreIncludesAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")
	writeFile(t, dir, "vendor/lib.txt", "Vendored.\n")

	files, err := Discover(Options{
		Patterns: []string{"**/*.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %v", len(files), files)
	}
}

func TestDiscover_ResultsSorted(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "c.txt", "C\n")
	writeFile(t, dir, "a.txt", "A\n")
	writeFile(t, dir, "b.txt", "B\n")

	files, err := Discover(Options{
		Patterns: []string{"**/*.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("expected 3 files, got %d", len(files))
	}

	for i := 1; i < len(files); i++ {
		if files[i] < files[i-1] {
			t.Errorf("results not sorted: %v", files)
			break
		}
	}
}

func TestDiscover_SubdirectoryPattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs/guide.txt", "A guide.\n")
	writeFile(t, dir, "docs/api/ref.txt", "A reference.\n")
	writeFile(t, dir, "notes.txt", "Some notes.\n")

	files, err := Discover(Options{
		Patterns: []string{"docs/**/*.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files from docs/, got %d: %v", len(files), files)
	}

	for _, f := range files {
		if filepath.Base(f) == "notes.txt" {
			t.Error("notes.txt should not match docs/**/*.txt pattern")
		}
	}
}

func TestDiscover_ExactFilePattern(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")
	writeFile(t, dir, "draft.txt", "A draft.\n")

	files, err := Discover(Options{
		Patterns: []string{"notes.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
	if filepath.Base(files[0]) != "notes.txt" {
		t.Errorf("expected notes.txt, got %s", files[0])
	}
}

func TestDiscover_NoDuplicates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")

	// Multiple patterns that match the same file.
	files, err := Discover(Options{
		Patterns: []string{"**/*.txt", "notes.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file (no duplicates), got %d: %v", len(files), files)
	}
}

func TestDiscover_InvalidPatternsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "notes.txt", "Some notes.\n")

	files, err := Discover(Options{
		Patterns: []string{"[", "**/*.txt"},
		BaseDir:  dir,
	})
	if err != nil {
		t.Fatalf("Discover error: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d: %v", len(files), files)
	}
}
