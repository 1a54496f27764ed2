// Package wordlist loads per-language easy-word sets used by the
// difficult-word classifier. Lists are bundled with the binary; a Store can
// also be pointed at a directory of replacement lists.
package wordlist

import (
	"bufio"
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
)

//go:embed words/*.txt
var bundled embed.FS

// ErrNoWordList reports a language with no bundled (or overridden) list.
var ErrNoWordList = errors.New("wordlist: no word list for language")

// Store caches per-language easy-word sets. A language's list is read once
// and the cached set is safe for concurrent readers afterwards. Callers
// must treat returned sets as read-only.
type Store struct {
	fsys fs.FS
	dir  string

	mu   sync.RWMutex
	sets map[string]map[string]struct{}
}

// NewStore returns a Store backed by the bundled word lists.
func NewStore() *Store {
	return &Store{
		fsys: bundled,
		dir:  "words",
		sets: make(map[string]map[string]struct{}),
	}
}

// NewStoreDir returns a Store reading <language>.txt files from dir instead
// of the bundled lists.
func NewStoreDir(dir string) *Store {
	return NewStoreFS(os.DirFS(dir))
}

// NewStoreFS returns a Store reading <language>.txt files from fsys.
func NewStoreFS(fsys fs.FS) *Store {
	return &Store{
		fsys: fsys,
		dir:  ".",
		sets: make(map[string]map[string]struct{}),
	}
}

// EasyWords returns the easy-word set for a language, loading and caching
// it on first use. Loading twice under concurrent first access is possible
// and harmless: the parsed set is a pure function of the list file.
func (s *Store) EasyWords(language string) (map[string]struct{}, error) {
	s.mu.RLock()
	set, ok := s.sets[language]
	s.mu.RUnlock()
	if ok {
		return set, nil
	}

	data, err := fs.ReadFile(s.fsys, path.Join(s.dir, language+".txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNoWordList, language)
	}
	set = parseWords(data)

	s.mu.Lock()
	if cached, ok := s.sets[language]; ok {
		set = cached
	} else {
		s.sets[language] = set
	}
	s.mu.Unlock()
	return set, nil
}

// Clear drops every cached language set.
func (s *Store) Clear() {
	s.mu.Lock()
	s.sets = make(map[string]map[string]struct{})
	s.mu.Unlock()
}

// Size returns the number of cached language sets.
func (s *Store) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sets)
}

// Languages returns the sorted codes of the currently cached languages.
func (s *Store) Languages() []string {
	s.mu.RLock()
	langs := make([]string, 0, len(s.sets))
	for lang := range s.sets {
		langs = append(langs, lang)
	}
	s.mu.RUnlock()
	sort.Strings(langs)
	return langs
}

// parseWords reads one word per line, lower-cased. Blank lines and lines
// starting with "#" are skipped.
func parseWords(data []byte) map[string]struct{} {
	set := make(map[string]struct{})
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		set[strings.ToLower(word)] = struct{}{}
	}
	return set
}
