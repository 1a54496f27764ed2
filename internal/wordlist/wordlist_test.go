package wordlist_test

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/kupolak/textstat/internal/wordlist"
)

func TestEasyWords_Bundled(t *testing.T) {
	store := wordlist.NewStore()
	set, err := store.EasyWords("en_us")
	if err != nil {
		t.Fatalf("EasyWords: %v", err)
	}
	if len(set) == 0 {
		t.Fatal("expected a non-empty word set")
	}
	for _, word := range []string{"the", "cat", "through"} {
		if _, ok := set[word]; !ok {
			t.Errorf("expected %q in en_us set", word)
		}
	}
}

func TestEasyWords_AllBundledLanguagesLoad(t *testing.T) {
	store := wordlist.NewStore()
	for _, lang := range []string{"en_us", "en_uk", "fr", "de", "es", "it", "pl"} {
		set, err := store.EasyWords(lang)
		if err != nil {
			t.Errorf("EasyWords(%q): %v", lang, err)
			continue
		}
		if len(set) == 0 {
			t.Errorf("EasyWords(%q): empty set", lang)
		}
	}
}

func TestEasyWords_UnknownLanguage(t *testing.T) {
	store := wordlist.NewStore()
	_, err := store.EasyWords("xx")
	if !errors.Is(err, wordlist.ErrNoWordList) {
		t.Errorf("got %v, want ErrNoWordList", err)
	}
}

func TestEasyWords_CachesPerLanguage(t *testing.T) {
	store := wordlist.NewStore()
	if store.Size() != 0 {
		t.Fatalf("fresh store size = %d, want 0", store.Size())
	}
	if _, err := store.EasyWords("en_us"); err != nil {
		t.Fatalf("EasyWords: %v", err)
	}
	if _, err := store.EasyWords("en_us"); err != nil {
		t.Fatalf("EasyWords: %v", err)
	}
	if store.Size() != 1 {
		t.Errorf("size = %d, want 1", store.Size())
	}
	if langs := store.Languages(); len(langs) != 1 || langs[0] != "en_us" {
		t.Errorf("languages = %v, want [en_us]", langs)
	}
}

func TestClear_DropsCachedSets(t *testing.T) {
	store := wordlist.NewStore()
	if _, err := store.EasyWords("en_us"); err != nil {
		t.Fatalf("EasyWords: %v", err)
	}
	store.Clear()
	if store.Size() != 0 {
		t.Errorf("size after Clear = %d, want 0", store.Size())
	}
}

func TestNewStoreFS_Override(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.txt": &fstest.MapFile{
			Data: []byte("# comment\nAlpha\n\nbeta\n"),
		},
	}
	store := wordlist.NewStoreFS(fsys)

	set, err := store.EasyWords("tiny")
	if err != nil {
		t.Fatalf("EasyWords: %v", err)
	}
	if len(set) != 2 {
		t.Fatalf("got %d words, want 2: %v", len(set), set)
	}
	// Words are lower-cased on load.
	if _, ok := set["alpha"]; !ok {
		t.Error("expected alpha in set")
	}
	if _, ok := set["beta"]; !ok {
		t.Error("expected beta in set")
	}

	// The override store does not see bundled lists.
	if _, err := store.EasyWords("en_us"); !errors.Is(err, wordlist.ErrNoWordList) {
		t.Errorf("got %v, want ErrNoWordList", err)
	}
}

func TestEasyWords_ConcurrentFirstAccess(t *testing.T) {
	store := wordlist.NewStore()
	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := store.EasyWords("en_us")
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent EasyWords: %v", err)
		}
	}
	if store.Size() != 1 {
		t.Errorf("size = %d, want 1", store.Size())
	}
}
