// Package hyphen provides the syllable segmentation collaborator used by the
// metrics engine. The bundled hyphenator is heuristic: it splits words at
// vowel-group boundaries with language-specific vowel tables, which is good
// enough for syllable estimates but is not a dictionary hyphenator.
package hyphen

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedLanguage reports a language code with no vowel table.
var ErrUnsupportedLanguage = errors.New("hyphen: unsupported language")

// vowelTables maps supported language codes to their vowel runes.
var vowelTables = map[string]string{
	"en":    "aeiouy",
	"en_us": "aeiouy",
	"en_uk": "aeiouy",
	"fr":    "aeiouyàâéèêëîïôûùü",
	"de":    "aeiouyäöü",
	"es":    "aeiouáéíóúü",
	"it":    "aeiouàèéìòù",
	"pl":    "aeiouyąęó",
}

// span marks an inclusive rune range of one vowel group.
type span struct {
	start, end int
}

// Heuristic segments words on vowel-group boundaries.
type Heuristic struct{}

// New returns the bundled heuristic hyphenator.
func New() *Heuristic {
	return &Heuristic{}
}

// Languages returns the sorted language codes the hyphenator supports.
func Languages() []string {
	langs := make([]string, 0, len(vowelTables))
	for lang := range vowelTables {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// Hyphenate splits word into syllable segments. Words without any vowel,
// including bare numbers and punctuation tokens, come back as a single
// segment. An unknown language code returns ErrUnsupportedLanguage.
func (h *Heuristic) Hyphenate(word, language string) ([]string, error) {
	vowels, ok := vowelTables[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	runes := []rune(strings.ToLower(word))
	groups := vowelGroups(runes, vowels)
	if len(groups) == 0 {
		return []string{string(runes)}, nil
	}
	if strings.HasPrefix(language, "en") {
		groups = adjustEnglish(runes, groups)
	}

	segments := make([]string, 0, len(groups))
	last := 0
	for i := 0; i < len(groups)-1; i++ {
		cut := cutPoint(groups[i], groups[i+1])
		segments = append(segments, string(runes[last:cut]))
		last = cut
	}
	segments = append(segments, string(runes[last:]))
	return segments, nil
}

// vowelGroups finds maximal runs of vowels in runes.
func vowelGroups(runes []rune, vowels string) []span {
	var groups []span
	prevVowel := false
	for i, r := range runes {
		isVowel := strings.ContainsRune(vowels, r)
		switch {
		case isVowel && !prevVowel:
			groups = append(groups, span{i, i})
		case isVowel:
			groups[len(groups)-1].end = i
		}
		prevVowel = isVowel
	}
	return groups
}

// adjustEnglish merges a trailing silent "e" into the previous syllable.
// Consonant+"le" endings keep their syllable ("ta-ble", "ap-ple").
func adjustEnglish(runes []rune, groups []span) []span {
	n := len(runes)
	if n < 2 || runes[n-1] != 'e' || len(groups) < 2 {
		return groups
	}
	last := groups[len(groups)-1]
	if last.start != n-1 {
		return groups
	}
	if n >= 3 && runes[n-2] == 'l' && !strings.ContainsRune("aeiouy", runes[n-3]) {
		return groups
	}
	return groups[:len(groups)-1]
}

// cutPoint picks the break position between two vowel groups: after the
// first consonant when two or more separate them, before it when there is
// exactly one.
func cutPoint(cur, next span) int {
	gap := next.start - cur.end - 1
	if gap >= 2 {
		return cur.end + 2
	}
	return next.start - gap
}
