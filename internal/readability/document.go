// Package readability implements the published readability formulas and the
// consensus grade estimator on top of the basic metrics engine. Formulas are
// exposed both as plain functions over a Document and through a registry
// that drives the CLI.
package readability

import (
	"regexp"
	"sort"
	"strings"

	"github.com/kupolak/textstat/internal/textcore"
	"github.com/kupolak/textstat/internal/wordlist"
)

// keepAlnum strips everything but ASCII letters, digits, and spaces before
// difficult-word candidate splitting.
var keepAlnum = regexp.MustCompile(`[^a-z0-9 ]`)

// Document is the shared input for formula computation over one text.
// Expensive derived counts are computed lazily and cached, so a consensus
// run does not re-hyphenate the text once per formula.
type Document struct {
	Text     string
	Language string

	engine *textcore.Engine
	words  *wordlist.Store

	charCount      int
	charReady      bool
	lexiconCount   int
	lexiconReady   bool
	sentenceCount  int
	sentenceReady  bool
	syllableCount  int
	syllableReady  bool
	syllableErr    error
	polysyllabs    int
	polysyllabsOK  bool
	polysyllabsErr error
	difficult      map[string]struct{}
	difficultOK    bool
	difficultErr   error
}

// NewDocument wraps text for metric computation in the given language.
func NewDocument(text, language string, engine *textcore.Engine, words *wordlist.Store) *Document {
	return &Document{
		Text:     text,
		Language: language,
		engine:   engine,
		words:    words,
	}
}

// CharCount returns the character count of the text, spaces excluded.
func (d *Document) CharCount() int {
	if !d.charReady {
		d.charCount = textcore.CharCount(d.Text, true)
		d.charReady = true
	}
	return d.charCount
}

// LexiconCount returns the word count with punctuation removed.
func (d *Document) LexiconCount() int {
	if !d.lexiconReady {
		d.lexiconCount = textcore.LexiconCount(d.Text, true)
		d.lexiconReady = true
	}
	return d.lexiconCount
}

// SentenceCount returns the sentence count of the text.
func (d *Document) SentenceCount() int {
	if !d.sentenceReady {
		d.sentenceCount = textcore.SentenceCount(d.Text)
		d.sentenceReady = true
	}
	return d.sentenceCount
}

// SyllableCount returns the total syllable count of the text.
func (d *Document) SyllableCount() (int, error) {
	if !d.syllableReady {
		d.syllableCount, d.syllableErr = d.engine.SyllableCount(d.Text, d.Language)
		d.syllableReady = true
	}
	return d.syllableCount, d.syllableErr
}

// PolysyllabCount returns the number of tokens with three or more syllables.
func (d *Document) PolysyllabCount() (int, error) {
	if !d.polysyllabsOK {
		d.polysyllabs, d.polysyllabsErr = d.engine.PolysyllabCount(d.Text, d.Language)
		d.polysyllabsOK = true
	}
	return d.polysyllabs, d.polysyllabsErr
}

// DifficultWordSet returns the set of unique difficult words: tokens absent
// from the language's easy-word list with a syllable count above one.
// Callers must not mutate the returned set.
func (d *Document) DifficultWordSet() (map[string]struct{}, error) {
	if d.difficultOK {
		return d.difficult, d.difficultErr
	}
	d.difficult, d.difficultErr = d.computeDifficult()
	d.difficultOK = true
	return d.difficult, d.difficultErr
}

// DifficultWords returns the number of unique difficult words.
func (d *Document) DifficultWords() (int, error) {
	set, err := d.DifficultWordSet()
	if err != nil {
		return 0, err
	}
	return len(set), nil
}

// DifficultWordList returns the difficult words in sorted order.
func (d *Document) DifficultWordList() ([]string, error) {
	set, err := d.DifficultWordSet()
	if err != nil {
		return nil, err
	}
	list := make([]string, 0, len(set))
	for word := range set {
		list = append(list, word)
	}
	sort.Strings(list)
	return list, nil
}

func (d *Document) computeDifficult() (map[string]struct{}, error) {
	easy, err := d.words.EasyWords(d.Language)
	if err != nil {
		return nil, err
	}

	cleaned := keepAlnum.ReplaceAllString(strings.ToLower(d.Text), "")
	set := make(map[string]struct{})
	for _, token := range strings.Fields(cleaned) {
		if _, ok := easy[token]; ok {
			continue
		}
		if _, ok := set[token]; ok {
			continue
		}
		segments, err := d.engine.Hyph.Hyphenate(token, d.Language)
		if err != nil {
			return nil, err
		}
		if len(segments) > 1 {
			set[token] = struct{}{}
		}
	}
	return set, nil
}

// AvgSentenceLength returns words per sentence, rounded to one decimal.
func (d *Document) AvgSentenceLength() float64 {
	return textcore.RatioOrZero(float64(d.LexiconCount()), float64(d.SentenceCount()), 1)
}

// AvgSyllablesPerWord returns syllables per word, rounded to one decimal.
func (d *Document) AvgSyllablesPerWord() (float64, error) {
	syllables, err := d.SyllableCount()
	if err != nil {
		return 0, err
	}
	return textcore.RatioOrZero(float64(syllables), float64(d.LexiconCount()), 1), nil
}

// AvgLetterPerWord returns characters per word, rounded to two decimals.
func (d *Document) AvgLetterPerWord() float64 {
	return textcore.RatioOrZero(float64(d.CharCount()), float64(d.LexiconCount()), 2)
}

// AvgSentencePerWord returns sentences per word, rounded to two decimals.
func (d *Document) AvgSentencePerWord() float64 {
	return textcore.RatioOrZero(float64(d.SentenceCount()), float64(d.LexiconCount()), 2)
}
