package textstat

import (
	"io/fs"

	"github.com/kupolak/textstat/internal/hyphen"
	"github.com/kupolak/textstat/internal/readability"
	"github.com/kupolak/textstat/internal/textcore"
	"github.com/kupolak/textstat/internal/wordlist"
)

// Hyphenator splits a word into syllable segments for the given language
// code. The syllable count of a word is the number of segments.
type Hyphenator interface {
	Hyphenate(word, language string) ([]string, error)
}

// Scorer computes readability statistics for one configured language.
// A Scorer is safe for concurrent use.
type Scorer struct {
	language string
	engine   *textcore.Engine
	words    *wordlist.Store
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithLanguage sets the language code used for syllable counting and the
// easy-word list, e.g. "en_us", "fr", "de".
func WithLanguage(code string) Option {
	return func(s *Scorer) {
		s.language = code
	}
}

// WithHyphenator replaces the bundled heuristic hyphenator.
func WithHyphenator(h Hyphenator) Option {
	return func(s *Scorer) {
		s.engine = &textcore.Engine{Hyph: h}
	}
}

// WithDictionaryDir loads easy-word lists from dir instead of the bundled
// lists. The directory holds one <language>.txt file per language.
func WithDictionaryDir(dir string) Option {
	return func(s *Scorer) {
		s.words = wordlist.NewStoreDir(dir)
	}
}

// WithDictionaryFS loads easy-word lists from fsys instead of the bundled
// lists.
func WithDictionaryFS(fsys fs.FS) Option {
	return func(s *Scorer) {
		s.words = wordlist.NewStoreFS(fsys)
	}
}

// New returns a Scorer for American English with the bundled hyphenator and
// word lists, then applies the given options.
func New(opts ...Option) *Scorer {
	s := &Scorer{
		language: "en_us",
		engine:   &textcore.Engine{Hyph: hyphen.New()},
		words:    wordlist.NewStore(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Language returns the scorer's language code.
func (s *Scorer) Language() string {
	return s.language
}

// ClearCache drops the loaded word lists. They reload on next use, which
// matters after the files behind WithDictionaryDir change.
func (s *Scorer) ClearCache() {
	s.words.Clear()
}

// doc wraps text for one computation. The Document caches derived counts,
// so a formula that needs both syllables and words hyphenates only once.
func (s *Scorer) doc(text string) *readability.Document {
	return readability.NewDocument(text, s.language, s.engine, s.words)
}

// CharCount returns the number of characters in text. Spaces are excluded
// unless ignoreSpaces is false.
func (s *Scorer) CharCount(text string, ignoreSpaces bool) int {
	return textcore.CharCount(text, ignoreSpaces)
}

// LexiconCount returns the number of words in text. Punctuation is removed
// from words unless removePunctuation is false.
func (s *Scorer) LexiconCount(text string, removePunctuation bool) int {
	return textcore.LexiconCount(text, removePunctuation)
}

// SentenceCount returns the number of sentences in text.
func (s *Scorer) SentenceCount(text string) int {
	return textcore.SentenceCount(text)
}

// SyllableCount returns the total number of syllables in text.
func (s *Scorer) SyllableCount(text string) (int, error) {
	return s.doc(text).SyllableCount()
}

// PolysyllabCount returns the number of words in text with three or more
// syllables.
func (s *Scorer) PolysyllabCount(text string) (int, error) {
	return s.doc(text).PolysyllabCount()
}

// AvgSentenceLength returns the average number of words per sentence.
func (s *Scorer) AvgSentenceLength(text string) float64 {
	return s.doc(text).AvgSentenceLength()
}

// AvgSyllablesPerWord returns the average number of syllables per word.
func (s *Scorer) AvgSyllablesPerWord(text string) (float64, error) {
	return s.doc(text).AvgSyllablesPerWord()
}

// AvgLetterPerWord returns the average number of characters per word.
func (s *Scorer) AvgLetterPerWord(text string) float64 {
	return s.doc(text).AvgLetterPerWord()
}

// AvgSentencePerWord returns the average number of sentences per word.
func (s *Scorer) AvgSentencePerWord(text string) float64 {
	return s.doc(text).AvgSentencePerWord()
}

// DifficultWords returns the number of unique words in text that are absent
// from the easy-word list and have more than one syllable.
func (s *Scorer) DifficultWords(text string) (int, error) {
	return s.doc(text).DifficultWords()
}

// DifficultWordList returns the difficult words in text, sorted.
func (s *Scorer) DifficultWordList(text string) ([]string, error) {
	return s.doc(text).DifficultWordList()
}

// FleschReadingEase returns the Flesch Reading Ease score of text.
func (s *Scorer) FleschReadingEase(text string) (float64, error) {
	return readability.FleschReadingEase(s.doc(text))
}

// FleschKincaidGrade returns the Flesch-Kincaid grade level of text.
func (s *Scorer) FleschKincaidGrade(text string) (float64, error) {
	return readability.FleschKincaidGrade(s.doc(text))
}

// SMOGIndex returns the SMOG grade of text.
func (s *Scorer) SMOGIndex(text string) (float64, error) {
	return readability.SMOGIndex(s.doc(text))
}

// ColemanLiauIndex returns the Coleman-Liau grade of text.
func (s *Scorer) ColemanLiauIndex(text string) float64 {
	return readability.ColemanLiauIndex(s.doc(text))
}

// AutomatedReadabilityIndex returns the ARI grade of text.
func (s *Scorer) AutomatedReadabilityIndex(text string) float64 {
	return readability.AutomatedReadabilityIndex(s.doc(text))
}

// LinsearWriteFormula returns the Linsear Write grade of text.
func (s *Scorer) LinsearWriteFormula(text string) (float64, error) {
	return readability.LinsearWriteFormula(s.doc(text))
}

// DaleChallReadabilityScore returns the Dale-Chall score of text.
func (s *Scorer) DaleChallReadabilityScore(text string) (float64, error) {
	return readability.DaleChallScore(s.doc(text))
}

// GunningFog returns the Gunning Fog grade of text.
func (s *Scorer) GunningFog(text string) (float64, error) {
	return readability.GunningFog(s.doc(text))
}

// LIX returns the LIX score of text.
func (s *Scorer) LIX(text string) (float64, error) {
	return readability.LIX(s.doc(text))
}

// FORCAST returns the FORCAST grade of text.
func (s *Scorer) FORCAST(text string) (int, error) {
	return readability.FORCAST(s.doc(text))
}

// PowersSumnerKearl returns the Powers-Sumner-Kearl grade of text.
func (s *Scorer) PowersSumnerKearl(text string) (float64, error) {
	return readability.PowersSumnerKearl(s.doc(text))
}

// Spache returns the Spache readability score of text.
func (s *Scorer) Spache(text string) (float64, error) {
	return readability.Spache(s.doc(text))
}

// TextStandard returns the consensus grade level of text, formatted as
// e.g. "9th and 10th grade".
func (s *Scorer) TextStandard(text string) (string, error) {
	return readability.TextStandard(s.doc(text))
}

// TextStandardFloat returns the consensus grade level of text as a number.
func (s *Scorer) TextStandardFloat(text string) (float64, error) {
	return readability.TextStandardFloat(s.doc(text))
}
