// Package textstat computes readability statistics for text: word, sentence,
// and syllable counts, the published readability formulas, and a consensus
// grade estimate across all of them.
//
// The package-level functions use a shared default Scorer configured for
// American English:
//
//	ease := textstat.FleschReadingEase(text)
//
// Construct a Scorer for other languages or custom word lists:
//
//	s := textstat.New(textstat.WithLanguage("fr"))
package textstat

// Default is the shared scorer behind the package-level functions.
var Default = New()

// CharCount returns the number of characters in text. Spaces are excluded
// unless ignoreSpaces is false.
func CharCount(text string, ignoreSpaces bool) int {
	return Default.CharCount(text, ignoreSpaces)
}

// LexiconCount returns the number of words in text. Punctuation is removed
// from words unless removePunctuation is false.
func LexiconCount(text string, removePunctuation bool) int {
	return Default.LexiconCount(text, removePunctuation)
}

// SentenceCount returns the number of sentences in text.
func SentenceCount(text string) int {
	return Default.SentenceCount(text)
}

// SyllableCount returns the total number of syllables in text.
func SyllableCount(text string) (int, error) {
	return Default.SyllableCount(text)
}

// PolysyllabCount returns the number of words in text with three or more
// syllables.
func PolysyllabCount(text string) (int, error) {
	return Default.PolysyllabCount(text)
}

// AvgSentenceLength returns the average number of words per sentence.
func AvgSentenceLength(text string) float64 {
	return Default.AvgSentenceLength(text)
}

// AvgSyllablesPerWord returns the average number of syllables per word.
func AvgSyllablesPerWord(text string) (float64, error) {
	return Default.AvgSyllablesPerWord(text)
}

// AvgLetterPerWord returns the average number of characters per word.
func AvgLetterPerWord(text string) float64 {
	return Default.AvgLetterPerWord(text)
}

// AvgSentencePerWord returns the average number of sentences per word.
func AvgSentencePerWord(text string) float64 {
	return Default.AvgSentencePerWord(text)
}

// DifficultWords returns the number of unique words in text that are absent
// from the easy-word list and have more than one syllable.
func DifficultWords(text string) (int, error) {
	return Default.DifficultWords(text)
}

// DifficultWordList returns the difficult words in text, sorted.
func DifficultWordList(text string) ([]string, error) {
	return Default.DifficultWordList(text)
}

// FleschReadingEase returns the Flesch Reading Ease score of text.
func FleschReadingEase(text string) (float64, error) {
	return Default.FleschReadingEase(text)
}

// FleschKincaidGrade returns the Flesch-Kincaid grade level of text.
func FleschKincaidGrade(text string) (float64, error) {
	return Default.FleschKincaidGrade(text)
}

// SMOGIndex returns the SMOG grade of text.
func SMOGIndex(text string) (float64, error) {
	return Default.SMOGIndex(text)
}

// ColemanLiauIndex returns the Coleman-Liau grade of text.
func ColemanLiauIndex(text string) float64 {
	return Default.ColemanLiauIndex(text)
}

// AutomatedReadabilityIndex returns the ARI grade of text.
func AutomatedReadabilityIndex(text string) float64 {
	return Default.AutomatedReadabilityIndex(text)
}

// LinsearWriteFormula returns the Linsear Write grade of text.
func LinsearWriteFormula(text string) (float64, error) {
	return Default.LinsearWriteFormula(text)
}

// DaleChallReadabilityScore returns the Dale-Chall score of text.
func DaleChallReadabilityScore(text string) (float64, error) {
	return Default.DaleChallReadabilityScore(text)
}

// GunningFog returns the Gunning Fog grade of text.
func GunningFog(text string) (float64, error) {
	return Default.GunningFog(text)
}

// LIX returns the LIX score of text.
func LIX(text string) (float64, error) {
	return Default.LIX(text)
}

// FORCAST returns the FORCAST grade of text.
func FORCAST(text string) (int, error) {
	return Default.FORCAST(text)
}

// PowersSumnerKearl returns the Powers-Sumner-Kearl grade of text.
func PowersSumnerKearl(text string) (float64, error) {
	return Default.PowersSumnerKearl(text)
}

// Spache returns the Spache readability score of text.
func Spache(text string) (float64, error) {
	return Default.Spache(text)
}

// TextStandard returns the consensus grade level of text, formatted as
// e.g. "9th and 10th grade".
func TextStandard(text string) (string, error) {
	return Default.TextStandard(text)
}

// TextStandardFloat returns the consensus grade level of text as a number.
func TextStandardFloat(text string) (float64, error) {
	return Default.TextStandardFloat(text)
}
