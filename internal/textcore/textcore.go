// Package textcore implements the basic text measurements every readability
// formula builds on: character, word, sentence, and syllable counts.
//
// Word splitting is whitespace-based and the punctuation filter keeps ASCII
// letters only. Words written in non-ASCII letters are dropped by that
// filter; the readability formulas this package feeds were calibrated on
// English text and existing callers depend on the behavior.
package textcore

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// sentenceBoundary matches a sentence terminator, optional closing quotes or
// brackets, a space or newline separator, and an uppercase letter starting
// the next sentence. Abbreviations such as "Dr." are not followed by an
// uppercase letter after the separator in running prose and are therefore
// undercounted. That is a known limit of the heuristic, not a bug.
var sentenceBoundary = regexp.MustCompile(`[.?!]['"”’)\]»]*[ \n][A-Z]`)

var (
	nonLetter = regexp.MustCompile(`[^a-zA-Z\s]`)
	spaceRun  = regexp.MustCompile(`\s+`)
)

// Hyphenator renders a word as syllable segments for a language.
// Implementations return at least one segment for a non-empty word and an
// error when the language is not supported.
type Hyphenator interface {
	Hyphenate(word, language string) ([]string, error)
}

// CharCount returns the number of characters in text. When ignoreSpaces is
// true, plain space characters are excluded from the count.
func CharCount(text string, ignoreSpaces bool) int {
	if ignoreSpaces {
		text = strings.ReplaceAll(text, " ", "")
	}
	return utf8.RuneCountInString(text)
}

// LexiconCount returns the number of words in text. When removePunctuation
// is true, every character that is not an ASCII letter or whitespace is
// stripped and whitespace runs collapse to single spaces before splitting.
func LexiconCount(text string, removePunctuation bool) int {
	if removePunctuation {
		text = nonLetter.ReplaceAllString(text, "")
		text = spaceRun.ReplaceAllString(text, " ")
	}
	return len(strings.Fields(text))
}

// SentenceCount returns the number of sentence boundaries found in text,
// plus one. Any input, including the empty string, reports at least one
// sentence.
func SentenceCount(text string) int {
	return len(sentenceBoundary.FindAllStringIndex(text, -1)) + 1
}

// Round rounds v half away from zero at the given number of decimals.
func Round(v float64, places int) float64 {
	scale := math.Pow10(places)
	return math.Round(v*scale) / scale
}

// RatioOrZero returns num/den rounded at places decimals, or 0 when the
// denominator is zero.
func RatioOrZero(num, den float64, places int) float64 {
	if den == 0 {
		return 0
	}
	return Round(num/den, places)
}

// Engine computes syllable-based measurements through a Hyphenator.
type Engine struct {
	Hyph Hyphenator
}

// SyllableCount returns the total syllable count of text: the text is
// lower-cased and split on whitespace, and each token contributes its
// hyphenation break count plus one. Hyphenation failures propagate.
func (e *Engine) SyllableCount(text, language string) (int, error) {
	if text == "" {
		return 0, nil
	}
	total := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		segments, err := e.Hyph.Hyphenate(token, language)
		if err != nil {
			return 0, err
		}
		total += len(segments)
	}
	return total, nil
}

// PolysyllabCount returns the number of whitespace-delimited tokens in text
// with a syllable count of three or more.
func (e *Engine) PolysyllabCount(text, language string) (int, error) {
	if text == "" {
		return 0, nil
	}
	count := 0
	for _, token := range strings.Fields(strings.ToLower(text)) {
		segments, err := e.Hyph.Hyphenate(token, language)
		if err != nil {
			return 0, err
		}
		if len(segments) >= 3 {
			count++
		}
	}
	return count, nil
}
