package readability

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/kupolak/textstat/internal/textcore"
)

// ErrNoWords reports a formula whose reference form divides by a zero word
// count without a guard. Only LIX and Spache behave this way; the other
// formulas either guard the division (returning 0) or never divide by a
// count that can reach zero. The asymmetry is deliberate: existing callers
// depend on which formulas recover and which fail.
var ErrNoWords = errors.New("readability: no words in text")

// FleschReadingEase scores text on a 0-100 ease scale (higher is easier).
func FleschReadingEase(doc *Document) (float64, error) {
	asw, err := doc.AvgSyllablesPerWord()
	if err != nil {
		return 0, err
	}
	ease := 206.835 - 1.015*doc.AvgSentenceLength() - 84.6*asw
	return textcore.Round(ease, 2), nil
}

// FleschKincaidGrade estimates the US school grade required to read text.
func FleschKincaidGrade(doc *Document) (float64, error) {
	asw, err := doc.AvgSyllablesPerWord()
	if err != nil {
		return 0, err
	}
	grade := 0.39*doc.AvgSentenceLength() + 11.8*asw - 15.59
	return textcore.Round(grade, 1), nil
}

// SMOGIndex estimates grade level from polysyllable density. Texts with
// fewer than three sentences score 0.
func SMOGIndex(doc *Document) (float64, error) {
	sentences := doc.SentenceCount()
	if sentences < 3 {
		return 0, nil
	}
	poly, err := doc.PolysyllabCount()
	if err != nil {
		return 0, err
	}
	smog := 1.043*math.Sqrt(30*float64(poly)/float64(sentences)) + 3.1291
	return textcore.Round(smog, 1), nil
}

// ColemanLiauIndex estimates grade level from letters and sentences per 100
// words. The per-100-word intermediates are rounded to two decimals before
// combining, which the published coefficients assume.
func ColemanLiauIndex(doc *Document) float64 {
	letters := textcore.Round(doc.AvgLetterPerWord()*100, 2)
	sentences := textcore.Round(doc.AvgSentencePerWord()*100, 2)
	return textcore.Round(0.0588*letters-0.296*sentences-15.8, 2)
}

// AutomatedReadabilityIndex estimates grade level from characters per word
// and words per sentence. Returns 0 for text with no words.
func AutomatedReadabilityIndex(doc *Document) float64 {
	words := doc.LexiconCount()
	if words == 0 {
		return 0
	}
	a := float64(doc.CharCount()) / float64(words)
	b := float64(words) / float64(doc.SentenceCount())
	return textcore.Round(4.71*a+0.5*b-21.43, 1)
}

// LinsearWriteFormula estimates grade level over the first 101 words,
// weighting words under three syllables at 1 and the rest at 3.
func LinsearWriteFormula(doc *Document) (float64, error) {
	words := strings.Fields(doc.Text)
	if len(words) > 101 {
		words = words[:101]
	}

	easy, difficult := 0, 0
	for _, word := range words {
		syllables, err := doc.engine.SyllableCount(word, doc.Language)
		if err != nil {
			return 0, err
		}
		if syllables < 3 {
			easy++
		} else {
			difficult++
		}
	}

	sample := strings.Join(words, " ")
	number := float64(easy+difficult*3) / float64(textcore.SentenceCount(sample))
	if number <= 20 {
		number -= 2
	}
	return number / 2, nil
}

// DaleChallScore estimates grade level from the share of words outside the
// familiar-word list. Returns 0 for text with no words.
func DaleChallScore(doc *Document) (float64, error) {
	difficult, err := doc.DifficultWords()
	if err != nil {
		return 0, err
	}
	words := doc.LexiconCount()
	if words == 0 {
		return 0, nil
	}

	easyPct := 100 * float64(words-difficult) / float64(words)
	difficultPct := 100 - easyPct
	score := 0.1579*difficultPct + 0.0496*doc.AvgSentenceLength()
	if difficultPct > 5 {
		score += 3.6365
	}
	return textcore.Round(score, 2), nil
}

// GunningFog estimates grade level from sentence length and difficult-word
// share. Returns 0 for text with no words.
func GunningFog(doc *Document) (float64, error) {
	difficult, err := doc.DifficultWords()
	if err != nil {
		return 0, err
	}
	words := doc.LexiconCount()
	if words == 0 {
		return 0, nil
	}

	perDifficult := 100*float64(difficult)/float64(words) + 5
	return textcore.Round(0.4*(doc.AvgSentenceLength()+perDifficult), 2), nil
}

// LIX scores text from sentence length and the share of words longer than
// six characters. Text without words fails with ErrNoWords.
func LIX(doc *Document) (float64, error) {
	words := strings.Fields(doc.Text)
	if len(words) == 0 {
		return 0, ErrNoWords
	}

	long := 0
	for _, word := range words {
		if utf8.RuneCountInString(word) > 6 {
			long++
		}
	}
	perLong := 100 * float64(long) / float64(len(words))
	return textcore.Round(doc.AvgSentenceLength()+perLong, 2), nil
}

// FORCAST estimates grade level from the share of single-syllable words in
// the first 150 words. The result is an integer grade.
func FORCAST(doc *Document) (int, error) {
	words := strings.Fields(doc.Text)
	if len(words) > 150 {
		words = words[:150]
	}

	mono := 0
	for _, word := range words {
		syllables, err := doc.engine.SyllableCount(word, doc.Language)
		if err != nil {
			return 0, err
		}
		if syllables == 1 {
			mono++
		}
	}
	return 20 - mono/10, nil
}

// PowersSumnerKearl estimates grade level from sentence length and the raw
// syllable total.
func PowersSumnerKearl(doc *Document) (float64, error) {
	syllables, err := doc.SyllableCount()
	if err != nil {
		return 0, err
	}
	grade := 0.0778*doc.AvgSentenceLength() + 0.0455*float64(syllables) - 2.2029
	return textcore.Round(grade, 2), nil
}

// Spache estimates primary-grade readability. The unfamiliar-word ratio
// uses integer division, matching the reference implementation. Text
// without words fails with ErrNoWords.
func Spache(doc *Document) (float64, error) {
	difficult, err := doc.DifficultWords()
	if err != nil {
		return 0, err
	}
	words := doc.LexiconCount()
	if words == 0 {
		return 0, ErrNoWords
	}

	unfamiliar := difficult / words
	grade := 0.141*doc.AvgSentenceLength() + 0.086*float64(unfamiliar) + 0.839
	return textcore.Round(grade, 2), nil
}
