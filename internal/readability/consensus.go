package readability

import (
	"fmt"
	"math"
	"sort"
)

// TextStandard fuses the formula outputs into one consensus grade,
// formatted as e.g. "9th and 10th grade". The formatting matches the
// reference output byte for byte, including the fixed "th" suffix.
func TextStandard(doc *Document) (string, error) {
	grade, err := consensusGrade(doc)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%dth and %dth grade", grade-1, grade), nil
}

// TextStandardFloat returns the consensus grade as a float.
func TextStandardFloat(doc *Document) (float64, error) {
	grade, err := consensusGrade(doc)
	if err != nil {
		return 0, err
	}
	return float64(grade), nil
}

// consensusGrade collects candidate grades from every formula and returns
// the most frequent one. Each grade-style formula contributes the floor and
// ceiling of its score; Flesch Reading Ease contributes through a fixed
// bucket table. Ties resolve to the lowest grade so the result does not
// depend on map iteration order.
func consensusGrade(doc *Document) (int, error) {
	var candidates []int

	fk, err := FleschKincaidGrade(doc)
	if err != nil {
		return 0, err
	}
	candidates = appendFloorCeil(candidates, fk)

	ease, err := FleschReadingEase(doc)
	if err != nil {
		return 0, err
	}
	candidates = append(candidates, easeBuckets(ease)...)

	smog, err := SMOGIndex(doc)
	if err != nil {
		return 0, err
	}
	candidates = appendFloorCeil(candidates, smog)

	candidates = appendFloorCeil(candidates, ColemanLiauIndex(doc))
	candidates = appendFloorCeil(candidates, AutomatedReadabilityIndex(doc))

	dale, err := DaleChallScore(doc)
	if err != nil {
		return 0, err
	}
	candidates = appendFloorCeil(candidates, dale)

	linsear, err := LinsearWriteFormula(doc)
	if err != nil {
		return 0, err
	}
	candidates = appendFloorCeil(candidates, linsear)

	fog, err := GunningFog(doc)
	if err != nil {
		return 0, err
	}
	candidates = appendFloorCeil(candidates, fog)

	return modeLowest(candidates), nil
}

func appendFloorCeil(candidates []int, score float64) []int {
	return append(candidates, int(math.Floor(score)), int(math.Ceil(score)))
}

// easeBuckets maps a Flesch Reading Ease score to candidate grades. Scores
// of 100 or more fall into the catch-all bucket; the reference table is
// written with exclusive upper bounds and ease scores above the table's
// range have always landed there.
func easeBuckets(score float64) []int {
	switch {
	case score >= 100:
		return []int{13}
	case score >= 90:
		return []int{5}
	case score >= 80:
		return []int{6}
	case score >= 70:
		return []int{7}
	case score >= 60:
		return []int{8, 9}
	case score >= 50:
		return []int{10}
	case score >= 40:
		return []int{11}
	case score >= 30:
		return []int{12}
	default:
		return []int{13}
	}
}

// modeLowest returns the most frequent candidate; ties go to the lowest.
func modeLowest(candidates []int) int {
	counts := make(map[int]int, len(candidates))
	for _, c := range candidates {
		counts[c]++
	}

	grades := make([]int, 0, len(counts))
	for g := range counts {
		grades = append(grades, g)
	}
	sort.Ints(grades)

	best, bestCount := 0, -1
	for _, g := range grades {
		if counts[g] > bestCount {
			best, bestCount = g, counts[g]
		}
	}
	return best
}
