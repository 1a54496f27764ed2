package readability

import (
	"fmt"
	"sort"
	"strings"
)

// Order defines metric sort order.
type Order string

const (
	// OrderAsc sorts from smallest to largest.
	OrderAsc Order = "asc"
	// OrderDesc sorts from largest to smallest.
	OrderDesc Order = "desc"
)

// ParseOrder parses a user-provided sort order.
func ParseOrder(raw string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(OrderDesc):
		return OrderDesc, nil
	case string(OrderAsc):
		return OrderAsc, nil
	default:
		return "", fmt.Errorf("unknown order %q (supported: asc, desc)", raw)
	}
}

// ValueKind describes how to render a numeric metric value.
type ValueKind string

const (
	// KindInteger renders values as rounded integers.
	KindInteger ValueKind = "integer"
	// KindFloat renders values with fixed decimal precision.
	KindFloat ValueKind = "float"
)

// Value is a computed numeric metric value.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available metric value.
func AvailableValue(n float64) Value {
	return Value{Number: n, Available: true}
}

// UnavailableValue constructs an unavailable metric value.
func UnavailableValue() Value {
	return Value{}
}

// Definition describes a metric and how to compute it from a Document.
type Definition struct {
	ID           string
	Name         string
	Description  string
	Kind         ValueKind
	Precision    int
	Default      bool
	DefaultOrder Order
	Compute      func(doc *Document) (Value, error)
}

var registry = []Definition{
	{
		ID:           "RD001",
		Name:         "words",
		Description:  "Word count with punctuation removed.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.LexiconCount())), nil
		},
	},
	{
		ID:           "RD002",
		Name:         "sentences",
		Description:  "Sentence count from boundary pattern matching.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.SentenceCount())), nil
		},
	},
	{
		ID:           "RD003",
		Name:         "syllables",
		Description:  "Total syllable count via hyphenation.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			n, err := doc.SyllableCount()
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(n)), nil
		},
	},
	{
		ID:           "RD004",
		Name:         "characters",
		Description:  "Character count, spaces excluded.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(float64(doc.CharCount())), nil
		},
	},
	{
		ID:           "RD005",
		Name:         "difficult-words",
		Description:  "Unique words outside the easy-word list with 2+ syllables.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			n, err := doc.DifficultWords()
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(n)), nil
		},
	},
	{
		ID:           "RD006",
		Name:         "polysyllables",
		Description:  "Words with three or more syllables.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			n, err := doc.PolysyllabCount()
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(n)), nil
		},
	},
	{
		ID:           "RD007",
		Name:         "flesch-reading-ease",
		Description:  "Flesch Reading Ease score (higher is easier).",
		Kind:         KindFloat,
		Precision:    2,
		Default:      true,
		DefaultOrder: OrderAsc,
		Compute: func(doc *Document) (Value, error) {
			score, err := FleschReadingEase(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD008",
		Name:         "flesch-kincaid-grade",
		Description:  "Flesch-Kincaid grade level.",
		Kind:         KindFloat,
		Precision:    1,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := FleschKincaidGrade(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD009",
		Name:         "smog-index",
		Description:  "SMOG grade from polysyllable density.",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := SMOGIndex(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD010",
		Name:         "coleman-liau-index",
		Description:  "Coleman-Liau grade from letters and sentences per 100 words.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(ColemanLiauIndex(doc)), nil
		},
	},
	{
		ID:           "RD011",
		Name:         "automated-readability-index",
		Description:  "ARI grade from characters per word and words per sentence.",
		Kind:         KindFloat,
		Precision:    1,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			return AvailableValue(AutomatedReadabilityIndex(doc)), nil
		},
	},
	{
		ID:           "RD012",
		Name:         "linsear-write-formula",
		Description:  "Linsear Write grade over the first 101 words.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := LinsearWriteFormula(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD013",
		Name:         "dale-chall-score",
		Description:  "Dale-Chall score from unfamiliar-word share.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := DaleChallScore(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD014",
		Name:         "gunning-fog",
		Description:  "Gunning Fog grade from sentence length and difficult words.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := GunningFog(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD015",
		Name:         "lix",
		Description:  "LIX score from sentence length and long-word share.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := LIX(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD016",
		Name:         "forcast",
		Description:  "FORCAST grade from single-syllable word share.",
		Kind:         KindInteger,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			grade, err := FORCAST(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(float64(grade)), nil
		},
	},
	{
		ID:           "RD017",
		Name:         "powers-sumner-kearl",
		Description:  "Powers-Sumner-Kearl grade from sentence length and syllables.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := PowersSumnerKearl(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD018",
		Name:         "spache",
		Description:  "Spache primary-grade readability score.",
		Kind:         KindFloat,
		Precision:    2,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			score, err := Spache(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(score), nil
		},
	},
	{
		ID:           "RD019",
		Name:         "text-standard",
		Description:  "Consensus grade level across all formulas.",
		Kind:         KindInteger,
		Default:      true,
		DefaultOrder: OrderDesc,
		Compute: func(doc *Document) (Value, error) {
			grade, err := TextStandardFloat(doc)
			if err != nil {
				return UnavailableValue(), err
			}
			return AvailableValue(grade), nil
		},
	},
}

// All returns all metrics sorted by ID.
func All() []Definition {
	defs := append([]Definition(nil), registry...)
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].ID < defs[j].ID
	})
	return defs
}

// Defaults returns the default-selected metrics.
func Defaults() []Definition {
	all := All()
	defs := make([]Definition, 0, len(all))
	for _, def := range all {
		if def.Default {
			defs = append(defs, def)
		}
	}
	return defs
}

// Lookup searches by metric ID (case-insensitive) or by name.
func Lookup(query string) (Definition, bool) {
	for _, def := range All() {
		if matches(def, query) {
			return def, true
		}
	}
	return Definition{}, false
}

// Resolve resolves user-selected metric names/IDs.
// Empty names returns the default metrics.
func Resolve(names []string) ([]Definition, error) {
	if len(names) == 0 {
		return Defaults(), nil
	}

	seen := make(map[string]struct{}, len(names))
	defs := make([]Definition, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		def, ok := Lookup(name)
		if !ok {
			return nil, unknownMetricErr(name)
		}

		if _, exists := seen[def.ID]; exists {
			continue
		}
		seen[def.ID] = struct{}{}
		defs = append(defs, def)
	}

	if len(defs) == 0 {
		return nil, fmt.Errorf("no metrics selected")
	}
	return defs, nil
}

// SplitList parses comma-separated metric names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matches(def Definition, query string) bool {
	q := strings.TrimSpace(query)
	if q == "" {
		return false
	}
	return strings.EqualFold(def.ID, q) || def.Name == strings.ToLower(q)
}

func unknownMetricErr(name string) error {
	return fmt.Errorf(
		"unknown metric %q (available: %s)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	defs := All()
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		names = append(names, def.Name)
	}
	sort.Strings(names)
	return names
}
