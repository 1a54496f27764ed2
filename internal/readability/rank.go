package readability

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/kupolak/textstat/internal/mdtext"
	"github.com/kupolak/textstat/internal/textcore"
	"github.com/kupolak/textstat/internal/wordlist"
)

// Collector computes selected metrics for files on disk.
type Collector struct {
	Engine *textcore.Engine
	Words  *wordlist.Store

	// Language is the default language code for every file.
	Language string

	// LanguageFor, when set, overrides Language per file path.
	LanguageFor func(path string) string

	// Markdown strips markup from sources before measuring.
	Markdown bool
}

// Row holds computed metric values for a single file.
type Row struct {
	Path    string
	Metrics map[string]Value
}

// Collect computes all selected metrics for each file path.
func (c *Collector) Collect(paths []string, defs []Definition) ([]Row, error) {
	rows := make([]Row, 0, len(paths))
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", path, err)
		}

		row, err := c.collectOne(path, source, defs)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CollectSource computes metrics for in-memory source, e.g. stdin.
func (c *Collector) CollectSource(name string, source []byte, defs []Definition) (Row, error) {
	return c.collectOne(name, source, defs)
}

func (c *Collector) collectOne(path string, source []byte, defs []Definition) (Row, error) {
	text := string(source)
	if c.Markdown {
		text = mdtext.Strip(source)
	}

	doc := NewDocument(text, c.languageFor(path), c.Engine, c.Words)
	values := make(map[string]Value, len(defs))
	for _, def := range defs {
		v, err := def.Compute(doc)
		if errors.Is(err, ErrNoWords) {
			// A wordless file is a data problem, not a run problem.
			values[def.Name] = UnavailableValue()
			continue
		}
		if err != nil {
			return Row{}, fmt.Errorf("computing %q for %q: %w", def.Name, path, err)
		}
		values[def.Name] = v
	}

	return Row{Path: path, Metrics: values}, nil
}

func (c *Collector) languageFor(path string) string {
	if c.LanguageFor != nil {
		return c.LanguageFor(path)
	}
	return c.Language
}

// SortRows sorts rows deterministically by a metric and path tiebreaker.
func SortRows(rows []Row, by Definition, order Order) {
	sort.Slice(rows, func(i, j int) bool {
		a := rows[i].Metrics[by.Name]
		b := rows[j].Metrics[by.Name]

		// Available values sort before unavailable values.
		if a.Available != b.Available {
			return a.Available
		}

		if a.Available && b.Available {
			diff := a.Number - b.Number
			if math.Abs(diff) > 1e-9 {
				if order == OrderAsc {
					return diff < 0
				}
				return diff > 0
			}
		}

		return rows[i].Path < rows[j].Path
	})
}

// LimitRows returns at most top rows (if top > 0).
func LimitRows(rows []Row, top int) []Row {
	if top <= 0 || top >= len(rows) {
		return rows
	}
	return rows[:top]
}

// FormatValue renders a metric value for text output.
func FormatValue(def Definition, value Value) string {
	v := JSONValue(def, value)
	if v == nil {
		return "-"
	}

	switch n := v.(type) {
	case int64:
		return strconv.FormatInt(n, 10)
	case float64:
		return fmt.Sprintf("%.*f", def.Precision, n)
	default:
		return "-"
	}
}

// JSONValue converts a metric value into a JSON-safe scalar.
// Unavailable values return nil.
func JSONValue(def Definition, value Value) any {
	if !value.Available {
		return nil
	}

	switch def.Kind {
	case KindInteger:
		return int64(math.Round(value.Number))
	case KindFloat:
		return textcore.Round(value.Number, def.Precision)
	default:
		return value.Number
	}
}
