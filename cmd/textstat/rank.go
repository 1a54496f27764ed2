package main

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/kupolak/textstat/internal/config"
	"github.com/kupolak/textstat/internal/log"
	"github.com/kupolak/textstat/internal/readability"
)

type rankOptions struct {
	configPath string
	metricsRaw string
	byRaw      string
	orderRaw   string
	top        int
	language   string
	markdown   bool
	format     string
	verbose    bool
}

// runRank implements the "rank" subcommand: order files by a metric.
func runRank(args []string) int {
	opts, fileArgs, err := parseRankOptions(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	return executeRank(opts, fileArgs)
}

func parseRankOptions(args []string) (rankOptions, []string, error) {
	fs := flag.NewFlagSet("rank", flag.ContinueOnError)
	var opts rankOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.metricsRaw, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVar(&opts.byRaw, "by", "", "Metric to sort by")
	fs.StringVar(&opts.orderRaw, "order", "", "Sort order: asc or desc (defaults by metric)")
	fs.IntVar(&opts.top, "top", 0, "Limit results to top N files (0 = all)")
	fs.StringVarP(&opts.language, "language", "l", "", "Language code for word lists and syllables")
	fs.BoolVar(&opts.markdown, "markdown", false, "Strip Markdown markup before measuring")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and metrics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat rank [flags] [files...]\n\n"+
			"Compute selected metrics and rank text files.\n"+
			"With no file arguments, defaults to the current directory.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return rankOptions{}, nil, err
	}
	if opts.top < 0 {
		return rankOptions{}, nil, fmt.Errorf("--top must be >= 0")
	}

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		fileArgs = []string{"."}
	}

	return opts, fileArgs, nil
}

func executeRank(opts rankOptions, fileArgs []string) int {
	logger := &log.Logger{Enabled: opts.verbose, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	defs, byDef, order, err := resolveRankSelection(opts, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	files, err := resolveFiles(fileArgs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	collector := newCollector(cfg, opts.language, opts.markdown)
	rows, err := collector.Collect(files, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	readability.SortRows(rows, byDef, order)
	rows = readability.LimitRows(rows, opts.top)
	logger.Printf("ranked %d files by %s", len(rows), byDef.Name)

	if err := writeScoreOutput(opts.format, rows, defs); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	return 0
}

func resolveRankSelection(
	opts rankOptions,
	cfg *config.Config,
) ([]readability.Definition, readability.Definition, readability.Order, error) {
	selectedNames := readability.SplitList(opts.metricsRaw)
	if len(selectedNames) == 0 {
		selectedNames = cfg.Metrics
	}
	defs, err := readability.Resolve(selectedNames)
	if err != nil {
		return nil, readability.Definition{}, "", err
	}

	var byDef readability.Definition
	if strings.TrimSpace(opts.byRaw) == "" {
		byDef = defs[0]
	} else {
		byDefs, err := readability.Resolve([]string{opts.byRaw})
		if err != nil {
			return nil, readability.Definition{}, "", err
		}
		byDef = byDefs[0]
	}

	// Ensure the sort metric is always computed.
	if !containsMetric(defs, byDef.ID) {
		if len(selectedNames) > 0 {
			return nil, readability.Definition{}, "", fmt.Errorf(
				"--by metric %q must be included in --metrics",
				byDef.Name,
			)
		}
		defs = append(defs, byDef)
	}

	order := byDef.DefaultOrder
	if strings.TrimSpace(opts.orderRaw) != "" {
		parsed, err := readability.ParseOrder(opts.orderRaw)
		if err != nil {
			return nil, readability.Definition{}, "", err
		}
		order = parsed
	}

	return defs, byDef, order, nil
}

func containsMetric(defs []readability.Definition, id string) bool {
	for _, def := range defs {
		if def.ID == id {
			return true
		}
	}
	return false
}
