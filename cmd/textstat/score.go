package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/kupolak/textstat/internal/log"
	"github.com/kupolak/textstat/internal/readability"
)

type scoreOptions struct {
	configPath string
	metricsRaw string
	language   string
	markdown   bool
	format     string
	verbose    bool
}

// runScore implements the "score" subcommand: compute metrics for files.
func runScore(args []string) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	var opts scoreOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVar(&opts.metricsRaw, "metrics", "", "Comma-separated metrics (defaults to registry defaults)")
	fs.StringVarP(&opts.language, "language", "l", "", "Language code for word lists and syllables")
	fs.BoolVar(&opts.markdown, "markdown", false, "Strip Markdown markup before measuring")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Show config, files, and metrics on stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat score [flags] [files...]\n\n"+
			"Compute readability metrics for text files.\n\n"+
			"Files can be paths or directories (walked recursively for *.txt and *.md).\n"+
			"With no file arguments, reads from stdin if piped.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := &log.Logger{Enabled: opts.verbose, W: os.Stderr}

	cfg, cfgPath, err := loadConfig(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if cfgPath != "" {
		logger.Printf("config: %s", cfgPath)
	}

	defs, err := resolveMetrics(opts.metricsRaw, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	collector := newCollector(cfg, opts.language, opts.markdown)

	fileArgs := fs.Args()
	if len(fileArgs) == 0 {
		if !isStdinPipe() {
			return 0
		}
		return scoreStdin(collector, defs, opts.format, logger)
	}

	files, err := resolveFiles(fileArgs, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	if len(files) == 0 {
		return 0
	}

	rows, err := collector.Collect(files, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	logger.Printf("scored %d files", len(rows))

	if err := writeScoreOutput(opts.format, rows, defs); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	return 0
}

// scoreStdin reads text from stdin and scores it as a single document.
func scoreStdin(collector *readability.Collector, defs []readability.Definition, format string, logger *log.Logger) int {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: reading stdin: %v\n", err)
		return 2
	}

	row, err := collector.CollectSource("<stdin>", source, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	logger.Printf("scored 1 files")

	if err := writeScoreOutput(format, []readability.Row{row}, defs); err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	return 0
}

func writeScoreOutput(format string, rows []readability.Row, defs []readability.Definition) error {
	switch format {
	case "text":
		return writeScoreText(rows, defs)
	case "json":
		return writeRowsJSON(rows, defs)
	default:
		return fmt.Errorf("unknown format %q (supported: text, json)", format)
	}
}

func writeScoreText(rows []readability.Row, defs []readability.Definition) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	var headers []string
	for _, def := range defs {
		headers = append(headers, strings.ToUpper(def.Name))
	}
	headers = append(headers, "PATH")
	if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
		return err
	}

	for _, row := range rows {
		cols := make([]string, 0, len(defs)+1)
		for _, def := range defs {
			cols = append(cols, readability.FormatValue(def, row.Metrics[def.Name]))
		}
		cols = append(cols, row.Path)
		if _, err := fmt.Fprintln(tw, strings.Join(cols, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}

func writeRowsJSON(rows []readability.Row, defs []readability.Definition) error {
	items := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		item := map[string]any{
			"path": row.Path,
		}
		for _, def := range defs {
			item[def.Name] = readability.JSONValue(def, row.Metrics[def.Name])
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
