package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/kupolak/textstat/internal/readability"
)

// runList implements the "list" subcommand: show the metric registry.
func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	var format string

	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: textstat list [flags]\n\n"+
			"List available metrics in the registry.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "textstat: list takes no file arguments\n")
		return 2
	}

	defs := readability.All()
	switch format {
	case "text":
		if err := writeListText(defs); err != nil {
			fmt.Fprintf(os.Stderr, "textstat: writing output: %v\n", err)
			return 2
		}
	case "json":
		if err := writeListJSON(defs); err != nil {
			fmt.Fprintf(os.Stderr, "textstat: writing output: %v\n", err)
			return 2
		}
	default:
		fmt.Fprintf(os.Stderr, "textstat: unknown format %q (supported: text, json)\n", format)
		return 2
	}

	return 0
}

func writeListText(defs []readability.Definition) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tORDER\tDEFAULT\tDESCRIPTION"); err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%t\t%s\n",
			def.ID,
			def.Name,
			def.DefaultOrder,
			def.Default,
			def.Description,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeListJSON(defs []readability.Definition) error {
	items := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		items = append(items, map[string]any{
			"id":            def.ID,
			"name":          def.Name,
			"description":   def.Description,
			"default":       def.Default,
			"default_order": def.DefaultOrder,
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

const helpUsageText = `Usage: textstat help <topic>

Topics:
  metric [id|name]   Show metric documentation
`

// runHelp implements the "help" subcommand.
func runHelp(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, helpUsageText)
		return 0
	}

	switch args[0] {
	case "metric":
		return runHelpMetric(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "textstat: help: unknown topic %q\n", args[0])
		return 2
	}
}

// runHelpMetric implements "help metric [id|name]".
func runHelpMetric(args []string) int {
	if len(args) == 0 {
		return listAllMetrics()
	}
	return showMetric(args[0])
}

func listAllMetrics() int {
	metrics, err := readability.ListDocs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}

	for _, m := range metrics {
		fmt.Printf("%-6s %-28s %s\n", m.ID, m.Name, m.Description)
	}
	return 0
}

func showMetric(query string) int {
	content, err := readability.LookupDoc(query)
	if err != nil {
		fmt.Fprintf(os.Stderr, "textstat: %v\n", err)
		return 2
	}
	fmt.Print(content)
	return 0
}
