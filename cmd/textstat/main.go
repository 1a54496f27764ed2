package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/kupolak/textstat/internal/config"
	"github.com/kupolak/textstat/internal/discovery"
	"github.com/kupolak/textstat/internal/hyphen"
	"github.com/kupolak/textstat/internal/readability"
	"github.com/kupolak/textstat/internal/textcore"
	"github.com/kupolak/textstat/internal/wordlist"
)

func main() {
	os.Exit(run())
}

const usageText = `Usage: textstat <command> [flags] [files...]

Commands:
  score     Compute readability metrics for files or stdin
  rank      Rank files by a readability metric
  list      List available metrics
  help      Show help for metrics and topics
  version   Print version and exit

Global flags:
  -h, --help      Show this help

Run 'textstat <command> --help' for more information on a command.
`

func run() int {
	// Handle no arguments: print usage, exit 0.
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Handle global flags before subcommand dispatch.
	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Dispatch to subcommand.
	switch first {
	case "score":
		return runScore(os.Args[2:])
	case "rank":
		return runRank(os.Args[2:])
	case "list":
		return runList(os.Args[2:])
	case "help":
		return runHelp(os.Args[2:])
	case "version":
		printVersion()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "textstat: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func printVersion() {
	version := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		version = info.Main.Version
	}
	fmt.Printf("textstat %s\n", version)
}

// isStdinPipe returns true if stdin is a pipe (not a terminal).
func isStdinPipe() bool {
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory. It returns the
// merged config, the path that was loaded (empty if defaults only), and
// any error.
func loadConfig(configPath string) (*config.Config, string, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, "", err
		}
		return config.Merge(defaults, loaded), configPath, nil
	}

	// Try to discover a config file.
	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil {
		return config.Merge(defaults, nil), "", nil
	}

	if discovered == "" {
		return config.Merge(defaults, nil), "", nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, "", err
	}

	return config.Merge(defaults, loaded), discovered, nil
}

// resolveFiles expands file and directory arguments into a file list.
// Directories are walked for the default file patterns; ignore patterns
// from the config apply everywhere.
func resolveFiles(args []string, cfg *config.Config) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("resolving %q: %w", arg, err)
		}

		if info.IsDir() {
			found, err := discovery.Discover(discovery.Options{
				BaseDir: arg,
				Ignore:  cfg.Ignore,
			})
			if err != nil {
				return nil, err
			}
			files = append(files, found...)
			continue
		}

		if cfg.Ignored(filepath.ToSlash(arg)) {
			continue
		}
		files = append(files, arg)
	}
	return files, nil
}

// newCollector builds the metric collector for the given config and flag
// overrides. An explicit --language flag wins over config overrides.
func newCollector(cfg *config.Config, language string, markdown bool) *readability.Collector {
	words := wordlist.NewStore()
	if cfg.DictionaryPath != "" {
		words = wordlist.NewStoreDir(cfg.DictionaryPath)
	}

	c := &readability.Collector{
		Engine:   &textcore.Engine{Hyph: hyphen.New()},
		Words:    words,
		Language: cfg.Language,
		Markdown: markdown || cfg.StripMarkdown(),
	}

	if language != "" {
		c.Language = language
	} else {
		c.LanguageFor = cfg.LanguageFor
	}
	return c
}

// resolveMetrics picks the metric set: the --metrics flag wins, then the
// config file, then the registry defaults.
func resolveMetrics(metricsRaw string, cfg *config.Config) ([]readability.Definition, error) {
	names := readability.SplitList(metricsRaw)
	if len(names) == 0 {
		names = cfg.Metrics
	}
	return readability.Resolve(names)
}
