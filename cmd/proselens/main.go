package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/jeduden/proselens/internal/analysis"
	"github.com/jeduden/proselens/internal/config"
	"github.com/jeduden/proselens/internal/inputs"
	"github.com/jeduden/proselens/internal/log"
	"github.com/jeduden/proselens/internal/output"
	"github.com/jeduden/proselens/internal/session"
)

// progressPause paces the interactive progress display on a terminal.
const progressPause = 120 * time.Millisecond

func main() {
	os.Exit(run())
}

const usageText = `Usage: proselens [command] [flags] [files...]

With no command, or with only flags, proselens starts the interactive
session and accepts the interactive flags (-c, -v, --no-color).

Commands:
  interactive  Analyze a typed or built-in passage (default with no command)
  analyze      Analyze files or piped stdin and print a report
  metrics      List the metrics reported for each passage
  init         Generate a default .proselens.yml config file
  version      Print version and exit

Global flags:
  -h, --help      Show this help

Run 'proselens <command> --help' for more information on a command.
`

func run() int {
	if len(os.Args) < 2 {
		return runInteractive(nil)
	}

	first := os.Args[1]

	switch first {
	case "--help", "-h":
		fmt.Fprint(os.Stderr, usageText)
		return 0
	}

	// Flags without a command belong to the default interactive session.
	if strings.HasPrefix(first, "-") {
		return runInteractive(os.Args[1:])
	}

	switch first {
	case "interactive":
		return runInteractive(os.Args[2:])
	case "analyze":
		return runAnalyze(os.Args[2:])
	case "metrics":
		return runMetrics(os.Args[2:])
	case "init":
		return runInit(os.Args[2:])
	case "version":
		fmt.Printf("proselens %s\n", version())
		return 0
	default:
		fmt.Fprintf(os.Stderr, "proselens: unknown command %q\n\n%s", first, usageText)
		return 2
	}
}

func version() string {
	v := "(devel)"
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		v = info.Main.Version
	}
	return v
}

// runInteractive implements the interactive session. It always exits 0
// once flags parse; bad input falls back to the demonstration.
func runInteractive(args []string) int {
	fs := flag.NewFlagSet("interactive", flag.ContinueOnError)
	var (
		configPath string
		noColor    bool
		verbose    bool
	)

	fs.StringVarP(&configPath, "config", "c", "", "Override config file path")
	fs.BoolVar(&noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&verbose, "verbose", "v", false, "Print diagnostics to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proselens interactive [flags]\n\n"+
			"Choose between analyzing a passage typed on stdin (finish with an\n"+
			"empty line) and a demonstration on a built-in sample passage.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(verbose, os.Stderr)
	defer func() { _ = logger.Sync() }()

	opts := analysis.DefaultOptions()
	cfg, err := loadConfig(configPath, logger)
	if err != nil {
		logger.Printf("config: %v (using defaults)", err)
	} else if opts, err = config.Options(cfg, ""); err != nil {
		logger.Printf("config: %v (using defaults)", err)
		opts = analysis.DefaultOptions()
	}

	s := &session.Session{
		In:      os.Stdin,
		Out:     os.Stdout,
		Version: version(),
		Options: opts,
		Color:   !noColor && cfg.ColorEnabled() && isTerminal(os.Stdout),
		Log:     logger,
	}
	if isTerminal(os.Stdout) {
		s.Pause = func() { time.Sleep(progressPause) }
	}

	if err := s.Run(); err != nil {
		logger.Printf("writing output: %v", err)
	}
	return 0
}

type analyzeOptions struct {
	configPath string
	format     string
	exclude    []string
	markdown   bool
	noColor    bool
	verbose    bool
}

// runAnalyze implements the "analyze" subcommand.
func runAnalyze(args []string) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var opts analyzeOptions

	fs.StringVarP(&opts.configPath, "config", "c", "", "Override config file path")
	fs.StringVarP(&opts.format, "format", "f", "text", "Output format: text, json")
	fs.StringSliceVar(&opts.exclude, "exclude", nil, "Glob patterns of walked files to skip")
	fs.BoolVar(&opts.markdown, "markdown", false, "Treat stdin as Markdown")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable ANSI colors")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "Print diagnostics to stderr")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proselens analyze [flags] [files...]\n\n"+
			"Analyze passages and print complexity reports.\n\n"+
			"Files can be paths, directories (walked recursively for *.txt, *.md\n"+
			"and *.markdown), or glob patterns. Markdown is reduced to plain text.\n"+
			"With no file arguments, reads one passage from stdin if piped, or\n"+
			"else analyzes the files matching the config's files patterns.\n\n"+
			"Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	switch opts.format {
	case "text", "json":
	default:
		fmt.Fprintf(os.Stderr, "proselens: unknown format %q (supported: text, json)\n", opts.format)
		return 2
	}

	logger := log.New(opts.verbose, os.Stderr)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts.configPath, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: %v\n", err)
		return 2
	}

	passages, err := collectPassages(fs.Args(), cfg, opts, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: %v\n", err)
		return 2
	}
	if len(passages) == 0 {
		return 0
	}

	reports := make([]output.Report, 0, len(passages))
	for _, p := range passages {
		rep, err := analyzePassage(cfg, p, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "proselens: %v\n", err)
			return 2
		}
		reports = append(reports, rep)
	}

	var formatter output.Formatter
	switch opts.format {
	case "json":
		formatter = &output.JSONFormatter{}
	default:
		formatter = &output.TextFormatter{Color: !opts.noColor && cfg.ColorEnabled() && isTerminal(os.Stdout)}
	}

	if err := formatter.Format(os.Stdout, reports); err != nil {
		fmt.Fprintf(os.Stderr, "proselens: error writing output: %v\n", err)
		return 2
	}
	return 0
}

// collectPassages reads the files named by args. With no args it reads
// stdin when piped, and otherwise the files matching the config's file
// patterns below the working directory.
func collectPassages(args []string, cfg *config.Config, opts analyzeOptions, logger *log.Logger) ([]inputs.Passage, error) {
	var (
		files []string
		err   error
	)
	switch {
	case len(args) > 0:
		files, err = inputs.ResolveFiles(args, inputs.ResolveOpts{Exclude: opts.exclude})
	case isStdinPipe():
		p, err := inputs.ReadStdin(os.Stdin, opts.markdown)
		if err != nil {
			return nil, err
		}
		return []inputs.Passage{p}, nil
	case len(cfg.Files) > 0:
		files, err = inputs.Discover(cfg.Files, ".", inputs.ResolveOpts{Exclude: opts.exclude})
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Printf("files: %d resolved", len(files))

	passages := make([]inputs.Passage, 0, len(files))
	for _, f := range files {
		p, err := inputs.ReadFile(f)
		if err != nil {
			return nil, err
		}
		passages = append(passages, p)
	}
	return passages, nil
}

// analyzePassage runs the pipeline with the settings in effect for p.
// Analysis failures such as an empty passage are kept in the report;
// only invalid settings are returned as errors.
func analyzePassage(cfg *config.Config, p inputs.Passage, logger *log.Logger) (output.Report, error) {
	opts, err := config.Options(cfg, p.Path)
	if err != nil {
		return output.Report{}, err
	}

	start := time.Now()
	res, err := analysis.Analyze(p.Text, opts)
	rep := output.Report{Name: p.Name(), Result: res, Err: err}
	if err != nil {
		logger.With("skipped", zap.String("file", p.Name()), zap.Error(err))
		return rep, nil
	}
	logger.With("analyzed",
		zap.String("file", p.Name()),
		zap.Int("tokens", res.Metrics.TotalCount),
		zap.Float64("score", res.Score),
		zap.Duration("took", time.Since(start)),
	)
	return rep, nil
}

// runInit implements the "init" subcommand: generate .proselens.yml.
func runInit(args []string) int {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proselens init\n\n"+
			"Generate a default %s config file in the current directory.\n", config.FileName)
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "proselens: init takes no arguments\n")
		return 2
	}

	if _, err := os.Stat(config.FileName); err == nil {
		fmt.Fprintf(os.Stderr, "proselens: %s already exists\n", config.FileName)
		return 2
	}

	data, err := yaml.Marshal(config.DumpDefaults())
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: marshalling config: %v\n", err)
		return 2
	}

	if err := os.WriteFile(config.FileName, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "proselens: writing %s: %v\n", config.FileName, err)
		return 2
	}

	fmt.Fprintf(os.Stderr, "proselens: created %s\n", config.FileName)
	return 0
}

// isStdinPipe returns true if stdin is not a terminal.
func isStdinPipe() bool {
	if isTerminal(os.Stdin) {
		return false
	}
	stat, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) == 0
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig loads configuration by either using the specified path or
// discovering a config file from the current directory.
func loadConfig(configPath string, logger *log.Logger) (*config.Config, error) {
	defaults := config.Defaults()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		logger.Printf("config: %s", configPath)
		return config.Merge(defaults, loaded), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return config.Merge(defaults, nil), nil
	}

	discovered, err := config.Discover(cwd)
	if err != nil || discovered == "" {
		logger.Printf("config: none found, using defaults")
		return config.Merge(defaults, nil), nil
	}

	loaded, err := config.Load(discovered)
	if err != nil {
		return nil, err
	}
	logger.Printf("config: %s", discovered)

	return config.Merge(defaults, loaded), nil
}
