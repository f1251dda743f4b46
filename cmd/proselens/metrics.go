package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	flag "github.com/spf13/pflag"

	"github.com/jeduden/proselens/internal/metrics"
)

const metricsUsageText = `Usage: proselens metrics <command> [flags]

Commands:
  list     List the metrics reported for each passage
`

func runMetrics(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, metricsUsageText)
		return 0
	}

	switch args[0] {
	case "list":
		return runMetricsList(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "proselens: metrics: unknown command %q\n", args[0])
		return 2
	}
}

func runMetricsList(args []string) int {
	fs := flag.NewFlagSet("metrics list", flag.ContinueOnError)
	var (
		scopeRaw string
		format   string
	)

	fs.StringVar(&scopeRaw, "scope", "", "Metric scope: words, sentences (default all)")
	fs.StringVarP(&format, "format", "f", "text", "Output format: text, json")
	fs.Usage = func() {
		fmt.Fprintf(
			os.Stderr,
			"Usage: proselens metrics list [flags] [metric...]\n\n"+
				"List the metrics computed for every analyzed passage.\n"+
				"Metrics may be named by ID (MET001) or name (words).\n\n"+
				"Flags:\n",
		)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}
	scope, err := metrics.ParseScope(scopeRaw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: %v\n", err)
		return 2
	}

	defs, err := selectMetrics(scope, fs.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: %v\n", err)
		return 2
	}
	switch format {
	case "text":
		err = writeMetricsListText(os.Stdout, defs)
	case "json":
		err = writeMetricsListJSON(os.Stdout, defs)
	default:
		fmt.Fprintf(os.Stderr, "proselens: unknown format %q (supported: text, json)\n", format)
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "proselens: writing output: %v\n", err)
		return 2
	}

	return 0
}

// selectMetrics returns the metrics in scope, restricted to the named
// ones when names is not empty.
func selectMetrics(scope metrics.Scope, names []string) ([]metrics.Definition, error) {
	if len(names) == 0 {
		return metrics.ForScope(scope), nil
	}
	defs := make([]metrics.Definition, 0, len(names))
	for _, name := range names {
		def, ok := metrics.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown metric %q", name)
		}
		if scope != "" && def.Scope != scope {
			continue
		}
		defs = append(defs, def)
	}
	return defs, nil
}

func writeMetricsListText(w io.Writer, defs []metrics.Definition) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "ID\tNAME\tSCOPE\tKIND\tDEFAULT\tDESCRIPTION"); err != nil {
		return err
	}
	for _, def := range defs {
		if _, err := fmt.Fprintf(
			tw,
			"%s\t%s\t%s\t%s\t%t\t%s\n",
			def.ID,
			def.Name,
			def.Scope,
			def.Kind,
			def.Default,
			def.Description,
		); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func writeMetricsListJSON(w io.Writer, defs []metrics.Definition) error {
	items := make([]map[string]any, 0, len(defs))
	for _, def := range defs {
		items = append(items, map[string]any{
			"id":          def.ID,
			"name":        def.Name,
			"label":       def.Label,
			"description": def.Description,
			"scope":       def.Scope,
			"kind":        def.Kind,
			"precision":   def.Precision,
			"default":     def.Default,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
