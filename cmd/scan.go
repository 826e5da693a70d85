package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/highlight"
	"github.com/glintlabs/glint/internal/syntax"
)

var (
	scanLanguage string
	scanJSON     bool
	scanStats    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Tokenize a file and print its span stream",
	Long: `Tokenize a file (or stdin when no file is given) and print the
classified spans. Unterminated spans are reported as data, not errors;
the exit code stays 0.

Examples:
  # Scan a file, language inferred from the extension
  glint scan main.go

  # Scan stdin with an explicit language
  cat script.py | glint scan --language python

  # Machine-readable output
  glint scan main.go --json | jq '.[].category'

  # Category histogram instead of the span table
  glint scan main.go --stats`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVarP(&scanLanguage, "language", "l", "",
		"language to scan as (default: inferred from file extension)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false,
		"emit spans as JSON")
	scanCmd.Flags().BoolVar(&scanStats, "stats", false,
		"print per-category counts instead of spans")
	rootCmd.AddCommand(scanCmd)
}

// spanJSON is the wire shape of one span in --json output. Nested sub-span
// offsets are relative to the parent span's start.
type spanJSON struct {
	Start        int        `json:"start"`
	End          int        `json:"end"`
	Category     string     `json:"category"`
	Unterminated bool       `json:"unterminated,omitempty"`
	Nested       []spanJSON `json:"nested,omitempty"`
}

func toSpanJSON(spans []syntax.Span) []spanJSON {
	out := make([]spanJSON, len(spans))
	for i, sp := range spans {
		out[i] = spanJSON{
			Start:        sp.Start,
			End:          sp.End,
			Category:     sp.Category.String(),
			Unterminated: sp.Unterminated,
			Nested:       toSpanJSON(sp.Nested),
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// resolveScanInput reads the source and resolves its rule table.
func resolveScanInput(args []string, in io.Reader) (*syntax.Table, string, error) {
	var src []byte
	var err error
	path := ""

	if len(args) == 1 {
		path = args[0]
		src, err = os.ReadFile(path)
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", path, err)
		}
	} else {
		src, err = io.ReadAll(in)
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
	}

	if scanLanguage != "" {
		table, ok := syntax.Lookup(scanLanguage)
		if !ok {
			return nil, "", fmt.Errorf("unknown language %q (see 'glint languages')", scanLanguage)
		}
		return table, string(src), nil
	}
	if path != "" {
		if table, ok := syntax.LookupPath(path); ok {
			return table, string(src), nil
		}
	}

	table, _ := syntax.Lookup(syntax.Languages()[0])
	return table, string(src), nil
}

func runScan(cmd *cobra.Command, args []string) error {
	table, src, err := resolveScanInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	spans := syntax.Scan(table, src)
	out := cmd.OutOrStdout()

	switch {
	case scanStats:
		return printScanStats(out, table.Name, spans)
	case scanJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(toSpanJSON(spans))
	default:
		return printSpanTable(out, src, spans)
	}
}

func printSpanTable(out io.Writer, src string, spans []syntax.Span) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "START\tEND\tCATEGORY\tFLAGS\tTEXT")

	for _, sp := range spans {
		flags := ""
		if sp.Unterminated {
			flags = "unterminated"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\n",
			sp.Start, sp.End, sp.Category, flags, compactText(src[sp.Start:sp.End]))
	}
	return tw.Flush()
}

func printScanStats(out io.Writer, language string, spans []syntax.Span) error {
	counts := map[string]int{}
	unterminated := 0
	for _, sp := range spans {
		counts[sp.Category.String()]++
		if sp.Unterminated {
			unterminated++
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintf(out, "language: %s\n", language)
	fmt.Fprintf(out, "spans: %d\n", len(spans))
	if unterminated > 0 {
		fmt.Fprintf(out, "unterminated: %d\n", unterminated)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "%s\t%d\n", name, counts[name])
	}
	return tw.Flush()
}

// compactText makes span text single-line for the table, capped at 40
// display columns.
func compactText(s string) string {
	const limit = 40
	s = lineBreakReplacer.Replace(s)
	if highlight.DisplayWidth(s) <= limit {
		return s
	}
	return highlight.Window(s, 0, limit) + "…"
}

var lineBreakReplacer = strings.NewReplacer("\n", "⏎", "\t", "⇥", "\r", "")
