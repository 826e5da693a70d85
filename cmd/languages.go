package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/syntax"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List the built-in rule tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tALIASES\tFEATURES")

		for _, name := range syntax.Languages() {
			table, _ := syntax.Lookup(name)
			fmt.Fprintf(tw, "%s\t%s\t%s\n",
				table.Name,
				strings.Join(table.Aliases, ", "),
				strings.Join(tableFeatures(table), ", "))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}

// tableFeatures summarizes the optional lexical forms a table enables.
func tableFeatures(t *syntax.Table) []string {
	var f []string
	if t.LineComment != "" {
		f = append(f, "line comments")
	}
	if t.BlockComment != nil {
		if t.BlockComment.Nested {
			f = append(f, "nested block comments")
		} else {
			f = append(f, "block comments")
		}
	}
	if len(t.StringPrefixes) > 0 {
		f = append(f, "string prefixes")
	}
	if t.InterpOpen != "" {
		f = append(f, "interpolation")
	}
	if t.Regex != nil {
		f = append(f, "regex literals")
	}
	return f
}
