package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/scheme"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color schemes",
	Long: `List the built-in color schemes plus any schemes found in the
configured schemes directory (theme.schemes_dir).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tSYSTEM\tVARIANT\tSOURCE")

		for _, name := range scheme.Names() {
			s, _ := scheme.Builtin(name)
			fmt.Fprintf(tw, "%s\t%s\t%s\tbuilt-in\n", s.Name, s.System, schemeVariant(s))
		}

		if dir := cfg.Theme.SchemesDir; dir != "" {
			loaded, errs := scheme.LoadDir(dir)
			for _, s := range loaded {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.System, schemeVariant(s), dir)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			for _, err := range errs {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			}
			return nil
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func schemeVariant(s *scheme.Scheme) string {
	if s.Variant != "" {
		return s.Variant
	}
	if s.Dark() {
		return "dark"
	}
	return "light"
}
