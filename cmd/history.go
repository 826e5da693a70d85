package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/config"
	"github.com/glintlabs/glint/internal/history"
	"github.com/glintlabs/glint/internal/ui/styles"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent preview sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !cfg.History.Enabled {
			return fmt.Errorf("history is disabled in the configuration")
		}
		path := cfg.History.Path
		if path == "" {
			path = config.DefaultHistoryPath()
		}
		if path == "" {
			return fmt.Errorf("no history database path configured")
		}

		store, err := history.Open(path)
		if err != nil {
			return fmt.Errorf("opening history: %w", err)
		}
		defer store.Close()

		sessions, err := store.Recent(historyLimit)
		if err != nil {
			return err
		}
		total, err := store.Count()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(sessions) == 0 {
			fmt.Fprintln(out, "no sessions recorded")
			return nil
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "WHEN\tSOURCE\tLANGUAGE\tTHEME\tBYTES\tSPANS\tSCAN")
		for _, s := range sessions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
				s.StartedAt.Local().Format(time.DateTime),
				s.Source, s.Language, s.Theme, s.Bytes, s.SpanCount,
				styles.FormatDuration(s.Duration))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		if total > len(sessions) {
			fmt.Fprintf(out, "\n%d of %d sessions shown\n", len(sessions), total)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of sessions to show")
	rootCmd.AddCommand(historyCmd)
}
