package main

import (
	"fmt"
	"text/tabwriter"

	"accelbench/internal/config"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List the analysis runs saved with 'analyze --save'",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.Current().HistoryFile
		store, err := newStoreFunc(path)
		if err != nil {
			return err
		}
		reports, err := store.LoadAll()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(reports) == 0 {
			fmt.Fprintf(out, "No saved runs in %s\n", path)
			return nil
		}
		if historyLimit > 0 && len(reports) > historyLimit {
			reports = reports[len(reports)-historyLimit:]
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "RUN ID\tTIMESTAMP\tTASKS\tMEAN SPEEDUP\tMISMATCHES")
		for _, r := range reports {
			speedup := "-"
			if r.Summary != nil {
				speedup = fmt.Sprintf("%.2fx", r.Summary.Mean)
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%d\n",
				r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"), len(r.Results), speedup, len(r.Mismatches()))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "Show only the newest N runs (0 for all)")
}
