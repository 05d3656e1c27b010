package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"castfetch/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var source string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent download outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				fmt.Fprintln(cmd.OutOrStdout(), "history is disabled in config")
				return nil
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			recs, err := store.Recent(cmd.Context(), source, limit)
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no history recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(recs))
			for _, rec := range recs {
				rows = append(rows, []string{
					rec.CreatedAt.Local().Format(time.DateTime),
					rec.Source,
					string(rec.Outcome),
					rec.TargetPath,
					rec.Detail,
				})
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"When", "Source", "Outcome", "File", "Detail"}, rows))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), renderPlain(rows))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum records to show")
	cmd.Flags().StringVar(&source, "source", "", "Only show records for one source")
	return cmd
}
