package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"castfetch/internal/deps"
	"castfetch/internal/logging"
	"castfetch/internal/sources"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check external dependencies and source directories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			rows := [][]string{}
			for _, status := range deps.CheckBinaries(deps.Requirements(cfg)) {
				detail := status.Detail
				if status.Available {
					detail = "found"
				}
				kind := "required"
				if status.Optional {
					kind = "optional"
				}
				rows = append(rows, []string{status.Name, kind, yesNo(status.Available), detail})
			}

			usable := map[string]bool{}
			for _, src := range sources.Load(cfg, logging.NewNop()) {
				usable[src.Name] = true
			}
			names := make([]string, 0, len(cfg.Sources))
			for name := range cfg.Sources {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				detail := cfg.Sources[name].Path
				if !usable[name] {
					detail += " (missing or not writable)"
				}
				rows = append(rows, []string{"source " + name, "directory", yesNo(usable[name]), detail})
			}

			if stdoutIsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Check", "Kind", "OK", "Detail"}, rows))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), renderPlain(rows))
			}
			return nil
		},
	}
}
