package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"castfetch/internal/logging"
	"castfetch/internal/sources"
)

func newSourcesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List configured sources and their validation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			usable := map[string]sources.Source{}
			for _, src := range sources.Load(cfg, logging.NewNop()) {
				usable[src.Name] = src
			}

			names := make([]string, 0, len(cfg.Sources))
			for name := range cfg.Sources {
				names = append(names, name)
			}
			sort.Strings(names)

			rows := make([][]string, 0, len(names))
			for _, name := range names {
				sc := cfg.Sources[name]
				suffix := sc.Filename
				if suffix == "" {
					suffix = sources.DefaultSuffix
				}
				_, ok := usable[name]
				rows = append(rows, []string{name, sc.Path, sc.URL, suffix, yesNo(ok)})
			}

			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no sources configured")
				return nil
			}
			if stdoutIsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Directory", "Feed URL", "Suffix", "Usable"}, rows))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), renderPlain(rows))
			}
			return nil
		},
	}
}
