package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"castfetch/internal/deps"
	"castfetch/internal/sources"
)

func newSyncCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "sync [source...]",
		Short: "Check every feed once and download missing episodes",
		Long: "Sync fetches each configured source's feed, downloads enclosures not yet\n" +
			"present locally, and tags downloaded files. Per-source failures are logged\n" +
			"and do not affect the exit code; name sources to sync a subset.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			if err := deps.CheckRequired(cfg); err != nil {
				return err
			}

			srcs := sources.Load(cfg, logger)
			if len(args) > 0 {
				srcs, err = filterSources(srcs, args)
				if err != nil {
					return err
				}
			}
			if len(srcs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no usable sources configured")
				return nil
			}

			s, cleanup, err := buildSyncer(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			for _, res := range s.SyncAll(signalCtx, srcs) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d downloaded, %d skipped, %d failed\n",
					res.Source, res.Downloaded, res.Skipped, res.Failed)
			}
			return nil
		},
	}
}

func filterSources(srcs []sources.Source, names []string) ([]sources.Source, error) {
	byName := make(map[string]sources.Source, len(srcs))
	for _, src := range srcs {
		byName[src.Name] = src
	}
	out := make([]sources.Source, 0, len(names))
	for _, name := range names {
		src, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown or unusable source %q", name)
		}
		out = append(out, src)
	}
	return out, nil
}
