package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"castfetch/internal/daemon"
	"castfetch/internal/deps"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Sync all feeds periodically until interrupted",
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

			s, cleanup, err := buildSyncer(cfg, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			runner, err := daemon.New(cfg, s, logger, interval)
			if err != nil {
				return err
			}

			signalCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runner.Run(signalCtx)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", daemon.DefaultInterval, "Time between sync cycles")
	return cmd
}
