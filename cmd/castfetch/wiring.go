package main

import (
	"fmt"
	"log/slog"
	"time"

	"castfetch/internal/config"
	"castfetch/internal/feed"
	"castfetch/internal/fetch"
	"castfetch/internal/history"
	"castfetch/internal/syncer"
	"castfetch/internal/tags"
)

// buildSyncer assembles the sync procedure's collaborators from config. The
// returned cleanup closes the history store and must always be called.
func buildSyncer(cfg *config.Config, logger *slog.Logger) (*syncer.Syncer, func(), error) {
	fetcher, err := buildFetcher(cfg)
	if err != nil {
		return nil, nil, err
	}

	var store *history.Store
	cleanup := func() {}
	if cfg.History.Enabled {
		store, err = history.Open(cfg.History.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open history store: %w", err)
		}
		cleanup = func() { _ = store.Close() }
	}

	timeout := time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second
	s := syncer.New(
		feed.NewHTTPClient(timeout),
		fetcher,
		tags.NewID3(),
		syncer.WithLogger(logger),
		syncer.WithTimeout(timeout),
		syncer.WithHistory(store),
	)
	return s, cleanup, nil
}

func buildFetcher(cfg *config.Config) (fetch.Fetcher, error) {
	switch cfg.Fetch.Mode {
	case "curl":
		return fetch.NewCurl(fetch.WithBinary(cfg.Fetch.Binary)), nil
	case "http":
		return fetch.NewHTTP(), nil
	default:
		return nil, fmt.Errorf("unknown fetch mode %q", cfg.Fetch.Mode)
	}
}
