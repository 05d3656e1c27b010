package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"castfetch/internal/config"
	"castfetch/internal/logging"
	"castfetch/internal/sources"
	"castfetch/internal/syncer"
)

// DefaultInterval is how often the runner re-checks every feed.
const DefaultInterval = time.Hour

// ErrAlreadyRunning indicates another castfetch run loop holds the lock.
var ErrAlreadyRunning = errors.New("another castfetch instance is already running")

// Runner periodically syncs all configured sources. A file lock enforces a
// single instance per machine; sources write to fixed filenames, so two
// concurrent runs would race on the same targets.
type Runner struct {
	cfg      *config.Config
	syncer   *syncer.Syncer
	logger   *slog.Logger
	interval time.Duration

	lockPath string
	lock     *flock.Flock
}

// New constructs a runner. A non-positive interval falls back to
// DefaultInterval.
func New(cfg *config.Config, s *syncer.Syncer, logger *slog.Logger, interval time.Duration) (*Runner, error) {
	if cfg == nil || s == nil {
		return nil, errors.New("runner requires config and syncer")
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	lockPath := filepath.Join(cfg.Paths.LogDir, "castfetch.lock")
	return &Runner{
		cfg:      cfg,
		syncer:   s,
		logger:   logging.WithComponent(logger, "runner"),
		interval: interval,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
	}, nil
}

// Run acquires the instance lock, then syncs all sources immediately and on
// every interval tick until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	ok, err := r.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock %s: %w", r.lockPath, err)
	}
	if !ok {
		return ErrAlreadyRunning
	}
	defer func() {
		if unlockErr := r.lock.Unlock(); unlockErr != nil {
			r.logger.Warn("failed to release lock", logging.Error(unlockErr))
		}
	}()

	r.logger.Info("run loop started",
		slog.Duration("interval", r.interval),
		slog.String("lock", r.lockPath),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.cycle(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("run loop stopped")
			return nil
		case <-ticker.C:
			r.cycle(ctx)
		}
	}
}

// cycle re-reads the source registry so config-directory fixes (a mounted
// drive reappearing) take effect without a restart.
func (r *Runner) cycle(ctx context.Context) {
	srcs := sources.Load(r.cfg, r.logger)
	if len(srcs) == 0 {
		r.logger.Warn("no usable sources configured")
		return
	}

	var downloaded, skipped, failed int
	for _, res := range r.syncer.SyncAll(ctx, srcs) {
		downloaded += res.Downloaded
		skipped += res.Skipped
		failed += res.Failed
	}
	r.logger.Info("sync cycle complete",
		slog.Int("sources", len(srcs)),
		slog.Int("downloaded", downloaded),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed),
	)
}
