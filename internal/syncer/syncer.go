package syncer

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"castfetch/internal/feed"
	"castfetch/internal/fetch"
	"castfetch/internal/fileutil"
	"castfetch/internal/history"
	"castfetch/internal/logging"
	"castfetch/internal/sources"
	"castfetch/internal/tags"
	"castfetch/internal/textutil"
)

// DefaultTimeout bounds a single download attempt.
const DefaultTimeout = 5 * time.Minute

// Result summarizes one source's sync pass. Err is set only for feed-level
// failures that aborted the pass before any entry was processed.
type Result struct {
	Source     string
	Downloaded int
	Skipped    int
	Failed     int
	Err        error
}

// Syncer runs the feed-to-file synchronization procedure for one source at a
// time. It never propagates per-target failures; everything is logged,
// counted, and recorded.
type Syncer struct {
	feeds   feed.Client
	fetcher fetch.Fetcher
	tagger  tags.Writer
	store   *history.Store
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
}

// Option configures a Syncer.
type Option func(*Syncer)

// WithHistory attaches a download history store. A nil store disables
// recording.
func WithHistory(store *history.Store) Option {
	return func(s *Syncer) { s.store = store }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Syncer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithTimeout overrides the per-download timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Syncer) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithClock overrides the time source used for date fallbacks.
func WithClock(now func() time.Time) Option {
	return func(s *Syncer) {
		if now != nil {
			s.now = now
		}
	}
}

// New constructs a Syncer from its collaborators.
func New(feeds feed.Client, fetcher fetch.Fetcher, tagger tags.Writer, opts ...Option) *Syncer {
	s := &Syncer{
		feeds:   feeds,
		fetcher: fetcher,
		tagger:  tagger,
		logger:  logging.NewNop(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SyncAll processes each source in order under one shared run ID. Sources
// are independent; one source's failure never stops the next.
func (s *Syncer) SyncAll(ctx context.Context, srcs []sources.Source) []Result {
	runID := uuid.NewString()
	results := make([]Result, 0, len(srcs))
	for _, src := range srcs {
		results = append(results, s.sync(ctx, runID, src))
	}
	return results
}

// Sync processes a single source under its own run ID.
func (s *Syncer) Sync(ctx context.Context, src sources.Source) Result {
	return s.sync(ctx, uuid.NewString(), src)
}

func (s *Syncer) sync(ctx context.Context, runID string, src sources.Source) Result {
	log := logging.WithComponent(s.logger, "syncer").With(
		slog.String(logging.FieldSource, src.Name),
		slog.String(logging.FieldRunID, runID),
	)
	res := Result{Source: src.Name}

	f, err := s.feeds.Fetch(ctx, src.FeedURL)
	if err != nil {
		log.Error("feed parse failed",
			slog.String(logging.FieldURL, src.FeedURL),
			logging.Error(err),
		)
		res.Err = wrap(ErrFeed, src.Name, "fetch feed", err)
		return res
	}
	if f.StatusCode != http.StatusOK {
		log.Error("feed returned non-success status",
			slog.String(logging.FieldURL, src.FeedURL),
			slog.Int("status", f.StatusCode),
		)
		res.Err = wrap(ErrFeed, src.Name, "feed status "+http.StatusText(f.StatusCode), nil)
		return res
	}

	for _, entry := range f.Entries {
		name := textutil.DisplayName(entry.Title, src.Name)
		date := entryDate(entry, s.now)
		for _, enc := range entry.Enclosures {
			if !strings.HasSuffix(enc.URL, src.Suffix) {
				continue
			}
			s.syncTarget(ctx, log, runID, src, entry.Title, name, date, enc.URL, &res)
		}
	}

	log.Info("source sync complete",
		slog.Int("downloaded", res.Downloaded),
		slog.Int("skipped", res.Skipped),
		slog.Int("failed", res.Failed),
	)
	return res
}

// syncTarget drives one download target through its states:
// NotPresent -> Downloading -> Tagged or DownloadFailed (partial removed),
// or Skipped when a nonzero-size file already exists.
func (s *Syncer) syncTarget(ctx context.Context, log *slog.Logger, runID string, src sources.Source, title, name, date, url string, res *Result) {
	target := targetPath(src.Directory, name, date)
	rec := history.Record{
		RunID:      runID,
		Source:     src.Name,
		Title:      title,
		TargetPath: target,
		URL:        url,
	}

	present, err := fileutil.NonEmptyFile(target)
	if err != nil {
		log.Error("cannot check download target",
			slog.String(logging.FieldPath, target),
			logging.Error(err),
		)
		res.Failed++
		rec.Outcome = history.OutcomeFailed
		rec.Detail = err.Error()
		s.record(ctx, log, &rec)
		return
	}
	if present {
		log.Debug("already downloaded", slog.String(logging.FieldPath, target))
		res.Skipped++
		rec.Outcome = history.OutcomeSkipped
		s.record(ctx, log, &rec)
		return
	}

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	err = s.fetcher.Fetch(fetchCtx, url, target)
	cancel()
	if err != nil {
		if removeErr := fileutil.RemoveIfPresent(target); removeErr != nil {
			log.Error("cannot remove partial download",
				slog.String(logging.FieldPath, target),
				logging.Error(removeErr),
			)
		}
		log.Error("download failed",
			slog.String(logging.FieldURL, url),
			slog.String(logging.FieldPath, target),
			logging.Error(wrap(ErrDownload, src.Name, "fetch", err)),
		)
		res.Failed++
		rec.Outcome = history.OutcomeFailed
		rec.Detail = err.Error()
		s.record(ctx, log, &rec)
		return
	}

	tagTitle := title
	if tagTitle == "" {
		tagTitle = name
	}
	if err := s.tagger.Write(target, tags.Metadata{Title: tagTitle, Date: date}); err != nil {
		// Tag failures never remove the downloaded file.
		log.Warn("metadata write failed, keeping file",
			slog.String(logging.FieldPath, target),
			logging.Error(wrap(ErrMetadata, src.Name, "write tag", err)),
		)
	}

	log.Info("downloaded episode",
		slog.String(logging.FieldURL, url),
		slog.String(logging.FieldPath, target),
	)
	res.Downloaded++
	rec.Outcome = history.OutcomeDownloaded
	s.record(ctx, log, &rec)
}

func (s *Syncer) record(ctx context.Context, log *slog.Logger, rec *history.Record) {
	if err := s.store.Add(ctx, rec); err != nil {
		log.Warn("history record failed", logging.Error(err))
	}
}
