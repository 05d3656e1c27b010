package history

import "time"

// Outcome classifies how one download target ended up.
type Outcome string

const (
	// OutcomeDownloaded means the file was fetched and kept (tagging is
	// best-effort and does not change the outcome).
	OutcomeDownloaded Outcome = "downloaded"
	// OutcomeSkipped means a nonzero-size file was already present.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the fetch failed and the partial file was removed.
	OutcomeFailed Outcome = "failed"
)

// Record is one download-target outcome from one sync pass.
type Record struct {
	ID         int64
	RunID      string
	Source     string
	Title      string
	TargetPath string
	URL        string
	Outcome    Outcome
	Detail     string
	CreatedAt  time.Time
}
