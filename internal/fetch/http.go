package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// HTTP downloads with the native net/http client. Redirects are followed by
// the default client policy (up to 10 hops).
type HTTP struct {
	client *http.Client
}

// NewHTTP constructs a native HTTP fetcher. Per-request deadlines come from
// the caller's context rather than a client-level timeout so the syncer's
// download budget applies to the whole transfer.
func NewHTTP() *HTTP {
	return &HTTP{client: &http.Client{}}
}

// Fetch streams the response body for url into dest. A partial file may be
// left behind on failure; the caller removes it.
func (h *HTTP) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	req.Header.Set("User-Agent", "castfetch")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: unexpected status %d", resp.StatusCode)
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", dest, err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return out.Close()
}

var _ Fetcher = (*HTTP)(nil)
