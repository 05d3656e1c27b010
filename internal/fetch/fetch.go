package fetch

import "context"

// Fetcher downloads url into dest, following redirects. Implementations
// report failure through the returned error and honor ctx cancellation; the
// caller owns timeout policy and cleanup of partial files.
type Fetcher interface {
	Fetch(ctx context.Context, url, dest string) error
}
