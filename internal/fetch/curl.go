package fetch

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
)

var commandContext = exec.CommandContext

// Option configures the curl client.
type Option func(*Curl)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *Curl) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// Curl wraps the curl command-line downloader.
type Curl struct {
	binary string
}

// NewCurl constructs a curl client using defaults.
func NewCurl(opts ...Option) *Curl {
	c := &Curl{binary: "curl"}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads url to dest via curl. -f turns HTTP errors into a nonzero
// exit, -L follows redirects, -s keeps curl quiet, -o writes the body.
func (c *Curl) Fetch(ctx context.Context, url, dest string) error {
	if url == "" {
		return errors.New("url required")
	}
	if dest == "" {
		return errors.New("destination path required")
	}

	cmd := commandContext(ctx, c.binary, "-fLso", dest, url)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("curl timed out: %w", ctx.Err())
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("curl exited with code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run curl: %w", err)
	}
	return nil
}

var _ Fetcher = (*Curl)(nil)
