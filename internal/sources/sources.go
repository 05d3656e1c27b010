package sources

import (
	"fmt"
	"log/slog"
	"os"
	"sort"

	"golang.org/x/sys/unix"

	"castfetch/internal/config"
	"castfetch/internal/logging"
)

// DefaultSuffix is the enclosure suffix used when a source leaves the
// filename key empty. It matches the generic name feed providers hand out,
// which is exactly the case the filename scheme exists to avoid.
const DefaultSuffix = "stream.mp3"

// Source describes one configured feed. Immutable once loaded.
type Source struct {
	Name      string
	Directory string
	FeedURL   string
	Suffix    string
}

// Load builds the source list from config, skipping sources whose download
// directory is missing or not writable. Skips are warnings, never fatal;
// the returned slice is ordered by source name so runs are deterministic.
func Load(cfg *config.Config, logger *slog.Logger) []Source {
	log := logging.WithComponent(logger, "sources")

	names := make([]string, 0, len(cfg.Sources))
	for name := range cfg.Sources {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Source, 0, len(names))
	for _, name := range names {
		sc := cfg.Sources[name]
		if err := checkDirectory(sc.Path); err != nil {
			log.Warn("skipping source",
				slog.String(logging.FieldSource, name),
				slog.String(logging.FieldPath, sc.Path),
				logging.Error(err),
			)
			continue
		}
		suffix := sc.Filename
		if suffix == "" {
			suffix = DefaultSuffix
		}
		out = append(out, Source{
			Name:      name,
			Directory: sc.Path,
			FeedURL:   sc.URL,
			Suffix:    suffix,
		})
	}
	return out
}

// checkDirectory verifies the path exists, is a directory, and is writable.
func checkDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s does not exist", path)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%s is not writable: %w", path, err)
	}
	return nil
}
