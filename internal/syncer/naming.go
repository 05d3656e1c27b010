package syncer

import (
	"path/filepath"
	"strings"
	"time"

	"castfetch/internal/feed"
)

// publishedLayout is the RFC-822-style date format feeds carry in pubDate:
// "Mon, 01 Jan 2024 10:00:00 +0000".
const publishedLayout = time.RFC1123Z

// dateLayout is the YYYY-MM-DD form used in filenames and tags.
const dateLayout = "2006-01-02"

// entryDate derives an entry's effective date string. The parser's
// interpretation wins when it produced one, then a direct RFC-822 parse of
// the raw pubDate, then the current time.
func entryDate(entry feed.Entry, now func() time.Time) string {
	if entry.PublishedAt != nil {
		return entry.PublishedAt.Format(dateLayout)
	}
	if entry.Published != "" {
		if ts, err := time.Parse(publishedLayout, entry.Published); err == nil {
			return ts.Format(dateLayout)
		}
	}
	return now().Format(dateLayout)
}

// targetPath builds the final file path {dir}/{name}.{date}.mp3, ensuring
// exactly one dot separates the display name from the date.
func targetPath(dir, name, date string) string {
	if !strings.HasSuffix(name, ".") {
		name += "."
	}
	return filepath.Join(dir, name+date+".mp3")
}
