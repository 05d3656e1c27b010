package textutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// displayNameReplacer maps characters that break the filename scheme.
// Spaces become dots so episode titles read as dotted words; slashes
// become dashes so the name never introduces path separators.
var displayNameReplacer = strings.NewReplacer(
	" ", ".",
	"/", "-",
)

// DisplayName derives a filename-safe display name from an entry title.
// Titles are NFC-normalized so the same episode yields the same byte
// sequence across feeds that encode accents differently. An empty title
// falls back to the provided source name.
func DisplayName(title, fallback string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return displayNameReplacer.Replace(strings.TrimSpace(fallback))
	}
	return displayNameReplacer.Replace(norm.NFC.String(title))
}
