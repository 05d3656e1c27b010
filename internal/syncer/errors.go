package syncer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying sync failures. All of them are recovered
// locally: a feed error aborts one source's pass, a download error costs one
// target, a metadata error costs nothing but the tag.
var (
	ErrFeed     = errors.New("feed error")
	ErrDownload = errors.New("download error")
	ErrMetadata = errors.New("metadata error")
)

// wrap builds an error message that includes source context while tagging it
// with the provided sentinel for later classification.
func wrap(marker error, source, operation string, err error) error {
	parts := make([]string, 0, 2)
	if source = strings.TrimSpace(source); source != "" {
		parts = append(parts, source)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	detail := strings.Join(parts, ": ")
	if detail == "" {
		detail = "sync failure"
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}
