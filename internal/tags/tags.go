package tags

import (
	"fmt"

	"github.com/bogem/id3v2/v2"
)

// Metadata is the descriptive information written into a downloaded file.
type Metadata struct {
	Title string
	Date  string // YYYY-MM-DD
}

// Writer persists metadata into a media file's tag structure.
type Writer interface {
	Write(path string, meta Metadata) error
}

// ID3 writes ID3v2 tags. An unreadable existing tag is replaced with a fresh
// one rather than failing the write.
type ID3 struct{}

// NewID3 constructs an ID3 tag writer.
func NewID3() *ID3 {
	return &ID3{}
}

// Write sets the title and recording-time frames on path and saves the tag.
func (w *ID3) Write(path string, meta Metadata) error {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		// Corrupt or foreign tag data: start over with an empty tag set.
		tag, err = id3v2.Open(path, id3v2.Options{Parse: false})
		if err != nil {
			return fmt.Errorf("open tag on %s: %w", path, err)
		}
	}
	defer tag.Close()

	tag.SetTitle(meta.Title)
	tag.AddTextFrame(tag.CommonID("Recording time"), tag.DefaultEncoding(), meta.Date)

	if err := tag.Save(); err != nil {
		return fmt.Errorf("save tag on %s: %w", path, err)
	}
	return nil
}

var _ Writer = (*ID3)(nil)
