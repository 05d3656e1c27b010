package tags_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"

	"castfetch/internal/tags"
)

func TestWriteSetsTitleAndDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ep.mp3")
	if err := os.WriteFile(path, []byte("fake mpeg frames"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	w := tags.NewID3()
	if err := w.Write(path, tags.Metadata{Title: "Episode One", Date: "2024-01-01"}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen tag: %v", err)
	}
	defer tag.Close()

	if got := tag.Title(); got != "Episode One" {
		t.Fatalf("title = %q", got)
	}
	frame := tag.GetTextFrame(tag.CommonID("Recording time"))
	if frame.Text != "2024-01-01" {
		t.Fatalf("recording time = %q", frame.Text)
	}
}

func TestWriteOverwritesExistingTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ep.mp3")
	if err := os.WriteFile(path, []byte("fake mpeg frames"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	w := tags.NewID3()
	if err := w.Write(path, tags.Metadata{Title: "First", Date: "2024-01-01"}); err != nil {
		t.Fatalf("first write: %v", err)
	}
	if err := w.Write(path, tags.Metadata{Title: "Second", Date: "2024-02-02"}); err != nil {
		t.Fatalf("second write: %v", err)
	}

	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		t.Fatalf("reopen tag: %v", err)
	}
	defer tag.Close()
	if got := tag.Title(); got != "Second" {
		t.Fatalf("title = %q", got)
	}
}

func TestWriteMissingFile(t *testing.T) {
	w := tags.NewID3()
	err := w.Write(filepath.Join(t.TempDir(), "missing.mp3"), tags.Metadata{Title: "x", Date: "2024-01-01"})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
