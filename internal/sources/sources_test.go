package sources_test

import (
	"os"
	"path/filepath"
	"testing"

	"castfetch/internal/config"
	"castfetch/internal/logging"
	"castfetch/internal/sources"
)

func TestLoadDefaultsSuffix(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Sources = map[string]config.Source{
		"cast": {Path: dir, URL: "https://example.com/feed.xml"},
	}

	srcs := sources.Load(&cfg, logging.NewNop())
	if len(srcs) != 1 {
		t.Fatalf("expected 1 source, got %d", len(srcs))
	}
	if srcs[0].Suffix != sources.DefaultSuffix {
		t.Fatalf("suffix = %q, want %q", srcs[0].Suffix, sources.DefaultSuffix)
	}
}

func TestLoadSkipsMissingDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Sources = map[string]config.Source{
		"gone": {Path: filepath.Join(t.TempDir(), "missing"), URL: "https://example.com/feed.xml"},
	}

	if srcs := sources.Load(&cfg, logging.NewNop()); len(srcs) != 0 {
		t.Fatalf("expected source skipped, got %#v", srcs)
	}
}

func TestLoadSkipsNonDirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	cfg := config.Default()
	cfg.Sources = map[string]config.Source{
		"notdir": {Path: file, URL: "https://example.com/feed.xml"},
	}

	if srcs := sources.Load(&cfg, logging.NewNop()); len(srcs) != 0 {
		t.Fatalf("expected source skipped, got %#v", srcs)
	}
}

func TestLoadOrdersByName(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Sources = map[string]config.Source{
		"zeta":  {Path: dir, URL: "https://example.com/z.xml"},
		"alpha": {Path: dir, URL: "https://example.com/a.xml"},
		"mid":   {Path: dir, URL: "https://example.com/m.xml"},
	}

	srcs := sources.Load(&cfg, logging.NewNop())
	if len(srcs) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(srcs))
	}
	for i, want := range []string{"alpha", "mid", "zeta"} {
		if srcs[i].Name != want {
			t.Fatalf("srcs[%d].Name = %q, want %q", i, srcs[i].Name, want)
		}
	}
}
