package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"castfetch/internal/config"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadParsesSources(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
[paths]
log_dir = "`+filepath.Join(base, "logs")+`"

[sources."Malicious Life"]
path = "`+filepath.Join(base, "ml")+`"
url = "https://example.com/feed.xml"
filename = ".mp3"

[sources.other]
path = "`+filepath.Join(base, "other")+`"
url = "https://example.com/other.xml"
`)

	cfg, resolved, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path = %q, want %q", resolved, path)
	}

	src, ok := cfg.Sources["Malicious Life"]
	if !ok {
		t.Fatalf("missing source, got %#v", cfg.Sources)
	}
	if src.URL != "https://example.com/feed.xml" || src.Filename != ".mp3" {
		t.Fatalf("unexpected source: %#v", src)
	}
	if other := cfg.Sources["other"]; other.Filename != "" {
		t.Fatalf("expected empty filename to stay empty at config level, got %q", other.Filename)
	}
}

func TestLoadDefaults(t *testing.T) {
	base := t.TempDir()
	path := writeConfig(t, `
[paths]
log_dir = "`+filepath.Join(base, "logs")+`"
`)

	cfg, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Fetch.Mode != "http" {
		t.Fatalf("fetch mode default = %q", cfg.Fetch.Mode)
	}
	if cfg.Fetch.TimeoutSeconds != 300 {
		t.Fatalf("fetch timeout default = %d", cfg.Fetch.TimeoutSeconds)
	}
	if !cfg.History.Enabled {
		t.Fatal("history should default to enabled")
	}
	if cfg.History.Path != filepath.Join(base, "logs", "history.db") {
		t.Fatalf("history path default = %q", cfg.History.Path)
	}
	if cfg.Logging.Path != filepath.Join(base, "logs", "castfetch.log") {
		t.Fatalf("logging path default = %q", cfg.Logging.Path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, config.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "[paths\nlog_dir = broken")
	if _, _, err := config.Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name     string
		contents string
		fragment string
	}{
		{
			name:     "bad fetch mode",
			contents: "[fetch]\nmode = \"wget\"\n",
			fragment: "fetch.mode",
		},
		{
			name:     "zero timeout",
			contents: "[fetch]\ntimeout_seconds = 0\n",
			fragment: "timeout_seconds",
		},
		{
			name:     "bad log format",
			contents: "[logging]\nformat = \"yaml\"\n",
			fragment: "logging.format",
		},
		{
			name:     "source without url",
			contents: "[sources.cast]\npath = \"/tmp\"\n",
			fragment: "url is required",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.fragment) {
				t.Fatalf("expected error containing %q, got %v", tc.fragment, err)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}
