package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	toml "github.com/pelletier/go-toml/v2"

	"castfetch/internal/config"
	"castfetch/internal/sources"
	"castfetch/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeTestConfig(t *testing.T, cfg *config.Config) string {
	t.Helper()

	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func requireContains(t *testing.T, output, want string) {
	t.Helper()
	if !strings.Contains(output, want) {
		t.Fatalf("expected output to contain %q, got:\n%s", want, output)
	}
}

func TestConfigInitCreatesLoadableConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := config.Load(target); err != nil {
		t.Fatalf("generated config should load: %v", err)
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	if _, err := runCLI(t, "config", "init", "--path", target); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config file already exists")
	}
	if _, err := runCLI(t, "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestConfigShowPrintsEffectiveConfig(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	cfg.Sources = map[string]config.Source{
		"testcast": {Path: dir, URL: "http://example.com/feed"},
	}
	path := writeTestConfig(t, cfg)

	out, err := runCLI(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	requireContains(t, out, path)
	requireContains(t, out, "[sources.testcast]")
	requireContains(t, out, "log_dir")
}

func TestSourcesListsConfigured(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	dir := t.TempDir()
	cfg.Sources = map[string]config.Source{
		"alpha": {Path: dir, URL: "http://example.com/a"},
		"beta":  {Path: filepath.Join(dir, "missing"), URL: "http://example.com/b"},
	}
	path := writeTestConfig(t, cfg)

	out, err := runCLI(t, "--config", path, "sources")
	if err != nil {
		t.Fatalf("sources: %v", err)
	}
	requireContains(t, out, "alpha")
	requireContains(t, out, "yes")
	requireContains(t, out, "beta")
	requireContains(t, out, "no")
}

func TestSyncRejectsUnknownSource(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	cfg.Sources = map[string]config.Source{}
	path := writeTestConfig(t, cfg)

	_, err := runCLI(t, "--config", path, "sync", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown or unusable source") {
		t.Fatalf("expected unknown source error, got %v", err)
	}
}

func TestRootFailsWithoutConfig(t *testing.T) {
	_, err := runCLI(t, "--config", filepath.Join(t.TempDir(), "absent.toml"), "sources")
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestFilterSourcesKeepsRequestedOrder(t *testing.T) {
	srcs := []sources.Source{
		{Name: "alpha"},
		{Name: "beta"},
	}

	got, err := filterSources(srcs, []string{"beta", "alpha"})
	if err != nil {
		t.Fatalf("filterSources: %v", err)
	}
	if len(got) != 2 || got[0].Name != "beta" || got[1].Name != "alpha" {
		t.Fatalf("unexpected filtered sources: %+v", got)
	}

	if _, err := filterSources(srcs, []string{"gamma"}); err == nil {
		t.Fatal("expected error for unknown source name")
	}
}
