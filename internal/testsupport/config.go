package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"castfetch/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Logging.Path = filepath.Join(cfg.Paths.LogDir, "castfetch.log")
	cfg.History.Path = filepath.Join(cfg.Paths.LogDir, "history.db")
	if err := os.MkdirAll(cfg.Paths.LogDir, 0o755); err != nil {
		t.Fatalf("mkdir logs: %v", err)
	}
	return &cfg
}

// StubBinary writes an executable shell script under a fresh directory and
// prepends that directory to PATH for the duration of the test.
func StubBinary(t *testing.T, name, script string) {
	t.Helper()

	binDir := t.TempDir()
	target := filepath.Join(binDir, name)
	if err := os.WriteFile(target, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
