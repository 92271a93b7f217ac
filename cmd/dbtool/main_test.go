package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewLoggerReadsLevelFromDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("MEET_LOG_LEVEL=debug\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	chdir(t, dir)

	// Register restoration, then clear so the .env value is not shadowed.
	t.Setenv("MEET_LOG_LEVEL", "")
	if err := os.Unsetenv("MEET_LOG_LEVEL"); err != nil {
		t.Fatalf("unset: %v", err)
	}

	logger := newLogger()
	if got := logger.GetLevel(); got != zerolog.DebugLevel {
		t.Fatalf("expected debug level from .env, got %s", got)
	}
}

func TestNewLoggerDefaultsToInfo(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MEET_LOG_LEVEL", "")

	if got := newLogger().GetLevel(); got != zerolog.InfoLevel {
		t.Fatalf("expected info level, got %s", got)
	}
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
