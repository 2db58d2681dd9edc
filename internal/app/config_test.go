package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "dhyan.env")
	content := "DHYAN_STORE=postgres\nDHYAN_POSTGRES_DSN=postgres://u:p@localhost/dhyan\nDHYAN_LOG_LEVEL=debug\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(EnvStore, "")
	t.Setenv(EnvPostgresDSN, "")
	t.Setenv(EnvLogLevel, "")
	os.Unsetenv(EnvStore)
	os.Unsetenv(EnvPostgresDSN)
	os.Unsetenv(EnvLogLevel)

	cfg, err := LoadConfig(envPath)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Store != "postgres" {
		t.Fatalf("expected postgres store, got %q", cfg.Store)
	}
	if cfg.PostgresDSN != "postgres://u:p@localhost/dhyan" {
		t.Fatalf("unexpected dsn %q", cfg.PostgresDSN)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug log level, got %q", cfg.LogLevel)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv(EnvStore, "")
	t.Setenv(EnvDBPath, "/tmp/custom.db")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Store != "sqlite" || cfg.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	path, err := cfg.ResolveDBPath()
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}
	if path != "/tmp/custom.db" {
		t.Fatalf("expected env db path, got %q", path)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	t.Parallel()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	if err == nil {
		t.Fatalf("expected missing explicit env file to fail")
	}
}

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	logger, err := NewLogger("warn", buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown", "key", "dhyan-user")
	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "key=dhyan-user") {
		t.Fatalf("unexpected log output: %q", out)
	}
	if _, err := NewLogger("loud", buf); err == nil {
		t.Fatalf("expected invalid level to fail")
	}
}

func TestEnsureDBDirCreatesNestedDirectory(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "a", "b", "dhyan.db")
	if err := EnsureDBDir(path); err != nil {
		t.Fatalf("ensure db dir: %v", err)
	}
	info, err := os.Stat(filepath.Dir(path))
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist, err=%v", err)
	}
	if err := EnsureDBDir("dhyan.db"); err != nil {
		t.Fatalf("bare file name should need no directory: %v", err)
	}
}

func TestDefaultDBPathEndsInAppDir(t *testing.T) {
	t.Parallel()
	path, err := DefaultDBPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	if filepath.Base(path) != "dhyan.db" || filepath.Base(filepath.Dir(path)) != "dhyan" {
		t.Fatalf("unexpected default path %q", path)
	}
}
