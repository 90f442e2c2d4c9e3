package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/gridlab/internal/logging"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != defaultPageSize {
		t.Fatalf("PageSize = %d, want %d", cfg.PageSize, defaultPageSize)
	}
	if cfg.RecordCount != defaultRecordCount {
		t.Fatalf("RecordCount = %d, want %d", cfg.RecordCount, defaultRecordCount)
	}
	if cfg.FetchDelay != defaultFetchDelay || cfg.RefreshEvery != defaultRefreshEvery {
		t.Fatalf("FetchDelay/RefreshEvery = %v/%v", cfg.FetchDelay, cfg.RefreshEvery)
	}

	wantLog, err := expandPath(defaultLogFile)
	if err != nil {
		t.Fatalf("expandPath(defaultLogFile) returned error: %v", err)
	}
	if cfg.LogFile != wantLog {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, wantLog)
	}
}

func TestLoad_ParsesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
page_size = 25
record_count = 40
seed = 99
fetch_delay_ms = 0
refresh_seconds = 5
log_file = "  ~/logs/render.log  "
log_level = " INFO "
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != 25 || cfg.RecordCount != 40 || cfg.Seed != 99 {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.FetchDelay != 0 {
		t.Fatalf("FetchDelay = %v, want 0 (explicit)", cfg.FetchDelay)
	}
	if cfg.RefreshEvery != 5*time.Second {
		t.Fatalf("RefreshEvery = %v, want 5s", cfg.RefreshEvery)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel = %q, want info", cfg.LogLevel)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
page_size = 0
record_count = -5
fetch_delay_ms = -1
log_file = "   "
log_level = "verbose"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := Default()
	if cfg.PageSize != want.PageSize || cfg.RecordCount != want.RecordCount || cfg.FetchDelay != want.FetchDelay {
		t.Fatalf("cfg = %+v, want defaults %+v", cfg, want)
	}
	if cfg.LogFile != want.LogFile {
		t.Fatalf("LogFile = %q, want %q", cfg.LogFile, want.LogFile)
	}
	if cfg.LogLevel != want.LogLevel {
		t.Fatalf("LogLevel = %q, want default %q", cfg.LogLevel, want.LogLevel)
	}
	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		t.Fatalf("loaded LogLevel %q is not usable: %v", cfg.LogLevel, err)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`page_size = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
