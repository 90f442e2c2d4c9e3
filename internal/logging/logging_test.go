package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/five82/gridlab/internal/logtail"
)

func TestNew_WritesParseableJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "render.log")

	logger, closeFn, err := New(path, "debug")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("render", zap.String("component", "DataGrid"), zap.Int("rows", 10))
	if err := closeFn(); err != nil {
		t.Fatalf("close returned error: %v", err)
	}

	lines, err := logtail.Read(path, 10)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	entry := logtail.Parse(lines[0])
	if entry.Message != "render" || entry.Component != "DataGrid" || entry.Level != "DEBUG" {
		t.Fatalf("entry = %#v", entry)
	}
	if len(entry.Fields) != 1 || entry.Fields[0] != "rows=10" {
		t.Fatalf("Fields = %v, want [rows=10]", entry.Fields)
	}
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "render.log")
	logger, closeFn, err := New(path, "info")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Debug("hidden")
	logger.Info("shown")
	_ = closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if strings.Contains(string(data), "hidden") || !strings.Contains(string(data), "shown") {
		t.Fatalf("log contents = %q", data)
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel(""); err != nil || lvl != zapcore.DebugLevel {
		t.Fatalf("ParseLevel(empty) = %v, %v", lvl, err)
	}
	if lvl, err := ParseLevel(" WARN "); err != nil || lvl != zapcore.WarnLevel {
		t.Fatalf("ParseLevel(WARN) = %v, %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel(loud) returned nil error")
	}
}
