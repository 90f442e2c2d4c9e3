package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/gridlab/internal/logging"
)

// Config captures the tunables of the workbench.
type Config struct {
	PageSize     int
	RecordCount  int
	Seed         uint64
	FetchDelay   time.Duration
	RefreshEvery time.Duration
	LogFile      string
	LogLevel     string
}

const (
	defaultConfigPath   = "~/.config/gridlab/config.toml"
	defaultLogFile      = "~/.local/share/gridlab/render.log"
	defaultPageSize     = 10
	defaultRecordCount  = 100
	defaultFetchDelay   = time.Second
	defaultRefreshEvery = 3 * time.Second
	defaultLogLevel     = "debug"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		PageSize:     defaultPageSize,
		RecordCount:  defaultRecordCount,
		FetchDelay:   defaultFetchDelay,
		RefreshEvery: defaultRefreshEvery,
		LogFile:      mustExpand(defaultLogFile),
		LogLevel:     defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		PageSize       int    `toml:"page_size"`
		RecordCount    int    `toml:"record_count"`
		Seed           uint64 `toml:"seed"`
		FetchDelayMS   *int   `toml:"fetch_delay_ms"`
		RefreshSeconds int    `toml:"refresh_seconds"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.RecordCount > 0 {
		cfg.RecordCount = raw.RecordCount
	}
	cfg.Seed = raw.Seed
	if raw.FetchDelayMS != nil && *raw.FetchDelayMS >= 0 {
		cfg.FetchDelay = time.Duration(*raw.FetchDelayMS) * time.Millisecond
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		if _, err := logging.ParseLevel(level); err == nil {
			cfg.LogLevel = strings.ToLower(level)
		}
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
