package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/catalog"
	"github.com/five82/gridlab/internal/config"
	"github.com/five82/gridlab/internal/demoapi"
	"github.com/five82/gridlab/internal/logging"
	"github.com/five82/gridlab/internal/prefs"
	"github.com/five82/gridlab/internal/state"
	"github.com/five82/gridlab/internal/ui"
)

// Options configure the gridlab application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/gridlab/prefs.toml
	PageSize   int    // zero uses the config value
	Seed       uint64 // zero uses the config value
	Tab        string // empty restores the last tab from prefs
}

// Run boots the workbench TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	if opts.Seed != 0 {
		cfg.Seed = opts.Seed
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	if opts.Tab != "" {
		userPrefs.Tab = opts.Tab
	}

	logger, closeLog, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init render log: %w", err)
	}
	defer func() { _ = closeLog() }()

	logger.Info("gridlab starting",
		zap.Int("records", cfg.RecordCount),
		zap.Int("page_size", cfg.PageSize),
		zap.Uint64("seed", cfg.Seed),
		zap.Duration("fetch_delay", cfg.FetchDelay))

	rng := catalog.NewRand(cfg.Seed)
	records := catalog.Generate(cfg.RecordCount, rng)
	store := state.NewStore(state.SeedUsers())
	client := demoapi.NewClient(cfg.FetchDelay, rng)

	StartRefresher(ctx, store, cfg.RefreshEvery, logger)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Client:    client,
		Records:   records,
		Config:    &cfg,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		Tab:       userPrefs.Tab,
		PrefsPath: opts.PrefsPath,
	}
	err = ui.Run(uiOpts)
	logger.Info("gridlab stopped", zap.Error(err))
	return err
}
