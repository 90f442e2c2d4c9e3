// Package config loads the gridlab configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/gridlab/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing or out of range, use defaults
//
// # Default Values
//
//   - page_size: 10 rows per data grid page
//   - record_count: 100 generated products
//   - seed: 0 (random prices and stock on every start)
//   - fetch_delay_ms: 1000 (simulated backend latency)
//   - refresh_seconds: 3 (user timestamp refresh cadence)
//   - log_file: ~/.local/share/gridlab/render.log
//   - log_level: debug
//
// # TOML Format
//
//	page_size = 10
//	record_count = 100
//	seed = 42
//	fetch_delay_ms = 1000
//	refresh_seconds = 3
//	log_file = "~/.local/share/gridlab/render.log"
//	log_level = "debug"
//
// fetch_delay_ms accepts 0 to disable the simulated latency; negative values
// are ignored. Tilde expansion is performed on log_file.
//
// # Error Handling
//
// Load returns errors for path expansion failures, file read errors other
// than os.ErrNotExist, and TOML parsing errors. A missing file is not an
// error.
package config
