// Package app is the composition root of gridlab.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       ├─────> config.Load()        Read ~/.config/gridlab/config.toml
//	       ├─────> prefs.Load()         Theme and last tab
//	       ├─────> logging.New()        Render log (zap, JSON lines)
//	       ├─────> catalog.Generate()   Static record set for the data grid
//	       ├─────> state.NewStore()     Counter and user slices
//	       ├─────> demoapi.NewClient()  Simulated slow backend
//	       ├─────> StartRefresher()     Re-stamps users every few seconds
//	       └─────> ui.Run()             Bubble Tea program (blocks)
//
// # Refresher
//
// The refresher only touches User.LastUpdated, so it changes the users slice
// version without changing anything a user card displays. It exists to show
// that memoized views keyed on display fields stay quiet while the data
// underneath keeps moving.
//
// # Error Handling
//
// Config, prefs and log file failures are returned from Run. Nothing after
// startup is fatal: fetch failures surface as error states in the hooks tab.
package app
