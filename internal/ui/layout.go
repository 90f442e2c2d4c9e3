package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which compact mode is used.
	LayoutCompactWidth = 100

	// LayoutSplitWidth is the minimum width for side-by-side panels.
	LayoutSplitWidth = 120
)

// Console limits.
const (
	// ConsoleLineLimit is the number of render log lines kept in the console.
	ConsoleLineLimit = 500
)

// Timing constants.
const (
	// DefaultUIInterval is how often the UI pulls a store snapshot.
	DefaultUIInterval = time.Second

	// FlashDuration is how long footer notices stay visible.
	FlashDuration = 2 * time.Second
)

// chromeHeight is the number of rows taken by header, tab bar and footer.
const chromeHeight = 3
