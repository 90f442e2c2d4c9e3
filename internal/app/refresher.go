package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/state"
)

const defaultRefreshInterval = 3 * time.Second

// StartRefresher launches a background goroutine that re-stamps every user's
// LastUpdated at a fixed cadence, mimicking a live data feed. It returns
// immediately and stops when ctx is cancelled.
func StartRefresher(ctx context.Context, store *state.Store, interval time.Duration, logger *zap.Logger) {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				store.TouchUsers(now)
				logger.Debug("users refreshed",
					zap.String("component", "Refresher"),
					zap.Uint64("version", store.Snapshot().UsersVersion))
			}
		}
	}()
}
