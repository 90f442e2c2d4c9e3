package app

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/state"
)

func TestStartRefresher_TouchesUsersUntilCancelled(t *testing.T) {
	store := state.NewStore(state.SeedUsers())
	start := store.Snapshot().UsersVersion

	ctx, cancel := context.WithCancel(context.Background())
	StartRefresher(ctx, store, 10*time.Millisecond, zap.NewNop())

	deadline := time.Now().Add(2 * time.Second)
	for store.Snapshot().UsersVersion < start+2 {
		if time.Now().After(deadline) {
			t.Fatalf("UsersVersion stuck at %d", store.Snapshot().UsersVersion)
		}
		time.Sleep(5 * time.Millisecond)
	}

	cancel()
	time.Sleep(30 * time.Millisecond)
	stopped := store.Snapshot().UsersVersion
	time.Sleep(50 * time.Millisecond)
	if got := store.Snapshot().UsersVersion; got != stopped {
		t.Fatalf("refresher kept running after cancel: %d -> %d", stopped, got)
	}

	snap := store.Snapshot()
	if snap.Counter != 0 {
		t.Fatalf("Counter = %d, want 0", snap.Counter)
	}
	for _, u := range snap.Users {
		if u.LastUpdated.IsZero() {
			t.Fatalf("user %d LastUpdated not set", u.ID)
		}
	}
}
