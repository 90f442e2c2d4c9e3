package resource

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCache_IdleByDefault(t *testing.T) {
	c := NewCache[int, string]("profile")
	st := c.Get(1)
	if st.Status != StatusIdle || st.Err != nil || st.Value != "" {
		t.Fatalf("Get(unknown) = %+v, want idle", st)
	}
}

func TestCache_FetchSuccess(t *testing.T) {
	c := NewCache[int, string]("profile")
	st := c.Fetch(context.Background(), 7, func(_ context.Context, id int) (string, error) {
		if c.Get(id).Status != StatusLoading {
			t.Errorf("status during fetch = %v, want loading", c.Get(id).Status)
		}
		return "User 7", nil
	})
	if st.Status != StatusSuccess || st.Value != "User 7" {
		t.Fatalf("Fetch = %+v, want success User 7", st)
	}
	if st.UpdatedAt.IsZero() {
		t.Fatalf("UpdatedAt not set")
	}
	if got := c.Get(7); got.Value != "User 7" {
		t.Fatalf("Get after fetch = %+v", got)
	}
}

func TestCache_FetchErrorWrapsAndKeepsValue(t *testing.T) {
	c := NewCache[int, string]("todos")
	c.Resolve(1, "cached", nil)

	boom := errors.New("boom")
	st := c.Fetch(context.Background(), 1, func(context.Context, int) (string, error) {
		return "", boom
	})
	if st.Status != StatusError {
		t.Fatalf("Status = %v, want error", st.Status)
	}
	if !errors.Is(st.Err, boom) {
		t.Fatalf("Err = %v, want wrapped boom", st.Err)
	}
	if st.Value != "cached" {
		t.Fatalf("Value = %q, want previous value kept", st.Value)
	}
}

func TestCache_NilFetcher(t *testing.T) {
	c := NewCache[int, int]("n")
	if st := c.Fetch(context.Background(), 1, nil); st.Status != StatusError {
		t.Fatalf("Fetch(nil) status = %v, want error", st.Status)
	}
}

func TestCache_ConcurrentFetchesShareOneCall(t *testing.T) {
	c := NewCache[int, int]("shared")
	var calls atomic.Int32
	release := make(chan struct{})
	fetcher := func(ctx context.Context, k int) (int, error) {
		calls.Add(1)
		<-release
		return k * 2, nil
	}

	var wg sync.WaitGroup
	results := make([]State[int], 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Fetch(context.Background(), 21, fetcher)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := calls.Load(); got != 1 {
		t.Fatalf("fetcher called %d times, want 1", got)
	}
	for i, st := range results {
		if st.Value != 42 {
			t.Fatalf("results[%d].Value = %d, want 42", i, st.Value)
		}
	}
}

func TestCache_Invalidate(t *testing.T) {
	c := NewCache[string, int]("x")
	c.Resolve("a", 1, nil)
	c.Invalidate("a")
	if st := c.Get("a"); st.Status != StatusIdle {
		t.Fatalf("status after Invalidate = %v, want idle", st.Status)
	}
}

func TestDelayed_WaitsAndHonoursCancel(t *testing.T) {
	f := Delayed(30*time.Millisecond, func(_ context.Context, k int) (int, error) { return k, nil })

	start := time.Now()
	v, err := f(context.Background(), 5)
	if err != nil || v != 5 {
		t.Fatalf("Delayed fetch = %d, %v", v, err)
	}
	if time.Since(start) < 30*time.Millisecond {
		t.Fatalf("Delayed returned before the delay elapsed")
	}

	slow := Delayed(time.Hour, func(_ context.Context, k int) (int, error) { return k, nil })
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := slow(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled Delayed err = %v, want context.Canceled", err)
	}
}

func TestStatusString(t *testing.T) {
	cases := map[Status]string{
		StatusIdle:    "idle",
		StatusLoading: "loading",
		StatusSuccess: "success",
		StatusError:   "error",
	}
	for s, want := range cases {
		if s.String() != want {
			t.Fatalf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
