package ui

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/five82/gridlab/internal/memo"
)

// Reasons attached to render events.
const (
	reasonInputsChanged = "inputs changed"
	reasonUnmemoized    = "unmemoized"
)

// renderTracker counts how often each component redraws and writes one
// render log event per redraw.
type renderTracker struct {
	logger *zap.Logger
	counts map[string]int
	now    func() time.Time
}

func newRenderTracker(logger *zap.Logger) *renderTracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &renderTracker{
		logger: logger,
		counts: make(map[string]int),
		now:    time.Now,
	}
}

func (t *renderTracker) record(component, reason string) {
	t.counts[component]++
	t.logger.Debug("render",
		zap.String("component", component),
		zap.String("reason", reason),
		zap.Int("count", t.counts[component]),
		zap.String("at", t.now().Format("15:04:05.000")))
}

// Count returns the number of redraws recorded for component.
func (t *renderTracker) Count(component string) int {
	return t.counts[component]
}

// Components returns tracked component names in sorted order.
func (t *renderTracker) Components() []string {
	names := make([]string, 0, len(t.counts))
	for name := range t.counts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// component is a named view whose output is memoized on a props key.
type component[K any] struct {
	name  string
	cache *memo.Func[K, string]
}

func newComponent[K any](name string, equal func(a, b K) bool) *component[K] {
	return &component[K]{name: name, cache: memo.NewFunc[K, string](equal)}
}

// render returns draw(props), reusing the previous output while props are
// equal. With memoize off every call redraws.
func (c *component[K]) render(t *renderTracker, memoize bool, props K, draw func(K) string) string {
	if !memoize {
		t.record(c.name, reasonUnmemoized)
		return draw(props)
	}
	return c.cache.Get(props, func(p K) string {
		t.record(c.name, reasonInputsChanged)
		return draw(p)
	})
}

// equalComparable compares props with ==.
func equalComparable[K comparable](a, b K) bool { return a == b }
