// Package memo provides single-entry memoization keyed on the inputs a
// derivation actually reads.
//
// A Value remembers the last key it computed for and returns the cached
// result while the key is unchanged. Func does the same with a caller-supplied
// equality, which lets a consumer ignore volatile fields (a refresh timestamp,
// for example) when deciding whether to recompute.
package memo

// EqualFunc reports whether two keys should be treated as the same input.
type EqualFunc[K any] func(a, b K) bool

// Stats counts cache hits and recomputations.
type Stats struct {
	Hits   int
	Misses int
}

// Value memoizes the most recent computation for a comparable key.
// The zero value is ready to use.
type Value[K comparable, V any] struct {
	key   K
	value V
	valid bool
	stats Stats
}

// Get returns the cached value when key matches the previous call, otherwise
// it runs compute and caches the result.
func (m *Value[K, V]) Get(key K, compute func(K) V) V {
	if m.valid && m.key == key {
		m.stats.Hits++
		return m.value
	}
	m.stats.Misses++
	m.key = key
	m.value = compute(key)
	m.valid = true
	return m.value
}

// Reset drops the cached entry.
func (m *Value[K, V]) Reset() {
	var zeroK K
	var zeroV V
	m.key, m.value, m.valid = zeroK, zeroV, false
}

// Stats returns hit and miss counters.
func (m *Value[K, V]) Stats() Stats {
	return m.stats
}

// Func memoizes the most recent computation using an explicit equality.
type Func[K, V any] struct {
	equal EqualFunc[K]
	key   K
	value V
	valid bool
	stats Stats
}

// NewFunc returns a Func that compares keys with equal.
func NewFunc[K, V any](equal EqualFunc[K]) *Func[K, V] {
	return &Func[K, V]{equal: equal}
}

// Get returns the cached value when equal(previous, key) holds.
func (m *Func[K, V]) Get(key K, compute func(K) V) V {
	if m.valid && m.equal(m.key, key) {
		m.stats.Hits++
		return m.value
	}
	m.stats.Misses++
	m.key = key
	m.value = compute(key)
	m.valid = true
	return m.value
}

// Changed reports whether key differs from the cached key without computing.
func (m *Func[K, V]) Changed(key K) bool {
	return !m.valid || !m.equal(m.key, key)
}

// Stats returns hit and miss counters.
func (m *Func[K, V]) Stats() Stats {
	return m.stats
}

// Fields builds an equality that compares only the projected fields of T.
// Each projection must return a comparable value.
func Fields[T any](projections ...func(T) any) EqualFunc[T] {
	return func(a, b T) bool {
		for _, p := range projections {
			if p(a) != p(b) {
				return false
			}
		}
		return true
	}
}

// SliceOf lifts an element equality to slices of the same length and order.
func SliceOf[T any](equal EqualFunc[T]) EqualFunc[[]T] {
	return func(a, b []T) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if !equal(a[i], b[i]) {
				return false
			}
		}
		return true
	}
}
