package status

import (
	"maps"
	"slices"
	"sync"
	"sync/atomic"
)

// Registry is the central metrics facade for a game run
// Registration takes the lock; components cache the returned pointers during construction
// and the tick path writes straight to the atomics
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*AtomicFloat
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*AtomicFloat),
	}
}

// Counter returns the counter for key, registering it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return register(&r.mu, r.counters, key)
}

// Gauge returns the gauge for key, registering it on first use
func (r *Registry) Gauge(key string) *AtomicFloat {
	return register(&r.mu, r.gauges, key)
}

func register[T any](mu *sync.RWMutex, items map[string]*T, key string) *T {
	mu.RLock()
	ptr, ok := items[key]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := items[key]; ok {
		return ptr
	}
	ptr = new(T)
	items[key] = ptr
	return ptr
}

// Len returns the number of registered metrics
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.counters) + len(r.gauges)
}

// Metric is one entry of a registry snapshot
type Metric struct {
	Key   string
	Value float64
}

// Snapshot returns counters followed by gauges, each group sorted by key
func (r *Registry) Snapshot() []Metric {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Metric, 0, len(r.counters)+len(r.gauges))
	for _, key := range slices.Sorted(maps.Keys(r.counters)) {
		out = append(out, Metric{Key: key, Value: float64(r.counters[key].Load())})
	}
	for _, key := range slices.Sorted(maps.Keys(r.gauges)) {
		out = append(out, Metric{Key: key, Value: r.gauges[key].Get()})
	}
	return out
}

// Zero resets every registered metric without dropping cached pointers
func (r *Registry) Zero() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.counters {
		c.Store(0)
	}
	for _, g := range r.gauges {
		g.Set(0)
	}
}
