// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector for system-level monitoring.
// Exposes counters in a thread-safe map with dynamic registration.

package control

import (
	"sync"
	"time"
)

// Counter keys maintained by the server.
const (
	MetricConnsAccepted   = "conns_accepted"
	MetricConnsServedGet  = "conns_served_get"
	MetricConnsServedHead = "conns_served_head"
	MetricConnsRejected   = "conns_rejected"
	MetricConnsEmpty      = "conns_empty"
	MetricConnsErrored    = "conns_errored"
	MetricBytesStreamed   = "bytes_streamed"
	MetricPeerDisconnects = "peer_disconnects"
)

// MetricsRegistry holds mutable counters.
type MetricsRegistry struct {
	mu       sync.RWMutex
	counters map[string]int64
	updated  time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		counters: make(map[string]int64),
	}
}

// Add increments a counter key by delta.
func (mr *MetricsRegistry) Add(key string, delta int64) {
	mr.mu.Lock()
	mr.counters[key] += delta
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Inc increments a counter key by one.
func (mr *MetricsRegistry) Inc(key string) { mr.Add(key, 1) }

// Get returns the current value of one counter.
func (mr *MetricsRegistry) Get(key string) int64 {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.counters[key]
}

// GetSnapshot returns the latest counter values.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.counters))
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}
