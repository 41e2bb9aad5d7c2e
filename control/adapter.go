// control/adapter.go
// Author: momentics <momentics@gmail.com>
//
// Control adapter implementing api.Control over the metrics registry,
// connection journal, and registered debug probes.

package control

import (
	"sync"

	"github.com/momentics/streamix/api"
)

type Adapter struct {
	metrics *MetricsRegistry
	journal *Journal

	mu     sync.RWMutex
	probes map[string]func() any
}

var _ api.Control = (*Adapter)(nil)

// NewAdapter builds a control adapter with an empty registry and a
// journal bounded to journalCap events. The journal is exported as the
// built-in "journal" probe.
func NewAdapter(journalCap int) *Adapter {
	a := &Adapter{
		metrics: NewMetricsRegistry(),
		journal: NewJournal(journalCap),
		probes:  make(map[string]func() any),
	}
	a.RegisterDebugProbe("journal", func() any {
		return a.journal.Snapshot()
	})
	return a
}

// Metrics exposes the counter registry for the server hot path.
func (a *Adapter) Metrics() *MetricsRegistry { return a.metrics }

// Journal exposes the connection event journal.
func (a *Adapter) Journal() *Journal { return a.journal }

// Stats merges counter values and debug probe output. Probe results
// are namespaced under "debug.".
func (a *Adapter) Stats() map[string]any {
	stats := a.metrics.GetSnapshot()
	a.mu.RLock()
	defer a.mu.RUnlock()
	combined := make(map[string]any, len(stats)+len(a.probes))
	for k, v := range stats {
		combined[k] = v
	}
	for k, fn := range a.probes {
		combined["debug."+k] = fn()
	}
	return combined
}

// RegisterDebugProbe inserts a named debug hook.
func (a *Adapter) RegisterDebugProbe(name string, fn func() any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.probes[name] = fn
}
