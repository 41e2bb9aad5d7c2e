// control/journal.go
// Author: momentics <momentics@gmail.com>
//
// Bounded FIFO journal of recent per-connection outcomes, exported
// through a debug probe for live inspection.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// ConnEvent is one completed connection's outcome.
type ConnEvent struct {
	Time    time.Time
	Peer    string
	Method  string
	Status  int   // 0 when no response was sent
	Bytes   int64 // body bytes streamed
	Outcome string
}

// Journal retains the most recent connection events up to a fixed
// capacity. The underlying queue is not synchronized, so all access
// goes through the journal mutex.
type Journal struct {
	mu  sync.Mutex
	q   *queue.Queue
	cap int
}

// NewJournal creates a journal bounded to capacity events.
func NewJournal(capacity int) *Journal {
	if capacity <= 0 {
		capacity = 128
	}
	return &Journal{q: queue.New(), cap: capacity}
}

// Record appends an event, evicting the oldest when full.
func (j *Journal) Record(ev ConnEvent) {
	j.mu.Lock()
	if j.q.Length() >= j.cap {
		j.q.Remove()
	}
	j.q.Add(ev)
	j.mu.Unlock()
}

// Snapshot returns the retained events, oldest first.
func (j *Journal) Snapshot() []ConnEvent {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]ConnEvent, 0, j.q.Length())
	for i := 0; i < j.q.Length(); i++ {
		out = append(out, j.q.Get(i).(ConnEvent))
	}
	return out
}

// Len reports the number of retained events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.q.Length()
}
