// Package metrics counts contact store traffic with atomic counters.
package metrics

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics holds store counters. The zero value is ready to use and safe for
// concurrent callers.
type Metrics struct {
	reads        atomic.Int64
	readErrors   atomic.Int64
	readMisses   atomic.Int64
	writes       atomic.Int64
	writeErrors  atomic.Int64
	latencyNanos atomic.Int64
}

// RecordRead records one store read. found is false when the key was absent.
func (m *Metrics) RecordRead(d time.Duration, found bool, err error) {
	m.reads.Add(1)
	m.latencyNanos.Add(d.Nanoseconds())
	switch {
	case err != nil:
		m.readErrors.Add(1)
	case !found:
		m.readMisses.Add(1)
	}
}

// RecordWrite records one store write.
func (m *Metrics) RecordWrite(d time.Duration, err error) {
	m.writes.Add(1)
	m.latencyNanos.Add(d.Nanoseconds())
	if err != nil {
		m.writeErrors.Add(1)
	}
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	Reads        int64 `json:"reads"`
	ReadErrors   int64 `json:"readErrors"`
	ReadMisses   int64 `json:"readMisses"`
	Writes       int64 `json:"writes"`
	WriteErrors  int64 `json:"writeErrors"`
	LatencyNanos int64 `json:"latencyNanos"`
}

// Snapshot returns a point-in-time copy of all counters.
func (m *Metrics) Snapshot() Snapshot {
	return Snapshot{
		Reads:        m.reads.Load(),
		ReadErrors:   m.readErrors.Load(),
		ReadMisses:   m.readMisses.Load(),
		Writes:       m.writes.Load(),
		WriteErrors:  m.writeErrors.Load(),
		LatencyNanos: m.latencyNanos.Load(),
	}
}

// AvgLatency returns the mean duration of a store call.
// Returns 0 if no calls have been made.
func (s Snapshot) AvgLatency() time.Duration {
	calls := s.Reads + s.Writes
	if calls == 0 {
		return 0
	}
	return time.Duration(s.LatencyNanos / calls)
}

func (s Snapshot) String() string {
	return fmt.Sprintf("reads=%d (absent=%d, failed=%d) writes=%d (failed=%d) avg=%s",
		s.Reads, s.ReadMisses, s.ReadErrors, s.Writes, s.WriteErrors, s.AvgLatency())
}

// Reset resets all counters to zero.
func (m *Metrics) Reset() {
	m.reads.Store(0)
	m.readErrors.Store(0)
	m.readMisses.Store(0)
	m.writes.Store(0)
	m.writeErrors.Store(0)
	m.latencyNanos.Store(0)
}
