package workload

import (
	"math"
	"sync/atomic"
	"time"
)

// Metrics tracks per-operation latency for a run. An operation's duration
// covers the array call and the matching model update together. Recording happens on the
// runner's goroutine; Snapshot may be called from any goroutine while the
// run is in progress.
type Metrics struct {
	ops       [len(opNames)]opTiming
	checks    opTiming
	startTime time.Time
}

type opTiming struct {
	count   atomic.Uint64
	totalNs atomic.Int64
	minNs   atomic.Int64
	maxNs   atomic.Int64
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.Reset()
	return m
}

// RecordOp records the duration of one operation.
func (m *Metrics) RecordOp(op Op, d time.Duration) {
	if op < 0 || int(op) >= len(m.ops) {
		return
	}
	m.ops[op].record(d)
}

// RecordCheck records the duration of one full invariant check.
func (m *Metrics) RecordCheck(d time.Duration) {
	m.checks.record(d)
}

func (t *opTiming) record(d time.Duration) {
	ns := d.Nanoseconds()
	t.count.Add(1)
	t.totalNs.Add(ns)

	// Update min (atomic compare-and-swap loop)
	for {
		old := t.minNs.Load()
		if ns >= old || t.minNs.CompareAndSwap(old, ns) {
			break
		}
	}

	// Update max (atomic compare-and-swap loop)
	for {
		old := t.maxNs.Load()
		if ns <= old || t.maxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

func (t *opTiming) snapshot() Latency {
	l := Latency{
		Count: t.count.Load(),
		Min:   time.Duration(t.minNs.Load()),
		Max:   time.Duration(t.maxNs.Load()),
	}
	if l.Count == 0 {
		l.Min = 0
		return l
	}
	l.Avg = time.Duration(t.totalNs.Load() / int64(l.Count))
	return l
}

func (t *opTiming) reset() {
	t.count.Store(0)
	t.totalNs.Store(0)
	t.minNs.Store(math.MaxInt64)
	t.maxNs.Store(0)
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	for i := range m.ops {
		m.ops[i].reset()
	}
	m.checks.reset()
	m.startTime = time.Now()
}

// Latency summarizes the recorded durations of one kind of operation.
type Latency struct {
	Count uint64
	Avg   time.Duration
	Min   time.Duration
	Max   time.Duration
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime time.Duration
	Ops    map[Op]Latency
	Checks Latency
}

// Snapshot returns a snapshot of current metrics. Operations that never
// ran are omitted from Ops.
func (m *Metrics) Snapshot() MetricsSnapshot {
	s := MetricsSnapshot{
		Uptime: time.Since(m.startTime),
		Ops:    make(map[Op]Latency),
		Checks: m.checks.snapshot(),
	}
	for i := range m.ops {
		if l := m.ops[i].snapshot(); l.Count > 0 {
			s.Ops[Op(i)] = l
		}
	}
	return s
}

// Total returns the number of operations recorded.
func (s MetricsSnapshot) Total() uint64 {
	var n uint64
	for _, l := range s.Ops {
		n += l.Count
	}
	return n
}
