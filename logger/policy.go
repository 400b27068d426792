package logger

import (
	"sync/atomic"

	"github.com/streamkit/logchan/core"
)

// OverflowPolicy defines how a bounded asynchronous writer handles a
// full queue. The default unbounded queue never overflows.
type OverflowPolicy int

const (
	// DropNewest drops the incoming record when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued record to make room
	DropOldest
	// Block waits for the worker to make room, up to a timeout, then
	// falls back to delivering the record synchronously
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// Stats tracks asynchronous writer statistics with atomic counters.
type Stats struct {
	dropped   [core.ErrorSeverity + 1]uint64
	blocked   uint64
	processed uint64
}

// IncrementDropped atomically increments the dropped counter for a severity
func (s *Stats) IncrementDropped(level core.Severity) {
	if level >= 0 && int(level) < len(s.dropped) {
		atomic.AddUint64(&s.dropped[level], 1)
	}
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	atomic.AddUint64(&s.blocked, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.processed, 1)
}

// Dropped returns the dropped count for a severity
func (s *Stats) Dropped(level core.Severity) uint64 {
	if level < 0 || int(level) >= len(s.dropped) {
		return 0
	}
	return atomic.LoadUint64(&s.dropped[level])
}

// TotalDropped returns the dropped count across all severities
func (s *Stats) TotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += atomic.LoadUint64(&s.dropped[i])
	}
	return total
}

// Blocked returns the blocked count
func (s *Stats) Blocked() uint64 {
	return atomic.LoadUint64(&s.blocked)
}

// Processed returns the processed count
func (s *Stats) Processed() uint64 {
	return atomic.LoadUint64(&s.processed)
}

// Snapshot is a point-in-time copy of writer statistics
type Snapshot struct {
	Dropped   map[core.Severity]uint64
	Blocked   uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Dropped:   make(map[core.Severity]uint64, len(s.dropped)),
		Blocked:   s.Blocked(),
		Processed: s.Processed(),
	}
	for i := range s.dropped {
		snap.Dropped[core.Severity(i)] = atomic.LoadUint64(&s.dropped[i])
	}
	return snap
}
