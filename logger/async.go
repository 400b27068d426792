package logger

import (
	"sync"
	"time"

	"github.com/streamkit/logchan/core"
)

// AsyncConfig holds configuration for an asynchronous writer
type AsyncConfig struct {
	// Capacity bounds the pending queue; 0 means unbounded (default).
	// An unbounded queue trades memory growth for never blocking a
	// producer.
	Capacity int
	// Overflow selects the policy applied when a bounded queue is full
	Overflow OverflowPolicy
	// BlockTimeout caps the wait for the Block policy (default: 100ms)
	BlockTimeout time.Duration
}

// AsyncWriter decouples producers from channel I/O. Records are
// appended to a mutex-guarded FIFO and the producer returns
// immediately; a single background worker drains the whole queue on
// each wakeup and fans the records out in enqueue order.
//
// The queue lock defines one global delivery order: records are
// delivered in the order their enqueues acquired the lock. A slow
// channel stalls only the worker, never producers.
type AsyncWriter struct {
	logger *Logger

	mu      sync.Mutex
	notFull *sync.Cond // signaled by the worker in bounded mode
	pending []*core.Record

	wake   chan struct{} // buffered wakeup signal for the worker
	closed chan struct{}
	once   sync.Once
	wg     sync.WaitGroup

	capacity     int
	policy       OverflowPolicy
	blockTimeout time.Duration
	stats        *Stats
}

// NewAsyncWriter creates an unbounded asynchronous writer bound to the
// given dispatcher and starts its worker goroutine.
func NewAsyncWriter(l *Logger) *AsyncWriter {
	return NewAsyncWriterConfig(l, AsyncConfig{})
}

// NewAsyncWriterConfig creates an asynchronous writer with explicit
// queue configuration and starts its worker goroutine.
func NewAsyncWriterConfig(l *Logger, cfg AsyncConfig) *AsyncWriter {
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	w := &AsyncWriter{
		logger:       l,
		wake:         make(chan struct{}, 1),
		closed:       make(chan struct{}),
		capacity:     cfg.Capacity,
		policy:       cfg.Overflow,
		blockTimeout: cfg.BlockTimeout,
		stats:        &Stats{},
	}
	w.notFull = sync.NewCond(&w.mu)
	w.wg.Add(1)
	go w.run()
	return w
}

// Write enqueues the record and returns without waiting on channel
// I/O. After Close, records are delivered synchronously instead.
func (w *AsyncWriter) Write(rec *core.Record) {
	select {
	case <-w.closed:
		w.logger.writeChannels(rec)
		w.stats.IncrementProcessed()
		core.PutRecord(rec)
		return
	default:
	}

	w.mu.Lock()
	if w.capacity > 0 && len(w.pending) >= w.capacity {
		if !w.overflow(rec) {
			return
		}
	}
	w.pending = append(w.pending, rec)
	w.mu.Unlock()

	select {
	case w.wake <- struct{}{}:
	default:
	}
}

// overflow applies the configured policy to a full queue. Called with
// w.mu held; returns true when the record should still be enqueued,
// false when it was consumed (dropped or delivered synchronously), in
// which case the lock has been released.
func (w *AsyncWriter) overflow(rec *core.Record) bool {
	switch w.policy {
	case DropOldest:
		oldest := w.pending[0]
		copy(w.pending, w.pending[1:])
		w.pending = w.pending[:len(w.pending)-1]
		w.stats.IncrementDropped(oldest.Level)
		core.PutRecord(oldest)
		return true

	case Block:
		w.stats.IncrementBlocked()
		deadline := time.Now().Add(w.blockTimeout)
		timeout := time.AfterFunc(w.blockTimeout, w.notFull.Broadcast)
		for len(w.pending) >= w.capacity && time.Now().Before(deadline) {
			w.notFull.Wait()
		}
		timeout.Stop()
		if len(w.pending) < w.capacity {
			return true
		}
		// Timed out: deliver on the producer's goroutine rather than
		// dropping.
		w.mu.Unlock()
		w.logger.writeChannels(rec)
		w.stats.IncrementProcessed()
		core.PutRecord(rec)
		return false

	default: // DropNewest
		w.stats.IncrementDropped(rec.Level)
		w.mu.Unlock()
		core.PutRecord(rec)
		return false
	}
}

// run is the worker loop: suspend until woken, drain everything,
// repeat. On shutdown it performs the final drain before exiting.
func (w *AsyncWriter) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.wake:
			w.drain()
		case <-w.closed:
			w.drain()
			return
		}
	}
}

// drain removes every queued record under the lock, releases it, then
// fans the records out sequentially in FIFO order.
func (w *AsyncWriter) drain() {
	w.mu.Lock()
	batch := w.pending
	w.pending = nil
	if w.capacity > 0 {
		w.notFull.Broadcast()
	}
	w.mu.Unlock()

	for _, rec := range batch {
		w.logger.writeChannels(rec)
		w.stats.IncrementProcessed()
		core.PutRecord(rec)
	}
}

// Close stops the worker and drains the queue completely. Records
// enqueued between the worker's last drain and the exit signal are
// flushed before Close returns, so a graceful shutdown never drops a
// record. Close is idempotent.
func (w *AsyncWriter) Close() error {
	w.once.Do(func() {
		close(w.closed)
		w.wg.Wait()
		w.drain()
	})
	return nil
}

// Stats returns a snapshot of the writer's counters.
func (w *AsyncWriter) Stats() Snapshot {
	return w.stats.GetSnapshot()
}
