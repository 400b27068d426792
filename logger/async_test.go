package logger

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/streamkit/logchan/core"
)

func TestAsyncWriter_DeliversInOrder(t *testing.T) {
	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)
	w := NewAsyncWriter(l)
	l.SetWriter(w)

	const n = 1000
	for i := 0; i < n; i++ {
		l.Info("rec-", i)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := ch.snapshot()
	if len(got) != n {
		t.Fatalf("Delivered %d records, want %d", len(got), n)
	}
	for i, text := range got {
		if want := fmt.Sprintf("rec-%d", i); text != want {
			t.Fatalf("Record %d = %q, want %q (order broken)", i, text, want)
		}
	}
}

func TestAsyncWriter_CloseDrainsEverything(t *testing.T) {
	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)
	w := NewAsyncWriter(l)
	l.SetWriter(w)

	// Enqueue a burst and close immediately; nothing may be dropped.
	const k = 500
	for i := 0; i < k; i++ {
		l.Warn("pending-", i)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if got := ch.count(); got != k {
		t.Errorf("Close drained %d records, want %d", got, k)
	}
}

func TestAsyncWriter_CloseIdempotent(t *testing.T) {
	l := New()
	w := NewAsyncWriter(l)
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Second Close failed: %v", err)
	}
}

func TestAsyncWriter_WriteAfterCloseFallsBackToSync(t *testing.T) {
	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)
	w := NewAsyncWriter(l)
	l.SetWriter(w)

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	l.Error("after close")
	if ch.count() != 1 {
		t.Errorf("Record written after Close was not delivered, count=%d", ch.count())
	}
}

func TestAsyncWriter_ConcurrentStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress test")
	}

	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)
	w := NewAsyncWriter(l)
	l.SetWriter(w)

	const producers = 100
	const perProducer = 1000

	var wg sync.WaitGroup
	wg.Add(producers)
	for p := 0; p < producers; p++ {
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				l.Info("p", p, "-", i)
			}
		}(p)
	}
	wg.Wait()
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	got := ch.snapshot()
	if len(got) != producers*perProducer {
		t.Fatalf("Delivered %d records, want %d", len(got), producers*perProducer)
	}

	// No record may be truncated or interleaved mid-text, and each
	// producer's records must arrive in its own enqueue order.
	next := make([]int, producers)
	for _, text := range got {
		rest, ok := strings.CutPrefix(text, "p")
		if !ok {
			t.Fatalf("Malformed record text %q", text)
		}
		pStr, iStr, ok := strings.Cut(rest, "-")
		if !ok {
			t.Fatalf("Malformed record text %q", text)
		}
		p, err := strconv.Atoi(pStr)
		if err != nil || p < 0 || p >= producers {
			t.Fatalf("Malformed producer id in %q", text)
		}
		i, err := strconv.Atoi(iStr)
		if err != nil {
			t.Fatalf("Malformed sequence in %q", text)
		}
		if i != next[p] {
			t.Fatalf("Producer %d delivered %d, want %d (per-producer order broken)", p, i, next[p])
		}
		next[p]++
	}
}

// slowChannel stalls the worker so bounded queues can fill up.
type slowChannel struct {
	captureChannel
	delay time.Duration
}

func (c *slowChannel) Write(rec *core.Record) error {
	time.Sleep(c.delay)
	return c.captureChannel.Write(rec)
}

func TestAsyncWriter_DropNewest(t *testing.T) {
	l := New()
	slow := &slowChannel{delay: 20 * time.Millisecond}
	slow.name = "slow"
	l.Add(slow)
	w := NewAsyncWriterConfig(l, AsyncConfig{Capacity: 2, Overflow: DropNewest})
	l.SetWriter(w)

	for i := 0; i < 50; i++ {
		l.Info("burst-", i)
	}
	w.Close()

	stats := w.Stats()
	if stats.Dropped[core.InfoSeverity] == 0 {
		t.Error("Expected dropped records with a full DropNewest queue")
	}
	if delivered := slow.count(); delivered+int(stats.Dropped[core.InfoSeverity]) != 50 {
		t.Errorf("delivered(%d) + dropped(%d) != 50", delivered, stats.Dropped[core.InfoSeverity])
	}
}

func TestAsyncWriter_DropOldest(t *testing.T) {
	l := New()
	slow := &slowChannel{delay: 20 * time.Millisecond}
	slow.name = "slow"
	l.Add(slow)
	w := NewAsyncWriterConfig(l, AsyncConfig{Capacity: 2, Overflow: DropOldest})
	l.SetWriter(w)

	const n = 50
	for i := 0; i < n; i++ {
		l.Info("burst-", i)
	}
	w.Close()

	stats := w.Stats()
	if stats.Dropped[core.InfoSeverity] == 0 {
		t.Error("Expected evicted records with a full DropOldest queue")
	}
	// The newest record is never the victim under DropOldest.
	texts := slow.snapshot()
	if len(texts) == 0 || texts[len(texts)-1] != fmt.Sprintf("burst-%d", n-1) {
		t.Errorf("Delivered = %v, want burst-%d last", texts, n-1)
	}
}

func TestAsyncWriter_BlockFallsBackAfterTimeout(t *testing.T) {
	l := New()
	slow := &slowChannel{delay: 50 * time.Millisecond}
	slow.name = "slow"
	l.Add(slow)
	w := NewAsyncWriterConfig(l, AsyncConfig{
		Capacity:     1,
		Overflow:     Block,
		BlockTimeout: 10 * time.Millisecond,
	})
	l.SetWriter(w)

	const n = 5
	for i := 0; i < n; i++ {
		l.Info("blocking-", i)
	}
	w.Close()

	stats := w.Stats()
	if stats.Blocked == 0 {
		t.Error("Expected blocked producers with a full Block queue")
	}
	// Block never drops: everything is delivered, inline if need be.
	if got := slow.count(); got != n {
		t.Errorf("Delivered %d records, want %d (Block must not drop)", got, n)
	}
}

func TestAsyncWriter_Stats(t *testing.T) {
	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)
	w := NewAsyncWriter(l)
	l.SetWriter(w)

	for i := 0; i < 7; i++ {
		l.Info("n-", i)
	}
	w.Close()

	stats := w.Stats()
	if stats.Processed != 7 {
		t.Errorf("Processed = %d, want 7", stats.Processed)
	}
	if stats.Blocked != 0 || stats.Dropped[core.InfoSeverity] != 0 {
		t.Errorf("Unexpected blocked/dropped counts: %+v", stats)
	}
}

func TestSyncWriter_DeliversInline(t *testing.T) {
	l := New()
	ch := newCaptureChannel("c", core.TraceSeverity)
	l.Add(ch)

	// New() installs a SyncWriter by default.
	l.Info("inline")
	if ch.count() != 1 {
		t.Fatalf("Sync delivery count = %d, want 1", ch.count())
	}
	if got := ch.snapshot()[0]; got != "inline" {
		t.Errorf("Text = %q, want %q", got, "inline")
	}
}
