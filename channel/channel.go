package channel

import (
	"sync/atomic"

	"github.com/streamkit/logchan/core"
)

// Channel is a destination that consumes finished records, filtered by
// a minimum severity floor.
type Channel interface {
	// Name identifies the channel within a dispatcher
	Name() string

	// Level returns the current severity floor
	Level() core.Severity

	// SetLevel replaces the severity floor
	SetLevel(level core.Severity)

	// Write delivers one finished record
	Write(rec *core.Record) error

	// Close releases resources held by the channel
	Close() error
}

// base carries the name and the severity floor shared by the built-in
// channels. The floor is read on every delivery, possibly from a
// background worker goroutine, so it is held atomically to keep
// SetLevel safe during live logging.
type base struct {
	name  string
	level atomic.Int32
}

// Name returns the channel name
func (b *base) Name() string {
	return b.name
}

// Level returns the current severity floor
func (b *base) Level() core.Severity {
	return core.Severity(b.level.Load())
}

// SetLevel replaces the severity floor
func (b *base) SetLevel(level core.Severity) {
	b.level.Store(int32(level))
}

// accepts reports whether the floor admits the record
func (b *base) accepts(rec *core.Record) bool {
	return rec.Level >= b.Level()
}
