package logger

import (
	"fmt"
	"os"

	"github.com/streamkit/logchan/channel"
	"github.com/streamkit/logchan/core"
)

// Logger is the dispatcher: it owns the set of registered channels,
// keyed by name, and the active writer, and routes every finished
// record to the writer for delivery.
//
// Registration operations (Add, Remove, Get, SetWriter, SetLevel) are
// not synchronized and are expected to run during single-threaded
// startup and teardown. Write is the only operation that is safe under
// unbounded concurrent callers.
type Logger struct {
	channels map[string]channel.Channel
	writer   Writer
}

// New creates a Logger with a synchronous writer and no channels.
func New() *Logger {
	l := &Logger{channels: make(map[string]channel.Channel)}
	l.writer = NewSyncWriter(l)
	return l
}

// Add registers a channel under its name, replacing any channel
// already registered under the same name.
func (l *Logger) Add(ch channel.Channel) {
	l.channels[ch.Name()] = ch
}

// Remove unregisters the named channel; no-op if absent.
func (l *Logger) Remove(name string) {
	delete(l.channels, name)
}

// Get returns the named channel, or nil if absent.
func (l *Logger) Get(name string) channel.Channel {
	return l.channels[name]
}

// SetWriter replaces the active writer. The previous writer is closed
// first, so an asynchronous writer drains its pending records before
// the swap takes effect.
func (l *Logger) SetWriter(w Writer) {
	if l.writer != nil && l.writer != w {
		if err := l.writer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "logchan: closing writer: %v\n", err)
		}
	}
	l.writer = w
}

// SetLevel broadcasts a new severity floor to every registered channel.
func (l *Logger) SetLevel(level core.Severity) {
	for _, ch := range l.channels {
		ch.SetLevel(level)
	}
}

// Write hands a finished record to the active writer. Ownership of the
// record transfers with the call; the producer must not touch it again.
func (l *Logger) Write(rec *core.Record) {
	l.writer.Write(rec)
}

// writeChannels fans a record out to every channel whose severity
// floor accepts it. Invoked by the writer: on the caller's goroutine
// for SyncWriter, on the worker goroutine for AsyncWriter.
//
// Per-channel failures are isolated: a broken channel loses its own
// copy of the record, is reported once on stderr, and never prevents
// delivery to the remaining channels.
func (l *Logger) writeChannels(rec *core.Record) {
	for _, ch := range l.channels {
		if rec.Level < ch.Level() {
			continue
		}
		if err := deliver(ch, rec); err != nil {
			fmt.Fprintf(os.Stderr, "logchan: channel %q: %v\n", ch.Name(), err)
		}
	}
}

// deliver writes one record to one channel, converting a panic in the
// channel into an error so the dispatch path survives broken channels.
func deliver(ch channel.Channel, rec *core.Record) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during write: %v", r)
		}
	}()
	return ch.Write(rec)
}

// Close drains and closes the active writer, then closes every
// registered channel. The logger must not be used afterwards.
func (l *Logger) Close() error {
	err := l.writer.Close()
	for _, ch := range l.channels {
		if cerr := ch.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}
