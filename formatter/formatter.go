package formatter

import (
	"bytes"
	"sync"

	"github.com/streamkit/logchan/core"
)

// Formatter defines the interface for rendering records into bytes
type Formatter interface {
	// Format renders a record into a newline-terminated line
	Format(rec *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to render directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord renders a record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// Detail enables source location (file, function, line) in output
	Detail bool
	// TimestampFormat specifies the time format (empty for the default
	// "2006-01-02 15:04:05.000")
	TimestampFormat string
}

// DefaultTimestampFormat is used when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05.000"

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
