package channel

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/streamkit/logchan/core"
	"github.com/streamkit/logchan/formatter"
)

// DefaultConsoleName is the registration name of the built-in console channel.
const DefaultConsoleName = "ConsoleChannel"

// ConsoleConfig holds configuration for a console channel
type ConsoleConfig struct {
	// Name is the registration name (default: "ConsoleChannel")
	Name string
	// Level is the severity floor (zero value: TraceSeverity, accept everything)
	Level core.Severity
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: ColorFormatter when the writer is a
	// terminal, TextFormatter otherwise, both with source detail)
	Formatter formatter.Formatter
}

// ConsoleChannel writes rendered records to an output stream. Delivery
// is best-effort: a failed write never fails the caller.
type ConsoleChannel struct {
	base
	writer          io.Writer
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex // protects buf and writer
	buf             bytes.Buffer
}

// NewConsoleChannel creates a new console channel
func NewConsoleChannel(cfg ConsoleConfig) *ConsoleChannel {
	if cfg.Name == "" {
		cfg.Name = DefaultConsoleName
	}
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		fcfg := formatter.Config{Detail: true}
		if f, ok := cfg.Writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			cfg.Formatter = formatter.NewColorFormatter(fcfg)
		} else {
			cfg.Formatter = formatter.NewTextFormatter(fcfg)
		}
	}

	c := &ConsoleChannel{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}
	c.name = cfg.Name
	c.level.Store(int32(cfg.Level))

	// Cache BufferFormatter to skip the byte slice allocation
	c.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	c.buf.Grow(256)

	return c
}

// Write renders the record and writes it to the output stream.
// Write errors on the stream are swallowed; console delivery is
// best-effort and must never fail the logging path.
func (c *ConsoleChannel) Write(rec *core.Record) error {
	if !c.accepts(rec) {
		return nil
	}

	if c.bufferFormatter != nil {
		c.mu.Lock()
		c.buf.Reset()
		c.bufferFormatter.FormatRecord(rec, &c.buf)
		c.writer.Write(c.buf.Bytes())
		c.mu.Unlock()
		return nil
	}

	data, err := c.formatter.Format(rec)
	if err != nil {
		return nil
	}
	c.mu.Lock()
	c.writer.Write(data)
	c.mu.Unlock()
	return nil
}

// Close is a no-op; the console channel does not own its stream.
func (c *ConsoleChannel) Close() error {
	return nil
}
