package channel

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/streamkit/logchan/core"
	"github.com/streamkit/logchan/formatter"
)

// DefaultFileName is the registration name of the built-in file channel.
const DefaultFileName = "FileChannel"

// DefaultFilePath derives the default log path from the running
// program's own path, with a ".log" suffix.
func DefaultFilePath() string {
	exe, err := os.Executable()
	if err != nil {
		return "logchan.log"
	}
	return exe + ".log"
}

// FileConfig holds configuration for a file channel
type FileConfig struct {
	// Name is the registration name (default: "FileChannel")
	Name string
	// Level is the severity floor (zero value: TraceSeverity, accept everything)
	Level core.Severity
	// Path is the output file (default: DefaultFilePath()); opened in
	// append mode, parent directories are created as needed
	Path string
	// Formatter to use (default: TextFormatter with source detail)
	Formatter formatter.Formatter
}

// FileChannel appends rendered records to a file, flushing after every
// record. Open failures are surfaced at construction and SetPath time,
// never silently at write time.
type FileChannel struct {
	base
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter

	mu        sync.Mutex // serializes writes against SetPath/Close
	path      string
	file      *os.File
	bufWriter *bufio.Writer
	buf       bytes.Buffer
}

// NewFileChannel creates a new file channel, opening its target path.
func NewFileChannel(cfg FileConfig) (*FileChannel, error) {
	if cfg.Name == "" {
		cfg.Name = DefaultFileName
	}
	if cfg.Path == "" {
		cfg.Path = DefaultFilePath()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{Detail: true})
	}

	file, err := openLogFile(cfg.Path)
	if err != nil {
		return nil, err
	}

	c := &FileChannel{
		formatter: cfg.Formatter,
		path:      cfg.Path,
		file:      file,
		bufWriter: bufio.NewWriterSize(file, 4096),
	}
	c.name = cfg.Name
	c.level.Store(int32(cfg.Level))
	c.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	c.buf.Grow(256)

	return c, nil
}

// openLogFile creates the parent directory and opens path for appending.
func openLogFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, "creating log directory %s", dir)
		}
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "opening log file %s", path)
	}
	return file, nil
}

// Path returns the current output file path.
func (c *FileChannel) Path() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.path
}

// SetPath switches the channel to a new output file. The new file is
// opened before the old one is released, so a failed open leaves the
// channel writing to its previous path. The switch is atomic with
// respect to in-flight writes.
func (c *FileChannel) SetPath(path string) error {
	file, err := openLogFile(path)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file != nil {
		c.bufWriter.Flush()
		c.file.Close()
	}
	c.path = path
	c.file = file
	c.bufWriter = bufio.NewWriterSize(file, 4096)
	return nil
}

// Write renders the record, appends it to the file and flushes.
func (c *FileChannel) Write(rec *core.Record) error {
	if !c.accepts(rec) {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file == nil {
		return errors.Errorf("file channel %s is closed", c.name)
	}

	if c.bufferFormatter != nil {
		c.buf.Reset()
		c.bufferFormatter.FormatRecord(rec, &c.buf)
		if _, err := c.bufWriter.Write(c.buf.Bytes()); err != nil {
			return errors.Wrapf(err, "writing to %s", c.path)
		}
	} else {
		data, err := c.formatter.Format(rec)
		if err != nil {
			return err
		}
		if _, err := c.bufWriter.Write(data); err != nil {
			return errors.Wrapf(err, "writing to %s", c.path)
		}
	}
	return c.bufWriter.Flush()
}

// Close flushes and closes the underlying file. Writes after Close
// return an error.
func (c *FileChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.file == nil {
		return nil
	}
	flushErr := c.bufWriter.Flush()
	closeErr := c.file.Close()
	c.file = nil
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
