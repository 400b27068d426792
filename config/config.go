package config

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/streamkit/logchan/channel"
	"github.com/streamkit/logchan/core"
	"github.com/streamkit/logchan/formatter"
	"github.com/streamkit/logchan/logger"
)

// Config describes a complete logging setup: the global severity
// floor, the delivery mode, and the built-in channels.
type Config struct {
	Level   string        `toml:"level"`
	Writer  WriterConfig  `toml:"writer"`
	Console ConsoleConfig `toml:"console"`
	File    FileConfig    `toml:"file"`
}

// WriterConfig selects synchronous or asynchronous delivery.
type WriterConfig struct {
	Async bool `toml:"async"`
	// Capacity bounds the async queue; 0 keeps it unbounded
	Capacity int `toml:"capacity"`
	// Overflow is one of "drop_newest", "drop_oldest", "block"
	Overflow     string   `toml:"overflow,omitempty"`
	BlockTimeout Duration `toml:"block_timeout,omitempty"`
}

// ConsoleConfig configures the built-in console channel.
type ConsoleConfig struct {
	Enabled bool `toml:"enabled"`
	// Color forces the color formatter; when false the channel
	// auto-detects a terminal
	Color  bool `toml:"color"`
	Detail bool `toml:"detail"`
}

// FileConfig configures the built-in file channel.
type FileConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path,omitempty"`
	Detail  bool   `toml:"detail"`
}

// Duration wraps time.Duration for TOML text (un)marshalling.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// DefaultConfig returns the setup used when no file is given: console
// channel at info, synchronous delivery.
func DefaultConfig() *Config {
	return &Config{
		Level:   "info",
		Console: ConsoleConfig{Enabled: true, Detail: true},
	}
}

// Load reads and parses a TOML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	if _, err := parseOverflow(cfg.Writer.Overflow); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseOverflow(s string) (logger.OverflowPolicy, error) {
	switch s {
	case "", "drop_newest":
		return logger.DropNewest, nil
	case "drop_oldest":
		return logger.DropOldest, nil
	case "block":
		return logger.Block, nil
	default:
		return 0, errors.Errorf("unknown overflow policy %q", s)
	}
}

// Severity returns the configured global severity floor.
func (c *Config) Severity() core.Severity {
	return core.ParseSeverity(c.Level)
}

// Apply wires the configured channels and writer into the given
// dispatcher. Like all registration it belongs to single-threaded
// startup.
func (c *Config) Apply(l *logger.Logger) error {
	level := c.Severity()

	if c.Console.Enabled {
		ccfg := channel.ConsoleConfig{Level: level}
		if c.Console.Color {
			ccfg.Formatter = formatter.NewColorFormatter(formatter.Config{Detail: c.Console.Detail})
		} else if !c.Console.Detail {
			ccfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
		}
		l.Add(channel.NewConsoleChannel(ccfg))
	}

	if c.File.Enabled {
		fc, err := channel.NewFileChannel(channel.FileConfig{
			Level:     level,
			Path:      c.File.Path,
			Formatter: formatter.NewTextFormatter(formatter.Config{Detail: c.File.Detail}),
		})
		if err != nil {
			return err
		}
		l.Add(fc)
	}

	if c.Writer.Async {
		policy, err := parseOverflow(c.Writer.Overflow)
		if err != nil {
			return err
		}
		l.SetWriter(logger.NewAsyncWriterConfig(l, logger.AsyncConfig{
			Capacity:     c.Writer.Capacity,
			Overflow:     policy,
			BlockTimeout: c.Writer.BlockTimeout.Duration,
		}))
	}

	return nil
}
