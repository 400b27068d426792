// Package logger is the public API of logchan. Most users only need
// to import this package.
//
// A Logger dispatches finished records to its registered channels
// through the active writer. The default writer is synchronous; an
// AsyncWriter decouples call sites from channel I/O with an unbounded
// queue and a single background worker:
//
//	log := logger.New()
//	log.Add(channel.NewConsoleChannel(channel.ConsoleConfig{}))
//	log.SetWriter(logger.NewAsyncWriter(log))
//	defer log.Close()
//
//	log.Info("listening on ", addr)
//
// Log statements are built by a Capturer, which captures severity and
// source location at the call site and accumulates text through
// chained appends. Flush forces immediate delivery mid-statement;
// Close completes the statement:
//
//	log.Capture(logger.DebugSeverity).
//	    Append("phase one done").Flush().
//	    Append("phase two done").Close()
//
// Registration (Add, Remove, SetWriter, SetLevel) is deliberately not
// synchronized: channels and writers are wired up during
// single-threaded startup, and only Write and the leveled helpers are
// meant for concurrent use. Writers guarantee that records reach
// channels in enqueue order and that a graceful Close drains every
// pending record.
//
// The package also maintains a process-wide default logger (console
// channel at InfoSeverity, synchronous writer) behind Default and
// SetDefault, with package-level Trace through Errorf helpers
// delegating to it.
package logger
