// Package channel provides the Channel interface and its built-in
// implementations for delivering log records to their destinations.
//
// Every channel has a registration name and a severity floor; a record
// below the floor is silently skipped. The floor is stored atomically,
// so it can be raised or lowered while logging is in flight.
//
// Built-in channels:
//
//   - ConsoleChannel writes rendered records to any io.Writer
//     (default: stdout), picking a color formatter automatically when
//     the writer is a terminal. Delivery is best-effort: stream errors
//     never fail the logging path.
//   - FileChannel appends rendered records to a file and flushes after
//     every record. Open failures surface at construction and SetPath
//     time, so a misconfigured path is caught before any record is
//     silently lost.
//
// Registration itself (adding or removing channels on a dispatcher) is
// not synchronized and belongs to single-threaded startup; see the
// logger package.
package channel
