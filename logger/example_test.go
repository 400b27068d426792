package logger_test

import (
	"os"

	"github.com/streamkit/logchan/channel"
	"github.com/streamkit/logchan/formatter"
	"github.com/streamkit/logchan/logger"
)

// This example wires a console channel behind an asynchronous writer.
func Example() {
	log := logger.New()
	log.Add(channel.NewConsoleChannel(channel.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewTextFormatter(formatter.Config{}),
	}))
	log.SetWriter(logger.NewAsyncWriter(log))
	defer log.Close()

	log.Info("server started")
	log.Warnf("queue depth %d", 42)
}

// This example shows the capturer's explicit flush token: "phase one"
// is delivered immediately, "phase two" when the statement completes.
func ExampleCapturer_Flush() {
	log := logger.New()
	log.Add(channel.NewConsoleChannel(channel.ConsoleConfig{}))

	log.Capture(logger.DebugSeverity).
		Append("phase one").
		Flush().
		Append("phase two").
		Close()
}
