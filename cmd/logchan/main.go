package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/streamkit/logchan/config"
	"github.com/streamkit/logchan/core"
	"github.com/streamkit/logchan/logger"
)

func main() {
	app := &cli.Command{
		Name:  "logchan",
		Usage: "Exercise the logchan logging toolkit",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML configuration file",
			},
		},
		Commands: []*cli.Command{
			emitCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func emitCommand() *cli.Command {
	return &cli.Command{
		Name:  "emit",
		Usage: "Emit a batch of records through the configured channels",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "count",
				Usage: "Number of records to emit",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Severity of the emitted records (trace..error)",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "watch",
				Usage: "Follow the config file and re-apply level changes",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "Delay between records",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return emit(ctx, c)
		},
	}
}

func emit(ctx context.Context, c *cli.Command) error {
	cfg := config.DefaultConfig()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	l := logger.New()
	if err := cfg.Apply(l); err != nil {
		return err
	}
	defer l.Close()

	if c.Bool("watch") {
		path := c.String("config")
		if path == "" {
			return fmt.Errorf("--watch requires --config")
		}
		if err := config.Watch(ctx, path, l); err != nil {
			return err
		}
	}

	level := core.ParseSeverity(c.String("level"))
	count := c.Int("count")
	interval := c.Duration("interval")

	for i := 0; i < count; i++ {
		l.Capture(level).
			Appendf("record %d/%d at %s", i+1, count, time.Now().Format(time.RFC3339)).
			Close()
		if interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}
	return nil
}
