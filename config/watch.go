package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/streamkit/logchan/logger"
)

// Watch follows the config file and broadcasts a new severity floor to
// the dispatcher's channels whenever the level setting changes on
// disk. Only the level is applied live; channel and writer topology
// stays fixed after startup, matching the registration contract.
//
// Watch returns once the watcher is installed; it stops when ctx is
// cancelled. Reload problems are reported on stderr and the previous
// level stays in effect.
func Watch(ctx context.Context, path string, l *logger.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating config watcher")
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watching config file %s", path)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				// Editors often replace the file; re-add it so the
				// watch survives the swap.
				if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
					time.Sleep(100 * time.Millisecond)
					if err := watcher.Add(path); err != nil {
						fmt.Fprintf(os.Stderr, "logchan: re-watching %s: %v\n", path, err)
						continue
					}
				}
				cfg, err := Load(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "logchan: reloading %s: %v\n", path, err)
					continue
				}
				l.SetLevel(cfg.Severity())

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "logchan: config watcher: %v\n", err)
			}
		}
	}()

	return nil
}
