package fasta

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchQueries watches dir for newly written query FASTA files and calls
// handle for each one. It blocks until ctx is cancelled or the watcher
// breaks.
func WatchQueries(ctx context.Context, dir string, handle func(path string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("error creating query directory watcher", "error", err)
		return err
	}
	defer func(watcher *fsnotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			slog.Error("Error closing watcher", "error", err)
			return
		}
	}(watcher)

	err = watcher.Add(dir)
	if err != nil {
		slog.Error("error watching query directory", "dir", dir, "error", err)
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				slog.Error("exiting query directory watcher")
				return nil
			}
			if event.Op.Has(fsnotify.Create|fsnotify.Write) && isQueryFile(event.Name) {
				slog.Info("New query detected", "name", event.Name)
				handle(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				slog.Error("unknown watcher error")
				return nil
			}
			slog.Error("Watcher error", "error", err)
		}
	}
}

func isQueryFile(name string) bool {
	return strings.HasSuffix(name, ".fasta") || strings.HasSuffix(name, ".fa")
}
