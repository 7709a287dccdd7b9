package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events an editor produces on save.
const debounce = 100 * time.Millisecond

// Watch reloads the configuration file at path whenever it changes and hands
// every successfully loaded configuration to apply. Load errors go to onError
// and do not stop the watch. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, apply func(Config), onError func(error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	defer watcher.Close()

	// watch the directory, editors replace the file by renaming over it
	path = filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch config %s: %w", path, err)
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != path {
				continue
			}

			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}

			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			onError(fmt.Errorf("watch config %s: %w", path, err))

		case <-timer.C:
			cfg, err := Load(path)
			if err != nil {
				onError(err)
				continue
			}

			apply(cfg)
		}
	}
}
