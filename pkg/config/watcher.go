package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce window for editors that write files in several bursts
// (or replace them atomically, like Vim and nano).
const watchDebounce = 500 * time.Millisecond

// Watch observes a single file for modification and emits on the returned
// channel after each debounced change. Used to hot-reload the agent persona
// file without restarting the service. The watcher goroutine exits when the
// context is canceled.
func Watch(ctx context.Context, file string) <-chan struct{} {
	changed := make(chan struct{}, 1) // Buffer 1 so the watcher never blocks

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Error("Failed to create fsnotify watcher", "error", err)
		return changed
	}

	absPath, err := filepath.Abs(file)
	if err != nil {
		slog.Warn("Could not resolve watch path", "file", file, "error", err)
		absPath = file
	}
	if err := watcher.Add(absPath); err != nil {
		slog.Warn("Could not watch file", "file", absPath, "error", err)
	} else {
		slog.Debug("Watching agents file", "file", absPath)
	}

	go func() {
		defer watcher.Close()
		defer close(changed)

		// Debounced timer fires into an internal channel so only this
		// goroutine ever writes to (and closes) the outgoing one.
		fire := make(chan string, 1)
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case name := <-fire:
				slog.Info("Agents file changed", "file", name)
				select {
				case changed <- struct{}{}:
				default:
				}
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(watchDebounce, func() {
					select {
					case fire <- event.Name:
					default:
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("Watcher encountered an error", "error", err)
			}
		}
	}()

	return changed
}
