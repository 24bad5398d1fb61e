package layout

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long Watch waits for writes to settle before reloading.
const DebounceDelay = 100 * time.Millisecond

// Watch reloads the document at path whenever it changes and passes the
// result to onChange, until ctx is done. It returns once the watch is set up.
//
// onChange runs on a background goroutine. The directory is watched rather
// than the file so editors that replace the file on save are handled.
func Watch(ctx context.Context, path string, onChange func(*Document, error)) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher failed: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("watching %s failed: %w", path, err)
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		reload := func() {
			if ctx.Err() != nil {
				return
			}
			doc, err := Load(path)
			if err == nil {
				Logger().Info("layout: reloaded", "path", path)
			}
			onChange(doc, err)
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
					continue
				}
				Logger().Debug("layout: file event", "path", ev.Name, "op", ev.Op.String())
				if timer == nil {
					timer = time.AfterFunc(DebounceDelay, reload)
				} else {
					timer.Reset(DebounceDelay)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				Logger().Warn("layout: watcher error", "path", path, "err", err)
			}
		}
	}()
	return nil
}
