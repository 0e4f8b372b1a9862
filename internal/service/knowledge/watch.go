package knowledge

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sandevgo/footix/pkg/log"
)

// settleDelay gives editors time to finish writing before the file is read.
var settleDelay = 100 * time.Millisecond

// Watch signals on the returned channel each time the file at path is
// written, created or replaced. The directory is watched rather than the
// file so that editors that save by rename keep being tracked.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch knowledge directory: %w", err)
	}

	target := filepath.Clean(path)
	changes := make(chan struct{}, 1)

	go func() {
		defer close(changes)
		defer watcher.Close()

		logger := log.FromCtx(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case <-time.After(settleDelay):
				}
				logger.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("knowledge file changed")

				select {
				case changes <- struct{}{}:
				default:
					// a signal is already pending
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("knowledge watcher error")
			}
		}
	}()

	return changes, nil
}
