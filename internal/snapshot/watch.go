package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of events an editor emits while
// rewriting a file.
const debounceWindow = 250 * time.Millisecond

// Watch reports changes to the snapshot file on the returned channel.
// It watches the parent directory so atomic replace saves are seen,
// filters events to the file name, and coalesces bursts into a single
// notification. The channel closes when ctx is done.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("starting snapshot watcher: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching snapshot directory: %w", err)
	}

	changes := make(chan struct{}, 1)
	name := filepath.Base(abs)

	go func() {
		defer watcher.Close()

		var (
			mu     sync.Mutex
			timer  *time.Timer
			closed bool
		)
		fire := func() {
			mu.Lock()
			defer mu.Unlock()
			if closed {
				return
			}
			select {
			case changes <- struct{}{}:
			default:
			}
		}
		schedule := func() {
			mu.Lock()
			defer mu.Unlock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceWindow, fire)
		}
		defer func() {
			mu.Lock()
			closed = true
			if timer != nil {
				timer.Stop()
			}
			mu.Unlock()
			close(changes)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != name {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					schedule()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return changes, nil
}
