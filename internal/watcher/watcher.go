// Package watcher provides debounced file watching for live preview reload.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/glintlabs/glint/internal/log"
	"github.com/glintlabs/glint/internal/pubsub"
)

// DefaultDebounce coalesces editor save bursts into a single reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher monitors a single source file and publishes change events
// through a pubsub broker. The payload of every event is the file path;
// the event type distinguishes updates from deletions.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	broker    *pubsub.Broker[string]
	done      chan struct{}
	stopOnce  sync.Once
}

// Config holds watcher configuration options.
type Config struct {
	Path     string
	Debounce time.Duration
}

// DefaultConfig returns sensible defaults for watching path.
func DefaultConfig(path string) Config {
	return Config{
		Path:     path,
		Debounce: DefaultDebounce,
	}
}

// New creates a new file watcher. The watch does not begin until Start.
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	return &Watcher{
		fsWatcher: fsw,
		path:      filepath.Clean(cfg.Path),
		debounce:  debounce,
		broker:    pubsub.NewBroker[string](),
		done:      make(chan struct{}),
	}, nil
}

// Broker returns the broker change events are published on.
// Subscribe before Start to avoid missing the first event.
func (w *Watcher) Broker() *pubsub.Broker[string] {
	return w.broker
}

// Start begins watching the directory containing the file. Watching the
// directory rather than the file itself survives editors that save by
// renaming a temp file over the original.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.path)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}

	log.Debug(log.CatWatch, "watching file", "path", w.path, "debounce", w.debounce)
	go w.loop()
	return nil
}

// Stop terminates the watcher, closes the broker, and releases resources.
// Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.broker.Close()
	})
	return err
}

// loop processes file system events with debouncing.
func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if !w.isRelevantEvent(event) {
				continue
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				w.notify()
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Log and keep watching
			log.ErrorErr(log.CatWatch, "watch error", err, "path", w.path)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// notify publishes the debounced change. Editors with atomic saves remove
// and recreate the file; by the time the debounce fires the file is back,
// so a stat failure here means a real deletion.
func (w *Watcher) notify() {
	if _, err := os.Stat(w.path); err != nil {
		log.Warn(log.CatWatch, "watched file missing", "path", w.path)
		w.broker.Publish(pubsub.DeletedEvent, w.path)
		return
	}

	log.Debug(log.CatWatch, "file changed", "path", w.path)
	w.broker.Publish(pubsub.UpdatedEvent, w.path)
}

// isRelevantEvent reports whether the event concerns the watched file.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return filepath.Base(event.Name) == filepath.Base(w.path)
}
