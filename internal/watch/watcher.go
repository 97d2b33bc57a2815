// Package watch monitors individual files for changes and drives icon
// regeneration in watch mode.
package watch

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a set of files for changes and invokes a callback
// when modifications are detected. Rapid successive changes are
// debounced into a single callback invocation.
type Watcher struct {
	paths    []string
	onChange func()
	debounce time.Duration
	watcher  *fsnotify.Watcher
	done     chan struct{}
	once     sync.Once
}

// NewWatcher creates a Watcher for the given file paths. The onChange
// callback is invoked after changes have been quiet for the debounce
// duration.
func NewWatcher(paths []string, debounce time.Duration, onChange func()) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		debounce: debounce,
		done:     make(chan struct{}),
	}
}

// Start begins watching the configured files. It blocks until Stop is
// called or a fatal error occurs.
func (w *Watcher) Start() error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = fsw

	for _, p := range w.paths {
		if _, err := os.Stat(p); err != nil {
			// Path may not exist (e.g. no config file); skip.
			continue
		}
		if err := fsw.Add(p); err != nil {
			log.Printf("warning: failed to watch %s: %v", p, err)
		}
	}

	// Event processing loop with debouncing.
	var timer *time.Timer
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			// Editors often replace a file on save (rename + create),
			// which drops the watch. Re-add once the file reappears.
			if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				if _, err := os.Stat(event.Name); err == nil {
					_ = fsw.Add(event.Name)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				w.onChange()
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return fsw.Close()
		}
	}
}

// Stop signals the watcher to stop monitoring files.
func (w *Watcher) Stop() {
	w.once.Do(func() {
		close(w.done)
	})
}
