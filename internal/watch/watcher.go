// Package watch monitors a directory tree for notebook file changes
// using fsnotify. It filters by extension, skips derived and dot
// directories, and debounces the write bursts editors produce on save.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Directories never worth watching.
var ignoreDirs = map[string]bool{
	".git":               true,
	".nbts":              true,
	".ipynb_checkpoints": true,
	"node_modules":       true,
	"__pycache__":        true,
	".venv":              true,
	".idea":              true,
	".vscode":            true,
}

// DefaultDebounce coalesces the multiple write events editors fire per
// save into one change notification.
const DefaultDebounce = 200 * time.Millisecond

// Watcher watches a directory tree for changes to notebook files.
type Watcher struct {
	fw       *fsnotify.Watcher
	exts     map[string]bool
	debounce time.Duration
	done     chan struct{}
	stopped  bool
	mu       sync.Mutex
}

// NewWatcher creates a watcher that reports changes to files carrying
// one of the given extensions (e.g. ".nb"). A zero debounce uses
// DefaultDebounce.
func NewWatcher(exts []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[strings.ToLower(ext)] = true
	}
	return &Watcher{
		fw:       fw,
		exts:     extSet,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Watch starts monitoring dir recursively. onChange is called with the
// absolute path of each changed notebook file. It returns after setup;
// events are delivered from a background goroutine until Stop.
func (w *Watcher) Watch(dir string, onChange func(path string)) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return err
	}

	err = filepath.Walk(absPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip inaccessible paths
		}
		if info.IsDir() {
			if ignoreDirs[info.Name()] && path != absPath {
				return filepath.SkipDir
			}
			return w.fw.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	lastSeen := make(map[string]time.Time)
	var dmu sync.Mutex

	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := event.Name

				// New directories join the watch list.
				if event.Has(fsnotify.Create) {
					if info, err := os.Stat(path); err == nil && info.IsDir() {
						if !ignoreDirs[info.Name()] {
							w.fw.Add(path)
						}
						continue
					}
				}

				if !w.relevant(path) {
					continue
				}

				dmu.Lock()
				now := time.Now()
				if last, seen := lastSeen[path]; seen && now.Sub(last) < w.debounce {
					dmu.Unlock()
					continue
				}
				lastSeen[path] = now
				dmu.Unlock()

				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					onChange(path)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers on its own; nothing actionable here.

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// relevant returns true if path is a notebook file outside ignored
// directories.
func (w *Watcher) relevant(path string) bool {
	if !w.exts[strings.ToLower(filepath.Ext(path))] {
		return false
	}
	for _, part := range strings.Split(path, string(filepath.Separator)) {
		if ignoreDirs[part] {
			return false
		}
	}
	return true
}

// Stop ends monitoring and releases all resources. Safe to call more
// than once.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
