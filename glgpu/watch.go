// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a set of shader files in a directory,
// so that a render loop can recompile them. The directory is watched
// rather than the files, since editors often save by replacing a file.
type Watcher struct {
	watcher *fsnotify.Watcher
	files   map[string]bool
	done    chan struct{}
	closed  sync.Once

	mu       sync.Mutex
	debounce time.Duration
	pending  map[string]time.Time
	changed  map[string]bool
}

// NewWatcher starts watching the given file names in dir.
func NewWatcher(dir string, files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		debounce: 100 * time.Millisecond,
		watcher:  fw,
		files:    make(map[string]bool, len(files)),
		done:     make(chan struct{}),
		pending:  make(map[string]time.Time),
		changed:  make(map[string]bool),
	}
	for _, f := range files {
		w.files[filepath.Base(f)] = true
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if !w.files[name] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending[name] = time.Now()
			w.mu.Unlock()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("glgpu: shader watcher: " + err.Error())
		case now := <-tick.C:
			w.mu.Lock()
			for name, t := range w.pending {
				if now.Sub(t) >= w.debounce {
					delete(w.pending, name)
					w.changed[name] = true
				}
			}
			w.mu.Unlock()
		}
	}
}

// SetDebounce sets how long to wait after the last event for a file
// before reporting it, 100ms by default. Editors commonly emit several
// events per save.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	w.debounce = d
	w.mu.Unlock()
}

// Poll returns the base names of the watched files that changed since
// the last call, without blocking. It is meant to be called once per frame.
func (w *Watcher) Poll() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	names := make([]string, 0, len(w.changed))
	for name := range w.changed {
		names = append(names, name)
	}
	clear(w.changed)
	slices.Sort(names)
	return names
}

// Close stops watching. Calls after the first do nothing.
func (w *Watcher) Close() error {
	var err error
	w.closed.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}
