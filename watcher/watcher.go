// Package watcher runs a callback when any of a set of files changes.
//
// Parent directories are watched rather than the files themselves, so
// editors that save by renaming a temp file over the original keep being
// seen. Bursts of events are debounced into one callback, and callbacks
// never overlap.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
)

// Callback is invoked after a debounced change. changed is the absolute path
// of the last file that triggered it.
type Callback func(ctx context.Context, changed string)

// Watcher watches files for changes and triggers a debounced callback
type Watcher struct {
	fsw      *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration
	callback Callback
	log      *zap.SugaredLogger

	mu    sync.Mutex
	timer *time.Timer

	// held while a callback runs
	runMu sync.Mutex
}

// New creates a watcher over files. Empty paths are ignored; at least one
// file must remain.
func New(files []string, debounce time.Duration, callback Callback) (*Watcher, error) {
	if callback == nil {
		return nil, errors.New("watcher callback is nil")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	w := &Watcher{
		fsw:      fsw,
		files:    make(map[string]bool, len(files)),
		debounce: debounce,
		callback: callback,
		log:      logger.ComponentLogger("watch"),
	}

	dirs := make(map[string]bool)
	for _, file := range files {
		if file == "" {
			continue
		}
		abs, err := filepath.Abs(file)
		if err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to resolve %s", file)
		}
		w.files[abs] = true

		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "failed to watch directory %s", dir)
		}
		dirs[dir] = true
	}

	if len(w.files) == 0 {
		fsw.Close()
		return nil, errors.New("no files to watch")
	}

	return w, nil
}

// Files returns the absolute paths being watched
func (w *Watcher) Files() []string {
	out := make([]string, 0, len(w.files))
	for f := range w.files {
		out = append(out, f)
	}
	return out
}

// Run blocks until ctx is cancelled, scheduling the callback on changes.
// It waits for a running callback to finish before returning.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		w.stop()
		w.fsw.Close()
		w.runMu.Lock()
		w.runMu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugw("change detected", logger.FieldFile, event.Name, "op", event.Op.String())
			w.schedule(ctx, filepath.Clean(event.Name))

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.log.Warnw("watcher error", logger.FieldError, err)
		}
	}
}

// relevant reports whether event is a write or create of a watched file
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return false
	}
	return w.files[filepath.Clean(event.Name)]
}

// schedule debounces rapid file changes and triggers the callback
func (w *Watcher) schedule(ctx context.Context, changed string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.runMu.Lock()
		defer w.runMu.Unlock()

		if ctx.Err() != nil {
			return
		}
		w.callback(ctx, changed)
	})
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}
