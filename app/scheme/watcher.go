package scheme

import (
	"context"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
)

// Watcher polls a Source and notifies subscribers when the signal flips.
// It runs for the life of the process; the context cancels it at shutdown.
type Watcher struct {
	source   Source
	interval time.Duration

	mu        sync.Mutex
	last      bool
	callbacks map[int]func(dark bool)
	nextID    int
}

// NewWatcher creates a watcher polling the source on the given interval.
func NewWatcher(source Source, interval time.Duration) *Watcher {
	return &Watcher{
		source:    source,
		interval:  interval,
		last:      source.Dark(),
		callbacks: make(map[int]func(dark bool)),
	}
}

// OnChange registers a callback invoked with the new value whenever the
// signal flips. Returns an unsubscribe function.
func (w *Watcher) OnChange(fn func(dark bool)) func() {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	w.callbacks[id] = fn

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		delete(w.callbacks, id)
	}
}

// Run polls until the context is canceled. Callbacks run sequentially on
// the watcher goroutine.
func (w *Watcher) Run(ctx context.Context) {
	log.Printf("[DEBUG] scheme watcher started, poll interval %v", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] scheme watcher stopped")
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

// poll reads the source once and fires callbacks on change.
func (w *Watcher) poll() {
	dark := w.source.Dark()

	w.mu.Lock()
	changed := dark != w.last
	w.last = dark
	var fns []func(bool)
	if changed {
		fns = make([]func(bool), 0, len(w.callbacks))
		for _, fn := range w.callbacks {
			fns = append(fns, fn)
		}
	}
	w.mu.Unlock()

	if !changed {
		return
	}

	log.Printf("[INFO] os color scheme changed, dark=%v", dark)
	for _, fn := range fns {
		fn(dark)
	}
}
