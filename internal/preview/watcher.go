package preview

import (
	"context"
	"os"
	"sync"
	"time"
)

// Change is a modified, created or removed file.
type Change struct {
	Path    string
	Removed bool
}

// Watcher polls a set of files for modification time or size changes.
type Watcher struct {
	paths    []string
	interval time.Duration
	onChange func(Change)
	mu       sync.Mutex
	running  bool
	stopCh   chan struct{}
	stamps   map[string]stamp
}

// stamp identifies one version of a file.
type stamp struct {
	mod  time.Time
	size int64
}

// NewWatcher creates a watcher for paths. interval defaults to 250ms.
func NewWatcher(interval time.Duration, paths ...string) *Watcher {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Watcher{
		paths:    paths,
		interval: interval,
		stamps:   make(map[string]stamp),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(Change)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start polls until ctx is cancelled or Stop is called. Files present when
// Start is called are not reported.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	stopCh := w.stopCh
	w.collectLocked()
	w.mu.Unlock()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.Stop()
			return ctx.Err()
		case <-stopCh:
			return nil
		case <-ticker.C:
			w.scan()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// IsRunning returns whether the watcher is running.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// scan reports every change since the previous scan.
func (w *Watcher) scan() {
	w.mu.Lock()
	changes := w.collectLocked()
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}
	for _, c := range changes {
		callback(c)
	}
}

// collectLocked updates the file stamps and returns the differences.
// w.mu must be held.
func (w *Watcher) collectLocked() []Change {
	var changes []Change
	for _, p := range w.paths {
		last, known := w.stamps[p]
		info, err := os.Stat(p)
		if err != nil {
			if known {
				delete(w.stamps, p)
				changes = append(changes, Change{Path: p, Removed: true})
			}
			continue
		}
		current := stamp{mod: info.ModTime(), size: info.Size()}
		if !known || !current.mod.Equal(last.mod) || current.size != last.size {
			w.stamps[p] = current
			changes = append(changes, Change{Path: p})
		}
	}
	return changes
}
