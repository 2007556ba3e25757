// Package watch drives the poll-based re-evaluation loop: whenever the
// task file changes, re-run the planner and hand the fresh report to the
// caller. The resolver itself has no push mechanism; this is the bridge
// between an editor or executor mutating the file and the next plan.
package watch

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/taskloom/taskloom/internal/planner"
)

type Watcher struct {
	path     string
	service  *planner.Service
	debounce time.Duration
	onReport func(*planner.Report)
}

func New(path string, service *planner.Service, debounce time.Duration, onReport func(*planner.Report)) *Watcher {
	return &Watcher{
		path:     filepath.Clean(path),
		service:  service,
		debounce: debounce,
		onReport: onReport,
	}
}

// Run re-plans once immediately, then blocks until ctx is cancelled,
// re-planning after every write, create, or rename on the task file.
// Events are debounced so editors that write in bursts trigger a single
// pass.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	// Watch the directory, not the file: editors and AtomicWrite replace
	// the file by rename, which would drop a watch on the file itself.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.replan()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(w.debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		case <-pending:
			pending = nil
			w.replan()
		}
	}
}

func (w *Watcher) replan() {
	report, err := w.service.Plan(w.path)
	if err != nil {
		log.Printf("plan %s: %v", w.path, err)
		return
	}
	w.onReport(report)
}
