package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/arxeiss/deadflow/console"
	"github.com/arxeiss/deadflow/fsutil"
)

const debounceDelay = 300 * time.Millisecond

// Watch runs the analysis once, then again after every change to a candidate
// file, until ctx is done. Failed runs are reported and watching continues.
func (r *Runner) Watch(ctx context.Context) error {
	if r.root == "" {
		return fmt.Errorf("no path provided")
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	filter := r.filter()
	if err := r.watchTree(watcher, r.root, filter); err != nil {
		return err
	}
	fmt.Fprintln(r.errWriter, console.FormatInfoMessage(fmt.Sprintf("Watching for file changes in %s...", r.root)))

	r.rerun(ctx)

	var debounce <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if r.handleEvent(watcher, filter, event) {
				debounce = time.After(debounceDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			r.log().Warn("Watcher error", "error", err)

		case <-debounce:
			debounce = nil
			r.rerun(ctx)
		}
	}
}

func (r *Runner) watchTree(watcher *fsnotify.Watcher, root string, filter fsutil.Filter) error {
	dirs, err := fsutil.FindDirs(r.fs, root, filter)
	if err != nil {
		return err
	}
	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}
	r.log().Debug("Watching directories", "root", root, "count", len(dirs))
	return nil
}

// handleEvent reports whether event should trigger a new run.
func (r *Runner) handleEvent(watcher *fsnotify.Watcher, filter fsutil.Filter, event fsnotify.Event) bool {
	if filter.Excluded(event.Name) {
		return false
	}
	if event.Has(fsnotify.Create) {
		if info, err := r.fs.Stat(event.Name); err == nil && info.IsDir() {
			if err := r.watchTree(watcher, event.Name, filter); err != nil {
				r.log().Warn("Failed to watch new directory", "path", event.Name, "error", err)
			}
			return true
		}
	}
	if !filter.Match(event.Name) {
		return false
	}
	r.log().Debug("Detected change", "path", event.Name, "op", event.Op.String())
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (r *Runner) rerun(ctx context.Context) {
	if err := r.Run(ctx); err != nil && ctx.Err() == nil {
		fmt.Fprintln(r.errWriter, console.FormatWarningMessage(fmt.Sprintf("Analysis failed: %v", err)))
	}
}
