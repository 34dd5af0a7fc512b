package walk

import (
	"fmt"
	"os"
	"path/filepath"
)

// walker holds the state shared by the worker pool. It has no per-worker
// fields; any number of goroutines may call run concurrently.
type walker struct {
	queue      *queue
	coll       *collector
	dedup      *tracker
	errorHook  func(error)
	apparent   bool
	countLinks bool
}

// run pulls units until the queue closes.
func (w *walker) run() {
	for {
		u, ok := w.queue.take()
		if !ok {
			return
		}

		w.process(u)
		w.queue.complete()
	}
}

// process handles a single unit. Read failures are recorded and never abort
// the run; one unreadable subtree must not stop its siblings.
func (w *walker) process(u unit) {
	if u.kind.IsDir() {
		w.listDir(u)

		return
	}

	meta, err := metadata(u.path, w.apparent)
	if err != nil {
		w.fail(fmt.Errorf("retrieving metadata for %q: %w", u.path, err))

		return
	}

	// Hard-linked files are claimed by exactly one of the units that
	// reference them; the losers contribute neither size nor entry.
	if u.kind.IsRegular() && meta.nlink > 1 && !w.countLinks {
		if !w.dedup.claim(meta.id) {
			return
		}
	}

	w.coll.addEntry()
	w.coll.addSize(u.root, meta.size)
}

// fail records a recoverable per-entry error and reports it to the error
// hook when one is set.
func (w *walker) fail(err error) {
	w.coll.addError()

	if w.errorHook != nil {
		w.errorHook(err)
	}
}

// listDir fans a directory out into child units. Directories contribute no
// bytes of their own.
func (w *walker) listDir(u unit) {
	entries, err := os.ReadDir(u.path)
	if err != nil {
		w.fail(fmt.Errorf("reading directory %q: %w", u.path, err))

		return
	}

	w.coll.addEntry()

	for _, entry := range entries {
		w.queue.submit(unit{
			path: filepath.Join(u.path, entry.Name()),
			kind: entry.Type(),
			root: u.root,
		})
	}
}
