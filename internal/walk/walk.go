package walk

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// startProgressReporter invokes hook(entries, bytes) on each tick until ctx
// is done.
func startProgressReporter(ctx context.Context, coll *collector, hook func(int64, int64), interval time.Duration) {
	if hook == nil {
		return
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ticker := time.NewTicker(interval)

	go func() {
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(coll.entryCount.Load(), coll.totalBytes.Load())
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Run traverses the trees rooted at opt.Paths and returns the final totals.
// A run always proceeds to natural completion; ctx bounds only the progress
// reporter goroutine.
//
// Roots that do not exist or cannot be read at all produce a joined error
// naming each failed path. The remaining roots are still walked, so the
// returned Stats may be non-nil alongside a non-nil error; only when no
// root is usable is the Stats nil.
//
// Progress updates are sent to progressHook if provided.
func Run(ctx context.Context, opt Options, progressHook func(int64, int64)) (*Stats, error) {
	if len(opt.Paths) == 0 {
		opt.Paths = []string{"."}
	}

	workers := opt.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	// Validate all roots up front. A bad root is fatal for that root but
	// must not stop a multi-root invocation.
	var (
		rootPaths []string
		rootUnits []unit
		rootErrs  []error
	)

	for _, path := range opt.Paths {
		info, err := os.Lstat(path)
		if err != nil {
			rootErrs = append(rootErrs, fmt.Errorf("accessing path %q: %w", path, err))

			continue
		}

		rootUnits = append(rootUnits, unit{
			path: path,
			kind: info.Mode().Type(),
			root: len(rootPaths),
		})
		rootPaths = append(rootPaths, path)
	}

	if len(rootUnits) == 0 {
		return nil, errors.Join(rootErrs...)
	}

	coll := newCollector(len(rootPaths))

	// Create a child context to ensure progress reporter cleanup.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	startProgressReporter(ctx, coll, progressHook, opt.ProgressInterval)

	start := time.Now()

	queue := newQueue()
	for _, u := range rootUnits {
		queue.submit(u)
	}

	w := &walker{
		queue:      queue,
		coll:       coll,
		dedup:      &tracker{},
		errorHook:  opt.ErrorHook,
		apparent:   opt.ApparentSize,
		countLinks: opt.CountLinks,
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			w.run()
		}()
	}

	wg.Wait()

	stats := coll.snapshot(rootPaths)
	stats.Elapsed = time.Since(start)

	return stats, errors.Join(rootErrs...)
}
