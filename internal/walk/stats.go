package walk

import (
	"sync/atomic"
	"time"
)

// RootStat is the size attributed to a single root path.
type RootStat struct {
	// Path is the root as given by the caller.
	Path string `json:"path"`
	// Size is the cumulative size in bytes under this root.
	Size int64 `json:"size"`
}

// Stats holds the final totals of a traversal run.
type Stats struct {
	// TotalBytes is the deduplicated size across all roots.
	TotalBytes int64 `json:"total_bytes"`
	// EntryCount is the number of entries whose metadata was read:
	// files, directories, and symlinks alike. Hard-link duplicates are
	// counted once, unreadable entries not at all.
	EntryCount int64 `json:"entry_count"`
	// ErrorCount is the number of entries that could not be read.
	ErrorCount int64 `json:"error_count"`
	// Roots holds the per-root size breakdown.
	Roots []RootStat `json:"roots"`
	// Elapsed is the total time taken for the traversal.
	Elapsed time.Duration `json:"elapsed"`
}

// Options configures a traversal run.
type Options struct {
	// Paths are the roots to measure. Defaults to the current directory
	// when empty.
	Paths []string
	// Workers is the worker goroutine count (0 = core count).
	Workers int
	// ApparentSize selects logical file length instead of allocated
	// blocks. Windows always reports logical length.
	ApparentSize bool
	// CountLinks counts hard-linked files once per link instead of once
	// per file.
	CountLinks bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// ErrorHook, if set, receives each recoverable per-entry error as it
	// is encountered, with the failing path in the message. Called
	// concurrently from workers; the hook must be safe for concurrent
	// use. Errors are counted whether or not a hook is set.
	ErrorHook func(error)
}

// collector aggregates sizes and counts from concurrent workers. All fields
// are atomics so that no lock serializes the pool; totals are only read
// once the workers have returned, except by the progress reporter, which
// tolerates torn combinations of the counters.
type collector struct {
	totalBytes atomic.Int64
	entryCount atomic.Int64
	errorCount atomic.Int64
	rootBytes  []atomic.Int64
}

// newCollector creates a collector for the given number of roots.
func newCollector(roots int) *collector {
	return &collector{rootBytes: make([]atomic.Int64, roots)}
}

// addSize attributes n bytes to the aggregate total and to root.
func (c *collector) addSize(root int, n int64) {
	c.totalBytes.Add(n)
	c.rootBytes[root].Add(n)
}

// addEntry records one successfully visited entry.
func (c *collector) addEntry() {
	c.entryCount.Add(1)
}

// addError records one entry that could not be read.
func (c *collector) addError() {
	c.errorCount.Add(1)
}

// snapshot produces the final Stats for the given root paths. Meaningful
// only after the queue has closed and all workers have returned.
func (c *collector) snapshot(paths []string) *Stats {
	roots := make([]RootStat, len(paths))
	for i, path := range paths {
		roots[i] = RootStat{Path: path, Size: c.rootBytes[i].Load()}
	}

	return &Stats{
		TotalBytes: c.totalBytes.Load(),
		EntryCount: c.entryCount.Load(),
		ErrorCount: c.errorCount.Load(),
		Roots:      roots,
	}
}
