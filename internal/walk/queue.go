package walk

import (
	"io/fs"
	"sync/atomic"
)

// queueDepth is the buffered channel capacity. Overflow is handed off to
// spill goroutines so that producing workers never block.
const queueDepth = 1024

// unit is one filesystem path pending traversal or measurement.
type unit struct {
	// path is the entry's location on disk.
	path string
	// kind holds the type bits discovered when the entry was listed.
	kind fs.FileMode
	// root is the index of the root this unit descends from.
	root int
}

// queue is a multi-producer/multi-consumer queue of pending units combined
// with the termination detector: an in-flight counter covering both queued
// and currently processed units. When the counter transitions to zero the
// queue closes permanently and all blocked takers are released.
//
// At least one unit must be submitted before takers start; an empty queue
// that never held a unit never closes.
type queue struct {
	units   chan unit
	pending atomic.Int64
	done    chan struct{}
}

func newQueue() *queue {
	return &queue{
		units: make(chan unit, queueDepth),
		done:  make(chan struct{}),
	}
}

// submit makes u visible to takers. The in-flight counter is incremented
// before the unit becomes visible, so the queue can never be observed as
// drained while a submission is in progress.
func (q *queue) submit(u unit) {
	q.pending.Add(1)

	select {
	case q.units <- u:
	default:
		// Buffer full. Hand off asynchronously so a worker submitting
		// children never deadlocks while its own unit is unfinished.
		go func() { q.units <- u }()
	}
}

// take blocks until a unit is available or the queue has closed. The second
// return is false exactly when the traversal is complete.
//
// There is no race between the two cases: done only closes once the
// in-flight counter is zero, and a zero counter implies the channel is
// empty and no spill goroutine is pending.
func (q *queue) take() (unit, bool) {
	select {
	case u := <-q.units:
		return u, true
	case <-q.done:
		return unit{}, false
	}
}

// complete records that a previously taken unit has been fully processed,
// including the submission of any children. The counter reaches zero at
// most once per run, so exactly one caller observes the transition and
// closes the queue.
func (q *queue) complete() {
	if q.pending.Add(-1) == 0 {
		close(q.done)
	}
}
