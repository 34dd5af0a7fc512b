package walk

import "sync"

// DevIno identifies a file on disk. Two directory entries with the same
// DevIno are hard links to the same underlying data.
type DevIno struct {
	Dev uint64
	Ino uint64
}

// tracker remembers which hard-linked files have already been counted.
// Single-link files bypass it entirely.
type tracker struct {
	seen sync.Map // DevIno -> struct{}
}

// claim returns true exactly once per key, no matter how many workers race
// on the same file.
func (t *tracker) claim(id DevIno) bool {
	_, loaded := t.seen.LoadOrStore(id, struct{}{})

	return !loaded
}
