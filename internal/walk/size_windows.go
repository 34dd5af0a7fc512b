//go:build windows

package walk

import "os"

// entryMeta holds the per-entry metadata the workers act on.
type entryMeta struct {
	size  int64
	nlink uint64
	id    DevIno
}

// metadata reads the size of the entry at path without following symlinks.
// Windows has no block accounting or inode identity here, so the size is
// always the logical length and entries are never deduplicated.
func metadata(path string, _ bool) (entryMeta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return entryMeta{}, err
	}

	return entryMeta{size: info.Size(), nlink: 1}, nil
}
