//go:build !windows

package walk

import (
	"os"
	"syscall"
)

// entryMeta holds the per-entry metadata the workers act on.
type entryMeta struct {
	size  int64
	nlink uint64
	id    DevIno
}

// metadata reads the identity and size of the entry at path without
// following symlinks. With apparent set, size is the logical file length;
// otherwise it is the allocated block count.
func metadata(path string, apparent bool) (entryMeta, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return entryMeta{}, err
	}

	meta := entryMeta{size: info.Size(), nlink: 1}

	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return meta, nil
	}

	meta.id = DevIno{Dev: uint64(stat.Dev), Ino: uint64(stat.Ino)}
	meta.nlink = uint64(stat.Nlink)

	if !apparent {
		// Blocks are in 512-byte units.
		meta.size = int64(stat.Blocks) * 512
	}

	return meta, nil
}
