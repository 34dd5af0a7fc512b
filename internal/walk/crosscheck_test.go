package walk

import (
	"context"
	"io/fs"
	"sync/atomic"
	"testing"

	"github.com/charlievieth/fastwalk"
)

// TestTotalsMatchIndependentTraversal verifies the engine against an
// accumulation produced by a separate traversal library over the same tree.
func TestTotalsMatchIndependentTraversal(t *testing.T) {
	tmp, _ := buildTree(t)

	stats, err := Run(context.Background(), Options{
		Paths:        []string{tmp},
		Workers:      8,
		ApparentSize: true,
	}, nil)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	var (
		want    atomic.Int64
		entries atomic.Int64
	)

	conf := &fastwalk.Config{Follow: false}

	walkErr := fastwalk.Walk(conf, tmp, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		entries.Add(1)

		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		want.Add(info.Size())

		return nil
	})
	if walkErr != nil {
		t.Fatalf("reference walk failed: %v", walkErr)
	}

	if stats.TotalBytes != want.Load() {
		t.Errorf("total = %d, reference traversal says %d", stats.TotalBytes, want.Load())
	}

	if stats.EntryCount != entries.Load() {
		t.Errorf("entries = %d, reference traversal says %d", stats.EntryCount, entries.Load())
	}
}
