package parallel

import (
	"sync/atomic"
	"testing"
)

func TestParallelizeCoversAllItems(t *testing.T) {
	tests := []struct {
		name  string
		items int
	}{
		{"empty", 0},
		{"single", 1},
		{"fewer than cores", 3},
		{"many", 1000},
		{"prime count", 997},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen := make([]int32, tt.items)
			Parallelize(tt.items, func(start, end int) {
				for i := start; i < end; i++ {
					atomic.AddInt32(&seen[i], 1)
				}
			})
			for i, count := range seen {
				if count != 1 {
					t.Fatalf("item %d handled %d times", i, count)
				}
			}
		})
	}
}

func TestParallelizeDisjointRanges(t *testing.T) {
	const items = 500
	var total int64
	Parallelize(items, func(start, end int) {
		if start > end || start < 0 || end > items {
			t.Errorf("invalid range [%d, %d)", start, end)
		}
		atomic.AddInt64(&total, int64(end-start))
	})
	if total != items {
		t.Errorf("ranges cover %d items, want %d", total, items)
	}
}

func TestParallelizeWithThreshold(t *testing.T) {
	// Below the threshold the handler runs once over the whole range.
	var calls int32
	ParallelizeWithThreshold(10, 100, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Errorf("expected the full range, got [%d, %d)", start, end)
		}
	})
	if calls != 1 {
		t.Errorf("expected a single sequential call, got %d", calls)
	}

	// At or above the threshold the range still gets covered exactly once.
	seen := make([]int32, 256)
	ParallelizeWithThreshold(256, 100, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&seen[i], 1)
		}
	})
	for i, count := range seen {
		if count != 1 {
			t.Fatalf("item %d handled %d times", i, count)
		}
	}
}
