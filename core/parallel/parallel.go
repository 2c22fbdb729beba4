// Package parallel provides a shared worker-splitting helper for bulk array
// operations. Callers pass a half-open range handler; the range is divided
// across CPU cores. Each worker owns a disjoint slice of the output, so no
// locking is required and results do not depend on scheduling order.
package parallel

import (
	"runtime"
	"sync"
)

// Parallelize divides items across the available CPU cores and invokes
// fn(start, end) once per worker with a disjoint half-open range.
func Parallelize(items int, fn func(start, end int)) {
	if items == 0 {
		return
	}

	numWorkers := runtime.NumCPU()
	if numWorkers > items {
		numWorkers = items
	}

	// Ceiling division so the last worker picks up the remainder.
	chunkSize := (items + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > items {
			end = items
		}
		if start >= end {
			continue
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

// ParallelizeWithThreshold runs fn sequentially when items is at or below
// threshold, and in parallel otherwise. Small Gram matrices are cheaper to
// fill on one goroutine than to fan out.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
