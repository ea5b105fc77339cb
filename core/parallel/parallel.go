// Package parallel provides chunked parallel-for helpers for data-parallel
// loops over disjoint index ranges. Work is split across CPU cores and all
// goroutines are joined before the call returns.
package parallel

import (
	"runtime"
	"sync"
)

// workers returns how many goroutines to launch for the given item count.
func workers(items int) int {
	n := runtime.NumCPU()
	if n > items {
		// More workers than items would leave some idle
		n = items
	}
	return n
}

// Parallelize splits [0, items) into per-core chunks and runs fn(start, end)
// concurrently on each chunk. Ranges are disjoint; fn must not assume any
// chunk ordering.
func Parallelize(items int, fn func(start, end int)) {
	if items <= 0 {
		return
	}

	n := workers(items)
	chunk := (items + n - 1) / n

	var wg sync.WaitGroup
	for start := 0; start < items; start += chunk {
		end := start + chunk
		if end > items {
			end = items
		}

		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}
	wg.Wait()
}

// ParallelizeWithThreshold runs fn(0, items) sequentially when items is at or
// below threshold, and falls back to Parallelize above it. Small inputs skip
// the goroutine overhead entirely.
func ParallelizeWithThreshold(items, threshold int, fn func(start, end int)) {
	if items <= threshold {
		fn(0, items)
		return
	}
	Parallelize(items, fn)
}
