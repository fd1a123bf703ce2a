// Package parallel splits independent loop iterations across goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	MinWork    int  // Total work below which the loop stays sequential.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinWork:    1 << 16,
	}
}

// Sequential returns a config that never starts goroutines.
func Sequential() Config {
	return Config{}
}

// For executes f(i) for i in [0, n). work estimates the cost of all n calls
// together; below cfg.MinWork, or with a single worker, the loop runs on the
// calling goroutine. For returns after every call has finished.
func For(n, work int, f func(i int), cfg Config) {
	workers := min(cfg.NumWorkers, n)
	if !cfg.Enabled || workers < 2 || work < cfg.MinWork {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := (n + workers - 1) / workers

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
