package pool_seeding

import (
	"runtime"
	"sync"
)

// Synthesize builds count individuals across workers goroutines. Each worker
// draws from its own rand seeded from rng, so a seeded rng gives the same
// population every time.
func Synthesize[T any](count, workers int, rng Source, factory func(Source) T) []T {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > count {
		workers = count
	}
	out := make([]T, count)
	if count == 0 {
		return out
	}

	split := count / workers
	odds := count % workers
	seeds := make([]int64, workers)
	for i := range seeds {
		seeds[i] = rng.Int63() + 1
	}

	var wg sync.WaitGroup
	start := 0
	for i := 0; i < workers; i++ {
		size := split
		if i == workers-1 {
			size += odds
		}
		wg.Add(1)
		go func(lo, hi int, seed int64) {
			defer wg.Done()
			local := NewRand(seed)
			for q := lo; q < hi; q++ {
				out[q] = factory(local)
			}
		}(start, start+size, seeds[i])
		start += size
	}
	wg.Wait()
	return out
}
