package pool_seeding

import (
	"math/rand"
	"time"
)

// Search defaults. These match the settings the csc-tools solve command has
// always shipped with.
const (
	DefaultGenerationLimit = 1000
	DefaultPopulationSize  = 100
	DefaultSampleSize      = 4
	DefaultCrossoverRate   = 0.2
	DefaultMutationRate    = 0.05
	DefaultCheckInterval   = 50
)

// Source is the random stream every genetic operator draws from. *rand.Rand
// satisfies it.
type Source interface {
	Intn(n int) int
	Int63() int64
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded *rand.Rand. If seed is 0, the current time is used
// (non-deterministic). A non-zero seed gives reproducible runs.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
