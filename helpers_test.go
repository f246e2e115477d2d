package pool_seeding

import (
	"fmt"
	"math/rand"
	"slices"
	"sort"

	"nickandperla.net/pool_seeding/scoring"
)

// scriptedSource replays fixed draws so operator tests can pin windows and
// swap partners. It falls back to a seeded rand once a script runs dry.
type scriptedSource struct {
	ints     []int
	floats   []float64
	fallback *rand.Rand
}

func newScriptedSource(ints []int, floats []float64) *scriptedSource {
	return &scriptedSource{ints: ints, floats: floats, fallback: rand.New(rand.NewSource(1))}
}

func (s *scriptedSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return s.fallback.Intn(n)
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v >= n {
		panic(fmt.Sprintf("scripted draw %d out of range %d", v, n))
	}
	return v
}

func (s *scriptedSource) Int63() int64 {
	return s.fallback.Int63()
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return s.fallback.Float64()
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// Shuffle leaves the order untouched.
func (s *scriptedSource) Shuffle(n int, swap func(i, j int)) {}

// makeRoster builds tiers of perTier competitors for each rank, regions
// assigned round robin from regions.
func makeRoster(ranks, perTier int, regions ...string) []scoring.Competitor {
	var out []scoring.Competitor
	k := 0
	for r := 1; r <= ranks; r++ {
		for i := 0; i < perTier; i++ {
			out = append(out, scoring.Competitor{
				Identifier: fmt.Sprintf("player-%d-%d", r, i),
				Region:     regions[k%len(regions)],
				Rank:       r,
			})
			k++
		}
	}
	return out
}

func sortedIdentifiers(list []scoring.Competitor) []string {
	ids := make([]string, len(list))
	for i, c := range list {
		ids[i] = c.Identifier
	}
	sort.Strings(ids)
	return ids
}

func sameMultiset(a, b []scoring.Competitor) bool {
	return slices.Equal(sortedIdentifiers(a), sortedIdentifiers(b))
}

// fakeIndividual has a fixed fitness and ignores crossover and mutation.
type fakeIndividual struct {
	id      int
	fitness float64
}

func (f *fakeIndividual) FitnessScore() float64 {
	return f.fitness
}

func (f *fakeIndividual) Crossover(other *fakeIndividual, rate float64, rng Source) (*fakeIndividual, *fakeIndividual) {
	return f, other
}

func (f *fakeIndividual) Mutate(rate float64, rng Source) *fakeIndividual {
	return f
}

func fakes(fitness ...float64) []*fakeIndividual {
	out := make([]*fakeIndividual, len(fitness))
	for i, f := range fitness {
		out[i] = &fakeIndividual{id: i, fitness: f}
	}
	return out
}
