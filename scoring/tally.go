package scoring

import (
	"iter"
	"sort"
)

// RegionTally counts competitors per region and remembers the order in which
// regions were first seen.
type RegionTally struct {
	counts map[string]int
	order  []string
}

// RegionCount is one rendered row of a RegionTally.
type RegionCount struct {
	Region string `json:"region"`
	Count  int    `json:"count"`
}

func NewRegionTally() *RegionTally {
	return &RegionTally{counts: make(map[string]int)}
}

// Tally counts the competitors of every region in the given sequence.
func Tally(competitors iter.Seq[Competitor]) *RegionTally {
	t := NewRegionTally()
	for c := range competitors {
		t.Add(c.Region, 1)
	}
	return t
}

func (t *RegionTally) Add(region string, n int) {
	if _, ok := t.counts[region]; !ok {
		t.order = append(t.order, region)
	}
	t.counts[region] += n
}

func (t *RegionTally) Count(region string) int {
	return t.counts[region]
}

func (t *RegionTally) Len() int {
	return len(t.order)
}

// Regions yields regions in first-seen order.
func (t *RegionTally) Regions() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Ignored returns the region with the highest count. Ties go to the region seen
// first. An empty tally has no ignored region.
func (t *RegionTally) Ignored() string {
	best, bestCount := "", 0
	for _, region := range t.order {
		if n := t.counts[region]; n > bestCount {
			best, bestCount = region, n
		}
	}
	return best
}

// Sorted renders the tally by descending count, then region name.
func (t *RegionTally) Sorted() []RegionCount {
	out := make([]RegionCount, 0, len(t.order))
	for _, region := range t.order {
		out = append(out, RegionCount{Region: region, Count: t.counts[region]})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Region < out[j].Region
	})
	return out
}
