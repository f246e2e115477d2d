package pool_seeding

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xrash/smetrics"
	"golang.org/x/text/cases"

	"nickandperla.net/pool_seeding/scoring"
)

// RegionPair flags two region spellings that probably name the same region.
// Distance 0 means they differ only by case or surrounding whitespace.
type RegionPair struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Distance int    `json:"distance"`
}

// regions shorter than this only match on folding
const minFuzzyRegionLength = 3

// FindSimilarRegions reports region names close enough to be typos of each
// other. A split region is scored as two regions, which hides collisions.
func FindSimilarRegions(tally *scoring.RegionTally) []RegionPair {
	fold := cases.Fold()
	regions := tally.Regions()
	folded := make([]string, len(regions))
	for i, r := range regions {
		folded[i] = fold.String(strings.TrimSpace(r))
	}

	var pairs []RegionPair
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			a, b := folded[i], folded[j]
			if a == b {
				pairs = append(pairs, RegionPair{A: regions[i], B: regions[j]})
				continue
			}
			shortest := min(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
			if shortest < minFuzzyRegionLength {
				continue
			}
			limit := 1
			if shortest >= 6 {
				limit = 2
			}
			if d := smetrics.WagnerFischer(a, b, 1, 1, 1); d <= limit {
				pairs = append(pairs, RegionPair{A: regions[i], B: regions[j], Distance: d})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Distance < pairs[j].Distance
	})
	return pairs
}
