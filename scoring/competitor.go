// Package scoring computes pool assignments and regional collision scores for
// a tournament seed order, along with the analytic lower bound on that score.
//
// Everything here is a pure function of its inputs and safe to call from any
// number of goroutines.
package scoring

import (
	"errors"
	"fmt"
)

var ErrInvalidPoolCount = errors.New("pool count must be a positive integer")

// Competitor is a single entrant. Rank groups competitors into tiers; a lower
// Rank is seeded earlier.
type Competitor struct {
	Identifier string `json:"identifier"`
	Region     string `json:"region"`
	Rank       int    `json:"rank"`
}

func (c Competitor) String() string {
	return fmt.Sprintf("%s (%s, rank %d)", c.Identifier, c.Region, c.Rank)
}

func checkPoolCount(poolCount int) error {
	if poolCount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPoolCount, poolCount)
	}
	return nil
}
