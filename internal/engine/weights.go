package engine

import (
	"fmt"
	"math"

	"github.com/plumbline/plumb/internal/common"
	"github.com/plumbline/plumb/internal/model"
)

// weightTolerance is the slack allowed on the sum-to-100 invariant.
const weightTolerance = 1e-6

// EqualWeights distributes 100 across n comparables at two decimal places.
// The rounding remainder lands on the last element so the set sums to
// exactly 100.00 for every n; three comps get [33.33, 33.33, 33.34].
// n <= 0 returns nil.
func EqualWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}

	weights := make([]float64, n)
	equal := round2(100 / float64(n))
	var assigned float64
	for i := 0; i < n-1; i++ {
		weights[i] = equal
		assigned += equal
	}
	weights[n-1] = round2(100 - assigned)
	return weights
}

// Renormalize reassigns equal weights to every comparable in place. Called
// on set-membership changes (add/remove), never on ordinary field edits.
// A no-op when the set is empty.
func Renormalize(comps []model.Comparable) {
	weights := EqualWeights(len(comps))
	for i := range comps {
		comps[i].Weight = weights[i]
	}
}

// TotalWeight sums the weights of a comparable set.
func TotalWeight(comps []model.Comparable) float64 {
	var total float64
	for i := range comps {
		total += comps[i].Weight
	}
	return total
}

// VerifyWeights checks the sum-to-100 invariant. A violation after a
// membership change is a programming error, not a user error, so it is
// surfaced loudly instead of being silently renormalized.
func VerifyWeights(comps []model.Comparable) error {
	if len(comps) == 0 {
		return nil
	}
	total := TotalWeight(comps)
	if math.Abs(total-100) > weightTolerance {
		return fmt.Errorf("%w: sum is %.6f across %d comparables", common.ErrWeightDrift, total, len(comps))
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
