package engine

import (
	"math"

	"github.com/plumbline/plumb/internal/model"
)

// Blend aggregates per-comparable valuations into one indicated value for
// the subject. Incomplete comps are left out of the sum and force
// Complete=false on the result: a partially computable blend is surfaced as
// such, never silently coerced to zero.
func Blend(ctx model.ValuationContext, valuations []model.CompValuation, subjectBasisSize float64) model.ValuationResult {
	result := model.ValuationResult{
		PerComparable: valuations,
		Complete:      len(valuations) > 0,
	}

	for i := range valuations {
		cv := &valuations[i]
		if cv.Incomplete || !isFinite(cv.AdjustedRate) {
			result.Complete = false
			continue
		}
		result.BlendedRate += cv.BlendedContribution
	}

	result.TotalIndicatedValue = result.BlendedRate * subjectBasisSize
	if !isFinite(result.TotalIndicatedValue) {
		result.TotalIndicatedValue = 0
		result.Complete = false
	}
	return result
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
