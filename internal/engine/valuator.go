package engine

import (
	"github.com/plumbline/plumb/internal/model"
)

// AdjustRate applies a comparable's total adjustment to its unadjusted rate.
// Dollar mode is additive dollars-per-unit; Percent mode is multiplicative.
// A negative adjusted rate is a valid, if suspicious, result and is never
// clamped.
func AdjustRate(unadjusted, totalAdjustment float64, mode model.AdjustmentMode) float64 {
	if mode == model.ModeDollar {
		return unadjusted + totalAdjustment
	}
	return unadjusted * (1 + totalAdjustment/100)
}

// ValueComparable computes one comparable's adjusted price per basis unit.
// A comp whose basis size is missing comes back with Incomplete set; its
// rates are meaningless and it must stay out of the blend.
func ValueComparable(ctx model.ValuationContext, comp model.Comparable) model.CompValuation {
	total := comp.TotalAdjustment()

	cv := model.CompValuation{
		ID:              comp.ID,
		TotalAdjustment: total,
		Weight:          comp.Weight,
		Grade:           model.GradeForAdjustment(total),
	}

	rate, ok := unadjustedRate(ctx, comp)
	if !ok {
		cv.Incomplete = true
		return cv
	}

	cv.UnadjustedRate = rate
	cv.AdjustedRate = AdjustRate(rate, total, ctx.AdjustmentMode)
	cv.BlendedContribution = cv.AdjustedRate * comp.Weight / 100
	return cv
}
