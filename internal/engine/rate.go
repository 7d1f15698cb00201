package engine

import (
	"math"

	"github.com/plumbline/plumb/internal/model"
)

// CanonicalSquareFeet converts an area-based size to square feet. Count
// bases (Unit, Bed) pass through unchanged; they are not areas.
func CanonicalSquareFeet(size float64, basis model.ComparisonBasis) float64 {
	if !basis.IsArea() {
		return size
	}
	if basis == model.BasisAcre {
		return size * model.SquareFeetPerAcre
	}
	return size
}

// RatePerBasis derives a price per basis unit. ok is false when the basis
// size is zero, negative, or non-finite: no rate is derivable and the caller
// must treat the comp as incomplete rather than divide by zero.
func RatePerBasis(salePrice, basisSize float64) (rate float64, ok bool) {
	if basisSize <= 0 || math.IsNaN(basisSize) || math.IsInf(basisSize, 0) {
		return 0, false
	}
	r := salePrice / basisSize
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, false
	}
	return r, true
}

// unadjustedRate computes a comparable's price per declared basis unit.
// Acre-basis land comps measured in square feet convert through the
// 43,560 sq ft acre before any adjustment applies.
func unadjustedRate(ctx model.ValuationContext, comp model.Comparable) (float64, bool) {
	if ctx.Basis == model.BasisAcre && comp.LandSizeSF > 0 {
		perSF, ok := RatePerBasis(comp.SalePrice, comp.LandSizeSF)
		if !ok {
			return 0, false
		}
		// Scale the per-square-foot price up to one basis unit.
		return perSF * CanonicalSquareFeet(1, ctx.Basis), true
	}
	return RatePerBasis(comp.SalePrice, comp.BasisSize)
}
