package engine

import (
	"github.com/plumbline/plumb/internal/model"
)

// Capitalize converts net operating income into an indicated value at one
// cap rate. A zero or empty rate yields zero by policy, never Infinity.
func Capitalize(netOperatingIncome, capRate float64) float64 {
	if capRate == 0 || !isFinite(capRate) {
		return 0
	}
	v := netOperatingIncome / (capRate / 100)
	if !isFinite(v) {
		return 0
	}
	return v
}

// CapitalizeRange derives the {low, market, high} indicated values from an
// income statement, their per-basis equivalents, and the approach's weighted
// contribution to a cross-approach reconciliation.
//
// The tier values are authoritative. Per-basis figures are a presentation
// derivation: a zero or unknown basis count yields zero, and any non-finite
// intermediate is coerced to zero only at this final step.
func CapitalizeRange(in model.IncomeInputs, totalBasisCount float64) model.IncomeRangeResult {
	result := model.IncomeRangeResult{
		Low:    Capitalize(in.NetOperatingIncome, in.CapRateLow),
		Market: Capitalize(in.NetOperatingIncome, in.CapRateMarket),
		High:   Capitalize(in.NetOperatingIncome, in.CapRateHigh),
	}

	result.PerBasisLow = perBasis(result.Low, totalBasisCount)
	result.PerBasisMarket = perBasis(result.Market, totalBasisCount)
	result.PerBasisHigh = perBasis(result.High, totalBasisCount)

	result.IncrementalValue = result.Market * in.EvalWeight / 100
	return result
}

func perBasis(value, count float64) float64 {
	if count == 0 || !isFinite(count) {
		return 0
	}
	v := value / count
	if !isFinite(v) {
		return 0
	}
	return v
}
