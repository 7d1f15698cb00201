package model

// IncomeInputs feeds the income capitalization range calculator. Cap rates
// are percentages entered independently and are not necessarily ordered.
type IncomeInputs struct {
	NetOperatingIncome float64 `json:"netOperatingIncome"`
	CapRateLow         float64 `json:"capRateLow"`
	CapRateMarket      float64 `json:"capRateMarket"`
	CapRateHigh        float64 `json:"capRateHigh"`
	// EvalWeight (0-100) is this approach's share in a cross-approach
	// reconciliation; supplied externally.
	EvalWeight float64 `json:"evalWeight,omitempty"`
}

// IncomeRangeResult holds the three indicated values and their per-basis
// equivalents. The tier values are authoritative; per-basis figures are
// presentation derivations and are zeroed when no basis count is known.
type IncomeRangeResult struct {
	Low    float64 `json:"low"`
	Market float64 `json:"market"`
	High   float64 `json:"high"`

	PerBasisLow    float64 `json:"perBasisLow"`
	PerBasisMarket float64 `json:"perBasisMarket"`
	PerBasisHigh   float64 `json:"perBasisHigh"`

	IncrementalValue float64 `json:"incrementalValue"`
}
