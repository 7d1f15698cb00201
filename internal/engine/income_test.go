package engine

import (
	"testing"

	"github.com/plumbline/plumb/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCapitalize(t *testing.T) {
	tests := []struct {
		name    string
		noi     float64
		capRate float64
		want    float64
	}{
		{name: "market rate", noi: 200000, capRate: 8, want: 2500000},
		{name: "low rate yields higher value", noi: 200000, capRate: 6.5, want: 3076923.0769230770},
		{name: "zero rate yields zero by policy", noi: 200000, capRate: 0, want: 0},
		{name: "zero income", noi: 0, capRate: 8, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Capitalize(tt.noi, tt.capRate), 1e-6)
		})
	}
}

func TestCapitalizeRange(t *testing.T) {
	in := model.IncomeInputs{
		NetOperatingIncome: 200000,
		CapRateLow:         7,
		CapRateMarket:      8,
		CapRateHigh:        9,
		EvalWeight:         40,
	}

	result := CapitalizeRange(in, 25000)

	assert.InDelta(t, 2857142.857142857, result.Low, 1e-6)
	assert.InDelta(t, 2500000, result.Market, 1e-6)
	assert.InDelta(t, 2222222.222222222, result.High, 1e-6)

	assert.InDelta(t, 114.2857142857143, result.PerBasisLow, 1e-9)
	assert.InDelta(t, 100, result.PerBasisMarket, 1e-9)
	assert.InDelta(t, 88.88888888888889, result.PerBasisHigh, 1e-9)

	// 40% of the market tier flows into cross-approach reconciliation.
	assert.InDelta(t, 1000000, result.IncrementalValue, 1e-6)
}

func TestCapitalizeRange_ZeroBasisCount(t *testing.T) {
	in := model.IncomeInputs{NetOperatingIncome: 200000, CapRateMarket: 8}

	result := CapitalizeRange(in, 0)

	// Tier values stay authoritative; only the per-basis presentation
	// figures collapse to zero.
	assert.InDelta(t, 2500000, result.Market, 1e-6)
	assert.Zero(t, result.PerBasisMarket)
	assert.Zero(t, result.PerBasisLow)
	assert.Zero(t, result.PerBasisHigh)
}

func TestCapitalizeRange_EmptyTiers(t *testing.T) {
	in := model.IncomeInputs{NetOperatingIncome: 200000, CapRateMarket: 8}

	result := CapitalizeRange(in, 25000)

	assert.Zero(t, result.Low)
	assert.Zero(t, result.High)
	assert.Zero(t, result.PerBasisLow)
	assert.InDelta(t, 100, result.PerBasisMarket, 1e-9)
}
