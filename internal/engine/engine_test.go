package engine

import (
	"testing"

	"github.com/plumbline/plumb/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourEqualComps() []model.Comparable {
	comps := []model.Comparable{
		{ID: "a", SalePrice: 1000000, BasisSize: 10000},
		{ID: "b", SalePrice: 1100000, BasisSize: 10000},
		{ID: "c", SalePrice: 900000, BasisSize: 10000},
		{ID: "d", SalePrice: 1050000, BasisSize: 10000},
	}
	Renormalize(comps)
	return comps
}

func TestEngine_Recompute(t *testing.T) {
	e := New()
	subject := model.Subject{
		Basis:          model.BasisSquareFeet,
		BasisSize:      12000,
		AdjustmentMode: model.ModePercent,
	}
	ctx := model.ContextFor(subject, false)
	comps := fourEqualComps()

	result := e.Recompute(ctx, subject, comps, nil)

	require.Len(t, result.Valuation.PerComparable, 4)
	assert.True(t, result.Valuation.Complete)

	// Unadjusted rates are 100, 110, 90, 105 at equal 25% weights.
	assert.InDelta(t, 101.25, result.Valuation.BlendedRate, 1e-9)
	assert.InDelta(t, 1215000, result.Valuation.TotalIndicatedValue, 1e-6)
	assert.Nil(t, result.Income)
}

func TestEngine_Recompute_Idempotent(t *testing.T) {
	e := New()
	subject := model.Subject{
		Basis:          model.BasisSquareFeet,
		BasisSize:      12000,
		AdjustmentMode: model.ModePercent,
	}
	ctx := model.ContextFor(subject, false)
	comps := fourEqualComps()
	comps[0].Adjustments = []model.AdjustmentEntry{
		{Key: "location", Kind: model.Quantitative, RawValue: "5%"},
		{Key: "condition", Kind: model.Qualitative, RawValue: "Superior 2%"},
	}
	income := &model.IncomeInputs{NetOperatingIncome: 200000, CapRateMarket: 8}

	first := e.Recompute(ctx, subject, comps, income)
	second := e.Recompute(ctx, subject, comps, income)

	assert.Equal(t, first.Valuation, second.Valuation)
	assert.Equal(t, *first.Income, *second.Income)
}

func TestEngine_Recompute_WithIncome(t *testing.T) {
	e := New()
	subject := model.Subject{
		Basis:          model.BasisUnit,
		BasisSize:      20,
		AdjustmentMode: model.ModeDollar,
	}
	ctx := model.ContextFor(subject, false)
	income := &model.IncomeInputs{
		NetOperatingIncome: 200000,
		CapRateLow:         7,
		CapRateMarket:      8,
		CapRateHigh:        9,
	}

	result := e.Recompute(ctx, subject, nil, income)

	require.NotNil(t, result.Income)
	assert.InDelta(t, 2500000, result.Income.Market, 1e-6)
	assert.InDelta(t, 125000, result.Income.PerBasisMarket, 1e-6)
	// Sales side has no comps: explicitly incomplete, not zero-valued.
	assert.False(t, result.Valuation.Complete)
}

func TestRemoveComparable(t *testing.T) {
	comps := fourEqualComps()
	for i := range comps {
		assert.InDelta(t, 25, comps[i].Weight, 1e-9)
	}

	survivors, found := RemoveComparable(comps, "b")
	require.True(t, found)
	require.Len(t, survivors, 3)

	assert.InDelta(t, 33.33, survivors[0].Weight, 1e-9)
	assert.InDelta(t, 33.33, survivors[1].Weight, 1e-9)
	assert.InDelta(t, 33.34, survivors[2].Weight, 1e-9)
	require.NoError(t, VerifyWeights(survivors))

	// The blended value recomputes from the three survivors only.
	e := New()
	subject := model.Subject{Basis: model.BasisSquareFeet, BasisSize: 12000, AdjustmentMode: model.ModePercent}
	result := e.Recompute(model.ContextFor(subject, false), subject, survivors, nil)

	want := 100*0.3333 + 90*0.3333 + 105*0.3334
	assert.InDelta(t, want, result.Valuation.BlendedRate, 1e-9)
}

func TestRemoveComparable_NotFound(t *testing.T) {
	comps := fourEqualComps()
	survivors, found := RemoveComparable(comps, "missing")
	assert.False(t, found)
	assert.Len(t, survivors, 4)
}

func completeResult(value float64) Result {
	return Result{Valuation: model.ValuationResult{TotalIndicatedValue: value, Complete: true}}
}

func TestEngine_Conclude(t *testing.T) {
	e := New()
	appraisal := &model.Appraisal{Name: "Main St Retail"}

	// First conclude creates a Computed conclusion.
	cleared := e.Conclude(appraisal, completeResult(1234567))
	require.NotNil(t, appraisal.Conclusion)
	assert.False(t, cleared)
	assert.InDelta(t, 1234567, appraisal.Conclusion.DisplayedValue, 1e-9)

	// Manual rounding survives small drift, clears at 6%.
	appraisal.Conclusion.RoundTo(1000)
	assert.InDelta(t, 1235000, appraisal.Conclusion.DisplayedValue, 1e-9)

	cleared = e.Conclude(appraisal, completeResult(1240000))
	assert.False(t, cleared)
	assert.True(t, appraisal.Conclusion.ManualOverride)

	cleared = e.Conclude(appraisal, completeResult(1310000))
	assert.True(t, cleared)
	assert.False(t, appraisal.Conclusion.ManualOverride)
	assert.InDelta(t, 1310000, appraisal.Conclusion.DisplayedValue, 1e-9)
}

func TestEngine_Conclude_IncompleteValuationLeavesConclusionAlone(t *testing.T) {
	e := New()
	subject := model.Subject{
		Basis:          model.BasisSquareFeet,
		BasisSize:      12000,
		AdjustmentMode: model.ModePercent,
	}
	ctx := model.ContextFor(subject, false)
	comps := []model.Comparable{
		{ID: "a", SalePrice: 1000000, BasisSize: 10000},
		{ID: "b", SalePrice: 1100000}, // basis size missing
	}
	Renormalize(comps)

	result := e.Recompute(ctx, subject, comps, nil)
	require.False(t, result.Valuation.Complete)

	// No conclusion exists yet: none may be created from a partial blend.
	appraisal := &model.Appraisal{Name: "Main St Retail", Subject: subject, Comparables: comps}
	cleared := e.Conclude(appraisal, result)
	assert.False(t, cleared)
	assert.Nil(t, appraisal.Conclusion)

	// An existing conclusion, overridden or not, keeps its values.
	appraisal.Conclusion = model.NewConclusion(1200000)
	appraisal.Conclusion.RoundTo(5000)
	cleared = e.Conclude(appraisal, result)
	assert.False(t, cleared)
	assert.True(t, appraisal.Conclusion.ManualOverride)
	assert.InDelta(t, 1200000, appraisal.Conclusion.ExactValue, 1e-9)
	assert.InDelta(t, 1200000, appraisal.Conclusion.DisplayedValue, 1e-9)
}
