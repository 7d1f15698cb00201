package engine

import (
	"testing"

	"github.com/plumbline/plumb/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestRatePerBasis(t *testing.T) {
	tests := []struct {
		name      string
		salePrice float64
		basisSize float64
		want      float64
		wantOK    bool
	}{
		{name: "simple rate", salePrice: 500000, basisSize: 5000, want: 100, wantOK: true},
		{name: "zero size yields no rate", salePrice: 500000, basisSize: 0, wantOK: false},
		{name: "negative size yields no rate", salePrice: 500000, basisSize: -10, wantOK: false},
		{name: "zero price is a valid zero rate", salePrice: 0, basisSize: 5000, want: 0, wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := RatePerBasis(tt.salePrice, tt.basisSize)
			assert.Equal(t, tt.wantOK, ok)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestCanonicalSquareFeet(t *testing.T) {
	assert.InDelta(t, 43560, CanonicalSquareFeet(1, model.BasisAcre), 1e-9)
	assert.InDelta(t, 2500, CanonicalSquareFeet(2500, model.BasisSquareFeet), 1e-9)
	// Count bases pass through untouched.
	assert.InDelta(t, 12, CanonicalSquareFeet(12, model.BasisUnit), 1e-9)
	assert.InDelta(t, 48, CanonicalSquareFeet(48, model.BasisBed), 1e-9)
}

func TestAdjustRate(t *testing.T) {
	tests := []struct {
		name       string
		unadjusted float64
		total      float64
		mode       model.AdjustmentMode
		want       float64
	}{
		{
			name:       "dollar mode subtracts",
			unadjusted: 100,
			total:      -5,
			mode:       model.ModeDollar,
			want:       95,
		},
		{
			name:       "percent mode at the coinciding input",
			unadjusted: 100,
			total:      -5,
			mode:       model.ModePercent,
			want:       95,
		},
		{
			// Rate away from 100 distinguishes the two modes.
			name:       "dollar mode at rate 80 plus 50",
			unadjusted: 80,
			total:      50,
			mode:       model.ModeDollar,
			want:       130,
		},
		{
			name:       "percent mode at rate 80 plus 50",
			unadjusted: 80,
			total:      50,
			mode:       model.ModePercent,
			want:       120,
		},
		{
			name:       "negative result is surfaced not clamped",
			unadjusted: 40,
			total:      -55,
			mode:       model.ModeDollar,
			want:       -15,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustRate(tt.unadjusted, tt.total, tt.mode)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestValueComparable_AcreLandComp(t *testing.T) {
	ctx := model.ValuationContext{
		Basis:          model.BasisAcre,
		AdjustmentMode: model.ModeDollar,
		LandOnly:       true,
	}
	comp := model.Comparable{
		ID:         "land-1",
		SalePrice:  500000,
		LandSizeSF: 217800, // 5 acres
		Weight:     100,
	}

	cv := ValueComparable(ctx, comp)

	assert.False(t, cv.Incomplete)
	assert.InDelta(t, 100000, cv.UnadjustedRate, 1e-6)
	assert.InDelta(t, 100000, cv.AdjustedRate, 1e-6)
}

func TestValueComparable_MissingBasisSize(t *testing.T) {
	ctx := model.ValuationContext{Basis: model.BasisSquareFeet, AdjustmentMode: model.ModePercent}
	comp := model.Comparable{ID: "c1", SalePrice: 750000}

	cv := ValueComparable(ctx, comp)

	assert.True(t, cv.Incomplete)
	assert.Zero(t, cv.AdjustedRate)
	assert.Zero(t, cv.BlendedContribution)
}

func TestValueComparable_BedBasis(t *testing.T) {
	ctx := model.ValuationContext{Basis: model.BasisBed, AdjustmentMode: model.ModeDollar}
	comp := model.Comparable{
		ID:        "c1",
		SalePrice: 960000,
		BasisSize: 48, // beds
		Weight:    50,
		Adjustments: []model.AdjustmentEntry{
			{Key: "condition", Kind: model.Quantitative, Delta: -1000},
		},
	}

	cv := ValueComparable(ctx, comp)

	assert.InDelta(t, 20000, cv.UnadjustedRate, 1e-9)
	assert.InDelta(t, 19000, cv.AdjustedRate, 1e-9)
	assert.InDelta(t, 9500, cv.BlendedContribution, 1e-9)
	assert.Equal(t, model.GradeSuperior, cv.Grade)
}

func TestValueComparable_Idempotent(t *testing.T) {
	ctx := model.ValuationContext{Basis: model.BasisSquareFeet, AdjustmentMode: model.ModePercent}
	comp := model.Comparable{
		ID:        "c1",
		SalePrice: 1200000,
		BasisSize: 10000,
		Weight:    33.34,
		Adjustments: []model.AdjustmentEntry{
			{Key: "location", Kind: model.Quantitative, Delta: 5},
			{Key: "condition", Kind: model.Qualitative, Delta: -2},
		},
	}

	first := ValueComparable(ctx, comp)
	second := ValueComparable(ctx, comp)
	assert.Equal(t, first, second)
}
