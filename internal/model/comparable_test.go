package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparable_TotalAdjustment(t *testing.T) {
	comp := Comparable{
		Adjustments: []AdjustmentEntry{
			{Key: "location", Kind: Quantitative, Delta: 5},
			{Key: "condition", Kind: Qualitative, Delta: -2},
			{Key: "age", Kind: Quantitative, Delta: 0},
		},
	}
	assert.InDelta(t, 3.0, comp.TotalAdjustment(), 1e-9)
}

func TestGradeForAdjustment(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  ComparabilityGrade
	}{
		{name: "upward adjustment means inferior comp", total: 5, want: GradeInferior},
		{name: "downward adjustment means superior comp", total: -5, want: GradeSuperior},
		{name: "no adjustment means similar", total: 0, want: GradeSimilar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GradeForAdjustment(tt.total))
		})
	}
}

func TestParseComparisonBasis(t *testing.T) {
	for _, valid := range []string{"sf", "acre", "unit", "bed"} {
		b, err := ParseComparisonBasis(valid)
		require.NoError(t, err)
		assert.Equal(t, ComparisonBasis(valid), b)
	}

	_, err := ParseComparisonBasis("hectare")
	assert.Error(t, err)
}

func TestParseAdjustmentMode(t *testing.T) {
	for _, valid := range []string{"dollar", "percent"} {
		m, err := ParseAdjustmentMode(valid)
		require.NoError(t, err)
		assert.Equal(t, AdjustmentMode(valid), m)
	}

	_, err := ParseAdjustmentMode("euro")
	assert.Error(t, err)
}

func TestComparisonBasis_IsArea(t *testing.T) {
	assert.True(t, BasisSquareFeet.IsArea())
	assert.True(t, BasisAcre.IsArea())
	assert.False(t, BasisUnit.IsArea())
	assert.False(t, BasisBed.IsArea())
}
