// Package model defines the domain types shared by the valuation engine,
// storage, and CLI layers.
package model

import "fmt"

// SquareFeetPerAcre is the conversion factor between the two area bases.
const SquareFeetPerAcre = 43560.0

// ComparisonBasis is the unit of comparison used to normalize prices across
// properties of different sizes.
type ComparisonBasis string

// Supported comparison bases.
const (
	BasisSquareFeet ComparisonBasis = "sf"
	BasisAcre       ComparisonBasis = "acre"
	BasisUnit       ComparisonBasis = "unit"
	BasisBed        ComparisonBasis = "bed"
)

// ParseComparisonBasis converts a stored or user-supplied basis string.
func ParseComparisonBasis(s string) (ComparisonBasis, error) {
	switch ComparisonBasis(s) {
	case BasisSquareFeet, BasisAcre, BasisUnit, BasisBed:
		return ComparisonBasis(s), nil
	}
	return "", fmt.Errorf("unknown comparison basis: %q", s)
}

// IsArea reports whether the basis is area-based (convertible between SF and
// acres) rather than count-based.
func (b ComparisonBasis) IsArea() bool {
	return b == BasisSquareFeet || b == BasisAcre
}

// RateLabel returns the display label for a per-basis rate.
func (b ComparisonBasis) RateLabel() string {
	switch b {
	case BasisSquareFeet:
		return "$/SF"
	case BasisAcre:
		return "$/Acre"
	case BasisUnit:
		return "$/Unit"
	case BasisBed:
		return "$/Bed"
	}
	return "$/?"
}
