package model

// Subject is the property being appraised. It is a read-only operand for the
// duration of one valuation pass.
type Subject struct {
	Basis          ComparisonBasis `json:"basis"`
	BasisSize      float64         `json:"basisSize"`
	AdjustmentMode AdjustmentMode  `json:"adjustmentMode"`
}

// ValuationContext carries the per-appraisal flags every engine component
// needs. It replaces any ambient state: components receive it explicitly and
// never consult globals.
type ValuationContext struct {
	Basis          ComparisonBasis
	AdjustmentMode AdjustmentMode
	LandOnly       bool
}

// ContextFor builds the valuation context for a subject.
func ContextFor(subject Subject, landOnly bool) ValuationContext {
	return ValuationContext{
		Basis:          subject.Basis,
		AdjustmentMode: subject.AdjustmentMode,
		LandOnly:       landOnly,
	}
}
