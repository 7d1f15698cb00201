package model

import "fmt"

// AdjustmentMode governs how a comparable's total adjustment combines with
// its unadjusted rate. Declared once per appraisal.
type AdjustmentMode string

// Supported adjustment modes.
const (
	ModeDollar  AdjustmentMode = "dollar"
	ModePercent AdjustmentMode = "percent"
)

// ParseAdjustmentMode converts a stored or user-supplied mode string.
func ParseAdjustmentMode(s string) (AdjustmentMode, error) {
	switch AdjustmentMode(s) {
	case ModeDollar, ModePercent:
		return AdjustmentMode(s), nil
	}
	return "", fmt.Errorf("unknown adjustment mode: %q", s)
}

// AdjustmentKind distinguishes numeric entries from categorical grades.
type AdjustmentKind string

// Supported adjustment kinds.
const (
	Quantitative AdjustmentKind = "quantitative"
	Qualitative  AdjustmentKind = "qualitative"
)

// AdjustmentEntry is one line item adjusting a comparable against the
// subject. RawValue preserves the user's original text so unparsable input
// can be re-displayed; Delta is the normalized signed value the engine uses.
//
// Sign convention: a comparable inferior to the subject carries a positive
// delta (its price is adjusted upward), a superior one a negative delta.
type AdjustmentEntry struct {
	Key      string         `json:"key"`
	Kind     AdjustmentKind `json:"kind"`
	RawValue string         `json:"rawValue"`
	Delta    float64        `json:"delta"`
}

// ComparabilityGrade summarizes how a comparable stacks up against the
// subject overall, derived from the sign of its total adjustment.
type ComparabilityGrade string

// Comparability grades.
const (
	GradeSuperior ComparabilityGrade = "Superior"
	GradeSimilar  ComparabilityGrade = "Similar"
	GradeInferior ComparabilityGrade = "Inferior"
)

// GradeForAdjustment maps a total adjustment's sign to an overall grade.
// Positive means the comp was adjusted upward, i.e. it is inferior to the
// subject.
func GradeForAdjustment(total float64) ComparabilityGrade {
	switch {
	case total > 0:
		return GradeInferior
	case total < 0:
		return GradeSuperior
	}
	return GradeSimilar
}
