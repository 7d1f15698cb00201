package model

// CompValuation is one comparable's computed contribution to the blended
// value. Incomplete marks a comp whose basis size is missing: its rate is
// not derivable and it is excluded from the blend until resolved.
type CompValuation struct {
	ID                  string             `json:"id"`
	UnadjustedRate      float64            `json:"unadjustedRate"`
	TotalAdjustment     float64            `json:"totalAdjustment"`
	AdjustedRate        float64            `json:"adjustedRate"`
	Weight              float64            `json:"weight"`
	BlendedContribution float64            `json:"blendedContribution"`
	Grade               ComparabilityGrade `json:"grade"`
	Incomplete          bool               `json:"incomplete,omitempty"`
}

// ValuationResult is the sales-comparison output for one approach instance.
// Complete is false while any comparable is incomplete or none exist:
// "not yet computable" is a distinct state from "computed as zero".
type ValuationResult struct {
	PerComparable       []CompValuation `json:"perComparable"`
	BlendedRate         float64         `json:"blendedIndicatedRate"`
	TotalIndicatedValue float64         `json:"totalIndicatedValue"`
	Complete            bool            `json:"complete"`
}

// Appraisal bundles everything the host persists for one approach instance.
type Appraisal struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Subject     Subject       `json:"subject"`
	LandOnly    bool          `json:"landOnly,omitempty"`
	Comparables []Comparable  `json:"comparables"`
	Income      *IncomeInputs `json:"income,omitempty"`
	Conclusion  *Conclusion   `json:"conclusion,omitempty"`
}
