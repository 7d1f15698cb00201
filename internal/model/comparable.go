package model

// Comparable is a previously sold property used as a market reference point
// for the subject.
type Comparable struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	SalePrice   float64           `json:"salePrice"`
	BasisSize   float64           `json:"basisSize"`
	LandSizeSF  float64           `json:"landSizeSqFt,omitempty"`
	Weight      float64           `json:"weight"`
	Adjustments []AdjustmentEntry `json:"adjustments"`
}

// TotalAdjustment sums the normalized deltas of every adjustment entry.
func (c *Comparable) TotalAdjustment() float64 {
	var total float64
	for _, adj := range c.Adjustments {
		total += adj.Delta
	}
	return total
}

// Grade returns the overall comparability grade implied by the comp's total
// adjustment.
func (c *Comparable) Grade() ComparabilityGrade {
	return GradeForAdjustment(c.TotalAdjustment())
}
