package model

import "math"

// DefaultDriftThreshold is the relative drift between a stale override and a
// freshly computed value beyond which the override is invalidated.
const DefaultDriftThreshold = 0.05

// Conclusion is the final number for one approach. It is a two-state
// machine: Computed (displayed value tracks the exact value) and manually
// overridden (user rounded or typed a number). An upstream recompute that
// drifts past the threshold clears a stale override so the displayed
// conclusion can never silently go wrong.
type Conclusion struct {
	ExactValue     float64 `json:"exactValue"`
	DisplayedValue float64 `json:"displayedValue"`
	ManualOverride bool    `json:"isManualOverride"`
}

// NewConclusion starts in the Computed state.
func NewConclusion(exact float64) *Conclusion {
	return &Conclusion{ExactValue: exact, DisplayedValue: exact}
}

// RoundTo applies a rounding increment (e.g. 1000 or 5000) to the exact
// value and enters the overridden state. A non-positive increment is a no-op.
func (c *Conclusion) RoundTo(increment float64) {
	if increment <= 0 {
		return
	}
	c.DisplayedValue = math.Round(c.ExactValue/increment) * increment
	c.ManualOverride = true
}

// Override sets a typed conclusion value and enters the overridden state.
func (c *Conclusion) Override(value float64) {
	c.DisplayedValue = value
	c.ManualOverride = true
}

// Clear drops any override and returns to the Computed state.
func (c *Conclusion) Clear() {
	c.DisplayedValue = c.ExactValue
	c.ManualOverride = false
}

// Update records a freshly recomputed exact value. While overridden, the
// override survives only if the new exact value stays within threshold of
// the displayed value; past that the override is stale and is invalidated.
// Returns true when an override was cleared.
func (c *Conclusion) Update(exact, threshold float64) bool {
	c.ExactValue = exact
	if !c.ManualOverride {
		c.DisplayedValue = exact
		return false
	}
	if c.drift() > threshold {
		c.Clear()
		return true
	}
	return false
}

func (c *Conclusion) drift() float64 {
	if c.ExactValue == 0 {
		if c.DisplayedValue == 0 {
			return 0
		}
		return math.Inf(1)
	}
	return math.Abs(c.ExactValue-c.DisplayedValue) / math.Abs(c.ExactValue)
}
