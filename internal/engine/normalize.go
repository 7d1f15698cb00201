package engine

import (
	"strings"

	"github.com/plumbline/plumb/internal/model"
)

// qualitativeDeltas maps the closed grade vocabulary to fixed percent
// deltas. Inferior comps adjust upward, superior comps downward.
var qualitativeDeltas = map[string]float64{
	"similar":      0,
	"inferior 2%":  2,
	"inferior 5%":  5,
	"inferior 10%": 10,
	"superior 2%":  -2,
	"superior 5%":  -5,
	"superior 10%": -10,
}

// NormalizeAdjustment turns one raw adjustment entry into a signed numeric
// delta under the appraisal's adjustment mode. It always returns a finite
// number: unparsable input normalizes to 0 and the entry's raw text is left
// untouched for the caller to re-display.
//
// Quantitative percent deltas are clamped to cfg's range; dollar deltas and
// qualitative grades are not.
func NormalizeAdjustment(entry model.AdjustmentEntry, mode model.AdjustmentMode, cfg Config) float64 {
	if entry.Kind == model.Qualitative {
		if entry.RawValue == "" {
			return entry.Delta
		}
		return normalizeQualitative(entry.RawValue)
	}

	// Entries supplied numerically (no raw text) are already normalized.
	if entry.RawValue == "" {
		if mode == model.ModePercent {
			return clamp(entry.Delta, cfg.PercentClampMin, cfg.PercentClampMax)
		}
		return entry.Delta
	}

	kind := Percent
	if mode == model.ModeDollar {
		kind = Currency
	}

	v, ok := ParseLenient(entry.RawValue, kind)
	if !ok {
		return 0
	}

	if mode == model.ModePercent {
		return clamp(v, cfg.PercentClampMin, cfg.PercentClampMax)
	}
	return v
}

// normalizeQualitative resolves a grade label. Labels outside the fixed
// vocabulary fall back to the custom free-text path: parse whatever numeric
// value the label carries rather than erroring.
func normalizeQualitative(raw string) float64 {
	label := strings.ToLower(strings.TrimSpace(raw))
	if delta, ok := qualitativeDeltas[label]; ok {
		return delta
	}

	v, ok := ParseLenient(raw, Percent)
	if !ok {
		return 0
	}
	return v
}

// NormalizeComparable fills in the delta on every adjustment entry of a
// comparable, in place.
func NormalizeComparable(comp *model.Comparable, mode model.AdjustmentMode, cfg Config) {
	for i := range comp.Adjustments {
		comp.Adjustments[i].Delta = NormalizeAdjustment(comp.Adjustments[i], mode, cfg)
	}
}

func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
