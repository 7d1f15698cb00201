package engine

import (
	"log/slog"

	"github.com/plumbline/plumb/internal/model"
)

// Config holds the engine's tunables. Values come from the host's
// configuration layer; the engine never reads ambient state.
type Config struct {
	// PercentClampMin/Max bound quantitative percent adjustments.
	// Cap rate inputs are not clamped.
	PercentClampMin float64
	PercentClampMax float64
	// DriftThreshold is the relative drift that invalidates a manual
	// conclusion override on recompute.
	DriftThreshold float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		PercentClampMin: -100,
		PercentClampMax: 100,
		DriftThreshold:  model.DefaultDriftThreshold,
	}
}

// Engine runs the full valuation pass for one approach instance. It is
// stateless between calls: identical inputs produce bit-identical outputs.
type Engine struct {
	cfg Config
}

// New creates an engine with default configuration.
func New() *Engine {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(cfg Config) *Engine {
	return &Engine{cfg: cfg}
}

// Result bundles the outputs of one recompute pass.
type Result struct {
	Valuation model.ValuationResult
	Income    *model.IncomeRangeResult
}

// Recompute runs the ordered, acyclic pipeline for one approach instance:
// normalize adjustments, value each comparable, blend, and capitalize income
// in parallel off the same subject. Comparables are not mutated; callers
// that renormalize weights do so through Renormalize before calling.
func (e *Engine) Recompute(ctx model.ValuationContext, subject model.Subject, comps []model.Comparable, income *model.IncomeInputs) Result {
	valuations := make([]model.CompValuation, len(comps))
	for i := range comps {
		comp := comps[i]
		comp.Adjustments = append([]model.AdjustmentEntry(nil), comp.Adjustments...)
		NormalizeComparable(&comp, ctx.AdjustmentMode, e.cfg)
		valuations[i] = ValueComparable(ctx, comp)
	}

	result := Result{
		Valuation: Blend(ctx, valuations, subject.BasisSize),
	}

	if income != nil {
		r := CapitalizeRange(*income, subject.BasisSize)
		result.Income = &r
	}

	if !result.Valuation.Complete {
		slog.Debug("valuation incomplete",
			"comparables", len(comps),
			"basis", string(ctx.Basis))
	}

	return result
}

// Conclude folds a recompute result into the appraisal's conclusion,
// creating one in the Computed state if none exists. An incomplete valuation
// never becomes the concluded value: the conclusion is left untouched until
// every comparable can be valued. Returns true when a stale manual override
// was invalidated by drift.
func (e *Engine) Conclude(appraisal *model.Appraisal, result Result) bool {
	if !result.Valuation.Complete {
		return false
	}
	exact := result.Valuation.TotalIndicatedValue
	if appraisal.Conclusion == nil {
		appraisal.Conclusion = model.NewConclusion(exact)
		return false
	}
	return appraisal.Conclusion.Update(exact, e.cfg.DriftThreshold)
}

// RemoveComparable unlinks one comparable by ID and renormalizes the
// survivors' weights. Reports whether the comp was present.
func RemoveComparable(comps []model.Comparable, id string) ([]model.Comparable, bool) {
	kept := comps[:0]
	found := false
	for _, c := range comps {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if found {
		Renormalize(kept)
	}
	return kept, found
}
