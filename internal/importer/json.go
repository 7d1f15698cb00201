// Package importer loads appraisal input files supplied by the hosting
// application or written by hand.
package importer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/plumbline/plumb/internal/common"
	"github.com/plumbline/plumb/internal/engine"
	"github.com/plumbline/plumb/internal/model"
)

// LoadAppraisal reads an appraisal JSON file, validates the subject, and
// fills in anything the file omits: missing IDs get UUIDs, and comparables
// carrying no weights get an equal distribution.
func LoadAppraisal(path string) (*model.Appraisal, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-supplied input file
	if err != nil {
		return nil, fmt.Errorf("failed to read appraisal file: %w", err)
	}

	var appraisal model.Appraisal
	if err := json.Unmarshal(data, &appraisal); err != nil {
		return nil, fmt.Errorf("failed to parse appraisal file %s: %w", path, err)
	}

	if err := validate(&appraisal); err != nil {
		return nil, fmt.Errorf("invalid appraisal file %s: %w", path, err)
	}

	if appraisal.ID == "" {
		appraisal.ID = uuid.NewString()
	}
	for i := range appraisal.Comparables {
		if appraisal.Comparables[i].ID == "" {
			appraisal.Comparables[i].ID = uuid.NewString()
		}
	}

	if !hasWeights(appraisal.Comparables) {
		engine.Renormalize(appraisal.Comparables)
	}

	return &appraisal, nil
}

func validate(appraisal *model.Appraisal) error {
	if _, err := model.ParseComparisonBasis(string(appraisal.Subject.Basis)); err != nil {
		return err
	}
	if _, err := model.ParseAdjustmentMode(string(appraisal.Subject.AdjustmentMode)); err != nil {
		return err
	}

	// A file with neither approach carries nothing to value.
	if len(appraisal.Comparables) == 0 && appraisal.Income == nil {
		return common.ErrNoComparables
	}
	// The sales approach scales the blended rate by the subject size.
	if len(appraisal.Comparables) > 0 && appraisal.Subject.BasisSize <= 0 {
		return fmt.Errorf("subject: %w", common.ErrMissingBasisSize)
	}

	seen := make(map[string]bool, len(appraisal.Comparables))
	for _, comp := range appraisal.Comparables {
		if comp.ID == "" {
			continue
		}
		if seen[comp.ID] {
			return fmt.Errorf("comparable id %q: %w", comp.ID, common.ErrDuplicateEntry)
		}
		seen[comp.ID] = true
	}
	return nil
}

// hasWeights reports whether any comparable carries an explicit weight.
// Files that assign weights keep them; files that don't get the equal split.
func hasWeights(comps []model.Comparable) bool {
	for i := range comps {
		if comps[i].Weight != 0 {
			return true
		}
	}
	return false
}
