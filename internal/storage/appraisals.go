package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/plumbline/plumb/internal/common"
	"github.com/plumbline/plumb/internal/model"
)

// SaveAppraisal upserts the full appraisal graph (subject, comparables,
// adjustments, income inputs, conclusion) in one transaction.
func (s *SQLiteStorage) SaveAppraisal(ctx context.Context, appraisal *model.Appraisal) error {
	if appraisal == nil {
		return errors.New("appraisal is nil")
	}
	if appraisal.ID == "" {
		return errors.New("appraisal ID is required")
	}

	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO appraisals (id, name, basis, adjustment_mode, basis_size, land_only)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				name = excluded.name,
				basis = excluded.basis,
				adjustment_mode = excluded.adjustment_mode,
				basis_size = excluded.basis_size,
				land_only = excluded.land_only,
				updated_at = CURRENT_TIMESTAMP`,
			appraisal.ID, appraisal.Name,
			string(appraisal.Subject.Basis), string(appraisal.Subject.AdjustmentMode),
			appraisal.Subject.BasisSize, appraisal.LandOnly); err != nil {
			return fmt.Errorf("failed to save appraisal: %w", err)
		}

		// Replace the comparable set wholesale; the graph is small and the
		// set is the unit the engine renormalizes over.
		if _, err := tx.ExecContext(ctx, `DELETE FROM comparables WHERE appraisal_id = ?`, appraisal.ID); err != nil {
			return fmt.Errorf("failed to clear comparables: %w", err)
		}

		for i, comp := range appraisal.Comparables {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO comparables (id, appraisal_id, position, name, sale_price, basis_size, land_size_sqft, weight)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				comp.ID, appraisal.ID, i, comp.Name,
				comp.SalePrice, comp.BasisSize, comp.LandSizeSF, comp.Weight); err != nil {
				return fmt.Errorf("failed to save comparable %s: %w", comp.ID, err)
			}

			for j, adj := range comp.Adjustments {
				if _, err := tx.ExecContext(ctx, `
					INSERT INTO adjustments (appraisal_id, comparable_id, position, key, kind, raw_value, delta)
					VALUES (?, ?, ?, ?, ?, ?, ?)`,
					appraisal.ID, comp.ID, j, adj.Key, string(adj.Kind), adj.RawValue, adj.Delta); err != nil {
					return fmt.Errorf("failed to save adjustment %s/%s: %w", comp.ID, adj.Key, err)
				}
			}
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM income_inputs WHERE appraisal_id = ?`, appraisal.ID); err != nil {
			return fmt.Errorf("failed to clear income inputs: %w", err)
		}
		if appraisal.Income != nil {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO income_inputs (appraisal_id, net_operating_income, cap_rate_low, cap_rate_market, cap_rate_high, eval_weight)
				VALUES (?, ?, ?, ?, ?, ?)`,
				appraisal.ID, appraisal.Income.NetOperatingIncome,
				appraisal.Income.CapRateLow, appraisal.Income.CapRateMarket,
				appraisal.Income.CapRateHigh, appraisal.Income.EvalWeight); err != nil {
				return fmt.Errorf("failed to save income inputs: %w", err)
			}
		}

		if appraisal.Conclusion != nil {
			if err := saveConclusionTx(ctx, tx, appraisal.ID, appraisal.Conclusion); err != nil {
				return err
			}
		}

		return nil
	})
}

// GetAppraisal loads the full appraisal graph by ID.
func (s *SQLiteStorage) GetAppraisal(ctx context.Context, id string) (*model.Appraisal, error) {
	appraisal := &model.Appraisal{ID: id}

	var basis, mode string
	var landOnly int
	err := s.db.QueryRowContext(ctx, `
		SELECT name, basis, adjustment_mode, basis_size, land_only
		FROM appraisals WHERE id = ?`, id).
		Scan(&appraisal.Name, &basis, &mode, &appraisal.Subject.BasisSize, &landOnly)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("appraisal %s: %w", id, common.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load appraisal: %w", err)
	}

	appraisal.Subject.Basis = model.ComparisonBasis(basis)
	appraisal.Subject.AdjustmentMode = model.AdjustmentMode(mode)
	appraisal.LandOnly = landOnly != 0

	if err := s.loadComparables(ctx, appraisal); err != nil {
		return nil, err
	}
	if err := s.loadIncome(ctx, appraisal); err != nil {
		return nil, err
	}
	if err := s.loadConclusion(ctx, appraisal); err != nil {
		return nil, err
	}

	return appraisal, nil
}

func (s *SQLiteStorage) loadComparables(ctx context.Context, appraisal *model.Appraisal) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, sale_price, basis_size, land_size_sqft, weight
		FROM comparables WHERE appraisal_id = ? ORDER BY position`, appraisal.ID)
	if err != nil {
		return fmt.Errorf("failed to load comparables: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var comp model.Comparable
		var name sql.NullString
		if err := rows.Scan(&comp.ID, &name, &comp.SalePrice, &comp.BasisSize, &comp.LandSizeSF, &comp.Weight); err != nil {
			return fmt.Errorf("failed to scan comparable: %w", err)
		}
		comp.Name = name.String
		appraisal.Comparables = append(appraisal.Comparables, comp)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate comparables: %w", err)
	}

	for i := range appraisal.Comparables {
		comp := &appraisal.Comparables[i]
		adjRows, err := s.db.QueryContext(ctx, `
			SELECT key, kind, raw_value, delta
			FROM adjustments WHERE appraisal_id = ? AND comparable_id = ? ORDER BY position`,
			appraisal.ID, comp.ID)
		if err != nil {
			return fmt.Errorf("failed to load adjustments: %w", err)
		}

		for adjRows.Next() {
			var adj model.AdjustmentEntry
			var kind string
			var raw sql.NullString
			if err := adjRows.Scan(&adj.Key, &kind, &raw, &adj.Delta); err != nil {
				_ = adjRows.Close()
				return fmt.Errorf("failed to scan adjustment: %w", err)
			}
			adj.Kind = model.AdjustmentKind(kind)
			adj.RawValue = raw.String
			comp.Adjustments = append(comp.Adjustments, adj)
		}
		closeErr := adjRows.Close()
		if err := adjRows.Err(); err != nil {
			return fmt.Errorf("failed to iterate adjustments: %w", err)
		}
		if closeErr != nil {
			return fmt.Errorf("failed to close adjustment rows: %w", closeErr)
		}
	}

	return nil
}

func (s *SQLiteStorage) loadIncome(ctx context.Context, appraisal *model.Appraisal) error {
	var income model.IncomeInputs
	err := s.db.QueryRowContext(ctx, `
		SELECT net_operating_income, cap_rate_low, cap_rate_market, cap_rate_high, eval_weight
		FROM income_inputs WHERE appraisal_id = ?`, appraisal.ID).
		Scan(&income.NetOperatingIncome, &income.CapRateLow, &income.CapRateMarket,
			&income.CapRateHigh, &income.EvalWeight)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load income inputs: %w", err)
	}
	appraisal.Income = &income
	return nil
}

func (s *SQLiteStorage) loadConclusion(ctx context.Context, appraisal *model.Appraisal) error {
	var c model.Conclusion
	var override int
	err := s.db.QueryRowContext(ctx, `
		SELECT exact_value, displayed_value, manual_override
		FROM conclusions WHERE appraisal_id = ?`, appraisal.ID).
		Scan(&c.ExactValue, &c.DisplayedValue, &override)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load conclusion: %w", err)
	}
	c.ManualOverride = override != 0
	appraisal.Conclusion = &c
	return nil
}

// ListAppraisals returns every stored appraisal without its comparable graph.
func (s *SQLiteStorage) ListAppraisals(ctx context.Context) ([]model.Appraisal, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, basis, adjustment_mode, basis_size, land_only
		FROM appraisals ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list appraisals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var appraisals []model.Appraisal
	for rows.Next() {
		var a model.Appraisal
		var basis, mode string
		var landOnly int
		if err := rows.Scan(&a.ID, &a.Name, &basis, &mode, &a.Subject.BasisSize, &landOnly); err != nil {
			return nil, fmt.Errorf("failed to scan appraisal: %w", err)
		}
		a.Subject.Basis = model.ComparisonBasis(basis)
		a.Subject.AdjustmentMode = model.AdjustmentMode(mode)
		a.LandOnly = landOnly != 0
		appraisals = append(appraisals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate appraisals: %w", err)
	}
	return appraisals, nil
}

// DeleteAppraisal removes an appraisal and, via cascade, its comparables,
// adjustments, income inputs, and conclusion.
func (s *SQLiteStorage) DeleteAppraisal(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM appraisals WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete appraisal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("appraisal %s: %w", id, common.ErrNotFound)
	}
	return nil
}

// RemoveComparable unlinks one comparable from a stored appraisal. Weight
// renormalization of the survivors is the engine's job; callers load the
// appraisal, renormalize, and save.
func (s *SQLiteStorage) RemoveComparable(ctx context.Context, appraisalID, compID string) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM comparables WHERE appraisal_id = ? AND id = ?`, appraisalID, compID)
	if err != nil {
		return fmt.Errorf("failed to remove comparable: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check remove result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("comparable %s in appraisal %s: %w", compID, appraisalID, common.ErrNotFound)
	}
	return nil
}

// SaveConclusion upserts the conclusion row for an appraisal.
func (s *SQLiteStorage) SaveConclusion(ctx context.Context, appraisalID string, conclusion *model.Conclusion) error {
	if conclusion == nil {
		return errors.New("conclusion is nil")
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return saveConclusionTx(ctx, tx, appraisalID, conclusion)
	})
}

func saveConclusionTx(ctx context.Context, tx *sql.Tx, appraisalID string, c *model.Conclusion) error {
	override := 0
	if c.ManualOverride {
		override = 1
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO conclusions (appraisal_id, exact_value, displayed_value, manual_override)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(appraisal_id) DO UPDATE SET
			exact_value = excluded.exact_value,
			displayed_value = excluded.displayed_value,
			manual_override = excluded.manual_override,
			updated_at = CURRENT_TIMESTAMP`,
		appraisalID, c.ExactValue, c.DisplayedValue, override); err != nil {
		return fmt.Errorf("failed to save conclusion: %w", err)
	}
	return nil
}
