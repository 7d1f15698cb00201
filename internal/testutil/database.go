// Package testutil provides test helpers for database-backed tests.
package testutil

import (
	"context"
	"testing"

	"github.com/plumbline/plumb/internal/model"
	"github.com/plumbline/plumb/internal/storage"
)

// SetupTestDB creates a migrated in-memory SQLite storage with automatic
// cleanup.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}

// SampleAppraisal builds a four-comp square-foot appraisal with income
// inputs, suitable for round-trip and recompute tests.
func SampleAppraisal(id string) *model.Appraisal {
	return &model.Appraisal{
		ID:   id,
		Name: "Main St Retail",
		Subject: model.Subject{
			Basis:          model.BasisSquareFeet,
			BasisSize:      12000,
			AdjustmentMode: model.ModePercent,
		},
		Comparables: []model.Comparable{
			{
				ID: "comp-a", Name: "101 Oak Ave", SalePrice: 1000000, BasisSize: 10000, Weight: 25,
				Adjustments: []model.AdjustmentEntry{
					{Key: "location", Kind: model.Quantitative, RawValue: "5%", Delta: 5},
					{Key: "condition", Kind: model.Qualitative, RawValue: "Superior 2%", Delta: -2},
				},
			},
			{ID: "comp-b", Name: "220 Elm St", SalePrice: 1100000, BasisSize: 10000, Weight: 25},
			{ID: "comp-c", Name: "35 Birch Rd", SalePrice: 900000, BasisSize: 10000, Weight: 25},
			{ID: "comp-d", Name: "5 Cedar Ln", SalePrice: 1050000, BasisSize: 10000, Weight: 25},
		},
		Income: &model.IncomeInputs{
			NetOperatingIncome: 200000,
			CapRateLow:         7,
			CapRateMarket:      8,
			CapRateHigh:        9,
			EvalWeight:         50,
		},
	}
}
