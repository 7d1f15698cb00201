package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/plumbline/plumb/internal/config"
	"github.com/plumbline/plumb/internal/engine"
	"github.com/plumbline/plumb/internal/model"
	"github.com/plumbline/plumb/internal/service"
	"github.com/plumbline/plumb/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	} else {
		dbPath = config.ExpandPath(dbPath)
	}

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// engineConfig builds the engine configuration from viper, falling back to
// defaults for anything unset.
func engineConfig() engine.Config {
	cfg := engine.DefaultConfig()
	if viper.IsSet("engine.percent_clamp_min") {
		cfg.PercentClampMin = viper.GetFloat64("engine.percent_clamp_min")
	}
	if viper.IsSet("engine.percent_clamp_max") {
		cfg.PercentClampMax = viper.GetFloat64("engine.percent_clamp_max")
	}
	if viper.IsSet("engine.drift_threshold") {
		cfg.DriftThreshold = viper.GetFloat64("engine.drift_threshold")
	}
	return cfg
}

// recomputeAppraisal runs the full valuation pass and folds the result into
// the appraisal's conclusion. An incomplete valuation leaves the conclusion
// alone rather than publishing a partial number. Returns the engine result
// and whether a stale manual override was invalidated by drift.
func recomputeAppraisal(e *engine.Engine, appraisal *model.Appraisal) (engine.Result, bool) {
	ctx := model.ContextFor(appraisal.Subject, appraisal.LandOnly)
	result := e.Recompute(ctx, appraisal.Subject, appraisal.Comparables, appraisal.Income)
	cleared := e.Conclude(appraisal, result)
	return result, cleared
}
