package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/engine"
)

func compsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comps",
		Short: "Manage the comparables of a stored appraisal",
	}

	cmd.AddCommand(removeCompCmd())
	return cmd
}

func removeCompCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <appraisal-id> <comp-id>",
		Short: "Unlink a comparable and renormalize the survivors",
		Long: `Remove one comparable from a stored appraisal. Surviving comparables are
redistributed to equal weights summing to exactly 100, the blended value is
recomputed, and a manual conclusion override is invalidated if the new
value drifts past the configured threshold.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			appraisalID, compID := args[0], args[1]

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			appraisal, err := store.GetAppraisal(ctx, appraisalID)
			if err != nil {
				return err
			}

			survivors, found := engine.RemoveComparable(appraisal.Comparables, compID)
			if !found {
				return fmt.Errorf("comparable %s not found in appraisal %s", compID, appraisalID)
			}
			appraisal.Comparables = survivors

			if err := engine.VerifyWeights(appraisal.Comparables); err != nil {
				return err
			}

			e := engine.NewWithConfig(engineConfig())
			result, cleared := recomputeAppraisal(e, appraisal)

			if err := store.SaveAppraisal(ctx, appraisal); err != nil {
				return fmt.Errorf("failed to save appraisal: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s; %d comparables remain", compID, len(survivors))))
			if cleared {
				fmt.Println(cli.FormatWarning("Manual conclusion override invalidated by recomputed value"))
			}
			fmt.Println()
			cli.RenderValuation(os.Stdout, appraisal.Subject.Basis, result.Valuation)
			return nil
		},
	}
}
