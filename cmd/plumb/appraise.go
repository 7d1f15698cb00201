package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/engine"
	"github.com/plumbline/plumb/internal/importer"
)

func appraiseCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "appraise <file.json>",
		Short: "Value an appraisal file",
		Long: `Run the sales-comparison engine over an appraisal file: normalize every
adjustment, value each comparable on the declared basis, and blend the set
into an indicated value. Income inputs, when present, are capitalized
across the cap-rate range as well.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			appraisal, err := importer.LoadAppraisal(args[0])
			if err != nil {
				return err
			}

			if err := engine.VerifyWeights(appraisal.Comparables); err != nil {
				return fmt.Errorf("appraisal file has invalid weights: %w", err)
			}

			e := engine.NewWithConfig(engineConfig())
			result, _ := recomputeAppraisal(e, appraisal)

			name := appraisal.Name
			if name == "" {
				name = appraisal.ID
			}
			fmt.Println(cli.FormatTitle(name))
			cli.RenderValuation(os.Stdout, appraisal.Subject.Basis, result.Valuation)

			if result.Income != nil {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Income capitalization"))
				cli.RenderIncomeRange(os.Stdout, appraisal.Subject.Basis, *result.Income)
			}

			if save {
				store, err := initStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()

				if err := store.SaveAppraisal(ctx, appraisal); err != nil {
					return fmt.Errorf("failed to save appraisal: %w", err)
				}
				fmt.Println()
				fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved appraisal %s", appraisal.ID)))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist the appraisal and its conclusion")
	return cmd
}
