package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/engine"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored appraisals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			appraisals, err := store.ListAppraisals(ctx)
			if err != nil {
				return err
			}

			if len(appraisals) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No appraisals stored. Use 'plumb appraise --save' to add one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				cli.HeaderStyle.Render("ID"),
				cli.HeaderStyle.Render("Name"),
				cli.HeaderStyle.Render("Basis"),
				cli.HeaderStyle.Render("Mode"),
				cli.HeaderStyle.Render("Basis size"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 24),
				strings.Repeat("-", 5),
				strings.Repeat("-", 7),
				strings.Repeat("-", 10))

			for _, a := range appraisals {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.0f\n",
					a.ID, a.Name, a.Subject.Basis, a.Subject.AdjustmentMode, a.Subject.BasisSize)
			}
			return nil
		},
	}
}

func showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <appraisal-id>",
		Short: "Show a stored appraisal's current valuation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			appraisal, err := store.GetAppraisal(ctx, args[0])
			if err != nil {
				return err
			}

			e := engine.NewWithConfig(engineConfig())
			result, cleared := recomputeAppraisal(e, appraisal)

			fmt.Println(cli.FormatTitle(appraisal.Name))
			cli.RenderValuation(os.Stdout, appraisal.Subject.Basis, result.Valuation)

			if result.Income != nil {
				fmt.Println()
				fmt.Println(cli.FormatTitle("Income capitalization"))
				cli.RenderIncomeRange(os.Stdout, appraisal.Subject.Basis, *result.Income)
			}

			fmt.Println()
			cli.RenderConclusion(os.Stdout, appraisal.Conclusion)
			if cleared {
				fmt.Println(cli.FormatWarning("Manual conclusion override invalidated by recomputed value"))
			}

			// Persist the refreshed conclusion so drift invalidation sticks.
			if appraisal.Conclusion != nil {
				if err := store.SaveConclusion(ctx, appraisal.ID, appraisal.Conclusion); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <appraisal-id>",
		Short: "Delete a stored appraisal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.DeleteAppraisal(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Deleted appraisal %s", args[0])))
			return nil
		},
	}
}
