package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/engine"
	"github.com/plumbline/plumb/internal/model"
)

func incomeCmd() *cobra.Command {
	var (
		noi        float64
		low        float64
		market     float64
		high       float64
		basisCount float64
		basisName  string
		evalWeight float64
	)

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Capitalize net income across a cap-rate range",
		Long: `Derive {low, market, high} indicated values from net operating income
and three independently entered cap rates. A zero cap rate yields a zero
tier by policy. Per-basis figures require --basis-count.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			basis, err := model.ParseComparisonBasis(basisName)
			if err != nil {
				return err
			}

			inputs := model.IncomeInputs{
				NetOperatingIncome: noi,
				CapRateLow:         low,
				CapRateMarket:      market,
				CapRateHigh:        high,
				EvalWeight:         evalWeight,
			}

			result := engine.CapitalizeRange(inputs, basisCount)

			fmt.Println(cli.FormatTitle("Income capitalization"))
			cli.RenderIncomeRange(os.Stdout, basis, result)
			return nil
		},
	}

	cmd.Flags().Float64Var(&noi, "noi", 0, "net operating income")
	cmd.Flags().Float64Var(&low, "low", 0, "low cap rate (percent)")
	cmd.Flags().Float64Var(&market, "market", 0, "market cap rate (percent)")
	cmd.Flags().Float64Var(&high, "high", 0, "high cap rate (percent)")
	cmd.Flags().Float64Var(&basisCount, "basis-count", 0, "total sq ft, acres, units, or beds for per-basis figures")
	cmd.Flags().StringVar(&basisName, "basis", "sf", "comparison basis (sf, acre, unit, bed)")
	cmd.Flags().Float64Var(&evalWeight, "eval-weight", 0, "this approach's weight (0-100) in cross-approach reconciliation")
	_ = cmd.MarkFlagRequired("noi")

	return cmd
}
