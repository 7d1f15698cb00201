package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/model"
)

func concludeCmd() *cobra.Command {
	var (
		increment float64
		value     float64
		clear     bool
	)

	cmd := &cobra.Command{
		Use:   "conclude <appraisal-id>",
		Short: "Round or override a stored appraisal's conclusion",
		Long: `Apply a manual rounding increment (--round 1000) or a typed value
(--value 1250000) to a stored conclusion, or drop an override with --clear.
An override is kept until upstream recomputation drifts past the configured
threshold, at which point it is invalidated automatically.`,
		Args: cobra.ExactArgs(1),
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
			if appraisal.Conclusion == nil {
				appraisal.Conclusion = model.NewConclusion(0)
			}

			if err := applyConclusion(appraisal.Conclusion,
				increment, cmd.Flags().Changed("round"),
				value, cmd.Flags().Changed("value"),
				clear); err != nil {
				return err
			}

			if err := store.SaveConclusion(ctx, appraisal.ID, appraisal.Conclusion); err != nil {
				return err
			}

			cli.RenderConclusion(os.Stdout, appraisal.Conclusion)
			return nil
		},
	}

	cmd.Flags().Float64Var(&increment, "round", 0, "rounding increment, e.g. 1000 or 5000")
	cmd.Flags().Float64Var(&value, "value", 0, "typed conclusion value")
	cmd.Flags().BoolVar(&clear, "clear", false, "drop any manual override")
	return cmd
}

// applyConclusion mutates c under exactly one of the three verbs. Flags are
// tracked by set-ness, not value, so --value 0 is a legal override.
func applyConclusion(c *model.Conclusion, increment float64, roundSet bool, value float64, valueSet, clear bool) error {
	set := 0
	for _, on := range []bool{roundSet, valueSet, clear} {
		if on {
			set++
		}
	}
	if set != 1 {
		return errors.New("specify exactly one of --round, --value, or --clear")
	}

	switch {
	case clear:
		c.Clear()
	case roundSet:
		if increment <= 0 {
			return errors.New("--round must be a positive increment")
		}
		c.RoundTo(increment)
	default:
		c.Override(value)
	}
	return nil
}
