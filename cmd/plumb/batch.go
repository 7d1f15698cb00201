package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/plumbline/plumb/internal/cli"
	"github.com/plumbline/plumb/internal/common"
	"github.com/plumbline/plumb/internal/engine"
	"github.com/plumbline/plumb/internal/importer"
	"github.com/plumbline/plumb/internal/service"
)

func batchCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Value every appraisal file in a directory",
		Long: `Run the valuation engine over every .json appraisal file in a directory
and print a one-line conclusion per file. Files that fail to load or whose
comparable set is incomplete are reported, not skipped silently.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			matches, err := filepath.Glob(filepath.Join(args[0], "*.json"))
			if err != nil {
				return fmt.Errorf("failed to scan directory: %w", err)
			}
			if len(matches) == 0 {
				return fmt.Errorf("no appraisal files found in %s", args[0])
			}
			sort.Strings(matches)

			var store service.Storage
			if save {
				store, err = initStorage(ctx)
				if err != nil {
					return err
				}
				defer func() { _ = store.Close() }()
			}

			bar := progressbar.NewOptions(len(matches),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionSetWidth(40),
				progressbar.OptionSetDescription("Valuing appraisals..."),
			)

			e := engine.NewWithConfig(engineConfig())

			type line struct {
				file    string
				summary string
				failed  bool
			}
			lines := make([]line, 0, len(matches))

			for _, path := range matches {
				_ = bar.Add(1)

				appraisal, err := importer.LoadAppraisal(path)
				if err != nil {
					common.LogError(err, "skipping appraisal file", common.Fields{"file": filepath.Base(path)})
					lines = append(lines, line{file: filepath.Base(path), summary: err.Error(), failed: true})
					continue
				}

				result, _ := recomputeAppraisal(e, appraisal)
				if !result.Valuation.Complete {
					lines = append(lines, line{
						file:    filepath.Base(path),
						summary: "incomplete: missing comparable data",
						failed:  true,
					})
					continue
				}

				summary := cli.Money(result.Valuation.TotalIndicatedValue)
				if store != nil {
					if err := store.SaveAppraisal(ctx, appraisal); err != nil {
						return err
					}
					summary += " (saved)"
				}
				lines = append(lines, line{file: filepath.Base(path), summary: summary})
			}
			_ = bar.Finish()
			fmt.Fprintln(os.Stderr)

			failures := 0
			for _, l := range lines {
				if l.failed {
					failures++
					fmt.Printf("%-40s %s\n", l.file, cli.FormatWarning(l.summary))
					continue
				}
				fmt.Printf("%-40s %s\n", l.file, cli.ValueStyle.Render(l.summary))
			}

			fmt.Println()
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Valued %d of %d appraisals", len(lines)-failures, len(lines))))
			if failures > 0 {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("%d appraisal(s) incomplete or invalid", failures)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "persist each valued appraisal")
	return cmd
}
