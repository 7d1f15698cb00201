package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/plumbline/plumb/internal/model"
)

// Money formats a dollar amount for display.
func Money(v float64) string {
	return fmt.Sprintf("$%s", withCommas(fmt.Sprintf("%.2f", v)))
}

// Rate formats a per-basis rate with its basis label.
func Rate(v float64, basis model.ComparisonBasis) string {
	return fmt.Sprintf("%s %s", Money(v), SubtleStyle.Render(basis.RateLabel()))
}

// withCommas inserts thousands separators into a formatted number.
func withCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String()
	if frac != "" {
		out += "." + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// RenderValuation writes the per-comparable table and blended conclusion.
func RenderValuation(w io.Writer, basis model.ComparisonBasis, result model.ValuationResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		HeaderStyle.Render("Comp"),
		HeaderStyle.Render("Unadjusted"),
		HeaderStyle.Render("Adj"),
		HeaderStyle.Render("Adjusted"),
		HeaderStyle.Render("Weight"),
		HeaderStyle.Render("Contribution"))

	for _, cv := range result.PerComparable {
		if cv.Incomplete {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.2f%%\t%s\n",
				cv.ID,
				SubtleStyle.Render("N/A"),
				SubtleStyle.Render("N/A"),
				SubtleStyle.Render("N/A"),
				cv.Weight,
				WarningStyle.Render("incomplete"))
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%+.2f\t%s\t%.2f%%\t%s\n",
			cv.ID,
			Money(cv.UnadjustedRate),
			cv.TotalAdjustment,
			Money(cv.AdjustedRate),
			cv.Weight,
			Money(cv.BlendedContribution))
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Blended rate:    %s\n", Rate(result.BlendedRate, basis))
	if result.Complete {
		fmt.Fprintf(w, "Indicated value: %s\n", ValueStyle.Render(Money(result.TotalIndicatedValue)))
	} else {
		fmt.Fprintf(w, "Indicated value: %s\n", FormatWarning("incomplete: missing comparable data"))
	}
}

// RenderIncomeRange writes the capitalization range table.
func RenderIncomeRange(w io.Writer, basis model.ComparisonBasis, result model.IncomeRangeResult) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\n",
		HeaderStyle.Render("Tier"),
		HeaderStyle.Render("Indicated"),
		HeaderStyle.Render("Per basis"))
	fmt.Fprintf(tw, "Low\t%s\t%s\n", Money(result.Low), Rate(result.PerBasisLow, basis))
	fmt.Fprintf(tw, "Market\t%s\t%s\n", ValueStyle.Render(Money(result.Market)), Rate(result.PerBasisMarket, basis))
	fmt.Fprintf(tw, "High\t%s\t%s\n", Money(result.High), Rate(result.PerBasisHigh, basis))
	_ = tw.Flush()

	if result.IncrementalValue != 0 {
		fmt.Fprintf(w, "\nReconciliation contribution: %s\n", Money(result.IncrementalValue))
	}
}

// RenderConclusion writes the conclusion with its override state.
func RenderConclusion(w io.Writer, c *model.Conclusion) {
	if c == nil {
		return
	}
	fmt.Fprintf(w, "Exact value:     %s\n", Money(c.ExactValue))
	if c.ManualOverride {
		fmt.Fprintf(w, "Concluded value: %s %s\n",
			ValueStyle.Render(Money(c.DisplayedValue)),
			SubtleStyle.Render("(manual override)"))
		return
	}
	fmt.Fprintf(w, "Concluded value: %s\n", ValueStyle.Render(Money(c.DisplayedValue)))
}
