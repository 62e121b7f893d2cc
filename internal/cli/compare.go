package cli

import (
	"errors"
	"io"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/sortbench/internal/output"
	"github.com/wesleyorama2/sortbench/internal/report"
)

var compareCmd = &cobra.Command{
	Use:   "compare <baseline.json> <current.json>",
	Short: "Compare two JSON result exports",
	Long: `Compare two JSON exports written by "sortbench run --formats json" and print
per-cell changes in comparisons and mean time. Exits non-zero when a cell did
more comparisons, or ran slower than --tolerance times the baseline.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args[0], args[1], cmd.OutOrStdout())
	},
}

func runCompare(cmd *cobra.Command, baselinePath, currentPath string, stdout io.Writer) error {
	tolerance, _ := cmd.Flags().GetFloat64("tolerance")
	noColor, _ := cmd.Flags().GetBool("no-color")

	baseline, err := report.LoadBaseline(baselinePath)
	if err != nil {
		return err
	}
	current, err := report.LoadBaseline(currentPath)
	if err != nil {
		return err
	}

	cmp := report.Compare(baseline, sortedResults(current))

	console := output.NewConsole(output.ConsoleConfig{
		Writer:  stdout,
		NoColor: noColor,
	})
	console.PrintComparison(baselinePath, cmp, tolerance)

	if cmp.Regressed(tolerance) {
		return errors.New("performance regressed against baseline")
	}
	return nil
}

// sortedResults flattens a loaded export in cell key order.
func sortedResults(b *report.Baseline) []report.Result {
	keys := make([]string, 0, len(b.Results))
	for key := range b.Results {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	results := make([]report.Result, len(keys))
	for i, key := range keys {
		results[i] = b.Results[key]
	}
	return results
}

func addCompareFlags(fs *pflag.FlagSet) {
	fs.Float64("tolerance", 0, "Flag cells slower than this multiple of the baseline (0 disables)")
	fs.Bool("no-color", false, "Disable colored output")
}

func init() {
	addCompareFlags(compareCmd.Flags())
}
