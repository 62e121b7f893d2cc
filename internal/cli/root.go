package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "sortbench",
	Short:   "Benchmark instrumented insertion sort variants",
	Version: version,
	Long: `Sortbench runs four insertion sort variants (plain, binary, sentinel and
adaptive) over synthetic data sets, counts every comparison, swap, shift and
array access, and exports the averaged results to CSV, JSON or HTML.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). Errors are printed to stderr and returned.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// newLogger returns a text logger on w when verbose, otherwise a logger that
// drops everything.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func init() {
	// Add subcommands to root command
	RootCmd.AddCommand(runCmd)
	RootCmd.AddCommand(sortCmd)
	RootCmd.AddCommand(compareCmd)
}
