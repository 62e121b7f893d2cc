package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/config"
	"github.com/wesleyorama2/sortbench/internal/output"
	"github.com/wesleyorama2/sortbench/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the insertion sort benchmark",
	Long: `Run every combination of input size, data distribution and sort variant,
averaging the metrics of the measured runs and exporting them.

Defaults reproduce the classic harness:
  sortbench run

Compare all variants on small inputs:
  sortbench run --sizes 100,1000 --variants plain,binary,sentinel,adaptive

From a configuration file, checking against a previous JSON export:
  sortbench run --config bench.yaml --baseline results/last.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBenchmark(cmd, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

// runBenchmark loads the configuration, runs the plan and writes the
// requested reports.
func runBenchmark(cmd *cobra.Command, stdout, stderr io.Writer) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	noColor, _ := cmd.Flags().GetBool("no-color")

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	plan, err := cfg.Plan()
	if err != nil {
		return err
	}

	logger := newLogger(stderr, verbose)
	console := output.NewConsole(output.ConsoleConfig{
		Writer:  stdout,
		Quiet:   quiet,
		NoColor: noColor,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if timeout := cfg.Timeout.GetDuration(0); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	runner := benchmark.NewRunner(
		benchmark.WithLogger(logger),
		benchmark.WithProgress(console.Progress),
	)

	console.PrintHeader(plan, plan.Seed)
	rep, runErr := runner.Run(ctx, plan)
	if rep == nil {
		return runErr
	}
	if runErr != nil {
		// Continue to output the partial results
		fmt.Fprintf(stderr, "Error running benchmark: %v\n", runErr)
	}

	console.PrintSummary(rep)

	tracker := report.FromReport(rep)
	if err := exportResults(cfg, tracker, console); err != nil {
		return err
	}

	regressed := false
	if cfg.Baseline != nil && cfg.Baseline.Path != "" {
		baseline, err := report.LoadBaseline(cfg.Baseline.Path)
		if err != nil {
			return err
		}
		cmp := report.Compare(baseline, tracker.Results())
		console.PrintComparison(cfg.Baseline.Path, cmp, cfg.Baseline.TimeTolerance)
		regressed = cmp.Regressed(cfg.Baseline.TimeTolerance)
	}

	switch {
	case runErr != nil:
		return runErr
	case !rep.Passed:
		return fmt.Errorf("%d verification failures", len(rep.Failures))
	case regressed:
		return errors.New("performance regressed against baseline")
	}
	return nil
}

// buildConfig starts from the config file (or the defaults) and applies
// flags the user set explicitly.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config: %w", err)
		}
		cfg = loaded
	}

	if flags.Changed("sizes") {
		cfg.Sizes, _ = flags.GetIntSlice("sizes")
	}
	if flags.Changed("distributions") {
		cfg.Distributions, _ = flags.GetStringSlice("distributions")
	}
	if flags.Changed("variants") {
		cfg.Variants, _ = flags.GetStringSlice("variants")
	}
	if flags.Changed("warmup") {
		cfg.WarmupRuns, _ = flags.GetInt("warmup")
	}
	if flags.Changed("runs") {
		cfg.MeasurementRuns, _ = flags.GetInt("runs")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("no-verify") {
		noVerify, _ := flags.GetBool("no-verify")
		cfg.Verify = !noVerify
	}
	if flags.Changed("timeout") {
		timeout, _ := flags.GetDuration("timeout")
		cfg.Timeout = config.Duration(timeout)
	}
	if flags.Changed("output") {
		cfg.Output.Path, _ = flags.GetString("output")
		cfg.Output.Formats = nil
	}
	if flags.Changed("formats") {
		cfg.Output.Formats, _ = flags.GetStringSlice("formats")
	}
	if flags.Changed("baseline") {
		path, _ := flags.GetString("baseline")
		if cfg.Baseline == nil {
			cfg.Baseline = &config.BaselineConfig{}
		}
		cfg.Baseline.Path = path
	}
	if flags.Changed("tolerance") {
		if cfg.Baseline == nil {
			cfg.Baseline = &config.BaselineConfig{}
		}
		cfg.Baseline.TimeTolerance, _ = flags.GetFloat64("tolerance")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// exportResults writes the tracker in every configured format.
func exportResults(cfg *config.Config, tracker *report.Tracker, console *output.Console) error {
	for _, format := range cfg.OutputFormats() {
		path := cfg.OutputPath(format)

		var err error
		switch format {
		case config.FormatCSV:
			err = tracker.ExportCSV(path)
		case config.FormatJSON:
			err = tracker.ExportJSON(path)
		case config.FormatHTML:
			err = tracker.GenerateHTML(path)
		default:
			err = fmt.Errorf("unsupported output format: %s", format)
		}
		if err != nil {
			return fmt.Errorf("error writing %s report: %w", format, err)
		}

		console.Success("Results exported to: %s", path)
	}
	return nil
}

func addRunFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "Configuration file (YAML or JSON)")
	fs.IntSlice("sizes", nil, "Input sizes, e.g. 100,1000,10000")
	fs.StringSlice("distributions", nil, "Distributions: random, sorted, reverse, nearly-sorted, few-unique")
	fs.StringSlice("variants", nil, "Variants: plain, binary, sentinel, adaptive")
	fs.Int("warmup", 3, "Warmup runs per cell")
	fs.Int("runs", 5, "Measured runs per cell")
	fs.Int64("seed", 0, "Data generator seed (0 picks one)")
	fs.Bool("no-verify", false, "Skip sortedness and permutation checks")
	fs.DurationP("timeout", "t", 0, "Abort the run after this long (0 for no limit)")
	fs.StringP("output", "o", "", "Output file; the extension picks the format (default: performance_results.csv)")
	fs.StringSlice("formats", nil, "Output formats: csv, json, html")
	fs.String("baseline", "", "Previous JSON export to compare against")
	fs.Float64("tolerance", 0, "Flag cells slower than this multiple of the baseline (0 disables)")
	fs.BoolP("quiet", "q", false, "Disable progress output, show only the final status")
	fs.Bool("no-color", false, "Disable colored output")
	fs.BoolP("verbose", "v", false, "Enable verbose logging on stderr")
}

func init() {
	addRunFlags(runCmd.Flags())
}
