package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/report"
)

// Terminal control sequences for the transient progress line.
const (
	carriageReturn = "\r"
	clearLine      = "\033[2K"

	boxHorizontal  = "━"
	progressFilled = "█"
	progressEmpty  = "░"
)

// ConsoleConfig contains configuration for Console.
type ConsoleConfig struct {
	Writer      io.Writer
	Quiet       bool
	NoColor     bool
	ForceColors bool
	ForceTTY    bool
}

// Console prints benchmark progress and results.
type Console struct {
	writer  io.Writer
	colors  *ColorScheme
	noColor bool
	isTTY   bool
	quiet   bool

	mu          sync.Mutex
	currentSize int
	transient   bool
}

// NewConsole creates a console output handler.
func NewConsole(config ConsoleConfig) *Console {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	isTTY := config.ForceTTY || isTerminal(config.Writer)
	useColors := !config.NoColor && (config.ForceColors || (isTTY && supportsColors()))

	colors := NoColorScheme()
	if useColors {
		colors = DefaultColorScheme()
		colors.forceColors()
	}

	return &Console{
		writer:  config.Writer,
		colors:  colors,
		noColor: !useColors,
		isTTY:   isTTY,
		quiet:   config.Quiet,
	}
}

// IsTTY returns whether output goes to a terminal.
func (c *Console) IsTTY() bool {
	return c.isTTY
}

// PrintHeader prints the run banner.
func (c *Console) PrintHeader(plan benchmark.Plan, seed int64) {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	line := strings.Repeat(boxHorizontal, 56)
	c.writeln(c.colors.Rule.Sprint(line))
	c.writeln(c.colors.Title.Sprintf("=== %s ===", plan.Name))
	c.writeln(c.colors.Rule.Sprint(line))

	variants := make([]string, len(plan.Variants))
	for i, v := range plan.Variants {
		variants[i] = v.String()
	}
	c.writeln(fmt.Sprintf("Variants:  %s", c.colors.Highlight.Sprint(strings.Join(variants, ", "))))
	c.writeln(fmt.Sprintf("Runs:      %d warmup, %d measured per cell", plan.WarmupRuns, plan.MeasurementRuns))
	if seed != 0 {
		c.writeln(fmt.Sprintf("Seed:      %d", seed))
	}
	c.writeln("")
}

// Progress handles a runner progress event.
//
// Completed cells are printed one per line, grouped by input size. On a
// terminal, warmup and measurement phases show a transient progress bar.
func (c *Console) Progress(p benchmark.Progress) {
	if c.quiet {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch p.Phase {
	case benchmark.PhaseWarmup, benchmark.PhaseMeasure:
		if !c.isTTY {
			return
		}
		c.clearTransient()
		c.write(fmt.Sprintf("%s %s %s",
			c.colors.Success.Sprint(renderProgressBar(p.Fraction(), 30)),
			c.colors.Dim.Sprintf("%s", p.Phase),
			p.Cell.String()))
		c.transient = true

	case benchmark.PhaseDone:
		c.clearTransient()
		if p.Cell.Size != c.currentSize {
			c.currentSize = p.Cell.Size
			c.writeln("")
			c.writeln(c.colors.Title.Sprintf("--- Testing with n = %d ---", p.Cell.Size))
		}
		if p.Result != nil {
			c.writeln(c.FormatCellLine(*p.Result, p.Completed, p.Total))
		}
	}
}

// FormatCellLine formats one completed cell, e.g.
// "[3/20] adaptive Random: 1.23 ms, 4,950 comparisons, 4,950 shifts".
func (c *Console) FormatCellLine(r benchmark.CellResult, completed, total int) string {
	return fmt.Sprintf("%s %-8s %s: %s, %s comparisons, %s shifts",
		c.colors.Dim.Sprintf("[%d/%d]", completed, total),
		r.Variant,
		c.colors.Label.Sprint(r.Distribution.DisplayName()),
		c.colors.Timing.Sprintf("%.2f ms", r.Metrics.ElapsedMillis()),
		c.colors.Number.Sprint(report.FormatNumber(r.Metrics.Comparisons())),
		c.colors.Number.Sprint(report.FormatNumber(r.Metrics.Shifts())))
}

// PrintSummary prints the final results table and pass/fail status.
func (c *Console) PrintSummary(rep *benchmark.Report) {
	if rep == nil {
		return
	}

	if c.quiet {
		// In quiet mode, just print passed/failed status
		if rep.Passed {
			c.writeln(c.colors.Success.Sprint("PASSED"))
		} else {
			c.writeln(c.colors.Error.Sprint("FAILED"))
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearTransient()

	line := strings.Repeat(boxHorizontal, 56)
	status := c.colors.Success.Sprintf("Completed %s", SuccessIcon(c.noColor))
	if !rep.Passed {
		status = c.colors.Error.Sprintf("Failed %s", ErrorIcon(c.noColor))
	}

	c.writeln("")
	c.writeln(c.colors.Rule.Sprint(line))
	c.writeln(fmt.Sprintf("%s - %s", c.colors.Title.Sprint("Performance Summary"), status))
	c.writeln(c.colors.Rule.Sprint(line))

	c.writeln(fmt.Sprintf("%-9s %-13s %8s %14s %8s %14s %10s %10s",
		"Variant", "DataType", "n", "Comparisons", "Swaps", "Shifts", "Mean", "P90"))
	for _, r := range rep.Results {
		c.writeln(fmt.Sprintf("%-9s %-13s %8d %14s %8s %14s %10s %10s",
			r.Variant,
			r.Distribution.DisplayName(),
			r.Size,
			report.FormatNumber(r.Metrics.Comparisons()),
			report.FormatNumber(r.Metrics.Swaps()),
			report.FormatNumber(r.Metrics.Shifts()),
			FormatDurationShort(r.Metrics.Elapsed()),
			FormatDurationShort(r.Timing.P90)))
	}
	c.writeln("")
	c.writeln(fmt.Sprintf("Duration:  %s", c.colors.Number.Sprint(FormatDurationShort(rep.Duration))))

	if len(rep.Failures) > 0 {
		c.writeln("")
		c.writeln(c.colors.Error.Sprintf("Verification failures (%d):", len(rep.Failures)))
		for _, f := range rep.Failures {
			c.writeln(fmt.Sprintf("  %s %s", ErrorIcon(c.noColor), f.Error()))
		}
	}
}

// PrintComparison prints per-cell deltas against a baseline. Cells slower
// than tolerance times the baseline, or doing more comparisons, are flagged.
func (c *Console) PrintComparison(name string, cmp report.Comparison, tolerance float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.writeln("")
	c.writeln(c.colors.Title.Sprintf("Baseline comparison (%s):", name))
	for _, d := range cmp.Deltas {
		icon := SuccessIcon(c.noColor)
		if d.Regressed(tolerance) {
			icon = ErrorIcon(c.noColor)
		}
		ratio := "n/a"
		if d.TimeRatio > 0 {
			ratio = fmt.Sprintf("%.2fx", d.TimeRatio)
		}
		c.writeln(fmt.Sprintf("  %s %-32s comparisons %+d, time %s",
			icon, d.Key, d.ComparisonsChange, ratio))
	}
	for _, key := range cmp.Missing {
		c.writeln(fmt.Sprintf("  %s %s", c.colors.Warning.Sprint("missing"), key))
	}
	for _, key := range cmp.Added {
		c.writeln(fmt.Sprintf("  %s %s", c.colors.Dim.Sprint("new"), key))
	}
}

// Success prints a success message unless quiet.
func (c *Console) Success(format string, args ...interface{}) {
	if c.quiet {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.writeln(fmt.Sprintf("%s %s", SuccessIcon(c.noColor), fmt.Sprintf(format, args...)))
}

// clearTransient removes the progress bar line, if any.
func (c *Console) clearTransient() {
	if c.transient {
		c.write(carriageReturn + clearLine)
		c.transient = false
	}
}

// renderProgressBar renders a progress bar.
func renderProgressBar(progress float64, width int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}

	filled := int(progress * float64(width))
	empty := width - filled

	return "[" + strings.Repeat(progressFilled, filled) + strings.Repeat(progressEmpty, empty) + "]"
}

// FormatDurationShort formats a duration compactly for tables.
func FormatDurationShort(d time.Duration) string {
	switch {
	case d <= 0:
		return "0"
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1e3)
	case d < time.Second:
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1e6)
	default:
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
}

func (c *Console) write(s string) {
	fmt.Fprint(c.writer, s)
}

func (c *Console) writeln(s string) {
	fmt.Fprintln(c.writer, s)
}
