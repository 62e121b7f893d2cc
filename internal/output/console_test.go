package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/report"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

func newTestConsole(buf *bytes.Buffer, tty bool) *Console {
	return NewConsole(ConsoleConfig{Writer: buf, NoColor: true, ForceTTY: tty})
}

func sampleCell(size int) benchmark.CellResult {
	return benchmark.CellResult{
		Cell:    benchmark.Cell{Variant: sorting.VariantAdaptive, Distribution: dataset.Random, Size: size},
		Runs:    5,
		Metrics: sorting.NewMetrics(4950, 0, 4950, 10000, 1230*time.Microsecond),
		Timing:  benchmark.TimingStats{P90: 2 * time.Millisecond, Count: 5},
	}
}

func TestConsole_NonTTYProgress(t *testing.T) {
	var buf bytes.Buffer
	c := newTestConsole(&buf, false)
	assert.False(t, c.IsTTY())

	cell := sampleCell(100)
	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseWarmup, Total: 2})
	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseMeasure, Total: 2})
	assert.Empty(t, buf.String())

	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseDone, Completed: 1, Total: 2, Result: &cell})
	out := buf.String()
	assert.Contains(t, out, "--- Testing with n = 100 ---")
	assert.Contains(t, out, "[1/2] adaptive Random: 1.23 ms, 4,950 comparisons, 4,950 shifts")

	// same size: no new group header
	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseDone, Completed: 2, Total: 2, Result: &cell})
	assert.Equal(t, 1, strings.Count(buf.String(), "Testing with n = 100"))
}

func TestConsole_TTYProgressBar(t *testing.T) {
	var buf bytes.Buffer
	c := newTestConsole(&buf, true)

	cell := sampleCell(10)
	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseMeasure, Completed: 1, Total: 2})
	assert.Contains(t, buf.String(), "measure adaptive/random/n=10")
	assert.Contains(t, buf.String(), progressFilled)

	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseDone, Completed: 2, Total: 2, Result: &cell})
	assert.Contains(t, buf.String(), carriageReturn+clearLine)
}

func TestConsole_Quiet(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(ConsoleConfig{Writer: &buf, Quiet: true, NoColor: true})

	cell := sampleCell(10)
	c.PrintHeader(benchmark.DefaultPlan(), 1)
	c.Progress(benchmark.Progress{Cell: cell.Cell, Phase: benchmark.PhaseDone, Result: &cell})
	c.Success("done")
	assert.Empty(t, buf.String())

	c.PrintSummary(&benchmark.Report{Passed: false})
	assert.Equal(t, "FAILED\n", buf.String())
}

func TestConsole_PrintHeader(t *testing.T) {
	var buf bytes.Buffer
	c := newTestConsole(&buf, false)

	plan := benchmark.DefaultPlan()
	plan.Variants = []sorting.Variant{sorting.VariantPlain, sorting.VariantBinary}
	c.PrintHeader(plan, 42)

	out := buf.String()
	assert.Contains(t, out, "=== Insertion Sort Performance Benchmark ===")
	assert.Contains(t, out, "Variants:  plain, binary")
	assert.Contains(t, out, "3 warmup, 5 measured per cell")
	assert.Contains(t, out, "Seed:      42")
}

func TestConsole_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	c := newTestConsole(&buf, false)

	rep := &benchmark.Report{
		Duration: 3 * time.Second,
		Results:  []benchmark.CellResult{sampleCell(100)},
		Passed:   false,
		Failures: []*benchmark.VerificationError{
			{Cell: sampleCell(100).Cell, Run: 1, Err: benchmark.ErrNotSorted},
		},
	}
	c.PrintSummary(rep)

	out := buf.String()
	assert.Contains(t, out, "Performance Summary - Failed ✗")
	assert.Contains(t, out, "4,950")
	assert.Contains(t, out, "1.23ms")
	assert.Contains(t, out, "2.00ms")
	assert.Contains(t, out, "Duration:  3.00s")
	assert.Contains(t, out, "Verification failures (1):")
	assert.Contains(t, out, "adaptive/random/n=100 run 2: output is not sorted")
}

func TestConsole_PrintComparison(t *testing.T) {
	var buf bytes.Buffer
	c := newTestConsole(&buf, false)

	cmp := report.Comparison{
		Deltas: []report.Delta{
			{Key: "plain/Random/100", ComparisonsChange: 12, TimeRatio: 1.25},
			{Key: "plain/Sorted/100", ComparisonsChange: 0},
		},
		Missing: []string{"binary/Random/100"},
		Added:   []string{"adaptive/Random/100"},
	}
	c.PrintComparison("old", cmp, 2)

	out := buf.String()
	assert.Contains(t, out, "Baseline comparison (old):")
	assert.Contains(t, out, "✗ plain/Random/100")
	assert.Contains(t, out, "comparisons +12, time 1.25x")
	assert.Contains(t, out, "✓ plain/Sorted/100")
	assert.Contains(t, out, "time n/a")
	assert.Contains(t, out, "missing binary/Random/100")
	assert.Contains(t, out, "new adaptive/Random/100")
}

func TestFormatDurationShort(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "0"},
		{500 * time.Nanosecond, "500ns"},
		{1500 * time.Nanosecond, "1.5µs"},
		{1230 * time.Microsecond, "1.23ms"},
		{1500 * time.Millisecond, "1.50s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := FormatDurationShort(tt.duration); got != tt.expected {
				t.Errorf("FormatDurationShort(%v) = %q, want %q", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestRenderProgressBar(t *testing.T) {
	assert.Equal(t, "[██░░]", renderProgressBar(0.5, 4))
	assert.Equal(t, "[░░░░]", renderProgressBar(-1, 4))
	assert.Equal(t, "[████]", renderProgressBar(2, 4))
}
