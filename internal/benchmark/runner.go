package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

// Runner executes benchmark plans. A Runner holds no per-run state and may
// be reused, but a single Run is sequential.
type Runner struct {
	logger   *slog.Logger
	progress func(Progress)
	now      func() time.Time
	lookup   func(sorting.Variant) sorting.Func
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithProgress registers a callback invoked on phase changes and after
// every completed cell. The callback runs on the benchmark goroutine.
func WithProgress(fn func(Progress)) Option {
	return func(r *Runner) {
		r.progress = fn
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
		lookup: sorting.Variant.Func,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every cell of the plan in size, distribution, variant order.
//
// An invalid plan is rejected before anything runs. If ctx is cancelled the
// partial report is returned with the wrapped context error.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark plan: %w", err)
	}

	seed := plan.Seed
	if seed == 0 {
		seed = r.now().UnixNano()
	}
	gen := dataset.NewGenerator(seed)

	report := &Report{
		Name:      plan.Name,
		Seed:      seed,
		StartTime: r.now(),
		Results:   make([]CellResult, 0, plan.TotalCells()),
	}

	r.logger.Info("benchmark started",
		"name", plan.Name,
		"cells", plan.TotalCells(),
		"warmup_runs", plan.WarmupRuns,
		"measurement_runs", plan.MeasurementRuns,
		"seed", seed)

	total := plan.TotalCells()
	timing := NewTimingRecorder()

	var runErr error
cells:
	for _, size := range plan.Sizes {
		for _, dist := range plan.Distributions {
			for _, variant := range plan.Variants {
				cell := Cell{Variant: variant, Distribution: dist, Size: size}

				result, failures, err := r.runCell(ctx, gen, timing, cell, plan, len(report.Results), total, report.StartTime)
				report.Failures = append(report.Failures, failures...)
				if err != nil {
					runErr = err
					break cells
				}

				report.Results = append(report.Results, result)
				r.emit(Progress{
					Cell:      cell,
					Phase:     PhaseDone,
					Completed: len(report.Results),
					Total:     total,
					Elapsed:   r.now().Sub(report.StartTime),
					Result:    &result,
				})
			}
		}
	}

	report.EndTime = r.now()
	report.Duration = report.EndTime.Sub(report.StartTime)
	report.Passed = runErr == nil && len(report.Failures) == 0

	if runErr != nil {
		r.logger.Warn("benchmark interrupted",
			"completed", len(report.Results),
			"total", total,
			"error", runErr)
		return report, fmt.Errorf("benchmark interrupted after %d of %d cells: %w", len(report.Results), total, runErr)
	}

	r.logger.Info("benchmark finished",
		"duration", report.Duration,
		"failures", len(report.Failures))

	return report, nil
}

// runCell performs the warmup and measurement runs of one cell.
func (r *Runner) runCell(
	ctx context.Context,
	gen *dataset.Generator,
	timing *TimingRecorder,
	cell Cell,
	plan Plan,
	completed, total int,
	start time.Time,
) (CellResult, []*VerificationError, error) {
	fn := r.lookup(cell.Variant)

	r.emit(Progress{Cell: cell, Phase: PhaseWarmup, Completed: completed, Total: total, Elapsed: r.now().Sub(start)})
	for i := 0; i < plan.WarmupRuns; i++ {
		if err := ctx.Err(); err != nil {
			return CellResult{}, nil, err
		}
		data, err := gen.Generate(cell.Distribution, cell.Size)
		if err != nil {
			return CellResult{}, nil, err
		}
		fn(data)
	}

	r.emit(Progress{Cell: cell, Phase: PhaseMeasure, Completed: completed, Total: total, Elapsed: r.now().Sub(start)})

	timing.Reset()
	var (
		comparisons, swaps, shifts, accesses int64
		elapsed                              time.Duration
		failures                             []*VerificationError
	)

	for run := 0; run < plan.MeasurementRuns; run++ {
		if err := ctx.Err(); err != nil {
			return CellResult{}, failures, err
		}
		data, err := gen.Generate(cell.Distribution, cell.Size)
		if err != nil {
			return CellResult{}, failures, err
		}

		var original []int
		if plan.Verify {
			original = dataset.Clone(data)
		}

		m := fn(data)
		comparisons += m.Comparisons()
		swaps += m.Swaps()
		shifts += m.Shifts()
		accesses += m.ArrayAccesses()
		elapsed += m.Elapsed()
		timing.Record(m.Elapsed())

		if plan.Verify {
			if verr := verify(original, data); verr != nil {
				failure := &VerificationError{Cell: cell, Run: run, Err: verr}
				r.logger.Error("verification failed", "cell", cell.String(), "run", run+1, "error", verr)
				failures = append(failures, failure)
			}
		}
	}

	runs := int64(plan.MeasurementRuns)
	result := CellResult{
		Cell: cell,
		Runs: plan.MeasurementRuns,
		Metrics: sorting.NewMetrics(
			comparisons/runs,
			swaps/runs,
			shifts/runs,
			accesses/runs,
			elapsed/time.Duration(runs),
		),
		Timing: timing.Stats(),
	}

	r.logger.Debug("cell finished",
		"cell", cell.String(),
		"comparisons", result.Metrics.Comparisons(),
		"shifts", result.Metrics.Shifts(),
		"mean", result.Metrics.Elapsed())

	return result, failures, nil
}

// verify checks that sorted holds the values of original in order.
func verify(original, sorted []int) error {
	if !sorting.IsSorted(sorted) {
		return ErrNotSorted
	}
	if !dataset.SameElements(original, sorted) {
		return ErrNotPermutation
	}
	return nil
}

func (r *Runner) emit(p Progress) {
	if r.progress != nil {
		r.progress(p)
	}
}
