package benchmark

import (
	"errors"
	"fmt"
	"time"

	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

var (
	// ErrNotSorted is reported when a sort variant leaves data out of order.
	ErrNotSorted = errors.New("output is not sorted")

	// ErrNotPermutation is reported when the output lost or gained values.
	ErrNotPermutation = errors.New("output is not a permutation of the input")
)

// Phase is the stage a cell is in while it runs.
type Phase string

const (
	PhaseWarmup  Phase = "warmup"
	PhaseMeasure Phase = "measure"
	PhaseDone    Phase = "done"
)

// Plan describes a benchmark run.
type Plan struct {
	// Name is used in reports.
	Name string

	Sizes         []int
	Distributions []dataset.Distribution
	Variants      []sorting.Variant

	// WarmupRuns are executed and discarded before measuring each cell.
	WarmupRuns int

	// MeasurementRuns are averaged into the cell result. Must be at least 1.
	MeasurementRuns int

	// Seed makes generated data reproducible. Zero picks a random seed.
	Seed int64

	// Verify checks every measured run for sortedness and permutation.
	Verify bool
}

// DefaultPlan mirrors the original harness: four sizes, every distribution,
// the adaptive variant, 3 warmup and 5 measurement runs.
func DefaultPlan() Plan {
	return Plan{
		Name:            "Insertion Sort Performance Benchmark",
		Sizes:           []int{100, 1000, 10000, 100000},
		Distributions:   dataset.AllDistributions(),
		Variants:        []sorting.Variant{sorting.VariantAdaptive},
		WarmupRuns:      3,
		MeasurementRuns: 5,
		Verify:          true,
	}
}

// Validate checks the plan for values the runner cannot execute.
func (p Plan) Validate() error {
	var errs []error

	if len(p.Sizes) == 0 {
		errs = append(errs, errors.New("at least one input size is required"))
	}
	for _, size := range p.Sizes {
		if size <= 0 {
			errs = append(errs, fmt.Errorf("input size must be positive, got %d", size))
		}
	}
	if len(p.Distributions) == 0 {
		errs = append(errs, errors.New("at least one data distribution is required"))
	}
	if len(p.Variants) == 0 {
		errs = append(errs, errors.New("at least one sort variant is required"))
	}
	if p.WarmupRuns < 0 {
		errs = append(errs, fmt.Errorf("warmup runs cannot be negative, got %d", p.WarmupRuns))
	}
	if p.MeasurementRuns < 1 {
		errs = append(errs, fmt.Errorf("measurement runs must be at least 1, got %d", p.MeasurementRuns))
	}

	return errors.Join(errs...)
}

// TotalCells returns the number of size × distribution × variant cells.
func (p Plan) TotalCells() int {
	return len(p.Sizes) * len(p.Distributions) * len(p.Variants)
}

// Cell identifies one combination of the plan.
type Cell struct {
	Variant      sorting.Variant
	Distribution dataset.Distribution
	Size         int
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("%s/%s/n=%d", c.Variant, c.Distribution, c.Size)
}

// CellResult is the aggregated outcome of one cell.
type CellResult struct {
	Cell

	// Runs is the number of measured runs that were averaged.
	Runs int

	// Metrics holds the per-run integer means of every counter and the mean
	// elapsed time.
	Metrics sorting.Metrics

	// Timing is the elapsed time distribution over the measured runs.
	Timing TimingStats
}

// VerificationError records a failed correctness check for one run.
type VerificationError struct {
	Cell Cell
	Run  int
	Err  error
}

func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s run %d: %v", e.Cell, e.Run+1, e.Err)
}

func (e *VerificationError) Unwrap() error {
	return e.Err
}

// Report is the result of a benchmark run.
type Report struct {
	Name      string
	Seed      int64
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration

	Results  []CellResult
	Failures []*VerificationError

	// Passed is false if any run failed verification or the run was cut short.
	Passed bool
}

// Progress is passed to the progress callback after each phase change and
// each completed cell.
type Progress struct {
	Cell      Cell
	Phase     Phase
	Completed int
	Total     int
	Elapsed   time.Duration

	// Result is set once Phase is PhaseDone.
	Result *CellResult
}

// Fraction returns completion in the range [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Completed) / float64(p.Total)
}
