// Package report exports benchmark results as CSV, JSON and HTML and compares
// a run against a previously exported baseline.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

// Result is one exported row: the averaged metrics of a single cell.
type Result struct {
	Variant       string                 `json:"variant"`
	DataType      string                 `json:"dataType"`
	InputSize     int                    `json:"inputSize"`
	Runs          int                    `json:"runs,omitempty"`
	Comparisons   int64                  `json:"comparisons"`
	Swaps         int64                  `json:"swaps"`
	Shifts        int64                  `json:"shifts"`
	ArrayAccesses int64                  `json:"arrayAccesses"`
	TimeNanos     int64                  `json:"timeNanos"`
	TimeMillis    float64                `json:"timeMillis"`
	Timing        *benchmark.TimingStats `json:"timing,omitempty"`
}

// NewResult builds a row from a variant, data type label, size and metrics.
func NewResult(variant, dataType string, size int, m sorting.Metrics) Result {
	return Result{
		Variant:       variant,
		DataType:      dataType,
		InputSize:     size,
		Comparisons:   m.Comparisons(),
		Swaps:         m.Swaps(),
		Shifts:        m.Shifts(),
		ArrayAccesses: m.ArrayAccesses(),
		TimeNanos:     m.ElapsedNanos(),
		TimeMillis:    m.ElapsedMillis(),
	}
}

// FromCell converts a benchmark cell result into a row.
func FromCell(c benchmark.CellResult) Result {
	r := NewResult(c.Variant.String(), c.Distribution.DisplayName(), c.Size, c.Metrics)
	r.Runs = c.Runs
	if c.Timing.Count > 0 {
		timing := c.Timing
		r.Timing = &timing
	}
	return r
}

// Key identifies the cell a row belongs to.
func (r Result) Key() string {
	return fmt.Sprintf("%s/%s/%d", r.Variant, r.DataType, r.InputSize)
}

// Tracker accumulates rows in insertion order.
type Tracker struct {
	name    string
	seed    int64
	passed  bool
	started time.Time
	elapsed time.Duration
	results []Result
	notes   []string
}

// NewTracker creates an empty Tracker.
func NewTracker(name string) *Tracker {
	return &Tracker{name: name, passed: true}
}

// FromReport creates a Tracker holding every cell of a benchmark report.
func FromReport(rep *benchmark.Report) *Tracker {
	t := NewTracker(rep.Name)
	t.seed = rep.Seed
	t.passed = rep.Passed
	t.started = rep.StartTime
	t.elapsed = rep.Duration
	for _, c := range rep.Results {
		t.Add(FromCell(c))
	}
	for _, f := range rep.Failures {
		t.notes = append(t.notes, f.Error())
	}
	return t
}

// Add appends a row.
func (t *Tracker) Add(r Result) {
	t.results = append(t.results, r)
}

// AddMetrics appends a row built from raw metrics.
func (t *Tracker) AddMetrics(variant, dataType string, size int, m sorting.Metrics) {
	t.Add(NewResult(variant, dataType, size, m))
}

// Results returns the rows in insertion order.
func (t *Tracker) Results() []Result {
	return t.results
}

// Name returns the benchmark name.
func (t *Tracker) Name() string {
	return t.name
}

// Passed reports whether the tracked run passed verification.
func (t *Tracker) Passed() bool {
	return t.passed
}

// Failures returns the verification failure messages.
func (t *Tracker) Failures() []string {
	return t.notes
}

// create opens path for writing, creating parent directories as needed.
func create(path string) (*os.File, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

// export writes to path through write, closing the file and reporting the
// first error.
func export(path string, write func(f *os.File) error) (err error) {
	f, err := create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
