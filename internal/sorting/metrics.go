package sorting

import (
	"fmt"
	"time"
)

// Metrics records the work performed by one sort call.
//
// The zero value is ready to use. Counters are never checked for overflow.
type Metrics struct {
	comparisons   int64
	swaps         int64
	shifts        int64
	arrayAccesses int64

	startTime time.Time
	endTime   time.Time
}

// NewMetrics builds a Metrics value from already known counters and an elapsed
// duration. It is used to report averaged results.
func NewMetrics(comparisons, swaps, shifts, arrayAccesses int64, elapsed time.Duration) Metrics {
	start := time.Time{}
	return Metrics{
		comparisons:   comparisons,
		swaps:         swaps,
		shifts:        shifts,
		arrayAccesses: arrayAccesses,
		startTime:     start,
		endTime:       start.Add(elapsed),
	}
}

// Reset zeroes all counters and both timestamps.
func (m *Metrics) Reset() {
	*m = Metrics{}
}

// StartTimer captures the start timestamp.
func (m *Metrics) StartTimer() {
	m.startTime = time.Now()
}

// StopTimer captures the end timestamp.
func (m *Metrics) StopTimer() {
	m.endTime = time.Now()
}

func (m *Metrics) IncrementComparisons() {
	m.comparisons++
}

func (m *Metrics) IncrementSwaps() {
	m.swaps++
}

func (m *Metrics) IncrementShifts() {
	m.shifts++
}

func (m *Metrics) IncrementArrayAccesses() {
	m.arrayAccesses++
}

// Comparisons returns the number of element comparisons.
func (m Metrics) Comparisons() int64 { return m.comparisons }

// Swaps returns the number of element exchanges.
func (m Metrics) Swaps() int64 { return m.swaps }

// Shifts returns the number of single-position moves to the right.
func (m Metrics) Shifts() int64 { return m.shifts }

// ArrayAccesses returns the number of raw element reads and writes.
func (m Metrics) ArrayAccesses() int64 { return m.arrayAccesses }

// Elapsed returns the time between StartTimer and StopTimer.
// Both timestamps carry a monotonic reading when set through the timer methods.
func (m Metrics) Elapsed() time.Duration {
	return m.endTime.Sub(m.startTime)
}

// ElapsedNanos returns the elapsed time in nanoseconds.
func (m Metrics) ElapsedNanos() int64 {
	return int64(m.Elapsed())
}

// ElapsedMillis returns the elapsed time in milliseconds.
func (m Metrics) ElapsedMillis() float64 {
	return float64(m.ElapsedNanos()) / 1e6
}

// IsZero reports whether nothing has been recorded.
func (m Metrics) IsZero() bool {
	return m == Metrics{}
}

// String implements fmt.Stringer.
func (m Metrics) String() string {
	return fmt.Sprintf(
		"Metrics{comparisons=%d, swaps=%d, shifts=%d, arrayAccesses=%d, time=%.2fms}",
		m.comparisons, m.swaps, m.shifts, m.arrayAccesses, m.ElapsedMillis(),
	)
}
