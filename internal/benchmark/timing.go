package benchmark

import (
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// TimingConfig bounds the values a TimingRecorder can hold.
type TimingConfig struct {
	// Min is the lowest recordable value in nanoseconds (default: 1)
	Min int64

	// Max is the highest recordable value in nanoseconds (default: 1 hour)
	Max int64

	// SigFigs is the number of significant figures (default: 3)
	SigFigs int
}

// DefaultTimingConfig returns the default histogram bounds.
func DefaultTimingConfig() TimingConfig {
	return TimingConfig{
		Min:     1,
		Max:     int64(time.Hour),
		SigFigs: 3,
	}
}

// TimingStats summarises the elapsed times of a cell's measured runs.
type TimingStats struct {
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
	Mean   time.Duration `json:"mean"`
	StdDev time.Duration `json:"stdDev"`
	P50    time.Duration `json:"p50"`
	P90    time.Duration `json:"p90"`
	P99    time.Duration `json:"p99"`
	Count  int64         `json:"count"`
}

// TimingRecorder collects sort durations in an HDR histogram.
//
// TimingRecorder is not safe for concurrent use.
type TimingRecorder struct {
	hist   *hdrhistogram.Histogram
	config TimingConfig
}

// NewTimingRecorder creates a recorder with the default configuration.
func NewTimingRecorder() *TimingRecorder {
	return NewTimingRecorderWithConfig(DefaultTimingConfig())
}

// NewTimingRecorderWithConfig creates a recorder with custom bounds.
func NewTimingRecorderWithConfig(config TimingConfig) *TimingRecorder {
	return &TimingRecorder{
		hist:   hdrhistogram.New(config.Min, config.Max, config.SigFigs),
		config: config,
	}
}

// Record adds one duration, clamped to the configured range.
func (r *TimingRecorder) Record(d time.Duration) {
	nanos := d.Nanoseconds()
	if nanos < r.config.Min {
		nanos = r.config.Min
	}
	if nanos > r.config.Max {
		nanos = r.config.Max
	}
	// RecordValue only fails for out-of-range values, which were clamped above.
	_ = r.hist.RecordValue(nanos)
}

// Reset discards every recorded value.
func (r *TimingRecorder) Reset() {
	r.hist.Reset()
}

// Stats returns the current distribution summary.
func (r *TimingRecorder) Stats() TimingStats {
	if r.hist.TotalCount() == 0 {
		return TimingStats{}
	}
	return TimingStats{
		Min:    time.Duration(r.hist.Min()),
		Max:    time.Duration(r.hist.Max()),
		Mean:   time.Duration(r.hist.Mean()),
		StdDev: time.Duration(r.hist.StdDev()),
		P50:    time.Duration(r.hist.ValueAtQuantile(50)),
		P90:    time.Duration(r.hist.ValueAtQuantile(90)),
		P99:    time.Duration(r.hist.ValueAtQuantile(99)),
		Count:  r.hist.TotalCount(),
	}
}
