package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimingRecorder_Empty(t *testing.T) {
	r := NewTimingRecorder()
	assert.Equal(t, TimingStats{}, r.Stats())
}

func TestTimingRecorder_Percentiles(t *testing.T) {
	r := NewTimingRecorder()
	for i := 1; i <= 100; i++ {
		r.Record(time.Duration(i) * time.Millisecond)
	}

	stats := r.Stats()
	assert.Equal(t, int64(100), stats.Count)
	assert.InDelta(t, float64(time.Millisecond), float64(stats.Min), float64(time.Millisecond)/100)
	assert.InDelta(t, float64(100*time.Millisecond), float64(stats.Max), float64(time.Millisecond))
	assert.InDelta(t, float64(50*time.Millisecond), float64(stats.P50), float64(time.Millisecond))
	assert.InDelta(t, float64(99*time.Millisecond), float64(stats.P99), float64(time.Millisecond))
	assert.InDelta(t, float64(50500*time.Microsecond), float64(stats.Mean), float64(time.Millisecond))
}

func TestTimingRecorder_ClampsAndResets(t *testing.T) {
	r := NewTimingRecorderWithConfig(TimingConfig{Min: 1, Max: int64(time.Second), SigFigs: 3})
	r.Record(0)
	r.Record(2 * time.Hour)

	stats := r.Stats()
	assert.Equal(t, int64(2), stats.Count)
	assert.Equal(t, time.Duration(1), stats.Min)
	assert.InDelta(t, float64(time.Second), float64(stats.Max), float64(time.Millisecond))

	r.Reset()
	assert.Equal(t, int64(0), r.Stats().Count)
}
