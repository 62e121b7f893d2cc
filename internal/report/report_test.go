package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

func sampleTracker() *Tracker {
	t := NewTracker("sample")
	t.AddMetrics("adaptive", "Random", 100, sorting.NewMetrics(2550, 0, 2450, 5200, 1234567*time.Nanosecond))
	t.AddMetrics("adaptive", "Sorted", 100, sorting.NewMetrics(99, 0, 0, 198, 2600*time.Nanosecond))
	return t
}

func TestTracker_WriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, sampleTracker().WriteCSV(&buf))

	expected := "Variant,DataType,InputSize,Comparisons,Swaps,Shifts,ArrayAccesses,TimeNanos,TimeMillis\n" +
		"adaptive,Random,100,2550,0,2450,5200,1234567,1.235\n" +
		"adaptive,Sorted,100,99,0,0,198,2600,0.003\n"
	assert.Equal(t, expected, buf.String())
}

func TestTracker_ExportCSV_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "results.csv")
	require.NoError(t, sampleTracker().ExportCSV(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Variant,DataType,"))
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestTracker_ExportCSV_Error(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := sampleTracker().ExportCSV(filepath.Join(blocker, "results.csv"))
	assert.Error(t, err)
}

func TestFromReport(t *testing.T) {
	rep := &benchmark.Report{
		Name:   "run",
		Seed:   7,
		Passed: false,
		Results: []benchmark.CellResult{
			{
				Cell:    benchmark.Cell{Variant: sorting.VariantBinary, Distribution: dataset.NearlySorted, Size: 1000},
				Runs:    5,
				Metrics: sorting.NewMetrics(10, 1, 2, 3, time.Millisecond),
				Timing:  benchmark.TimingStats{Count: 5, P50: time.Millisecond},
			},
		},
		Failures: []*benchmark.VerificationError{
			{
				Cell: benchmark.Cell{Variant: sorting.VariantBinary, Distribution: dataset.NearlySorted, Size: 1000},
				Run:  0,
				Err:  benchmark.ErrNotSorted,
			},
		},
	}

	tr := FromReport(rep)
	require.Len(t, tr.Results(), 1)
	r := tr.Results()[0]
	assert.Equal(t, "binary", r.Variant)
	assert.Equal(t, "NearlySorted", r.DataType)
	assert.Equal(t, 5, r.Runs)
	assert.Equal(t, int64(1000000), r.TimeNanos)
	require.NotNil(t, r.Timing)
	assert.Equal(t, time.Millisecond, r.Timing.P50)
	assert.False(t, tr.Passed())
	assert.Equal(t, []string{"binary/nearly-sorted/n=1000 run 1: output is not sorted"}, tr.Failures())
}

func TestBaseline_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baseline.json")
	require.NoError(t, sampleTracker().ExportJSON(path))

	b, err := LoadBaseline(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", b.Name)
	require.Len(t, b.Results, 2)

	r := b.Results["adaptive/Random/100"]
	assert.Equal(t, int64(2550), r.Comparisons)
	assert.Equal(t, int64(1234567), r.TimeNanos)
}

func TestParseBaseline_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"results": [`},
		{"no results", `{"name": "x"}`},
		{"results not array", `{"results": {}}`},
		{"missing fields", `{"results": [{"variant": "plain"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBaseline([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCompare(t *testing.T) {
	baseline, err := ParseBaseline([]byte(`{
		"name": "old",
		"results": [
			{"variant": "plain", "dataType": "Random", "inputSize": 100, "comparisons": 2500, "timeNanos": 1000},
			{"variant": "plain", "dataType": "Sorted", "inputSize": 100, "comparisons": 99, "timeNanos": 0},
			{"variant": "binary", "dataType": "Random", "inputSize": 100, "comparisons": 600, "timeNanos": 500}
		]
	}`))
	require.NoError(t, err)

	current := []Result{
		{Variant: "plain", DataType: "Random", InputSize: 100, Comparisons: 2600, TimeNanos: 1500},
		{Variant: "plain", DataType: "Sorted", InputSize: 100, Comparisons: 99, TimeNanos: 10},
		{Variant: "adaptive", DataType: "Random", InputSize: 100, Comparisons: 2600},
	}

	cmp := Compare(baseline, current)
	require.Len(t, cmp.Deltas, 2)

	assert.Equal(t, "plain/Random/100", cmp.Deltas[0].Key)
	assert.Equal(t, int64(100), cmp.Deltas[0].ComparisonsChange)
	assert.InDelta(t, 1.5, cmp.Deltas[0].TimeRatio, 1e-9)
	assert.True(t, cmp.Deltas[0].Regressed(0))

	assert.Equal(t, int64(0), cmp.Deltas[1].ComparisonsChange)
	assert.Equal(t, 0.0, cmp.Deltas[1].TimeRatio)
	assert.False(t, cmp.Deltas[1].Regressed(2))

	assert.Equal(t, []string{"binary/Random/100"}, cmp.Missing)
	assert.Equal(t, []string{"adaptive/Random/100"}, cmp.Added)
	assert.True(t, cmp.Regressed(0))
	assert.False(t, Comparison{Deltas: cmp.Deltas[1:]}.Regressed(2))
}

func TestDelta_RegressedOnTime(t *testing.T) {
	d := Delta{TimeRatio: 1.8}
	assert.True(t, d.Regressed(1.5))
	assert.False(t, d.Regressed(2))
	assert.False(t, d.Regressed(0))
}

func TestGenerateHTMLString(t *testing.T) {
	html, err := sampleTracker().GenerateHTMLString()
	require.NoError(t, err)

	assert.Contains(t, html, "<title>sample - Sort Benchmark Report</title>")
	assert.Contains(t, html, "2,550")
	assert.Contains(t, html, "1.235")
	assert.Contains(t, html, `"label":"adaptive / Random"`)
	assert.Contains(t, html, "Passed")
}

func TestGenerateHTML_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, sampleTracker().GenerateHTML(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestChartJSON_SortsBySize(t *testing.T) {
	out, err := chartJSON([]Result{
		{Variant: "plain", DataType: "Random", InputSize: 1000, Comparisons: 3},
		{Variant: "plain", DataType: "Random", InputSize: 100, Comparisons: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"label":"plain / Random","sizes":[100,1000],"values":[1,3]}]`, out)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		number   int64
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.number))
		})
	}
}

func TestDocument_EmptyResults(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTracker("empty").WriteJSON(&buf))
	assert.Contains(t, buf.String(), `"results": []`)
	assert.NotContains(t, buf.String(), "startTime")
}
