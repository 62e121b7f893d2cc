package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/sortbench/internal/config"
)

func TestBuildConfig_Defaults(t *testing.T) {
	cmd := newTestCommand(t, addRunFlags)

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, config.Default(), cfg)
}

func TestBuildConfig_FlagOverrides(t *testing.T) {
	cmd := newTestCommand(t, addRunFlags,
		"--sizes", "10,20",
		"--distributions", "random,few-unique",
		"--variants", "plain,binary",
		"--warmup", "0",
		"--runs", "2",
		"--seed", "42",
		"--no-verify",
		"--timeout", "90s",
		"--output", "out/results.json",
		"--baseline", "old.json",
		"--tolerance", "1.5",
	)

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, []string{"random", "few-unique"}, cfg.Distributions)
	assert.Equal(t, []string{"plain", "binary"}, cfg.Variants)
	assert.Equal(t, 0, cfg.WarmupRuns)
	assert.Equal(t, 2, cfg.MeasurementRuns)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.False(t, cfg.Verify)
	assert.Equal(t, "1m30s", cfg.Timeout.String())
	assert.Equal(t, []string{config.FormatJSON}, cfg.OutputFormats())
	require.NotNil(t, cfg.Baseline)
	assert.Equal(t, "old.json", cfg.Baseline.Path)
	assert.Equal(t, 1.5, cfg.Baseline.TimeTolerance)
}

func TestBuildConfig_FileThenFlags(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: From file
sizes: [50]
distributions: [sorted]
variants: [sentinel]
warmupRuns: 1
measurementRuns: 3
`), 0644))

	cmd := newTestCommand(t, addRunFlags, "--config", path, "--runs", "4")

	cfg, err := buildConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "From file", cfg.Name)
	assert.Equal(t, []int{50}, cfg.Sizes)
	assert.Equal(t, []string{"sentinel"}, cfg.Variants)
	assert.Equal(t, 1, cfg.WarmupRuns)
	assert.Equal(t, 4, cfg.MeasurementRuns)
}

func TestBuildConfig_Invalid(t *testing.T) {
	cmd := newTestCommand(t, addRunFlags,
		"--sizes", "0",
		"--variants", "bogus",
		"--runs", "0",
	)

	_, err := buildConfig(cmd)
	require.Error(t, err)

	var verrs *config.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errors, 3)
}

func TestBuildConfig_MissingFile(t *testing.T) {
	cmd := newTestCommand(t, addRunFlags, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := buildConfig(cmd)
	assert.ErrorContains(t, err, "error loading config")
}

func runArgs(dir string, extra ...string) []string {
	args := []string{
		"--sizes", "10,20",
		"--distributions", "random,reverse",
		"--variants", "plain,binary,sentinel,adaptive",
		"--warmup", "0",
		"--runs", "2",
		"--seed", "7",
		"--output", filepath.Join(dir, "results.csv"),
		"--formats", "csv,json,html",
		"--quiet",
	}
	return append(args, extra...)
}

func TestRunBenchmark_ExportsEveryFormat(t *testing.T) {
	dir := t.TempDir()
	cmd := newTestCommand(t, addRunFlags, runArgs(dir)...)

	var stdout, stderr bytes.Buffer
	require.NoError(t, runBenchmark(cmd, &stdout, &stderr))

	assert.Equal(t, "PASSED\n", stdout.String())
	assert.Empty(t, stderr.String())

	csvData, err := os.ReadFile(filepath.Join(dir, "results.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(csvData)), "\n")
	require.Len(t, lines, 1+16)
	assert.Equal(t, "Variant,DataType,InputSize,Comparisons,Swaps,Shifts,ArrayAccesses,TimeNanos,TimeMillis", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "plain,Random,10,"))

	assert.FileExists(t, filepath.Join(dir, "results.json"))
	assert.FileExists(t, filepath.Join(dir, "results.html"))
}

func TestRunBenchmark_BaselineRoundTrip(t *testing.T) {
	dir := t.TempDir()

	first := newTestCommand(t, addRunFlags, runArgs(dir)...)
	require.NoError(t, runBenchmark(first, &bytes.Buffer{}, &bytes.Buffer{}))

	// Copy the export so the second run does not overwrite its own baseline
	data, err := os.ReadFile(filepath.Join(dir, "results.json"))
	require.NoError(t, err)
	baseline := filepath.Join(dir, "baseline.json")
	require.NoError(t, os.WriteFile(baseline, data, 0644))

	var stdout bytes.Buffer
	second := newTestCommand(t, addRunFlags, runArgs(dir, "--baseline", baseline)...)
	require.NoError(t, runBenchmark(second, &stdout, &bytes.Buffer{}))

	out := stdout.String()
	assert.Contains(t, out, "Baseline comparison")
	assert.Contains(t, out, "plain/Random/10")
	assert.Contains(t, out, "comparisons +0")
	assert.NotContains(t, out, "missing")
}

func TestRunBenchmark_MissingBaseline(t *testing.T) {
	dir := t.TempDir()
	cmd := newTestCommand(t, addRunFlags, runArgs(dir, "--baseline", filepath.Join(dir, "none.json"))...)

	err := runBenchmark(cmd, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "failed to read baseline")
}

func TestRunBenchmark_VerboseLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	cmd := newTestCommand(t, addRunFlags, runArgs(dir, "--verbose")...)

	var stderr bytes.Buffer
	require.NoError(t, runBenchmark(cmd, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "benchmark started")
	assert.Contains(t, stderr.String(), "benchmark finished")
}
