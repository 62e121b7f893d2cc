// Package config loads and validates benchmark configuration files.
package config

import (
	"time"
)

// Output formats accepted in OutputConfig.Formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatHTML = "html"
)

// DefaultOutputPath is where results go when nothing else is configured.
const DefaultOutputPath = "performance_results.csv"

// Config is the root configuration for a benchmark run.
//
// Example YAML:
//
//	name: "Nearly sorted study"
//	sizes: [100, 1000, 10000]
//	distributions: [sorted, nearly-sorted]
//	variants: [plain, binary, sentinel, adaptive]
//	warmupRuns: 3
//	measurementRuns: 5
//	seed: 42
//	timeout: 10m
//	output:
//	  path: results/nearly.csv
//	  formats: [csv, json]
type Config struct {
	// Name of the benchmark (for reporting)
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	// Sizes are the input lengths to benchmark
	Sizes []int `json:"sizes,omitempty" yaml:"sizes,omitempty"`

	// Distributions are data shapes: random, sorted, reverse, nearly-sorted, few-unique
	Distributions []string `json:"distributions,omitempty" yaml:"distributions,omitempty"`

	// Variants are sort variants: plain, binary, sentinel, adaptive
	Variants []string `json:"variants,omitempty" yaml:"variants,omitempty"`

	// WarmupRuns are discarded runs per cell
	WarmupRuns int `json:"warmupRuns" yaml:"warmupRuns"`

	// MeasurementRuns are averaged runs per cell
	MeasurementRuns int `json:"measurementRuns" yaml:"measurementRuns"`

	// Seed for the data generator; 0 picks a random seed
	Seed int64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Verify checks every measured run for correctness
	Verify bool `json:"verify" yaml:"verify"`

	// Timeout bounds the whole run; 0 means no limit
	Timeout Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`

	// Output controls result export
	Output OutputConfig `json:"output,omitempty" yaml:"output,omitempty"`

	// Baseline optionally compares the run against a previous JSON export
	Baseline *BaselineConfig `json:"baseline,omitempty" yaml:"baseline,omitempty"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	// Path of the primary output file. Other formats reuse its base name.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// Formats to write: csv, json, html. Defaults to the Path extension.
	Formats []string `json:"formats,omitempty" yaml:"formats,omitempty"`
}

// BaselineConfig points at a previous JSON export.
type BaselineConfig struct {
	// Path to the baseline JSON file
	Path string `json:"path" yaml:"path"`

	// TimeTolerance flags cells slower than this ratio; 0 disables time checks
	TimeTolerance float64 `json:"timeTolerance,omitempty" yaml:"timeTolerance,omitempty"`
}

// Default returns the settings of the original benchmark harness.
func Default() *Config {
	return &Config{
		Name:            "Insertion Sort Performance Benchmark",
		Sizes:           []int{100, 1000, 10000, 100000},
		Distributions:   []string{"random", "sorted", "reverse", "nearly-sorted", "few-unique"},
		Variants:        []string{"adaptive"},
		WarmupRuns:      3,
		MeasurementRuns: 5,
		Verify:          true,
		Output: OutputConfig{
			Path: DefaultOutputPath,
		},
	}
}

// Duration is a time.Duration that can be unmarshaled from JSON/YAML strings.
type Duration time.Duration

// GetDuration returns the duration or a default if empty.
func (d Duration) GetDuration(defaultValue time.Duration) time.Duration {
	if d == 0 {
		return defaultValue
	}
	return time.Duration(d)
}

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Duration(d).String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	// Remove quotes if present
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" || s == "null" {
		*d = 0
		return nil
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}

	if s == "" {
		*d = 0
		return nil
	}

	dur, err := ParseDurationString(s)
	if err != nil {
		return err
	}
	*d = Duration(dur)
	return nil
}

// String returns the duration as a string.
func (d Duration) String() string {
	return time.Duration(d).String()
}
