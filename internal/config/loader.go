package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/sortbench/internal/benchmark"
	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

// LoadConfig loads a benchmark configuration from a file.
//
// The file format is determined by extension:
//   - .yaml, .yml -> YAML
//   - .json -> JSON, checked against the embedded JSON Schema first
//
// Fields missing from the file keep their Default values. The result is
// validated before it is returned.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := ParseConfig(data, path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseConfig parses configuration data on top of Default.
//
// The format is determined by the file extension in path, or defaults to YAML
// if the path is empty or has an unknown extension.
func ParseConfig(data []byte, path string) (*Config, error) {
	config := Default()

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		if err := ValidateJSONSchema(data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config: %w", err)
		}
	default:
		// Try YAML by default
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config (unknown format %s): %w", ext, err)
		}
	}

	return config, nil
}

// ParseDurationString parses a duration string with support for common formats.
//
// Supported formats:
//   - Standard Go duration: "30s", "2m", "1h30m", "500ms"
//   - Seconds as integer: "30" (treated as 30 seconds)
func ParseDurationString(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(s)
	if err == nil {
		return d, nil
	}

	var seconds int
	if _, err := fmt.Sscanf(s, "%d", &seconds); err == nil && fmt.Sprint(seconds) == s {
		return time.Duration(seconds) * time.Second, nil
	}

	return 0, fmt.Errorf("invalid duration format: %s", s)
}

// Plan converts the configuration into a benchmark plan.
func (c *Config) Plan() (benchmark.Plan, error) {
	dists, err := dataset.ParseDistributions(c.Distributions)
	if err != nil {
		return benchmark.Plan{}, err
	}
	variants, err := sorting.ParseVariants(c.Variants)
	if err != nil {
		return benchmark.Plan{}, err
	}

	return benchmark.Plan{
		Name:            c.Name,
		Sizes:           append([]int(nil), c.Sizes...),
		Distributions:   dists,
		Variants:        variants,
		WarmupRuns:      c.WarmupRuns,
		MeasurementRuns: c.MeasurementRuns,
		Seed:            c.Seed,
		Verify:          c.Verify,
	}, nil
}

// OutputFormats returns the formats to write. Without explicit formats the
// extension of Output.Path decides, falling back to CSV.
func (c *Config) OutputFormats() []string {
	if len(c.Output.Formats) > 0 {
		formats := make([]string, len(c.Output.Formats))
		for i, f := range c.Output.Formats {
			formats[i] = strings.ToLower(strings.TrimSpace(f))
		}
		return formats
	}

	switch strings.ToLower(filepath.Ext(c.Output.Path)) {
	case ".json":
		return []string{FormatJSON}
	case ".html":
		return []string{FormatHTML}
	default:
		return []string{FormatCSV}
	}
}

// OutputPath returns the file path for a format, swapping the extension of
// Output.Path.
func (c *Config) OutputPath(format string) string {
	path := c.Output.Path
	if path == "" {
		path = DefaultOutputPath
	}
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + format
}
