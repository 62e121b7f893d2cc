package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wesleyorama2/sortbench/internal/sorting"
)

// OutputFormat represents the available output formats
type OutputFormat string

const (
	// FormatText is the default human-readable text format
	FormatText OutputFormat = "text"
	// FormatJSON outputs in JSON format
	FormatJSON OutputFormat = "json"
	// FormatYAML outputs in YAML format
	FormatYAML OutputFormat = "yaml"
)

// ParseFormat parses an output format name.
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format: %s", s)
	}
}

// SortResult is the structured form of a single sort invocation.
type SortResult struct {
	Variant       string  `json:"variant" yaml:"variant"`
	Sorted        []int   `json:"sorted" yaml:"sorted,flow"`
	Comparisons   int64   `json:"comparisons" yaml:"comparisons"`
	Swaps         int64   `json:"swaps" yaml:"swaps"`
	Shifts        int64   `json:"shifts" yaml:"shifts"`
	ArrayAccesses int64   `json:"arrayAccesses" yaml:"arrayAccesses"`
	TimeNanos     int64   `json:"timeNanos" yaml:"timeNanos"`
	TimeMillis    float64 `json:"timeMillis" yaml:"timeMillis"`
}

// NewSortResult captures the sorted data and its metrics.
func NewSortResult(v sorting.Variant, data []int, m sorting.Metrics) SortResult {
	if data == nil {
		data = []int{}
	}
	return SortResult{
		Variant:       v.String(),
		Sorted:        data,
		Comparisons:   m.Comparisons(),
		Swaps:         m.Swaps(),
		Shifts:        m.Shifts(),
		ArrayAccesses: m.ArrayAccesses(),
		TimeNanos:     m.ElapsedNanos(),
		TimeMillis:    m.ElapsedMillis(),
	}
}

// FormatSortResult renders a sort result in the requested format.
func FormatSortResult(format OutputFormat, r SortResult, noColor bool) (string, error) {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(b) + "\n", nil

	case FormatYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return string(b), nil

	default:
		colors := DefaultColorScheme()
		if noColor {
			colors = NoColorScheme()
		}

		nums := make([]string, len(r.Sorted))
		for i, v := range r.Sorted {
			nums[i] = fmt.Sprint(v)
		}

		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("%s %s\n", colors.Label.Sprint("Variant:"), colors.Highlight.Sprint(r.Variant)))
		sb.WriteString(fmt.Sprintf("%s  %s\n", colors.Label.Sprint("Sorted:"), strings.Join(nums, " ")))
		sb.WriteString(fmt.Sprintf("%s comparisons=%d, swaps=%d, shifts=%d, arrayAccesses=%d, time=%.3fms\n",
			colors.Label.Sprint("Metrics:"),
			r.Comparisons, r.Swaps, r.Shifts, r.ArrayAccesses, r.TimeMillis))
		return sb.String(), nil
	}
}
