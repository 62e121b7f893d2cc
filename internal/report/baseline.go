package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/gjson"
)

// Baseline is a previously exported JSON report indexed by cell key.
type Baseline struct {
	Name    string
	Results map[string]Result
}

// LoadBaseline reads a JSON export written by ExportJSON.
func LoadBaseline(path string) (*Baseline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read baseline: %w", err)
	}
	b, err := ParseBaseline(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return b, nil
}

// ParseBaseline extracts the result rows from a JSON export.
//
// Only the fields needed for comparison are read; unknown fields are ignored
// so exports from newer versions still load.
func ParseBaseline(data []byte) (*Baseline, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON baseline")
	}

	doc := gjson.ParseBytes(data)
	results := doc.Get("results")
	if !results.Exists() || !results.IsArray() {
		return nil, fmt.Errorf("baseline has no results array")
	}

	b := &Baseline{
		Name:    doc.Get("name").String(),
		Results: make(map[string]Result),
	}

	var parseErr error
	results.ForEach(func(idx, row gjson.Result) bool {
		r := Result{
			Variant:       row.Get("variant").String(),
			DataType:      row.Get("dataType").String(),
			InputSize:     int(row.Get("inputSize").Int()),
			Runs:          int(row.Get("runs").Int()),
			Comparisons:   row.Get("comparisons").Int(),
			Swaps:         row.Get("swaps").Int(),
			Shifts:        row.Get("shifts").Int(),
			ArrayAccesses: row.Get("arrayAccesses").Int(),
			TimeNanos:     row.Get("timeNanos").Int(),
			TimeMillis:    row.Get("timeMillis").Float(),
		}
		if r.Variant == "" || r.DataType == "" || r.InputSize <= 0 {
			parseErr = fmt.Errorf("baseline result %d is missing variant, dataType or inputSize", idx.Int())
			return false
		}
		b.Results[r.Key()] = r
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return b, nil
}

// Delta compares one cell against its baseline.
type Delta struct {
	Key      string
	Baseline Result
	Current  Result

	// ComparisonsChange is current minus baseline comparisons.
	ComparisonsChange int64

	// TimeRatio is current over baseline mean time; 0 if the baseline is 0.
	TimeRatio float64
}

// Regressed reports whether the cell did more comparisons than the baseline
// or took more than tolerance times as long.
func (d Delta) Regressed(tolerance float64) bool {
	if d.ComparisonsChange > 0 {
		return true
	}
	return tolerance > 0 && d.TimeRatio > tolerance
}

// Comparison is the outcome of comparing a run against a baseline.
type Comparison struct {
	Deltas []Delta

	// Missing lists baseline cells absent from the current run.
	Missing []string

	// Added lists current cells absent from the baseline.
	Added []string
}

// Compare matches current rows to baseline rows by cell key.
// Deltas follow the order of current; Missing and Added are sorted.
func Compare(baseline *Baseline, current []Result) Comparison {
	var cmp Comparison
	seen := make(map[string]bool, len(current))

	for _, cur := range current {
		key := cur.Key()
		seen[key] = true

		base, ok := baseline.Results[key]
		if !ok {
			cmp.Added = append(cmp.Added, key)
			continue
		}

		d := Delta{
			Key:               key,
			Baseline:          base,
			Current:           cur,
			ComparisonsChange: cur.Comparisons - base.Comparisons,
		}
		if base.TimeNanos > 0 {
			d.TimeRatio = float64(cur.TimeNanos) / float64(base.TimeNanos)
		}
		cmp.Deltas = append(cmp.Deltas, d)
	}

	for key := range baseline.Results {
		if !seen[key] {
			cmp.Missing = append(cmp.Missing, key)
		}
	}

	sort.Strings(cmp.Missing)
	sort.Strings(cmp.Added)
	return cmp
}

// Regressed reports whether any cell regressed.
func (c Comparison) Regressed(tolerance float64) bool {
	for _, d := range c.Deltas {
		if d.Regressed(tolerance) {
			return true
		}
	}
	return false
}
