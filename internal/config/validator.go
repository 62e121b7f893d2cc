package config

import (
	"fmt"
	"strings"

	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors struct {
	Errors []*ValidationError
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "no validation errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e.Errors)))
	for i, err := range e.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Add adds an error to the collection.
func (e *ValidationErrors) Add(field, message string) {
	e.Errors = append(e.Errors, &ValidationError{Field: field, Message: message})
}

// HasErrors returns true if there are any errors.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Validate validates the entire configuration.
//
// Returns nil if valid, or a *ValidationErrors containing every problem found.
func (c *Config) Validate() error {
	errs := &ValidationErrors{}

	if len(c.Sizes) == 0 {
		errs.Add("sizes", "at least one input size is required")
	}
	for i, size := range c.Sizes {
		if size <= 0 {
			errs.Add(fmt.Sprintf("sizes[%d]", i), fmt.Sprintf("size must be positive, got %d", size))
		}
	}

	validateNames("distributions", c.Distributions, func(s string) error {
		_, err := dataset.ParseDistribution(s)
		return err
	}, errs)

	validateNames("variants", c.Variants, func(s string) error {
		_, err := sorting.ParseVariant(s)
		return err
	}, errs)

	if c.WarmupRuns < 0 {
		errs.Add("warmupRuns", "cannot be negative")
	}
	if c.MeasurementRuns < 1 {
		errs.Add("measurementRuns", "must be at least 1")
	}
	if c.Timeout < 0 {
		errs.Add("timeout", "cannot be negative")
	}

	validateOutput(&c.Output, errs)

	if c.Baseline != nil {
		if c.Baseline.Path == "" {
			errs.Add("baseline.path", "baseline path is required")
		}
		if c.Baseline.TimeTolerance < 0 {
			errs.Add("baseline.timeTolerance", "cannot be negative")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// validateNames checks a list of names for emptiness, unknown entries and duplicates.
func validateNames(field string, names []string, parse func(string) error, errs *ValidationErrors) {
	if len(names) == 0 {
		errs.Add(field, "at least one entry is required")
		return
	}

	seen := make(map[string]bool, len(names))
	for i, name := range names {
		key := fmt.Sprintf("%s[%d]", field, i)
		if err := parse(name); err != nil {
			errs.Add(key, err.Error())
			continue
		}
		norm := strings.ToLower(strings.TrimSpace(name))
		if seen[norm] {
			errs.Add(key, fmt.Sprintf("duplicate entry %q", name))
		}
		seen[norm] = true
	}
}

func validateOutput(o *OutputConfig, errs *ValidationErrors) {
	valid := map[string]bool{
		FormatCSV:  true,
		FormatJSON: true,
		FormatHTML: true,
	}

	for i, f := range o.Formats {
		if !valid[strings.ToLower(strings.TrimSpace(f))] {
			errs.Add(fmt.Sprintf("output.formats[%d]", i), fmt.Sprintf("unknown output format: %s", f))
		}
	}
}
