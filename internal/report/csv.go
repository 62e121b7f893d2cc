package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{
	"Variant", "DataType", "InputSize", "Comparisons", "Swaps",
	"Shifts", "ArrayAccesses", "TimeNanos", "TimeMillis",
}

// WriteCSV writes the header and one row per result.
func (t *Tracker) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range t.results {
		row := []string{
			r.Variant,
			r.DataType,
			strconv.Itoa(r.InputSize),
			strconv.FormatInt(r.Comparisons, 10),
			strconv.FormatInt(r.Swaps, 10),
			strconv.FormatInt(r.Shifts, 10),
			strconv.FormatInt(r.ArrayAccesses, 10),
			strconv.FormatInt(r.TimeNanos, 10),
			fmt.Sprintf("%.3f", r.TimeMillis),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %s: %w", r.Key(), err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ExportCSV writes the results to a CSV file at path.
func (t *Tracker) ExportCSV(path string) error {
	return export(path, func(f *os.File) error {
		return t.WriteCSV(f)
	})
}
