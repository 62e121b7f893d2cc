package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// Document is the JSON export format.
type Document struct {
	Name      string    `json:"name"`
	Seed      int64     `json:"seed,omitempty"`
	StartTime *time.Time `json:"startTime,omitempty"`
	Duration  string    `json:"duration,omitempty"`
	Passed    bool      `json:"passed"`
	Results   []Result  `json:"results"`
	Failures  []string  `json:"failures,omitempty"`
}

// Document returns the JSON representation of the tracked run.
func (t *Tracker) Document() Document {
	doc := Document{
		Name:      t.name,
		Seed:      t.seed,
		Passed:    t.passed,
		Results:   t.results,
		Failures:  t.notes,
	}
	if !t.started.IsZero() {
		started := t.started
		doc.StartTime = &started
	}
	if t.elapsed > 0 {
		doc.Duration = t.elapsed.String()
	}
	if doc.Results == nil {
		doc.Results = []Result{}
	}
	return doc
}

// WriteJSON writes the indented JSON document.
func (t *Tracker) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(t.Document()); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// ExportJSON writes the JSON document to path.
func (t *Tracker) ExportJSON(path string) error {
	return export(path, func(f *os.File) error {
		return t.WriteJSON(f)
	})
}
