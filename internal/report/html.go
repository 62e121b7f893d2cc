package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"sort"
	"time"
)

// htmlData is the value the HTML template renders.
type htmlData struct {
	Name      string
	Generated string
	Passed    bool
	Results   []Result
	Failures  []string
	ChartJSON template.JS
}

// chartSeries is one line of the comparisons-by-size chart.
type chartSeries struct {
	Label  string  `json:"label"`
	Sizes  []int   `json:"sizes"`
	Values []int64 `json:"values"`
}

// GenerateHTML renders the tracked results as an HTML page at outputPath.
func (t *Tracker) GenerateHTML(outputPath string) error {
	html, err := t.GenerateHTMLString()
	if err != nil {
		return fmt.Errorf("failed to generate HTML: %w", err)
	}

	return export(outputPath, func(f *os.File) error {
		if _, err := f.WriteString(html); err != nil {
			return fmt.Errorf("failed to write HTML file: %w", err)
		}
		return nil
	})
}

// GenerateHTMLString renders the tracked results as an HTML page.
func (t *Tracker) GenerateHTMLString() (string, error) {
	tmpl, err := template.New("report").Funcs(templateFuncs()).Parse(htmlTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	chart, err := chartJSON(t.results)
	if err != nil {
		return "", fmt.Errorf("failed to convert chart data: %w", err)
	}

	data := htmlData{
		Name:      t.name,
		Generated: time.Now().Format(time.RFC1123),
		Passed:    t.passed,
		Results:   t.results,
		Failures:  t.notes,
		ChartJSON: template.JS(chart),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// chartJSON groups rows by variant and data type, ordered by input size.
func chartJSON(results []Result) (string, error) {
	if len(results) == 0 {
		return "[]", nil
	}

	index := make(map[string]int)
	var series []chartSeries
	for _, r := range results {
		label := r.Variant + " / " + r.DataType
		i, ok := index[label]
		if !ok {
			i = len(series)
			index[label] = i
			series = append(series, chartSeries{Label: label})
		}
		series[i].Sizes = append(series[i].Sizes, r.InputSize)
		series[i].Values = append(series[i].Values, r.Comparisons)
	}

	for i := range series {
		s := &series[i]
		sort.Sort(bySize{s})
	}

	b, err := json.Marshal(series)
	if err != nil {
		return "[]", err
	}
	return string(b), nil
}

type bySize struct{ s *chartSeries }

func (b bySize) Len() int           { return len(b.s.Sizes) }
func (b bySize) Less(i, j int) bool { return b.s.Sizes[i] < b.s.Sizes[j] }
func (b bySize) Swap(i, j int) {
	b.s.Sizes[i], b.s.Sizes[j] = b.s.Sizes[j], b.s.Sizes[i]
	b.s.Values[i], b.s.Values[j] = b.s.Values[j], b.s.Values[i]
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatNumber": FormatNumber,
		"int64":        func(i int) int64 { return int64(i) },
		"formatMillis": func(ms float64) string { return fmt.Sprintf("%.3f", ms) },
	}
}

// FormatNumber formats n with thousands separators.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	result := ""
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
