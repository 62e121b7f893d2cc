package main

import (
	"fmt"
	"os"

	"github.com/wesleyorama2/sortbench/internal/dataset"
	"github.com/wesleyorama2/sortbench/internal/report"
	"github.com/wesleyorama2/sortbench/internal/sorting"
)

func main() {
	tracker, err := createSampleTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outputPath := "sample-report.html"
	if len(os.Args) > 1 {
		outputPath = os.Args[1]
	}

	if err := tracker.GenerateHTML(outputPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Sample report generated: %s\n", outputPath)
}

// createSampleTracker sorts one data set per cell with a fixed seed, so the
// sample report looks the same on every run apart from timings.
func createSampleTracker() (*report.Tracker, error) {
	tracker := report.NewTracker("Sample Insertion Sort Report")
	gen := dataset.NewGenerator(42)

	for _, size := range []int{100, 500, 1000, 2000} {
		for _, dist := range dataset.AllDistributions() {
			for _, variant := range sorting.AllVariants() {
				data, err := gen.Generate(dist, size)
				if err != nil {
					return nil, err
				}
				tracker.AddMetrics(variant.String(), dist.DisplayName(), size, variant.Func()(data))
			}
		}
	}

	return tracker, nil
}
