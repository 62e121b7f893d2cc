// Package benchmark runs insertion sort variants over synthetic datasets and
// aggregates the recorded metrics.
//
// A Plan names the input sizes, data distributions and sort variants to
// exercise. The Runner walks every size × distribution × variant cell,
// performs warmup runs that are discarded, then measurement runs whose
// counters are averaged and whose timings feed an HDR histogram.
//
// # Basic Usage
//
//	plan := benchmark.DefaultPlan()
//	plan.Sizes = []int{100, 1000}
//
//	runner := benchmark.NewRunner(benchmark.WithProgress(func(p benchmark.Progress) {
//		fmt.Printf("%d/%d\n", p.Completed, p.Total)
//	}))
//	report, err := runner.Run(ctx, plan)
//
// # Verification
//
// With Plan.Verify set, every measured run checks that the output is sorted
// and is a permutation of the input. Failures are collected on the Report
// and do not stop the run.
//
// # Cancellation
//
// The context is checked between runs. A sort call in progress always
// completes; Run then returns the partial report together with the context
// error.
package benchmark
