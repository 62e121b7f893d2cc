// Package sorting provides instrumented insertion sort variants over int slices.
//
// Every variant sorts its input in place and returns a Metrics value that
// describes the work done by that single call: comparisons, swaps, shifts,
// raw array accesses and elapsed wall-clock time.
//
// # Variants
//
//   - Insertion: classic backward scan with element shifting
//   - BinaryInsertion: binary search for the insertion position, then shift
//   - SentinelInsertion: moves the minimum to index 0 and drops the bounds check
//   - AdaptiveInsertion: skips keys that are already in place
//
// # Basic Usage
//
//	data := []int{8, 3, 1, 7, 0, 10, 2}
//	m := sorting.BinaryInsertion(data)
//	fmt.Println(data) // [0 1 2 3 7 8 10]
//	fmt.Println(m)    // Metrics{comparisons=..., ...}
//
// Nil, empty and single element slices are a no-op and yield a zero Metrics.
//
// # Thread Safety
//
// The functions keep no shared state and may be called concurrently on
// distinct slices. Sorter stores the metrics of its last call and is not
// safe for concurrent use.
package sorting
