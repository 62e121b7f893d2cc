package sorting

// Sorter runs sort variants and keeps the metrics of the most recent
// non-trivial call.
//
// Calls on nil, empty or single element slices leave the stored metrics
// untouched. Use one Sorter per goroutine.
type Sorter struct {
	metrics Metrics
}

// NewSorter creates a Sorter with zeroed metrics.
func NewSorter() *Sorter {
	return &Sorter{}
}

// Sort runs the plain insertion sort.
func (s *Sorter) Sort(data []int) {
	s.run(Insertion, data)
}

// BinaryInsertionSort runs the binary-search assisted variant.
func (s *Sorter) BinaryInsertionSort(data []int) {
	s.run(BinaryInsertion, data)
}

// SentinelInsertionSort runs the sentinel variant.
func (s *Sorter) SentinelInsertionSort(data []int) {
	s.run(SentinelInsertion, data)
}

// AdaptiveInsertionSort runs the adaptive variant.
func (s *Sorter) AdaptiveInsertionSort(data []int) {
	s.run(AdaptiveInsertion, data)
}

// SortWith runs the given variant.
func (s *Sorter) SortWith(v Variant, data []int) {
	s.run(v.Func(), data)
}

// Metrics returns a copy of the metrics recorded by the last call.
func (s *Sorter) Metrics() Metrics {
	return s.metrics
}

func (s *Sorter) run(fn Func, data []int) {
	if len(data) <= 1 {
		return
	}
	s.metrics = fn(data)
}
