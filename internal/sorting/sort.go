package sorting

// Func is the signature shared by every sort variant.
type Func func(data []int) Metrics

// Insertion sorts data in place with the classic backward scan.
//
// One comparison is recorded per scan step, including the step that stops
// the scan, unless the scan runs past index 0.
func Insertion(data []int) Metrics {
	var m Metrics
	if len(data) <= 1 {
		return m
	}

	m.StartTimer()

	for i := 1; i < len(data); i++ {
		key := data[i]
		m.IncrementArrayAccesses()
		j := i - 1

		for j >= 0 {
			m.IncrementComparisons()
			if data[j] <= key {
				break
			}
			m.IncrementArrayAccesses() // read data[j]
			data[j+1] = data[j]
			m.IncrementArrayAccesses() // write data[j+1]
			m.IncrementShifts()
			j--
		}

		data[j+1] = key
		m.IncrementArrayAccesses()
	}

	m.StopTimer()
	return m
}

// BinaryInsertion sorts data in place, locating each insertion position with
// a binary search over the sorted prefix.
//
// A key equal to a probed element is inserted right after it.
func BinaryInsertion(data []int) Metrics {
	var m Metrics
	if len(data) <= 1 {
		return m
	}

	m.StartTimer()

	for i := 1; i < len(data); i++ {
		key := data[i]
		m.IncrementArrayAccesses()

		pos := binarySearch(data, 0, i-1, key, &m)

		for j := i - 1; j >= pos; j-- {
			data[j+1] = data[j]
			m.IncrementArrayAccesses() // read
			m.IncrementArrayAccesses() // write
			m.IncrementShifts()
		}

		data[pos] = key
		m.IncrementArrayAccesses()
	}

	m.StopTimer()
	return m
}

// binarySearch returns the index in data[left:right+1] where key belongs.
//
// The less-than branch records a second comparison; reports produced by
// earlier versions of the harness count probes this way.
func binarySearch(data []int, left, right, key int, m *Metrics) int {
	for left <= right {
		mid := left + (right-left)/2

		m.IncrementComparisons()
		m.IncrementArrayAccesses()

		switch v := data[mid]; {
		case v == key:
			return mid + 1
		case v < key:
			m.IncrementComparisons()
			left = mid + 1
		default:
			right = mid - 1
		}
	}

	return left
}

// SentinelInsertion sorts data in place after moving the minimum element to
// index 0, which lets the inner loop run without a bounds check.
func SentinelInsertion(data []int) Metrics {
	var m Metrics
	if len(data) <= 1 {
		return m
	}

	m.StartTimer()

	minIndex := 0
	for i := 1; i < len(data); i++ {
		m.IncrementComparisons()
		m.IncrementArrayAccesses()
		if data[i] < data[minIndex] {
			minIndex = i
		}
	}

	if minIndex != 0 {
		swap(data, 0, minIndex, &m)
	}

	// data[0] is now <= every element, so the scan below always stops.
	for i := 2; i < len(data); i++ {
		key := data[i]
		m.IncrementArrayAccesses()
		j := i - 1

		for data[j] > key {
			m.IncrementComparisons()
			m.IncrementArrayAccesses()
			data[j+1] = data[j]
			m.IncrementArrayAccesses()
			m.IncrementShifts()
			j--
		}

		m.IncrementComparisons() // the comparison that ended the scan
		data[j+1] = key
		m.IncrementArrayAccesses()
	}

	m.StopTimer()
	return m
}

// AdaptiveInsertion sorts data in place and skips keys that are already no
// smaller than their predecessor, so sorted runs cost one comparison per element.
func AdaptiveInsertion(data []int) Metrics {
	var m Metrics
	if len(data) <= 1 {
		return m
	}

	m.StartTimer()

	for i := 1; i < len(data); i++ {
		key := data[i]
		m.IncrementArrayAccesses()

		m.IncrementComparisons()
		m.IncrementArrayAccesses()
		if key >= data[i-1] {
			continue
		}

		j := i - 1
		for j >= 0 {
			m.IncrementComparisons()
			m.IncrementArrayAccesses()
			if data[j] <= key {
				break
			}
			data[j+1] = data[j]
			m.IncrementArrayAccesses()
			m.IncrementShifts()
			j--
		}

		data[j+1] = key
		m.IncrementArrayAccesses()
	}

	m.StopTimer()
	return m
}

// swap exchanges data[i] and data[j], recording one swap and three accesses.
func swap(data []int, i, j int, m *Metrics) {
	data[i], data[j] = data[j], data[i]
	m.IncrementSwaps()
	m.IncrementArrayAccesses()
	m.IncrementArrayAccesses()
	m.IncrementArrayAccesses()
}

// IsSorted reports whether every element is no smaller than its predecessor.
func IsSorted(data []int) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}
