// Package dataset generates synthetic integer inputs for sort benchmarks.
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrUnknownDistribution is returned for unrecognised distribution names.
var ErrUnknownDistribution = errors.New("unknown data distribution")

// Distribution describes the shape of generated data.
type Distribution int

const (
	Random Distribution = iota
	Sorted
	Reverse
	NearlySorted
	FewUnique
)

var distributionInfo = []struct {
	dist    Distribution
	name    string
	display string
}{
	{Random, "random", "Random"},
	{Sorted, "sorted", "Sorted"},
	{Reverse, "reverse", "Reverse"},
	{NearlySorted, "nearly-sorted", "NearlySorted"},
	{FewUnique, "few-unique", "FewUnique"},
}

// AllDistributions returns every distribution in report order.
func AllDistributions() []Distribution {
	return []Distribution{Random, Sorted, Reverse, NearlySorted, FewUnique}
}

// String returns the kebab-case name used in configs and flags.
func (d Distribution) String() string {
	for _, info := range distributionInfo {
		if info.dist == d {
			return info.name
		}
	}
	return fmt.Sprintf("distribution(%d)", int(d))
}

// DisplayName returns the label used in console output and CSV rows.
func (d Distribution) DisplayName() string {
	for _, info := range distributionInfo {
		if info.dist == d {
			return info.display
		}
	}
	return d.String()
}

func (d Distribution) valid() bool {
	return d >= Random && d <= FewUnique
}

// ParseDistribution accepts either the flag name ("nearly-sorted") or the
// display name ("NearlySorted"), case-insensitively.
func ParseDistribution(s string) (Distribution, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	compact := strings.NewReplacer("-", "", "_", "").Replace(name)
	for _, info := range distributionInfo {
		if info.name == name || strings.ToLower(info.display) == compact {
			return info.dist, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDistribution, s)
}

// ParseDistributions parses a list of names, rejecting duplicates.
func ParseDistributions(names []string) ([]Distribution, error) {
	seen := make(map[Distribution]bool, len(names))
	dists := make([]Distribution, 0, len(names))
	for _, name := range names {
		d, err := ParseDistribution(name)
		if err != nil {
			return nil, err
		}
		if seen[d] {
			return nil, fmt.Errorf("duplicate data distribution %q", d)
		}
		seen[d] = true
		dists = append(dists, d)
	}
	return dists, nil
}

// Generator produces datasets from a private random source.
//
// Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A zero seed picks a time based seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a new slice of the given size shaped by dist.
//
//   - Random: uniform in [0, size*10)
//   - Sorted: 0..size-1
//   - Reverse: size..1
//   - NearlySorted: sorted with max(1, size/20) random pair swaps
//   - FewUnique: uniform in [0, max(5, size/100))
func (g *Generator) Generate(dist Distribution, size int) ([]int, error) {
	if size < 0 {
		return nil, fmt.Errorf("invalid dataset size %d", size)
	}

	if !dist.valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDistribution, dist)
	}

	data := make([]int, size)
	if size == 0 {
		return data, nil
	}

	switch dist {
	case Random:
		for i := range data {
			data[i] = g.rng.Intn(size * 10)
		}

	case Sorted:
		for i := range data {
			data[i] = i
		}

	case Reverse:
		for i := range data {
			data[i] = size - i
		}

	case NearlySorted:
		for i := range data {
			data[i] = i
		}
		disturb := max(1, size/20)
		for i := 0; i < disturb; i++ {
			a, b := g.rng.Intn(size), g.rng.Intn(size)
			data[a], data[b] = data[b], data[a]
		}

	case FewUnique:
		unique := max(5, size/100)
		for i := range data {
			data[i] = g.rng.Intn(unique)
		}
	}

	return data, nil
}

// Clone returns a copy of data so the original survives an in-place sort.
func Clone(data []int) []int {
	if data == nil {
		return nil
	}
	out := make([]int, len(data))
	copy(out, data)
	return out
}

// SameElements reports whether a and b hold the same multiset of values.
func SameElements(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[int]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
		if counts[v] < 0 {
			return false
		}
	}
	return true
}
