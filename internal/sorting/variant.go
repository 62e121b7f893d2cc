package sorting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by ParseVariant for unrecognised names.
var ErrUnknownVariant = errors.New("unknown sort variant")

// Variant identifies one of the insertion sort implementations.
type Variant int

const (
	VariantPlain Variant = iota
	VariantBinary
	VariantSentinel
	VariantAdaptive
)

var variantNames = map[Variant]string{
	VariantPlain:    "plain",
	VariantBinary:   "binary",
	VariantSentinel: "sentinel",
	VariantAdaptive: "adaptive",
}

var variantFuncs = map[Variant]Func{
	VariantPlain:    Insertion,
	VariantBinary:   BinaryInsertion,
	VariantSentinel: SentinelInsertion,
	VariantAdaptive: AdaptiveInsertion,
}

// AllVariants returns every variant in declaration order.
func AllVariants() []Variant {
	return []Variant{VariantPlain, VariantBinary, VariantSentinel, VariantAdaptive}
}

// String returns the lowercase name used in configs and reports.
func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return fmt.Sprintf("variant(%d)", int(v))
}

// Func returns the sort function for v. Unknown variants fall back to Insertion.
func (v Variant) Func() Func {
	if fn, ok := variantFuncs[v]; ok {
		return fn
	}
	return Insertion
}

// ParseVariant parses a variant name. Matching is case-insensitive and also
// accepts the "<name>-insertion" spelling.
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.TrimSuffix(name, "-insertion")
	for v, n := range variantNames {
		if n == name {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// ParseVariants parses a list of variant names, rejecting duplicates.
func ParseVariants(names []string) ([]Variant, error) {
	seen := make(map[Variant]bool, len(names))
	variants := make([]Variant, 0, len(names))
	for _, name := range names {
		v, err := ParseVariant(name)
		if err != nil {
			return nil, err
		}
		if seen[v] {
			return nil, fmt.Errorf("duplicate sort variant %q", v)
		}
		seen[v] = true
		variants = append(variants, v)
	}
	return variants, nil
}
