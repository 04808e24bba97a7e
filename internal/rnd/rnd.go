// Package rnd holds the stateless random-value primitives the generation
// stages are built from. Every sampler takes its *rand.Rand explicitly; there
// is no package-level source.
package rnd

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	// ErrExhaustedIDSpace means rejection sampling could not find a free
	// value within MaxAttempts draws.
	ErrExhaustedIDSpace = errors.New("id space exhausted")
	// ErrInfeasibleConstraint means a request is mathematically impossible,
	// such as an inverted date range or a partition with total < parts.
	ErrInfeasibleConstraint = errors.New("infeasible constraint")
)

// MaxAttempts bounds every rejection-sampling loop. The ID spaces (10^9 for
// tax IDs, 10^13 for ISBNs) dwarf any sane record count, so hitting the bound
// indicates a pathological configuration rather than bad luck.
const MaxAttempts = 10000

// UniqueInt draws from draw until it produces a value absent from existing,
// records it there and returns it.
func UniqueInt(r *rand.Rand, existing map[int64]struct{}, draw func(*rand.Rand) int64) (int64, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		value := draw(r)
		if _, taken := existing[value]; taken {
			continue
		}
		existing[value] = struct{}{}
		return value, nil
	}
	return 0, fmt.Errorf("%w: no free value after %d attempts", ErrExhaustedIDSpace, MaxAttempts)
}

// TaxID returns a random 9-digit tax identifier.
func TaxID(r *rand.Rand) int64 {
	return intBetween(r, 100_000_000, 999_999_999)
}

// ISBN returns a random 13-digit publication identifier.
func ISBN(r *rand.Rand) int64 {
	return intBetween(r, 1_000_000_000_000, 9_999_999_999_999)
}

// Phone returns a phone-like number from one of two disjoint prefix ranges,
// mimicking mobile and landline numbering.
func Phone(r *rand.Rand) int64 {
	if r.Intn(2) == 0 {
		return intBetween(r, 6_900_000_000, 6_999_999_999)
	}
	return intBetween(r, 2_100_000_000, 2_899_999_999)
}

// DateBetween picks a uniform day in the inclusive range [start, end].
func DateBetween(r *rand.Rand, start, end time.Time) (time.Time, error) {
	if end.Before(start) {
		return time.Time{}, fmt.Errorf("%w: date range end %s before start %s",
			ErrInfeasibleConstraint, end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	days := int(end.Sub(start).Hours() / 24)
	return start.AddDate(0, 0, r.Intn(days+1)), nil
}

// Partition splits total into parts random positive integers summing exactly
// to total. Each of the first parts-1 chunks reserves at least one unit for
// every remaining slot; the last chunk takes the remainder.
func Partition(r *rand.Rand, total, parts int) ([]int, error) {
	if parts < 1 {
		return nil, fmt.Errorf("%w: partition needs at least one part, got %d", ErrInfeasibleConstraint, parts)
	}
	if total < parts {
		return nil, fmt.Errorf("%w: cannot split %d into %d positive parts", ErrInfeasibleConstraint, total, parts)
	}

	result := make([]int, 0, parts)
	allocated := 0
	for i := 0; i < parts-1; i++ {
		maxChunk := total - allocated - (parts - 1 - i)
		chunk := 1 + r.Intn(maxChunk)
		result = append(result, chunk)
		allocated += chunk
	}
	result = append(result, total-allocated)
	return result, nil
}

// Pick returns a uniform element of values.
func Pick[T any](r *rand.Rand, values []T) T {
	return values[r.Intn(len(values))]
}

func intBetween(r *rand.Rand, low, high int64) int64 {
	return low + r.Int63n(high-low+1)
}
