// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package ecdf implements empirical cumulative distribution functions.
package ecdf

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
)

// ErrEmptySample is returned when a distribution is requested for a sample
// without any elements.
var ErrEmptySample = errors.New("sample must be non-empty")

// Ecdf is an empirical cumulative distribution function computed over a
// sample. The constructor sorts a copy of the sample, which may be expensive
// for large inputs but amortizes well under repeated evaluation.
type Ecdf[T cmp.Ordered] struct {
	samples []T
}

// New constructs the empirical cumulative distribution function for the given
// sample. The sample must be non-empty.
func New[T cmp.Ordered](samples []T) (*Ecdf[T], error) {
	if len(samples) == 0 {
		return nil, ErrEmptySample
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)
	return &Ecdf[T]{samples: sorted}, nil
}

// Value returns the proportion of the sample that is less than or equal to t.
// The result is in [0, 1]: zero below the sample minimum and one at or above
// the sample maximum.
func (e *Ecdf[T]) Value(t T) float64 {
	n := len(e.samples)
	// Index of the first sample strictly greater than t, which equals the
	// number of samples <= t.
	leq := sort.Search(n, func(i int) bool { return e.samples[i] > t })
	return float64(leq) / float64(n)
}

// Percentile returns the p-th percentile of the sample using the Nearest Rank
// method. p must be between 1 and 100 inclusive, there is no 0-percentile.
func (e *Ecdf[T]) Percentile(p int) (T, error) {
	var zero T
	if p < 1 || p > 100 {
		return zero, fmt.Errorf("percentile must be between 1 and 100: %d", p)
	}
	rank := int(math.Ceil(float64(p) * float64(len(e.samples)) / 100.0))
	return e.samples[rank-1], nil
}

// Permille returns the p-th permille of the sample using the Nearest Rank
// method. p must be between 1 and 1000 inclusive, there is no 0-permille.
func (e *Ecdf[T]) Permille(p int) (T, error) {
	var zero T
	if p < 1 || p > 1000 {
		return zero, fmt.Errorf("permille must be between 1 and 1000: %d", p)
	}
	rank := int(math.Ceil(float64(p) * float64(len(e.samples)) / 1000.0))
	return e.samples[rank-1], nil
}

// Rank returns the r-th smallest element of the sample. r must be between 1
// and the sample length inclusive.
func (e *Ecdf[T]) Rank(r int) (T, error) {
	var zero T
	if r < 1 || r > len(e.samples) {
		return zero, fmt.Errorf("rank must be between 1 and sample length %d: %d", len(e.samples), r)
	}
	return e.samples[r-1], nil
}

// Min returns the smallest element of the sample.
func (e *Ecdf[T]) Min() T {
	return e.samples[0]
}

// Max returns the largest element of the sample.
func (e *Ecdf[T]) Max() T {
	return e.samples[len(e.samples)-1]
}

// Len returns the sample size.
func (e *Ecdf[T]) Len() int {
	return len(e.samples)
}

// Value calculates a single empirical cumulative distribution value without
// constructing an Ecdf. The linear scan does not amortize across calls: use
// New when many evaluations over the same sample are needed.
func Value[T cmp.Ordered](samples []T, t T) (float64, error) {
	if len(samples) == 0 {
		return 0, ErrEmptySample
	}
	leq := 0
	for _, s := range samples {
		if s <= t {
			leq++
		}
	}
	return float64(leq) / float64(len(samples)), nil
}

// Percentile calculates a single percentile by the Nearest Rank method using
// Quick Select. Runs in O(n) without amortizing across calls.
func Percentile[T cmp.Ordered](samples []T, p int) (T, error) {
	var zero T
	if len(samples) == 0 {
		return zero, ErrEmptySample
	}
	if p < 1 || p > 100 {
		return zero, fmt.Errorf("percentile must be between 1 and 100: %d", p)
	}
	rank := int(math.Ceil(float64(p) * float64(len(samples)) / 100.0))
	return Rank(samples, rank)
}

// Permille calculates a single permille by the Nearest Rank method using
// Quick Select. Runs in O(n) without amortizing across calls.
func Permille[T cmp.Ordered](samples []T, p int) (T, error) {
	var zero T
	if len(samples) == 0 {
		return zero, ErrEmptySample
	}
	if p < 1 || p > 1000 {
		return zero, fmt.Errorf("permille must be between 1 and 1000: %d", p)
	}
	rank := int(math.Ceil(float64(p) * float64(len(samples)) / 1000.0))
	return Rank(samples, rank)
}

// Rank calculates the r-th smallest sample element using Quick Select. Runs
// in O(n) without amortizing across calls.
func Rank[T cmp.Ordered](samples []T, r int) (T, error) {
	var zero T
	n := len(samples)
	if n == 0 {
		return zero, ErrEmptySample
	}
	if r < 1 || r > n {
		return zero, fmt.Errorf("rank must be between 1 and sample length %d: %d", n, r)
	}

	s := slices.Clone(samples)
	low, high := 0, n

	for {
		pivot := s[low]
		if low >= high-1 {
			return pivot, nil
		}

		// Partition so that all items less than pivot are to the left.
		// bottom ends up as the number of items less than pivot.
		bottom, top := low, high-1
		for bottom < top {
			for bottom < top && s[bottom] < pivot {
				bottom++
			}
			for bottom < top && s[top] >= pivot {
				top--
			}
			if bottom < top {
				s[bottom], s[top] = s[top], s[bottom]
			}
		}

		if r <= bottom {
			// Rank item is less than pivot. Exclude pivot and larger items.
			high = bottom
			continue
		}

		// Rank item is the pivot or in the larger set. Exclude smaller items,
		// then move pivot-equal items to the left to see if the pivot is it.
		low = bottom
		bottom, top = low, high-1
		for bottom < top {
			for bottom < top && s[bottom] == pivot {
				bottom++
			}
			for bottom < top && s[top] != pivot {
				top--
			}
			if bottom < top {
				s[bottom], s[top] = s[top], s[bottom]
			}
		}

		if r <= bottom {
			return pivot, nil
		}

		// Rank item is greater than pivot. Exclude pivot and smaller items.
		low = bottom
	}
}
