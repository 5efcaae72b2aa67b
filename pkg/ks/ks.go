// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package ks implements the two sample Kolmogorov-Smirnov test.
package ks

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// minSampleSize is the smallest sample length the asymptotic Kolmogorov
// distribution approximation is accepted for. Smaller samples are rejected.
const minSampleSize = 13

// Result is the outcome of a two sample Kolmogorov-Smirnov test.
type Result struct {
	// IsRejected is true when the null hypothesis that the two samples are
	// drawn from the same distribution is rejected at the requested
	// confidence level.
	IsRejected bool
	// Statistic is the maximum vertical distance between the empirical
	// cumulative distribution functions of the two samples.
	Statistic float64
	// CriticalValue is the smallest statistic that would reject the null
	// hypothesis at the requested confidence level for these sample sizes.
	CriticalValue float64
	// RejectProbability is the confidence level at which the observed
	// statistic becomes significant for these sample sizes.
	RejectProbability float64
	// Confidence is the requested confidence level.
	Confidence float64
}

// Test performs a two sample Kolmogorov-Smirnov test at the given confidence
// level. Both samples must have more than 12 elements and confidence must be
// strictly between zero and one.
func Test[T cmp.Ordered](xs, ys []T, confidence float64) (*Result, error) {
	if err := validateSizes(len(xs), len(ys)); err != nil {
		return nil, err
	}
	if err := validateConfidence(confidence); err != nil {
		return nil, err
	}

	statistic := Statistic(xs, ys)
	rejectProbability := rejectProbability(statistic, len(xs), len(ys))
	criticalValue := criticalValue(len(xs), len(ys), confidence)

	return &Result{
		IsRejected:        rejectProbability > confidence,
		Statistic:         statistic,
		CriticalValue:     criticalValue,
		RejectProbability: rejectProbability,
		Confidence:        confidence,
	}, nil
}

// CriticalValue returns the smallest test statistic that is significant at
// the given confidence level for samples of the given sizes.
func CriticalValue(n1, n2 int, confidence float64) (float64, error) {
	if err := validateSizes(n1, n2); err != nil {
		return 0, err
	}
	if err := validateConfidence(confidence); err != nil {
		return 0, err
	}
	return criticalValue(n1, n2, confidence), nil
}

// Statistic computes the two sample test statistic, the maximum vertical
// distance between the sample ECDFs. It is zero for identical samples and one
// for samples with disjoint support. Both samples must be non-empty.
func Statistic[T cmp.Ordered](xs, ys []T) float64 {
	n := len(xs)
	m := len(ys)

	// The stepwise sweep requires sorted samples.
	xs = slices.Clone(xs)
	ys = slices.Clone(ys)
	slices.Sort(xs)
	slices.Sort(ys)

	// i, j index the first values in xs and ys greater than the current
	// sweep value. ecdfXs, ecdfYs hold the sample ECDFs at that value.
	var (
		i, j           int
		ecdfXs, ecdfYs float64
		statistic      float64
	)

	for i < n && j < m {
		// Advance through duplicate samples.
		x := xs[i]
		for i+1 < n && x == xs[i+1] {
			i++
		}
		y := ys[j]
		for j+1 < m && y == ys[j+1] {
			j++
		}

		// Step to the next sample value in the sweep from low to high.
		current := min(x, y)

		if current == x {
			ecdfXs = float64(i+1) / float64(n)
			i++
		}
		if current == y {
			ecdfYs = float64(j+1) / float64(m)
			j++
		}

		if diff := math.Abs(ecdfXs - ecdfYs); diff > statistic {
			statistic = diff
		}
	}

	// The rest of the samples need no walking. One ECDF is already at one
	// and the other only increases towards one, so the difference is
	// monotonically decreasing from here.

	return statistic
}

func validateSizes(n1, n2 int) error {
	if n1 == 0 || n2 == 0 {
		return fmt.Errorf("samples must be non-empty")
	}
	if n1 < minSampleSize || n2 < minSampleSize {
		return fmt.Errorf("samples must have more than 12 elements: %d, %d", n1, n2)
	}
	return nil
}

func validateConfidence(confidence float64) error {
	if !(0.0 < confidence && confidence < 1.0) {
		return fmt.Errorf("confidence must be strictly between zero and one: %v", confidence)
	}
	return nil
}

// rejectProbability is the confidence level at which samples of sizes n1, n2
// with the observed statistic are from different distributions, using the
// asymptotic Kolmogorov distribution.
func rejectProbability(statistic float64, n1, n2 int) float64 {
	f1 := float64(n1)
	f2 := float64(n2)
	lambda := math.Sqrt(f1*f2/(f1+f2)) * statistic

	// P(D > statistic) = 2 * sum_{i=1..inf} (-1)^(i-1) exp(-2 i^2 lambda^2),
	// summed until terms stop contributing.
	var sum float64
	converged := false
	for i := 1; i <= 100; i++ {
		term := math.Exp(-2.0 * float64(i*i) * lambda * lambda)
		if i%2 == 1 {
			sum += term
		} else {
			sum -= term
		}
		if term < 1e-10 {
			converged = true
			break
		}
	}

	exceedProbability := 2.0 * sum
	if !converged {
		// For small lambda the terms decay too slowly for the truncated
		// series to settle. The exceed probability is one in that regime:
		// any sample pair exceeds a vanishing statistic.
		exceedProbability = 1.0
	}
	exceedProbability = math.Max(0.0, math.Min(1.0, exceedProbability))

	return 1.0 - exceedProbability
}

// criticalValue searches for the smallest statistic with a reject probability
// exceeding the confidence level. The reject probability is monotonically
// increasing in the statistic, so bisection on [0, 1] converges.
func criticalValue(n1, n2 int, confidence float64) float64 {
	low, high := 0.0, 1.0
	for i := 0; i < 200; i++ {
		mid := (low + high) / 2.0
		if rejectProbability(mid, n1, n2) > confidence {
			high = mid
		} else {
			low = mid
		}
		if high-low < 1e-12 {
			break
		}
	}
	return high
}
