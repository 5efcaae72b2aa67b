// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package samples reads and generates single-column numeric data samples.
package samples

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

// ReadFloats parses a single-column headerless data file of floating point
// numbers, one per line. Blank lines are skipped. NaN values are rejected
// because they are unorderable and would poison the test statistic.
func ReadFloats(path string) ([]float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var xs []float64
	if err := scanLines(file, func(line string, number int) error {
		x, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return fmt.Errorf("%s:%d: not a floating point number: %q", path, number, line)
		}
		if math.IsNaN(x) {
			return fmt.Errorf("%s:%d: NaN is not an orderable sample value", path, number)
		}
		xs = append(xs, x)
		return nil
	}); err != nil {
		return nil, err
	}
	return xs, nil
}

// ReadInts parses a single-column headerless data file of integers, one per
// line. Blank lines are skipped.
func ReadInts(path string) ([]int64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var xs []int64
	if err := scanLines(file, func(line string, number int) error {
		x, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return fmt.Errorf("%s:%d: not an integer: %q", path, number, line)
		}
		xs = append(xs, x)
		return nil
	}); err != nil {
		return nil, err
	}
	return xs, nil
}

func scanLines(r io.Reader, parse func(line string, number int) error) error {
	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := parse(line, number); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// Normal generates n normally distributed deviates with the given mean and
// variance. The variance must not be negative.
func Normal(rng *rand.Rand, n int, mean, variance float64) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("number of deviates must be positive: %d", n)
	}
	if variance < 0 || math.IsNaN(variance) {
		return nil, fmt.Errorf("variance must not be negative: %v", variance)
	}

	stddev := math.Sqrt(variance)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = rng.NormFloat64()*stddev + mean
	}
	return xs, nil
}
