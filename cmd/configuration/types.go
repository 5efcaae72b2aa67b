// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config holds the optional ksforge configuration file content. Every field
// is a pointer so that an absent setting can be told apart from a zero value
// when merging with command line flags.
type Config struct {
	// Confidence overrides the default confidence level for tests.
	Confidence *float64 `yaml:"confidence,omitempty"`
	// CompareWorkers overrides the default number of parallel workers for
	// batch comparisons.
	CompareWorkers *int `yaml:"compareWorkers,omitempty"`
	// FailFast overrides the default error behavior for batch comparisons.
	FailFast *bool `yaml:"failFast,omitempty"`
}
