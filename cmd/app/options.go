// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/daithiocrualaoich/ksforge/cmd/configuration"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// testOptions are the parameters for single and batch test runs, bound to
// flags via viper.
type testOptions struct {
	Confidence float64 `mapstructure:"confidence"`
	Integers   bool    `mapstructure:"integers"`
	Baseline   string  `mapstructure:"baseline"`
	Workers    int     `mapstructure:"workers"`
	FailFast   bool    `mapstructure:"fail-fast"`
}

// newTestOptions resolves options from flags and the optional configuration
// file. Explicitly set flags take priority over configuration file values.
func newTestOptions(cmd *cobra.Command, vip *viper.Viper, loader configuration.Loader) (*testOptions, error) {
	options := &testOptions{}
	if err := vip.Unmarshal(options); err != nil {
		return nil, err
	}

	config, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if !cmd.Flags().Changed("confidence") && config.Confidence != nil {
		options.Confidence = *config.Confidence
	}
	if cmd.Flags().Lookup("workers") != nil && !cmd.Flags().Changed("workers") && config.CompareWorkers != nil {
		options.Workers = *config.CompareWorkers
	}
	if cmd.Flags().Lookup("fail-fast") != nil && !cmd.Flags().Changed("fail-fast") && config.FailFast != nil {
		options.FailFast = *config.FailFast
	}
	return options, nil
}

func configureConfidenceFlag(command *cobra.Command, vip *viper.Viper) {
	command.Flags().Float64("confidence", 0.95,
		"Confidence level for the test. Must be strictly between zero and one.")
	_ = vip.BindPFlag("confidence", command.Flags().Lookup("confidence"))
}

func configureIntegersFlag(command *cobra.Command, vip *viper.Viper) {
	command.Flags().Bool("integers", false,
		"Treat the data files as integer samples instead of floating point samples.")
	_ = vip.BindPFlag("integers", command.Flags().Lookup("integers"))
}
