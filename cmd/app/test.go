// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/daithiocrualaoich/ksforge/cmd/configuration"
	"github.com/daithiocrualaoich/ksforge/pkg/ks"
	"github.com/daithiocrualaoich/ksforge/pkg/samples"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// newTestCmd creates the command running a two sample Kolmogorov-Smirnov
// test on a pair of single-column headerless data files.
func newTestCmd() *cobra.Command {
	vip := viper.New()
	command := &cobra.Command{
		Use:   "test <file1> <file2>",
		Short: "Run a two sample Kolmogorov-Smirnov test on two data files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := newTestOptions(cmd, vip, &configuration.DefaultLoader{})
			if err != nil {
				return err
			}

			result, err := runFileTest(args[0], args[1], options.Integers, options.Confidence)
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		},
	}

	configureConfidenceFlag(command, vip)
	configureIntegersFlag(command, vip)

	return command
}

func runFileTest(path1, path2 string, integers bool, confidence float64) (*ks.Result, error) {
	if integers {
		xs, err := samples.ReadInts(path1)
		if err != nil {
			return nil, err
		}
		ys, err := samples.ReadInts(path2)
		if err != nil {
			return nil, err
		}
		klog.V(1).Infof("testing %d against %d integer samples", len(xs), len(ys))
		return ks.Test(xs, ys, confidence)
	}

	xs, err := samples.ReadFloats(path1)
	if err != nil {
		return nil, err
	}
	ys, err := samples.ReadFloats(path2)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("testing %d against %d floating point samples", len(xs), len(ys))
	return ks.Test(xs, ys, confidence)
}

func printResult(cmd *cobra.Command, result *ks.Result) {
	out := cmd.OutOrStdout()
	if result.IsRejected {
		fmt.Fprintln(out, "Samples are from different distributions.")
	} else {
		fmt.Fprintln(out, "Samples are from the same distributions.")
	}
	fmt.Fprintf(out, "test statistic = %v\n", result.Statistic)
	fmt.Fprintf(out, "critical value = %v\n", result.CriticalValue)
	fmt.Fprintf(out, "reject probability = %v\n", result.RejectProbability)
	fmt.Fprintf(out, "confidence = %v\n", result.Confidence)
}
