// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/daithiocrualaoich/ksforge/pkg/ks"
	"github.com/daithiocrualaoich/ksforge/pkg/writers"
	"github.com/spf13/cobra"
)

// smallestTableSize is the lower bound of the n2 range in generated critical
// value tables.
const smallestTableSize = 16

// newCriticalValuesCmd creates the command printing a critical values table
// for the two sample Kolmogorov-Smirnov test.
func newCriticalValuesCmd() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "critical-values <confidence> <num-samples> <limit>",
		Short: "Generate a critical values table for the two sample test",
		Long: `Generate the critical values of the two sample Kolmogorov-Smirnov test for
samples of size <num-samples> against samples of sizes 16 through <limit>
inclusive at the given confidence level.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			confidence, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("<confidence> must be a floating point number: %q", args[0])
			}
			n1, err := strconv.Atoi(args[1])
			if err != nil || n1 <= 0 {
				return fmt.Errorf("<num-samples> must be a positive integer: %q", args[1])
			}
			limit, err := strconv.Atoi(args[2])
			if err != nil || limit < smallestTableSize {
				return fmt.Errorf("<limit> must be an integer of at least %d: %q", smallestTableSize, args[2])
			}

			table, err := criticalValuesTable(confidence, n1, limit)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(table)
				return err
			}
			writer := &writers.FSWriter{Root: filepath.Dir(output)}
			return writer.Write(filepath.Base(output), "", table)
		},
	}

	command.Flags().StringVarP(&output, "output", "o", "",
		"Write the table to this file instead of standard output.")

	return command
}

func criticalValuesTable(confidence float64, n1, limit int) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "n1\tn2\tconfidence\tcritical_value")
	for n2 := smallestTableSize; n2 <= limit; n2++ {
		criticalValue, err := ks.CriticalValue(n1, n2, confidence)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(&buf, "%d\t%d\t%v\t%v\n", n1, n2, confidence, criticalValue)
	}
	return buf.Bytes(), nil
}
