// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/daithiocrualaoich/ksforge/pkg/samples"
	"github.com/spf13/cobra"
)

// newNormalCmd creates the command printing a sequence of Normal deviates,
// one per line, for use as test data.
func newNormalCmd() *cobra.Command {
	var seed int64
	command := &cobra.Command{
		Use:   "normal <num-deviates> <mean> <variance>",
		Short: "Print a sequence of normally distributed deviates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n <= 0 {
				return fmt.Errorf("<num-deviates> must be a positive integer: %q", args[0])
			}
			mean, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("<mean> must be a floating point number: %q", args[1])
			}
			variance, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return fmt.Errorf("<variance> must be a floating point number: %q", args[2])
			}

			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			xs, err := samples.Normal(rng, n, mean, variance)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, x := range xs {
				fmt.Fprintln(out, strconv.FormatFloat(x, 'g', -1, 64))
			}
			return nil
		},
	}

	command.Flags().Int64Var(&seed, "seed", 0,
		"Seed for the random number generator. Defaults to the current time.")

	return command
}
