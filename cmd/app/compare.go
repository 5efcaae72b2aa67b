// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"fmt"

	"github.com/daithiocrualaoich/ksforge/cmd/configuration"
	"github.com/daithiocrualaoich/ksforge/pkg/jobs"
	"github.com/daithiocrualaoich/ksforge/pkg/ks"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

// compareTask is a single baseline-candidate comparison in a batch run.
type compareTask struct {
	index int
	path  string
}

// newCompareCmd creates the command testing every candidate data file
// against a baseline file, in parallel.
func newCompareCmd() *cobra.Command {
	vip := viper.New()
	command := &cobra.Command{
		Use:   "compare --baseline <file> <files...>",
		Short: "Test candidate data files against a baseline in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := newTestOptions(cmd, vip, &configuration.DefaultLoader{})
			if err != nil {
				return err
			}

			results := make([]*ks.Result, len(args))
			tasks := make([]interface{}, len(args))
			for i, path := range args {
				tasks[i] = &compareTask{index: i, path: path}
			}

			worker := jobs.WorkerFunc(func(ctx context.Context, task interface{}) error {
				t := task.(*compareTask)
				result, err := runFileTest(options.Baseline, t.path, options.Integers, options.Confidence)
				if err != nil {
					return fmt.Errorf("comparing %s: %w", t.path, err)
				}
				results[t.index] = result
				return nil
			})

			job := &jobs.Job{
				MaxWorkers: options.Workers,
				FailFast:   options.FailFast,
				Worker:     worker,
			}
			klog.V(1).Infof("comparing %d files against %s on %d workers", len(args), options.Baseline, options.Workers)
			dispatchErr := job.Dispatch(cmd.Context(), tasks)

			out := cmd.OutOrStdout()
			for i, result := range results {
				if result == nil {
					continue
				}
				verdict := "same"
				if result.IsRejected {
					verdict = "different"
				}
				fmt.Fprintf(out, "%s\t%s\tstatistic=%v\tcritical=%v\n", args[i], verdict, result.Statistic, result.CriticalValue)
			}

			return dispatchErr
		},
	}

	command.Flags().String("baseline", "",
		"Baseline data file every candidate file is tested against. Required flag.")
	_ = command.MarkFlagRequired("baseline")
	_ = vip.BindPFlag("baseline", command.Flags().Lookup("baseline"))

	command.Flags().Int("workers", 4,
		"Number of parallel workers for the comparison batch.")
	_ = vip.BindPFlag("workers", command.Flags().Lookup("workers"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))

	configureConfidenceFlag(command, vip)
	configureIntegersFlag(command, vip)

	return command
}
