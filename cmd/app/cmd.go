// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

// Package app assembles the ksforge command line interface.
package app

import (
	"flag"
	"sync"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// klog flags install into the process-global flag set exactly once.
var initLoggingFlags = sync.OnceFunc(func() {
	klog.InitFlags(nil)
})

// NewCommand creates the ksforge root command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ksforge",
		Short: "Kolmogorov-Smirnov testing and documentation-site tooling",
		Long: `ksforge bundles the tooling of the Kolmogorov-Smirnov project: two sample
Kolmogorov-Smirnov tests on data files, critical value tables, normal deviate
generation for test data, and the configuration artifact of the project
documentation site.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(newTestCmd())
	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newCriticalValuesCmd())
	cmd.AddCommand(newNormalCmd())
	cmd.AddCommand(newSiteConfigCmd())
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newGenCmdDocs())

	initLoggingFlags()
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	return cmd
}
