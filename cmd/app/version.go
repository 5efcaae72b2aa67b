// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"

	"github.com/daithiocrualaoich/ksforge/pkg/version"
	"github.com/spf13/cobra"
)

// newVersionCmd creates a version command printing the binary version as
// reported by the pkg/version Version variable.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Version)
		},
	}
}
