// SPDX-FileCopyrightText: 2015 Daithi O Crualaoich
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daithiocrualaoich/ksforge/pkg/siteconfig"
	"github.com/daithiocrualaoich/ksforge/pkg/writers"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// newSiteConfigCmd creates the command group for the documentation-site
// configuration artifact.
func newSiteConfigCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "siteconfig",
		Short: "Manage the documentation-site configuration artifact",
	}
	command.AddCommand(newSiteConfigGenerateCmd())
	command.AddCommand(newSiteConfigValidateCmd())
	return command
}

func newSiteConfigGenerateCmd() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "generate",
		Short: "Emit the canonical documentation-site configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := siteconfig.Default()
			if err := siteconfig.Validate(config); err != nil {
				return err
			}
			serialized, err := siteconfig.Serialize(config)
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), serialized)
				return err
			}
			writer := &writers.FSWriter{Root: filepath.Dir(output)}
			if err := writer.Write(filepath.Base(output), "", []byte(serialized)); err != nil {
				return err
			}
			klog.Infof("site configuration written to %s", output)
			return nil
		},
	}

	command.Flags().StringVarP(&output, "output", "o", "",
		"Write the configuration to this file instead of standard output.")

	return command
}

func newSiteConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a documentation-site configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			config, err := siteconfig.Parse(b)
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", args[0], err)
			}
			config.Complete()
			if err := siteconfig.Validate(config); err != nil {
				return fmt.Errorf("%s is not a valid site configuration: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid site configuration\n", args[0])
			return nil
		},
	}
}
