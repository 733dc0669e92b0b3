// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of typetour",
	Long:  `Version prints the build version, set with -ldflags "-X main.version=..." by mage build.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "typetour %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
