// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typetour/internal/tour"
)

var formatCmd = &cobra.Command{
	Use:   "format <value>",
	Short: "Print the text form of a number or a string",
	Long: `Format accepts either member of the text|number union. A plain decimal
literal is formatted as a number, so "42" and "42.0" both print 42. Anything
else, including "inf", "1e3" or "007", is text and prints unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), formatArg(args[0]))
		return nil
	},
}

func formatArg(s string) string {
	if n, err := parseNumber(s); err == nil {
		return n.String()
	}
	return tour.Format(s)
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
