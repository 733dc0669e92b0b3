// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/typetour/internal/tour"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Print the sum of two numbers",
	Long: `Add prints a + b. Arguments are plain decimal literals; integers are
summed exactly and anything with a fraction is summed as a float.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseNumber(args[0])
		if err != nil {
			return err
		}
		b, err := parseNumber(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), addNumbers(a, b))
		return nil
	},
}

// decimalLiteral matches plain decimal numbers: no exponent, no leading
// zeros, no inf or nan spellings.
var decimalLiteral = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)(\.[0-9]+)?$`)

// number is a parsed CLI argument. Integers keep full int64 precision.
type number struct {
	i       int64
	f       float64
	isFloat bool
}

func (n number) float() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.i)
}

func (n number) String() string {
	if n.isFloat {
		return tour.Format(n.f)
	}
	return tour.Format(n.i)
}

func parseNumber(s string) (number, error) {
	if !decimalLiteral.MatchString(s) {
		return number{}, fmt.Errorf("%q is not a number", s)
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return number{i: i}, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return number{}, fmt.Errorf("%q is not a number", s)
	}
	return number{f: f, isFloat: true}, nil
}

// addNumbers sums exactly when both sides are integers and the sum fits in
// an int64, and as floats otherwise.
func addNumbers(a, b number) string {
	if !a.isFloat && !b.isFloat {
		sum := tour.Add(a.i, b.i)
		if (b.i >= 0) == (sum >= a.i) {
			return tour.Format(sum)
		}
	}
	return tour.Format(tour.Add(a.float(), b.float()))
}

func init() {
	rootCmd.AddCommand(addCmd)
}
