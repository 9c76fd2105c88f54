package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
)

var convertCmd = &cobra.Command{
	Use:   "convert <value> <from-unit> <to-unit>",
	Short: "Convert a value between two units of the same dimension",
	Example: `  dimq convert 1000 meters kilometers
  dimq convert 0 celsius fahrenheit
  dimq convert 2.5 "nautical miles" kilometers`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("value %q is not a number: %w", args[0], err)
		}
		from, to := args[1], args[2]

		dim, err := resolveDimension(from, to)
		if err != nil {
			return err
		}
		calc, err := unit.GetCalculator(dim)
		if err != nil {
			return err
		}
		out, err := calc.Convert(v, from, to)
		if err != nil {
			return err
		}

		fmt.Printf("%g %s = %g %s\n", v, from, out, to)

		return nil
	},
}

// resolveDimension finds a dimension family whose unit table holds both
// names. Unit names are case-sensitive and scoped per dimension, so a name
// may exist in several tables; only a table holding both works.
func resolveDimension(from, to string) (dimension.Dimension, error) {
	fromKnown := false
	for _, dim := range unit.Dimensions() {
		if _, err := unit.Lookup(dim, from); err != nil {
			continue
		}
		fromKnown = true
		if _, err := unit.Lookup(dim, to); err == nil {
			return dim, nil
		}
	}

	if fromKnown {
		return dimension.Scalar, fmt.Errorf("%q and %q measure different dimensions", from, to)
	}

	return dimension.Scalar, fmt.Errorf("unknown unit %q", from)
}

func init() {
	rootCmd.AddCommand(convertCmd)
}
