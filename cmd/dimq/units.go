package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dimq/dimension"
	"github.com/katalvlaran/dimq/unit"
)

var unitsCmd = &cobra.Command{
	Use:     "units <dimension>",
	Short:   "List registered units for a dimension family",
	Example: "  dimq units length\n  dimq units temperature",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dim, ok := dimension.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown dimension %q (try: %s)",
				args[0], strings.Join(dimension.Families(), ", "))
		}

		names, err := unit.Units(dim)
		if err != nil {
			return err
		}
		base, err := unit.BaseUnit(dim)
		if err != nil {
			return err
		}

		for _, name := range names {
			if name == base {
				fmt.Printf("%s (base)\n", name)
			} else {
				fmt.Println(name)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(unitsCmd)
}
