package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dimq/dimension"
)

var dimsCmd = &cobra.Command{
	Use:   "dims",
	Short: "List known dimension families with derived symbols",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range dimension.Families() {
			dim, _ := dimension.Lookup(name)
			fmt.Printf("%-13s %s\n", name, dim)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(dimsCmd)
}
