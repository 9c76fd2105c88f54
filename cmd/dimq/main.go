// Command dimq is a unit-conversion front end over the dimq library:
// convert values between units, list units per dimension family, and
// inspect the known dimension families.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dimq",
	Short: "Dimensionally-safe unit conversion",
	Long: "dimq converts values between units of measure using the builtin " +
		"SI/imperial catalog, with dimension checking on every conversion.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
