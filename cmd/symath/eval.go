package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	symath "github.com/symath/symath"
)

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a single expression and print the result",
	Long: `Evaluates one line of input exactly as the REPL would and prints the
result string.

Examples:
  symath eval "2x + 3x"
  symath eval "solve(x^2-4=0)"
  symath eval "d/dx(x^3)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine := symath.NewEngine(symath.WithLogger(logger))
		fmt.Println(engine.Dispatch(strings.Join(args, " ")))
		return nil
	},
}
