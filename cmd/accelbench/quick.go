package main

import (
	"fmt"

	"accelbench/internal/benchmark"

	"github.com/spf13/cobra"
)

const quickArg = 1000

var quickCmd = &cobra.Command{
	Use:   "quick",
	Short: "Check that both implementations agree on sum_of_squares(1000)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		ref, acc := resolveSuites()

		refFn, err := benchmark.SuiteFunc(ref, benchmark.KindSum)
		if err != nil {
			return err
		}
		accFn, err := benchmark.SuiteFunc(acc, benchmark.KindSum)
		if err != nil {
			return err
		}

		c, err := benchmark.NewComparator(newRunner(), false).Compare("Quick check", refFn, accFn, quickArg, 1)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Reference result:   %v\n", c.Reference.Result)
		if !c.HasAccelerated() {
			fmt.Fprintln(out, "Accelerated result: not available")
			return nil
		}
		fmt.Fprintf(out, "Accelerated result: %v\n", c.Accelerated.Result)
		fmt.Fprintf(out, "Results match:      %t\n", *c.ResultsMatch)
		if c.Speedup != nil {
			fmt.Fprintf(out, "Speedup:            %.1fx\n", *c.Speedup)
		}
		return c.Err()
	},
}

func init() {
	rootCmd.AddCommand(quickCmd)
}
