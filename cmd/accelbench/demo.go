package main

import (
	"fmt"
	"strings"

	"accelbench/internal/demo"
	apperrors "accelbench/internal/errors"

	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo <name>",
	Short: "Run one demo (or all) without the menu",
	Long: `Runs a single demo and prints reference and accelerated timings side by side.
Names: ` + strings.Join(demo.Selectors(), ", "),
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSelector(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

// runSelector runs the demos named by selector.
func runSelector(cmd *cobra.Command, selector string) error {
	demos, err := demo.Lookup(selector)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Unknown demo: %s\n", selector)
		fmt.Fprintln(cmd.ErrOrStderr(), "Available: sum, fibonacci, prime, matrix, all")
		return err
	}

	h, accelerated := newHarness(cmd.OutOrStdout())
	if !accelerated {
		fmt.Fprintln(cmd.ErrOrStderr(), apperrors.Describe(apperrors.ErrAcceleratedUnavailable)+"; only reference functions will run.")
	}
	return h.RunAll(demos)
}
