package main

import (
	"fmt"
	"os"

	"accelbench/internal/config"
	"accelbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "accelbench [demo]",
	Short: "Compare reference and accelerated implementations of numeric algorithms",
	Long: `accelbench times a reference implementation of four numeric algorithms
(sum of squares, fibonacci, prime count, matrix multiplication) against an
accelerated implementation, checks that both agree, and reports the speedup.

Run without arguments for the interactive menu, or pass a demo name:
sum, squares, fib, fibonacci, prime, primes, matrix, mult, all, demo.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return runSelector(cmd, args[0])
		}
		return runInteractive(cmd)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'accelbench --help' for usage.")
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./accelbench.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
	rootCmd.PersistentFlags().Bool("reference-only", false, "Skip the accelerated implementation")
	rootCmd.PersistentFlags().String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")

	viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag(config.KeyReferenceOnly, rootCmd.PersistentFlags().Lookup("reference-only"))
	viper.BindPFlag(config.KeyMetricsAddr, rootCmd.PersistentFlags().Lookup("metrics-addr"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if err := config.Load(cfgFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	if err := config.ValidateConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
		return
	}

	s := config.Current()
	telemetry.InitLogger(s.Verbose, s.LogFile)

	if s.MetricsAddr != "" {
		startMetrics(s.MetricsAddr)
	}
}
