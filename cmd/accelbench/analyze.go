package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"accelbench/internal/benchmark"
	"accelbench/internal/config"
	"accelbench/internal/ui"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	analyzeScenarios         string
	analyzeFormat            string
	analyzeNoFiles           bool
	analyzeSkipOptimizations bool
	analyzeSave              bool
	analyzeCompare           bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full benchmark analysis and write a report",
	Long: `Benchmarks every scenario with both implementations, compares the naive
algorithms with their optimized forms, and prints a report. The JSON and text
reports are also written to the configured paths unless --no-files is given.

Use --save to append the run to the history file and --compare to diff it
against the previous saved run.`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().Int("iterations", 5, "Timed iterations per scenario")
	analyzeCmd.Flags().Bool("warmup", true, "Run one untimed call before timing")
	analyzeCmd.Flags().String("json", "performance_analysis.json", "Path of the JSON report")
	analyzeCmd.Flags().String("text", "performance_report.txt", "Path of the text report")
	analyzeCmd.Flags().Float64("threshold", 10.0, "Regression threshold in percent for --compare")
	analyzeCmd.Flags().StringVar(&analyzeScenarios, "scenarios", "", "Scenario file (.yaml or .toml) replacing the built-in list")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "Output format: text, markdown, json, yaml")
	analyzeCmd.Flags().BoolVar(&analyzeNoFiles, "no-files", false, "Do not write the report files")
	analyzeCmd.Flags().BoolVar(&analyzeSkipOptimizations, "skip-optimizations", false, "Skip the optimized-algorithm comparisons")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Append this run to the history file")
	analyzeCmd.Flags().BoolVar(&analyzeCompare, "compare", false, "Compare with the last saved run")

	viper.BindPFlag(config.KeyIterations, analyzeCmd.Flags().Lookup("iterations"))
	viper.BindPFlag(config.KeyWarmup, analyzeCmd.Flags().Lookup("warmup"))
	viper.BindPFlag(config.KeyReportJSONPath, analyzeCmd.Flags().Lookup("json"))
	viper.BindPFlag(config.KeyReportTextPath, analyzeCmd.Flags().Lookup("text"))
	viper.BindPFlag(config.KeyRegressionThreshold, analyzeCmd.Flags().Lookup("threshold"))
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	s := config.Current()
	out := cmd.OutOrStdout()

	scenarios := benchmark.DefaultScenarios()
	if analyzeScenarios != "" {
		loaded, err := config.LoadScenarios(analyzeScenarios)
		if err != nil {
			return err
		}
		scenarios = loaded
	}
	var optimizations []benchmark.Optimization
	if !analyzeSkipOptimizations {
		optimizations = benchmark.DefaultOptimizations()
	}

	ref, acc := resolveSuites()
	if acc == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Warning("Running in reference-only mode."))
	}

	analyzer := benchmark.NewAnalyzer(benchmark.AnalyzerConfig{
		Reference:   ref,
		Accelerated: acc,
		Iterations:  s.Iterations,
		Warmup:      s.Warmup,
		SystemInfo:  collectSysInfo(acc != nil),
		OnTask: func(task string) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Benchmarking %s...\n", task)
		},
	}, newRunner())

	report, err := analyzer.Run(scenarios, optimizations)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if err := renderReport(out, report, analyzeFormat); err != nil {
		return err
	}

	if !analyzeNoFiles {
		if err := writeReports(report, s.ReportJSONPath, s.ReportTextPath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "\nDetailed results saved to %s and %s\n", s.ReportJSONPath, s.ReportTextPath)
	}

	if analyzeCompare || analyzeSave {
		store, err := newStoreFunc(s.HistoryFile)
		if err != nil {
			return err
		}
		if analyzeCompare {
			if err := compareWithLatest(out, store, report, s.RegressionThreshold); err != nil {
				return err
			}
		}
		if analyzeSave {
			if err := store.Save(*report); err != nil {
				return fmt.Errorf("failed to save run: %w", err)
			}
			fmt.Fprintf(out, "\nRun %s saved to %s\n", report.RunID, s.HistoryFile)
		}
	}

	if mismatches := report.Mismatches(); len(mismatches) > 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.Error(fmt.Sprintf("%d task(s) returned different results between implementations.", len(mismatches))))
	}
	return nil
}

func renderReport(w io.Writer, report *benchmark.Report, format string) error {
	switch format {
	case "text", "":
		return benchmark.RenderText(w, report)
	case "json":
		return benchmark.RenderJSON(w, report)
	case "yaml", "yml":
		return benchmark.RenderYAML(w, report)
	case "markdown", "md":
		md := benchmark.RenderMarkdown(report)
		if !isTerminal(w) {
			_, err := io.WriteString(w, md)
			return err
		}
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(100),
		)
		if err != nil {
			return fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		styled, err := renderer.Render(md)
		if err != nil {
			return fmt.Errorf("failed to render markdown: %w", err)
		}
		_, err = io.WriteString(w, styled)
		return err
	default:
		return fmt.Errorf("unknown format %q (use text, markdown, json or yaml)", format)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func writeReports(report *benchmark.Report, jsonPath, textPath string) error {
	if err := benchmark.WriteReportFile(jsonPath, report); err != nil {
		return err
	}

	f, err := os.Create(textPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", textPath, err)
	}
	defer f.Close()
	if err := benchmark.RenderText(f, report); err != nil {
		return fmt.Errorf("failed to write %s: %w", textPath, err)
	}
	return nil
}

func compareWithLatest(out io.Writer, store benchmark.Store, report *benchmark.Report, threshold float64) error {
	prev, err := store.LoadLatest()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}
	if prev == nil {
		fmt.Fprintln(out, "\nNo previous run to compare against.")
		return nil
	}

	deltas := benchmark.Diff(*prev, *report, threshold)
	fmt.Fprintf(out, "\n%s\n", ui.Section(fmt.Sprintf("Comparison with run %s", prev.RunID)))
	if len(deltas) == 0 {
		fmt.Fprintln(out, "No common tasks.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tREFERENCE\tACCELERATED\tSTATUS")
	regressions := 0
	for _, d := range deltas {
		acc := "-"
		if d.AcceleratedDiff != nil {
			acc = fmt.Sprintf("%+.2f%%", *d.AcceleratedDiff)
		}
		status := "ok"
		if d.Regression {
			status = "REGRESSION"
			regressions++
		}
		fmt.Fprintf(w, "%s\t%+.2f%%\t%s\t%s\n", d.Task, d.ReferenceDiff, acc, status)
	}
	w.Flush()

	if regressions > 0 {
		fmt.Fprintln(out, ui.Warning(fmt.Sprintf("%d regression(s) above %.1f%%", regressions, threshold)))
	}
	return nil
}
