package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"accelbench/internal/algorithms"

	"gopkg.in/yaml.v3"
)

const (
	excellentSpeedup = 10.0
	goodSpeedup      = 3.0
)

// RenderJSON writes the report with every field, raw timings included.
func RenderJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}

// RenderYAML writes the report as a YAML document.
func RenderYAML(w io.Writer, r *Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return enc.Close()
}

// RenderText writes the plain-text performance report.
func RenderText(w io.Writer, r *Report) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(&b, rule)
	fmt.Fprintln(&b, "PERFORMANCE ANALYSIS REPORT")
	fmt.Fprintln(&b, rule)
	fmt.Fprintf(&b, "Run:       %s\n", r.RunID)
	fmt.Fprintf(&b, "Generated: %s\n\n", r.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(&b, "SYSTEM INFORMATION")
	fmt.Fprintln(&b, strings.Repeat("-", 20))
	fmt.Fprintf(&b, "Platform:     %s\n", r.SystemInfo.Platform)
	fmt.Fprintf(&b, "Processor:    %s\n", r.SystemInfo.Processor)
	fmt.Fprintf(&b, "Architecture: %s\n", r.SystemInfo.Architecture)
	fmt.Fprintf(&b, "CPUs:         %d\n", r.SystemInfo.NumCPU)
	fmt.Fprintf(&b, "Go:           %s\n", r.SystemInfo.GoVersion)
	fmt.Fprintf(&b, "Accelerated:  %s\n\n", availability(r.SystemInfo.AcceleratedAvailable))

	accelerated := hasAccelerated(r.Results)
	if accelerated {
		fmt.Fprintln(&b, "PERFORMANCE COMPARISON")
	} else {
		fmt.Fprintln(&b, "REFERENCE PERFORMANCE")
	}
	fmt.Fprintln(&b, strings.Repeat("-", 20))
	writeComparisonTable(&b, r.Results, accelerated)
	fmt.Fprintln(&b)

	if r.Summary != nil {
		fmt.Fprintln(&b, "STATISTICAL SUMMARY")
		fmt.Fprintln(&b, strings.Repeat("-", 20))
		fmt.Fprintf(&b, "Average Speedup: %.2fx\n", r.Summary.Mean)
		fmt.Fprintf(&b, "Median Speedup:  %.2fx\n", r.Summary.Median)
		fmt.Fprintf(&b, "Best Speedup:    %.2fx\n", r.Summary.Max)
		fmt.Fprintf(&b, "Worst Speedup:   %.2fx\n", r.Summary.Min)
		fmt.Fprintf(&b, "Std Deviation:   %.2f\n\n", r.Summary.Stdev)
	}

	if len(r.OptimizationResults) > 0 {
		fmt.Fprintln(&b, "ALGORITHM OPTIMIZATIONS")
		fmt.Fprintln(&b, strings.Repeat("-", 20))
		tw := tabwriter.NewWriter(&b, 0, 0, 3, ' ', 0)
		fmt.Fprintln(tw, "TASK\tBASELINE (ms)\tOPTIMIZED (ms)\tSPEEDUP\tMATCH")
		for _, o := range r.OptimizationResults {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				o.Task, millis(o.Baseline), millis(o.Optimized), ratio(o.Speedup), yesNo(o.ResultsMatch))
		}
		tw.Flush()
		fmt.Fprintln(&b)
	}

	if mismatches := r.Mismatches(); len(mismatches) > 0 {
		fmt.Fprintln(&b, "WARNINGS")
		fmt.Fprintln(&b, strings.Repeat("-", 20))
		for _, c := range mismatches {
			fmt.Fprintf(&b, "! %s: reference=%v accelerated=%v\n", c.Task, c.Reference.Result, c.Accelerated.Result)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintln(&b, "RECOMMENDATIONS")
	fmt.Fprintln(&b, strings.Repeat("-", 20))
	for _, rec := range Recommendations(r) {
		fmt.Fprintf(&b, "- %s\n", rec)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderMarkdown renders the report as a markdown document.
func RenderMarkdown(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance Analysis\n\n")
	fmt.Fprintf(&b, "Run `%s` at %s\n\n", r.RunID, r.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## System\n\n")
	fmt.Fprintf(&b, "- **Platform:** %s\n", r.SystemInfo.Platform)
	fmt.Fprintf(&b, "- **Processor:** %s\n", r.SystemInfo.Processor)
	fmt.Fprintf(&b, "- **Architecture:** %s (%d CPUs)\n", r.SystemInfo.Architecture, r.SystemInfo.NumCPU)
	fmt.Fprintf(&b, "- **Accelerated:** %s\n\n", availability(r.SystemInfo.AcceleratedAvailable))

	fmt.Fprintf(&b, "## Results\n\n")
	if hasAccelerated(r.Results) {
		fmt.Fprintln(&b, "| Task | Reference (ms) | Accelerated (ms) | Speedup | p-value | Match |")
		fmt.Fprintln(&b, "|---|---:|---:|---:|---:|:---:|")
		for _, c := range r.Results {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
				c.Task, millis(c.Reference), millis(c.Accelerated), ratio(c.Speedup), pvalue(c.PValue), match(c.ResultsMatch))
		}
	} else {
		fmt.Fprintln(&b, "| Task | Mean (ms) | Median (ms) | Stdev (ms) | Result |")
		fmt.Fprintln(&b, "|---|---:|---:|---:|---|")
		for _, c := range r.Results {
			fmt.Fprintf(&b, "| %s | %s | %.3f | %.3f | %v |\n",
				c.Task, millis(c.Reference), c.Reference.Median*1000, c.Reference.Stdev*1000, c.Reference.Result)
		}
	}
	fmt.Fprintln(&b)

	if r.Summary != nil {
		fmt.Fprintf(&b, "## Summary\n\n")
		fmt.Fprintf(&b, "Average speedup **%.2fx** (median %.2fx, range %.2fx to %.2fx) over %d comparisons.\n\n",
			r.Summary.Mean, r.Summary.Median, r.Summary.Min, r.Summary.Max, r.Summary.Count)
	}

	if len(r.OptimizationResults) > 0 {
		fmt.Fprintf(&b, "## Optimizations\n\n")
		fmt.Fprintln(&b, "| Task | Baseline (ms) | Optimized (ms) | Speedup | Match |")
		fmt.Fprintln(&b, "|---|---:|---:|---:|:---:|")
		for _, o := range r.OptimizationResults {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n",
				o.Task, millis(o.Baseline), millis(o.Optimized), ratio(o.Speedup), yesNo(o.ResultsMatch))
		}
		fmt.Fprintln(&b)
	}

	if mismatches := r.Mismatches(); len(mismatches) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, c := range mismatches {
			fmt.Fprintf(&b, "- **%s**: results differ (`%v` vs `%v`)\n", c.Task, c.Reference.Result, c.Accelerated.Result)
		}
		fmt.Fprintln(&b)
	}

	fmt.Fprintf(&b, "## Recommendations\n\n")
	for _, rec := range Recommendations(r) {
		fmt.Fprintf(&b, "- %s\n", rec)
	}
	return b.String()
}

// Recommendations derives advice from the average speedup.
func Recommendations(r *Report) []string {
	if r.Summary == nil {
		return []string{
			"Accelerated implementation not available, only reference timings were collected.",
			"Build without the noaccel tag and unset " + algorithms.DisableAcceleratedEnv + " to compare implementations.",
		}
	}

	var out []string
	switch avg := r.Summary.Mean; {
	case avg > excellentSpeedup:
		out = append(out, fmt.Sprintf("Excellent speedup (%.1fx average). The accelerated implementation is well suited to these workloads.", avg))
	case avg > goodSpeedup:
		out = append(out, fmt.Sprintf("Good speedup (%.1fx average). Consider moving more hot paths to the accelerated implementation.", avg))
	default:
		out = append(out, fmt.Sprintf("Modest speedup (%.1fx average). Profile the accelerated implementation before relying on it.", avg))
	}
	if len(r.Mismatches()) > 0 {
		out = append(out, "Some results differ between implementations. Fix correctness before trusting these timings.")
	}
	for _, o := range r.OptimizationResults {
		if o.Speedup != nil && *o.Speedup > excellentSpeedup {
			out = append(out, fmt.Sprintf("%s gains %.1fx from the algorithmic change alone.", o.Task, *o.Speedup))
		}
	}
	return out
}

func writeComparisonTable(w io.Writer, results []Comparison, accelerated bool) {
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	if accelerated {
		fmt.Fprintln(tw, "TASK\tREFERENCE (ms)\tACCELERATED (ms)\tSPEEDUP\tMATCH")
		for _, c := range results {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
				c.Task, millis(c.Reference), millis(c.Accelerated), ratio(c.Speedup), match(c.ResultsMatch))
		}
	} else {
		fmt.Fprintln(tw, "TASK\tMEAN (ms)\tSTDEV (ms)\tRESULT")
		for _, c := range results {
			fmt.Fprintf(tw, "%s\t%s\t%.3f\t%v\n", c.Task, millis(c.Reference), c.Reference.Stdev*1000, c.Reference.Result)
		}
	}
	tw.Flush()
}

func hasAccelerated(results []Comparison) bool {
	for _, c := range results {
		if c.HasAccelerated() {
			return true
		}
	}
	return false
}

func millis(r *Result) string {
	if r == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", r.Mean*1000)
}

func ratio(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2fx", *v)
}

func pvalue(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.3f", *v)
}

func match(v *bool) string {
	if v == nil {
		return "-"
	}
	return yesNo(*v)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "NO"
}

func availability(ok bool) string {
	if ok {
		return "available"
	}
	return "not available (reference-only mode)"
}
