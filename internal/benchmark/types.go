package benchmark

import (
	"encoding/json"
	"fmt"
	"time"

	"accelbench/internal/algorithms"
	apperrors "accelbench/internal/errors"
	"accelbench/internal/sysinfo"
)

// Result holds the timings and statistics of one benchmarked callable.
// It is built by Runner.Run and treated as read-only afterwards.
type Result struct {
	Name       string           `json:"name" yaml:"name"`
	Result     algorithms.Value `json:"result" yaml:"result"`
	Iterations int              `json:"iterations" yaml:"iterations"`
	Warmup     bool             `json:"warmup" yaml:"warmup"`
	Timings    []float64        `json:"times" yaml:"times"` // seconds, one per iteration
	Mean       float64          `json:"mean" yaml:"mean"`
	Median     float64          `json:"median" yaml:"median"`
	Min        float64          `json:"min" yaml:"min"`
	Max        float64          `json:"max" yaml:"max"`
	Stdev      float64          `json:"stdev" yaml:"stdev"` // 0 when Iterations == 1
	CILow      float64          `json:"ci_low" yaml:"ci_low"`
	CIHigh     float64          `json:"ci_high" yaml:"ci_high"`
	Confidence float64          `json:"confidence" yaml:"confidence"`
}

// UnmarshalJSON restores the interface-typed Result field from a saved report.
func (r *Result) UnmarshalJSON(data []byte) error {
	type alias Result
	aux := struct {
		*alias
		Result json.RawMessage `json:"result"`
	}{alias: (*alias)(r)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	v, err := algorithms.DecodeValue(aux.Result)
	if err != nil {
		return fmt.Errorf("result %q: %w", r.Name, err)
	}
	r.Result = v
	return nil
}

// Comparison is the record produced by comparing a reference and an optional
// accelerated implementation on identical input.
type Comparison struct {
	Task               string   `json:"task" yaml:"task"`
	Arg                int      `json:"arg" yaml:"arg"`
	Iterations         int      `json:"iterations" yaml:"iterations"`
	Reference          *Result  `json:"reference" yaml:"reference"`
	Accelerated        *Result  `json:"accelerated" yaml:"accelerated"`
	Speedup            *float64 `json:"speedup" yaml:"speedup"`
	ImprovementPercent *float64 `json:"improvement_percent" yaml:"improvement_percent"`
	ResultsMatch       *bool    `json:"results_match" yaml:"results_match"`
	PValue             *float64 `json:"p_value" yaml:"p_value"`
}

// HasAccelerated reports whether the accelerated variant was benchmarked.
func (c *Comparison) HasAccelerated() bool {
	return c.Accelerated != nil
}

// Err returns ErrResultMismatch when the two variants disagreed, nil otherwise.
func (c *Comparison) Err() error {
	if c.ResultsMatch != nil && !*c.ResultsMatch {
		return fmt.Errorf("%s: %w", c.Task, apperrors.ErrResultMismatch)
	}
	return nil
}

// OptimizationRecord compares a naive algorithm with its alternative form on the same suite.
type OptimizationRecord struct {
	Task         string   `json:"task" yaml:"task"`
	Arg          int      `json:"arg" yaml:"arg"`
	Baseline     *Result  `json:"baseline" yaml:"baseline"`
	Optimized    *Result  `json:"optimized" yaml:"optimized"`
	Speedup      *float64 `json:"speedup" yaml:"speedup"`
	ResultsMatch bool     `json:"results_match" yaml:"results_match"`
}

// SpeedupSummary aggregates speedups over the comparisons that have one.
type SpeedupSummary struct {
	Count  int     `json:"count" yaml:"count"`
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Stdev  float64 `json:"stdev" yaml:"stdev"`
}

// Report is a complete analysis run.
type Report struct {
	RunID               string               `json:"run_id" yaml:"run_id"`
	SystemInfo          sysinfo.Info         `json:"system_info" yaml:"system_info"`
	Results             []Comparison         `json:"results" yaml:"results"`
	OptimizationResults []OptimizationRecord `json:"optimization_results" yaml:"optimization_results"`
	Summary             *SpeedupSummary      `json:"summary" yaml:"summary"`
	Timestamp           time.Time            `json:"timestamp" yaml:"timestamp"`
}

// Mismatches returns the comparisons whose results disagreed.
func (r *Report) Mismatches() []Comparison {
	var out []Comparison
	for _, c := range r.Results {
		if c.Err() != nil {
			out = append(out, c)
		}
	}
	return out
}
