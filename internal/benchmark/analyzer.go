package benchmark

import (
	"fmt"
	"log/slog"
	"time"

	"accelbench/internal/algorithms"
	"accelbench/internal/sysinfo"

	"github.com/google/uuid"
)

// AnalyzerConfig selects the suites and defaults of an analysis run.
type AnalyzerConfig struct {
	Reference   algorithms.Suite
	Accelerated algorithms.Suite // nil runs reference-only
	Iterations  int              // used by scenarios that leave Iterations at 0
	Warmup      bool
	SystemInfo  sysinfo.Info
	// OnTask is called before each scenario or optimization starts.
	OnTask func(task string)
}

// Analyzer runs a scenario list and assembles a Report.
type Analyzer struct {
	cfg        AnalyzerConfig
	comparator *Comparator
	now        func() time.Time
	newID      func() string
}

func NewAnalyzer(cfg AnalyzerConfig, runner *Runner) *Analyzer {
	if cfg.Reference == nil {
		cfg.Reference = algorithms.Reference()
	}
	if cfg.Iterations < 1 {
		cfg.Iterations = 5
	}
	return &Analyzer{
		cfg:        cfg,
		comparator: NewComparator(runner, cfg.Warmup),
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Run executes every scenario, then the optimization comparisons when the
// accelerated suite provides the alternative algorithms. The first error aborts the run.
func (a *Analyzer) Run(scenarios []Scenario, optimizations []Optimization) (*Report, error) {
	report := &Report{
		RunID:      a.newID(),
		SystemInfo: a.cfg.SystemInfo,
		Results:    make([]Comparison, 0, len(scenarios)),
	}

	for _, sc := range scenarios {
		if err := sc.Validate(); err != nil {
			return nil, err
		}
		iterations := sc.Iterations
		if iterations == 0 {
			iterations = a.cfg.Iterations
		}
		a.notify(sc.Task)

		ref, err := SuiteFunc(a.cfg.Reference, sc.Kind)
		if err != nil {
			return nil, err
		}
		acc, err := SuiteFunc(a.cfg.Accelerated, sc.Kind)
		if err != nil {
			return nil, err
		}

		cmp, err := a.comparator.Compare(sc.Task, ref, acc, sc.Arg, iterations)
		if err != nil {
			return nil, fmt.Errorf("scenario %q: %w", sc.Task, err)
		}
		report.Results = append(report.Results, *cmp)
	}

	opt, ok := a.cfg.Accelerated.(algorithms.Optimizer)
	if ok {
		for _, o := range optimizations {
			a.notify(o.Task)
			rec, err := a.runOptimization(opt, o)
			if err != nil {
				return nil, err
			}
			report.OptimizationResults = append(report.OptimizationResults, *rec)
		}
	} else if len(optimizations) > 0 {
		slog.Info("Skipping optimization comparisons, accelerated suite unavailable")
	}

	report.Summary = Summarize(report.Results)
	report.Timestamp = a.now()
	return report, nil
}

func (a *Analyzer) runOptimization(opt algorithms.Optimizer, o Optimization) (*OptimizationRecord, error) {
	baseline, err := SuiteFunc(a.cfg.Accelerated, o.Kind)
	if err != nil {
		return nil, err
	}
	optimized, err := OptimizedFunc(opt, o.Kind)
	if err != nil {
		return nil, err
	}

	baseIter, optIter := o.BaselineIterations, o.OptimizedIterations
	if baseIter < 1 {
		baseIter = a.cfg.Iterations
	}
	if optIter < 1 {
		optIter = a.cfg.Iterations
	}

	rec, err := a.comparator.CompareOptimization(o.Task, baseline, optimized, o.Arg, baseIter, optIter)
	if err != nil {
		return nil, fmt.Errorf("optimization %q: %w", o.Task, err)
	}
	return rec, nil
}

func (a *Analyzer) notify(task string) {
	if a.cfg.OnTask != nil {
		a.cfg.OnTask(task)
	}
}
