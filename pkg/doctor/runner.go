// Package doctor runs the selected diagnostic checks against a host and
// assembles the run report.
package doctor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/checks/basic"
	"github.com/datera/ddct/pkg/validate/plugin"
)

// Option configures a Runner.
type Option func(*Runner)

// WithCatalog replaces the plugin catalog.
func WithCatalog(catalog plugin.Catalog) Option {
	return func(r *Runner) {
		r.catalog = catalog
	}
}

// WithBuiltins replaces the checks that every run starts from.
func WithBuiltins(builtins func() []check.Definition) Option {
	return func(r *Runner) {
		r.builtins = builtins
	}
}

// WithLogger sets the logger for run diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Runner builds a registry per call and executes the selected checks.
type Runner struct {
	catalog  plugin.Catalog
	builtins func() []check.Definition
	logger   *slog.Logger
}

// NewRunner creates a runner with the built-in checks and the default
// plugin catalog.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		catalog:  plugin.DefaultCatalog(),
		builtins: basic.Checks,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// registry assembles a fresh registry from the built-ins and the requested
// plugins.
func (r *Runner) registry(plugins []string) (*check.CheckRegistry, error) {
	registry := check.NewRegistry()

	for _, def := range r.builtins() {
		if err := registry.Register(def); err != nil {
			return nil, fmt.Errorf("registering built-in check: %w", err)
		}
	}

	if err := plugin.Load(registry, r.catalog, plugins); err != nil {
		return nil, err
	}

	return registry, nil
}

// RunChecks executes every selected check concurrently, waits for all of
// them, and returns the report. An error is returned only when the run could
// not start; check faults are part of the report.
func (r *Runner) RunChecks(ctx context.Context, target check.Target, opts RunOptions) (*Report, error) {
	registry, err := r.registry(opts.Plugins)
	if err != nil {
		return nil, err
	}

	selected := check.Select(registry.ListAll(), opts.IncludeTags, opts.ExcludeTags)

	runID := uuid.NewString()
	logger := r.logger.With("run", runID)
	logger.DebugContext(ctx, "running checks", "selected", len(selected), "plugins", opts.Plugins)

	sink := check.NewSink()
	executions := check.NewExecutor(check.WithLogger(logger)).Execute(ctx, target, selected, sink)

	records := sink.Records()
	report := &Report{
		RunID:   runID,
		Verdict: check.ComputeVerdict(records),
		Checks:  make([]Result, 0, len(executions)),
		Records: records,
	}

	for _, exec := range executions {
		report.Checks = append(report.Checks, Result{
			ID:       exec.Check.ID,
			Name:     exec.Check.Name,
			Category: exec.Check.Category,
			Tags:     exec.Check.Tags,
			Status:   exec.Status,
			Failures: exec.Failures,
			Warnings: exec.Warnings,
			Duration: exec.Duration,
		})
	}

	report.Summary = summarize(report.Checks)

	logger.DebugContext(ctx, "run finished", "verdict", report.Verdict, "records", len(records))

	return report, nil
}

// ListTags returns the sorted union of tags across the built-ins and the
// requested plugins. No check is executed.
func (r *Runner) ListTags(plugins []string) ([]string, error) {
	checks, err := r.ListChecks(plugins)
	if err != nil {
		return nil, err
	}

	return check.ListTags(checks), nil
}

// ListChecks returns the definitions that a run with these plugins would
// choose from, in registration order.
func (r *Runner) ListChecks(plugins []string) ([]check.Definition, error) {
	registry, err := r.registry(plugins)
	if err != nil {
		return nil, err
	}

	return registry.ListAll(), nil
}

func summarize(results []Result) Summary {
	summary := Summary{Total: len(results)}

	for _, res := range results {
		summary.Failures += res.Failures
		summary.Warnings += res.Warnings

		switch res.Status {
		case check.StatusPass:
			summary.Passed++
		case check.StatusWarn:
			summary.Warned++
		case check.StatusFail:
			summary.Failed++
		}
	}

	return summary
}
