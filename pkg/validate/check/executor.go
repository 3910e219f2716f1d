package check

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/errgroup"
)

// Status is the terminal state of one check execution.
type Status string

const (
	StatusPass Status = "PASS"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// CheckExecution bundles a check with its terminal state.
type CheckExecution struct {
	Check    Definition
	Status   Status
	Failures int
	Warnings int
	Duration time.Duration

	// Error is the internal fault (panic or unexpected error) converted into
	// a FAIL record, if any.
	Error error
}

// ExecutorOption configures an Executor.
type ExecutorOption func(*Executor)

// WithLogger sets the logger used for per-check debug diagnostics.
func WithLogger(logger *slog.Logger) ExecutorOption {
	return func(e *Executor) {
		e.logger = logger
	}
}

// Executor orchestrates check execution.
type Executor struct {
	logger *slog.Logger
}

// NewExecutor creates a new check executor.
func NewExecutor(opts ...ExecutorOption) *Executor {
	e := &Executor{
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Execute runs every check concurrently, one goroutine per check, and
// returns once all of them have finished. Records go to sink; the returned
// executions are in the same order as checks.
//
// A run always completes: checks see ctx values but never its cancellation,
// so a command cut short can not be mistaken for an inspected host.
func (e *Executor) Execute(ctx context.Context, target Target, checks []Definition, sink *Sink) []CheckExecution {
	ctx = context.WithoutCancel(ctx)
	results := make([]CheckExecution, len(checks))

	var g errgroup.Group

	for i, def := range checks {
		g.Go(func() error {
			results[i] = e.executeCheck(ctx, target, def, sink)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// executeCheck runs a single check and converts any internal fault into
// exactly one FAIL record.
func (e *Executor) executeCheck(ctx context.Context, target Target, def Definition, sink *Sink) CheckExecution {
	report := NewReporter(sink, def)
	logger := e.logger.With("check", def.ID)

	logger.DebugContext(ctx, "check started")
	start := time.Now()

	err := e.invoke(ctx, target, def, report, logger)

	exec := CheckExecution{
		Check:    def,
		Duration: time.Since(start),
	}

	if err != nil && !errors.Is(err, ErrCheckFailed) {
		exec.Error = err
		_ = report.Failf(CodeInternalError, "Check execution failed: %v", err)
	}

	exec.Failures = report.Failures()
	exec.Warnings = report.Warnings()

	switch {
	case exec.Failures > 0:
		exec.Status = StatusFail
	case exec.Warnings > 0:
		exec.Status = StatusWarn
	default:
		exec.Status = StatusPass
	}

	logger.DebugContext(ctx, "check finished",
		"status", exec.Status,
		"failures", exec.Failures,
		"warnings", exec.Warnings,
		"duration", exec.Duration,
	)

	return exec
}

// invoke calls the check body, turning a panic into an error.
func (e *Executor) invoke(
	ctx context.Context,
	target Target,
	def Definition,
	report *Reporter,
	logger *slog.Logger,
) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "check panicked", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	return def.Func(ctx, target, report)
}
