package check_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/datera/ddct/pkg/validate/check"

	. "github.com/onsi/gomega"
	. "github.com/onsi/gomega/gstruct"
)

func withFunc(def check.Definition, fn check.Func) check.Definition {
	def.Func = fn

	return def
}

func TestExecutor_SingleFailThenReturn(t *testing.T) {
	g := NewWithT(t)

	def := withFunc(newDefinition("single", check.CategoryOS, "basic"),
		func(_ context.Context, _ check.Target, r *check.Reporter) error {
			return r.Fail("m", "C")
		})

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, []check.Definition{def}, sink)

	g.Expect(sink.Records()).To(ConsistOf(MatchFields(IgnoreExtras, Fields{
		"CheckID":  Equal("single"),
		"Severity": Equal(check.SeverityFail),
		"Message":  Equal("m"),
		"Code":     Equal("C"),
	})))
	g.Expect(results).To(HaveLen(1))
	g.Expect(results[0].Status).To(Equal(check.StatusFail))
	g.Expect(results[0].Error).ToNot(HaveOccurred())
}

func TestExecutor_FailDoesNotStopCheck(t *testing.T) {
	g := NewWithT(t)

	def := withFunc(newDefinition("multi", check.CategoryOS, "basic"),
		func(_ context.Context, _ check.Target, r *check.Reporter) error {
			_ = r.Fail("x", "C1")
			_ = r.Fail("y", "C2")

			return nil
		})

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, []check.Definition{def}, sink)

	records := sink.Records()
	g.Expect(records).To(HaveLen(2))
	g.Expect(records[0].Code).To(Equal("C1"))
	g.Expect(records[1].Code).To(Equal("C2"))
	g.Expect(records[0].CheckID).To(Equal("multi"))
	g.Expect(records[1].CheckID).To(Equal("multi"))
	g.Expect(results[0].Failures).To(Equal(2))
}

func TestExecutor_WarnOnlyPasses(t *testing.T) {
	g := NewWithT(t)

	def := withFunc(newDefinition("warn", check.CategorySetup, "basic"),
		func(_ context.Context, _ check.Target, r *check.Reporter) error {
			r.Warn("Callhome is not enabled", "675E2887")

			return nil
		})

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, []check.Definition{def}, sink)

	g.Expect(results[0].Status).To(Equal(check.StatusWarn))
	g.Expect(check.ComputeVerdict(sink.Records())).To(Equal(check.VerdictPass))
}

func TestExecutor_RunsEveryCheckExactlyOnce(t *testing.T) {
	g := NewWithT(t)

	const n = 50

	var calls sync.Map

	checks := make([]check.Definition, 0, n)
	for i := range n {
		id := fmt.Sprintf("check.%d", i)
		checks = append(checks, withFunc(newDefinition(id, check.CategoryOS, "basic"),
			func(_ context.Context, _ check.Target, r *check.Reporter) error {
				counter, _ := calls.LoadOrStore(id, new(atomic.Int32))
				counter.(*atomic.Int32).Add(1)

				if i%2 == 0 {
					return r.Fail("even", "EVEN")
				}

				return nil
			}))
	}

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, checks, sink)

	g.Expect(results).To(HaveLen(n))

	for i, exec := range results {
		g.Expect(exec.Check.ID).To(Equal(checks[i].ID))

		counter, ok := calls.Load(exec.Check.ID)
		g.Expect(ok).To(BeTrue())
		g.Expect(counter.(*atomic.Int32).Load()).To(BeEquivalentTo(1))
	}

	g.Expect(sink.Records()).To(HaveLen(n / 2))
}

func TestExecutor_RunsChecksConcurrently(t *testing.T) {
	g := NewWithT(t)

	const n = 5

	// Every check blocks until all of them have started; a sequential
	// executor would never get past the first one.
	var started sync.WaitGroup
	started.Add(n)

	checks := make([]check.Definition, 0, n)
	for i := range n {
		checks = append(checks, withFunc(newDefinition(fmt.Sprintf("barrier.%d", i), check.CategoryNetwork, "connection"),
			func(ctx context.Context, _ check.Target, _ *check.Reporter) error {
				started.Done()
				started.Wait()

				return nil
			}))
	}

	done := make(chan []check.CheckExecution)
	go func() {
		done <- check.NewExecutor().Execute(t.Context(), check.Target{}, checks, check.NewSink())
	}()

	g.Eventually(done).WithTimeout(5 * time.Second).Should(Receive(HaveLen(n)))
}

func TestExecutor_PanicBecomesInternalFailure(t *testing.T) {
	g := NewWithT(t)

	crashing := withFunc(newDefinition("crash", check.CategoryOS, "basic"),
		func(context.Context, check.Target, *check.Reporter) error {
			var m map[string]string
			m["boom"] = "x"

			return nil
		})

	sibling := withFunc(newDefinition("sibling", check.CategoryOS, "basic"),
		func(_ context.Context, _ check.Target, r *check.Reporter) error {
			r.Warn("still here", "W1")

			return nil
		})

	healthy := newDefinition("healthy", check.CategoryOS, "basic")

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{},
		[]check.Definition{crashing, sibling, healthy}, sink)

	internal := 0
	for _, rec := range sink.Records() {
		if rec.Code == check.CodeInternalError {
			internal++

			g.Expect(rec.CheckID).To(Equal("crash"))
			g.Expect(rec.Severity).To(Equal(check.SeverityFail))
			g.Expect(rec.Message).To(ContainSubstring("panic"))
		}
	}

	g.Expect(internal).To(Equal(1))
	g.Expect(results[0].Status).To(Equal(check.StatusFail))
	g.Expect(results[0].Error).To(HaveOccurred())
	g.Expect(results[1].Status).To(Equal(check.StatusWarn))
	g.Expect(results[2].Status).To(Equal(check.StatusPass))
}

func TestExecutor_UnexpectedErrorBecomesInternalFailure(t *testing.T) {
	g := NewWithT(t)

	def := withFunc(newDefinition("broken", check.CategorySetup, "basic"),
		func(context.Context, check.Target, *check.Reporter) error {
			return errors.New("connection refused")
		})

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, []check.Definition{def}, sink)

	g.Expect(sink.Records()).To(ConsistOf(MatchFields(IgnoreExtras, Fields{
		"Severity": Equal(check.SeverityFail),
		"Code":     Equal(check.CodeInternalError),
		"Message":  ContainSubstring("connection refused"),
	})))
	g.Expect(results[0].Error).To(MatchError(ContainSubstring("connection refused")))
}

func TestExecutor_WrappedFailSentinelIsNotInternal(t *testing.T) {
	g := NewWithT(t)

	def := withFunc(newDefinition("wrapped", check.CategoryOS, "basic"),
		func(_ context.Context, _ check.Target, r *check.Reporter) error {
			return fmt.Errorf("giving up: %w", r.Fail("bad", "B1"))
		})

	sink := check.NewSink()
	check.NewExecutor().Execute(t.Context(), check.Target{}, []check.Definition{def}, sink)

	g.Expect(sink.Records()).To(HaveLen(1))
	g.Expect(sink.Records()[0].Code).To(Equal("B1"))
}

func TestExecutor_NoChecks(t *testing.T) {
	g := NewWithT(t)

	sink := check.NewSink()
	results := check.NewExecutor().Execute(t.Context(), check.Target{}, nil, sink)

	g.Expect(results).To(BeEmpty())
	g.Expect(sink.Records()).To(BeEmpty())
}

type ctxKey struct{}

func TestExecutor_CanceledContextDoesNotReachChecks(t *testing.T) {
	g := NewWithT(t)

	ctx, cancel := context.WithCancel(context.WithValue(t.Context(), ctxKey{}, "run-1"))
	cancel()

	var (
		mu     sync.Mutex
		errs   []error
		values []any
	)

	def := withFunc(newDefinition("ctx", check.CategoryOS, "basic"),
		func(ctx context.Context, _ check.Target, r *check.Reporter) error {
			mu.Lock()
			errs = append(errs, ctx.Err())
			values = append(values, ctx.Value(ctxKey{}))
			mu.Unlock()

			if ctx.Err() != nil {
				return ctx.Err()
			}

			return r.Fail("inspected", "C1")
		})

	sink := check.NewSink()
	results := check.NewExecutor().Execute(ctx, check.Target{}, []check.Definition{def}, sink)

	g.Expect(errs).To(HaveExactElements(BeNil()))
	g.Expect(values).To(HaveExactElements(Equal("run-1")))
	g.Expect(results).To(HaveExactElements(MatchFields(IgnoreExtras, Fields{
		"Status": Equal(check.StatusFail),
		"Error":  BeNil(),
	})))
	g.Expect(sink.Records()).To(HaveExactElements(HaveField("Code", "C1")))
}
