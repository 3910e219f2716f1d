package check

import (
	"errors"
	"fmt"
	"sync/atomic"
)

// ErrCheckFailed is returned by Reporter.Fail so that a check body can
// write "return report.Fail(...)" to stop after a fatal condition.
var ErrCheckFailed = errors.New("check failed")

// Reporter is the fault-reporting handle given to one running check.
// Every record it produces is attributed to that check.
type Reporter struct {
	sink  *Sink
	def   Definition
	fails atomic.Int32
	warns atomic.Int32
}

// NewReporter creates a reporter that appends to sink on behalf of def.
func NewReporter(sink *Sink, def Definition) *Reporter {
	return &Reporter{sink: sink, def: def}
}

// Fail records a fatal condition. It does not stop the check: callers
// decide whether to return the result or keep looking for more faults.
func (r *Reporter) Fail(message string, code string) error {
	r.fails.Add(1)
	r.append(SeverityFail, message, code)

	return ErrCheckFailed
}

// Failf is Fail with a formatted message.
func (r *Reporter) Failf(code string, format string, args ...any) error {
	return r.Fail(fmt.Sprintf(format, args...), code)
}

// Warn records a non-fatal condition.
func (r *Reporter) Warn(message string, code string) {
	r.warns.Add(1)
	r.append(SeverityWarn, message, code)
}

// Warnf is Warn with a formatted message.
func (r *Reporter) Warnf(code string, format string, args ...any) {
	r.Warn(fmt.Sprintf(format, args...), code)
}

// Failures returns the number of FAIL records reported so far.
func (r *Reporter) Failures() int {
	return int(r.fails.Load())
}

// Warnings returns the number of WARN records reported so far.
func (r *Reporter) Warnings() int {
	return int(r.warns.Load())
}

func (r *Reporter) append(severity Severity, message string, code string) {
	r.sink.Append(Record{
		CheckID:   r.def.ID,
		CheckName: r.def.Name,
		Severity:  severity,
		Message:   message,
		Code:      code,
	})
}
