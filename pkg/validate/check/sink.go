package check

import "sync"

// Severity of a reported fault.
type Severity string

const (
	SeverityFail Severity = "FAIL"
	SeverityWarn Severity = "WARN"
)

// Record is one reported fault. Records are never modified once appended.
type Record struct {
	CheckID   string   `json:"checkId"   yaml:"checkId"`
	CheckName string   `json:"checkName" yaml:"checkName"`
	Severity  Severity `json:"severity"  yaml:"severity"`
	Message   string   `json:"message"   yaml:"message"`
	Code      string   `json:"code"      yaml:"code"`
}

// Sink accumulates records from concurrently running checks.
// Appends are atomic and preserve arrival order.
type Sink struct {
	mu      sync.Mutex
	records []Record
}

// NewSink creates an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Append adds a record.
func (s *Sink) Append(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, rec)
}

// Records returns a copy of all records in the order they were appended.
func (s *Sink) Records() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]Record, len(s.records))
	copy(result, s.records)

	return result
}
