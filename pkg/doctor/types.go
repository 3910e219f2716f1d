package doctor

import (
	"time"

	"github.com/datera/ddct/pkg/validate/check"
)

// Result is the outcome of one executed check.
type Result struct {
	ID       string         `json:"id"       yaml:"id"`
	Name     string         `json:"name"     yaml:"name"`
	Category check.Category `json:"category" yaml:"category"`
	Tags     []string       `json:"tags"     yaml:"tags"`
	Status   check.Status   `json:"status"   yaml:"status"`
	Failures int            `json:"failures" yaml:"failures"`
	Warnings int            `json:"warnings" yaml:"warnings"`
	Duration time.Duration  `json:"duration" yaml:"duration"`
}

// Summary counts checks by terminal status and records by severity.
type Summary struct {
	Total    int `json:"total"    yaml:"total"`
	Passed   int `json:"passed"   yaml:"passed"`
	Warned   int `json:"warned"   yaml:"warned"`
	Failed   int `json:"failed"   yaml:"failed"`
	Failures int `json:"failures" yaml:"failures"`
	Warnings int `json:"warnings" yaml:"warnings"`
}

// Report is the outcome of one run.
type Report struct {
	RunID   string         `json:"runId"   yaml:"runId"`
	Verdict check.Verdict  `json:"verdict" yaml:"verdict"`
	Summary Summary        `json:"summary" yaml:"summary"`
	Checks  []Result       `json:"checks"  yaml:"checks"`
	Records []check.Record `json:"records" yaml:"records"`
}

// RecordsFor returns the records reported by the check with the given ID,
// in arrival order.
func (r *Report) RecordsFor(id string) []check.Record {
	var result []check.Record

	for _, rec := range r.Records {
		if rec.CheckID == id {
			result = append(result, rec)
		}
	}

	return result
}

// RunOptions selects what a run executes.
type RunOptions struct {
	// Plugins are optional check plugins to load in addition to the
	// built-in checks.
	Plugins []string

	// IncludeTags keeps only checks carrying at least one of these tags.
	IncludeTags []string

	// ExcludeTags drops checks carrying any of these tags.
	ExcludeTags []string
}
