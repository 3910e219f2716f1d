package check

// Verdict is the outcome of a whole run.
type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

// ComputeVerdict returns FAIL iff at least one record has FAIL severity.
// Warnings never affect the verdict.
func ComputeVerdict(records []Record) Verdict {
	for _, rec := range records {
		if rec.Severity == SeverityFail {
			return VerdictFail
		}
	}

	return VerdictPass
}

// Success reports whether the verdict allows a zero exit status.
func (v Verdict) Success() bool {
	return v == VerdictPass
}
