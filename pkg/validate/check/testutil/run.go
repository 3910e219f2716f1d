package testutil

import (
	"context"

	"github.com/datera/ddct/pkg/validate/check"
)

// RunCheck invokes the body of def directly against target and returns the
// records it reported along with the error it returned.
func RunCheck(ctx context.Context, target check.Target, def check.Definition) ([]check.Record, error) {
	sink := check.NewSink()
	err := def.Func(ctx, target, check.NewReporter(sink, def))

	return sink.Records(), err
}

// Codes returns the fault codes of records in order.
func Codes(records []check.Record) []string {
	codes := make([]string, 0, len(records))
	for _, r := range records {
		codes = append(codes, r.Code)
	}

	return codes
}
