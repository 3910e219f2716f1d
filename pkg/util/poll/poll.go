package poll

import (
	"context"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Settings bounds a polling loop with a fixed number of attempts and a
// fixed delay between them.
type Settings struct {
	Attempts int
	Interval time.Duration
}

// Until evaluates cond up to s.Attempts times, sleeping s.Interval between
// attempts, and reports whether it was satisfied. A canceled context ends
// the loop early and reports false.
func Until(ctx context.Context, s Settings, cond func(context.Context) bool) bool {
	attempts := max(s.Attempts, 1)

	backoff := wait.Backoff{
		Duration: s.Interval,
		Factor:   1,
		Steps:    attempts,
	}

	err := wait.ExponentialBackoffWithContext(ctx, backoff, func(ctx context.Context) (bool, error) {
		return cond(ctx), nil
	})

	return err == nil
}
