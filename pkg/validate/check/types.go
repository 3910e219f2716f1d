package check

import (
	"context"
	"path/filepath"
)

// Category is the single classification of a check.
type Category string

// Func is the body of a check. It reports faults through report and may
// return the error produced by Reporter.Fail to stop early. Any other
// returned error is treated as an internal fault of the check.
type Func func(ctx context.Context, target Target, report *Reporter) error

// Definition describes one diagnostic unit.
type Definition struct {
	// ID uniquely identifies the check within a registry, e.g. "basic.arp".
	ID string

	// Name is the human-readable display name.
	Name string

	Category Category

	// Tags select the check for execution; at least one is required.
	Tags []string

	Func Func
}

// Path resolves an absolute host path against the target root.
func (t Target) Path(hostPath string) string {
	root := t.Root
	if root == "" {
		root = "/"
	}

	return filepath.Join(root, hostPath)
}
