package check

import (
	"github.com/datera/ddct/pkg/config"
	"github.com/datera/ddct/pkg/util/api"
	"github.com/datera/ddct/pkg/util/iostreams"
	"github.com/datera/ddct/pkg/util/shell"
)

// Target holds everything a check needs to inspect the host. It is shared
// by value across concurrently running checks and must not be mutated.
type Target struct {
	// Config is the run configuration (management IP, VIPs, credentials).
	Config *config.Config

	// API is the handle to the remote management API.
	API api.Client

	// Shell executes command lines on the host.
	Shell shell.Runner

	// Root is the filesystem root that host paths are resolved against.
	// "/" in production, a temporary directory in tests.
	Root string

	// IO receives interim progress messages. Writes are serialized.
	IO iostreams.Interface
}

// Progressf emits an interim progress message, if the target has streams.
func (t Target) Progressf(format string, args ...any) {
	if t.IO == nil {
		return
	}

	t.IO.Errorf(format, args...)
}
