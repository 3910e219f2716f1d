package testutil

import (
	"bytes"
	"testing"

	"github.com/datera/ddct/pkg/config"
	"github.com/datera/ddct/pkg/util/api"
	"github.com/datera/ddct/pkg/util/iostreams"
	"github.com/datera/ddct/pkg/util/shell"
	"github.com/datera/ddct/pkg/validate/check"
)

// TargetConfig holds all parameters needed to build a check.Target for tests.
type TargetConfig struct {
	// Root defaults to a fresh t.TempDir().
	Root   string
	Shell  shell.Runner
	API    api.Client
	Config *config.Config
}

// Streams exposes the buffers backing the target's IO.
type Streams struct {
	Out    *bytes.Buffer
	ErrOut *bytes.Buffer
}

// DefaultConfig returns a fully populated configuration for tests.
func DefaultConfig() *config.Config {
	return &config.Config{
		MgmtIP:     "172.19.1.41",
		VIP1IP:     "172.28.41.9",
		VIP2IP:     "172.29.41.9",
		Username:   "admin",
		Password:   "password",
		Tenant:     config.DefaultTenant,
		APIVersion: config.DefaultAPIVersion,
	}
}

// NewTarget builds a check.Target backed by in-memory streams, reducing
// test boilerplate.
func NewTarget(t *testing.T, cfg TargetConfig) (check.Target, Streams) {
	t.Helper()

	streams := Streams{
		Out:    &bytes.Buffer{},
		ErrOut: &bytes.Buffer{},
	}

	target := check.Target{
		Config: cfg.Config,
		API:    cfg.API,
		Shell:  cfg.Shell,
		Root:   cfg.Root,
		IO:     iostreams.NewSyncWrapper(iostreams.NewIOStreams(&bytes.Buffer{}, streams.Out, streams.ErrOut)),
	}

	if target.Config == nil {
		target.Config = DefaultConfig()
	}

	if target.Root == "" {
		target.Root = t.TempDir()
	}

	return target, streams
}
