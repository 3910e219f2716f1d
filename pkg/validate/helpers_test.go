package validate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"k8s.io/cli-runtime/pkg/genericiooptions"

	"github.com/datera/ddct/pkg/doctor"
	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/plugin"
)

type testStreams struct {
	streams genericiooptions.IOStreams
	out     *bytes.Buffer
	errOut  *bytes.Buffer
}

func newStreams() testStreams {
	var out, errOut bytes.Buffer

	return testStreams{
		streams: genericiooptions.IOStreams{
			In:     &bytes.Buffer{},
			Out:    &out,
			ErrOut: &errOut,
		},
		out:    &out,
		errOut: &errOut,
	}
}

// clearEnv keeps DAT_* variables of the machine running the tests out of
// config loading.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{"DAT_MGMT", "DAT_VIP1", "DAT_VIP2", "DAT_USER", "DAT_PASS", "DAT_TENANT", "DAT_API"} {
		t.Setenv(name, "")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "datera-config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	return path
}

const validConfig = `{
  "mgmt_ip": "172.19.1.41",
  "vip1_ip": "172.28.41.9",
  "username": "admin",
  "password": "password"
}`

func definition(id string, fn check.Func, tags ...string) check.Definition {
	return check.Definition{
		ID:       id,
		Name:     id,
		Category: check.CategoryOS,
		Tags:     tags,
		Func:     fn,
	}
}

func failWith(code string) check.Func {
	return func(_ context.Context, _ check.Target, r *check.Reporter) error {
		return r.Fail("failed", code)
	}
}

func warnWith(code string) check.Func {
	return func(_ context.Context, _ check.Target, r *check.Reporter) error {
		r.Warn("warned", code)

		return nil
	}
}

func progress(message string) check.Func {
	return func(_ context.Context, target check.Target, _ *check.Reporter) error {
		target.Progressf("%s", message)

		return nil
	}
}

func counting(calls *atomic.Int32) check.Func {
	return func(context.Context, check.Target, *check.Reporter) error {
		calls.Add(1)

		return nil
	}
}

func runner(defs ...check.Definition) *doctor.Runner {
	return doctor.NewRunner(
		doctor.WithBuiltins(func() []check.Definition { return defs }),
		doctor.WithCatalog(plugin.Catalog{
			"extra": func() []check.Definition {
				return []check.Definition{definition("extra.d", warnWith("D1"), check.TagDriver, check.TagPlugin)}
			},
		}),
	)
}
