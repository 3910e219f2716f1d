package cindervolume_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/datera/ddct/pkg/validate/check"
	"github.com/datera/ddct/pkg/validate/checks/plugins/cindervolume"
)

type staticSource struct {
	version string
	err     error
	calls   int
}

func (s *staticSource) LatestVersion(context.Context) (string, error) {
	s.calls++

	return s.version, s.err
}

func writeFile(t *testing.T, root string, hostPath string, content string) {
	t.Helper()

	path := filepath.Join(root, hostPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func findCheck(t *testing.T, defs []check.Definition, id string) check.Definition {
	t.Helper()

	for _, d := range defs {
		if d.ID == id {
			return d
		}
	}

	t.Fatalf("check %s not found", id)

	return check.Definition{}
}

func checks(source cindervolume.VersionSource) []check.Definition {
	return cindervolume.NewChecks(source)
}
