package basic_test

import (
	"os"
	"path/filepath"
	"testing"
)

const (
	ubuntuRelease = "NAME=\"Ubuntu\"\nID=ubuntu\nVERSION_ID=\"20.04\"\n"
	centosRelease = "NAME=\"CentOS Linux\"\nID=\"centos\"\nVERSION_ID=\"7\"\n"
)

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
