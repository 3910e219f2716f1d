// Package osinfo identifies the Linux distribution of the host being validated.
package osinfo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/joho/godotenv"
)

// Supported distribution IDs, as reported by the ID field of os-release.
const (
	Ubuntu = "ubuntu"
	CentOS = "centos"
	RHEL   = "rhel"
)

//nolint:gochecknoglobals
var (
	supported = []string{Ubuntu, CentOS, RHEL}

	releaseFiles = []string{"etc/os-release", "usr/lib/os-release"}
)

// Detect returns the distribution ID of the system rooted at root when it
// is a supported one, or an empty string otherwise.
func Detect(root string) (string, error) {
	id, err := ReleaseID(root)
	if err != nil {
		return "", err
	}

	if !slices.Contains(supported, id) {
		return "", nil
	}

	return id, nil
}

// ReleaseID returns the lower-cased ID field of the os-release file under root.
func ReleaseID(root string) (string, error) {
	for _, name := range releaseFiles {
		f, err := os.Open(filepath.Join(root, name))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("opening %s: %w", name, err)
		}

		values, err := godotenv.Parse(f)
		_ = f.Close()

		if err != nil {
			return "", fmt.Errorf("parsing %s: %w", name, err)
		}

		return strings.ToLower(values["ID"]), nil
	}

	return "", nil
}
