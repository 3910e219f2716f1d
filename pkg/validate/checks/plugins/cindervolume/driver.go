package cindervolume

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"regexp"
	"strings"

	"github.com/datera/ddct/pkg/util/version"
	"github.com/datera/ddct/pkg/validate/check"
)

const (
	driverRelPath = "volume/drivers/datera/datera_iscsi.py"
	driverFile    = "datera_iscsi.py"
)

// Cinder package locations checked before falling back to a filesystem search.
//
//nolint:gochecknoglobals
var installLocations = []string{
	"/usr/lib/python2.7/dist-packages/cinder",
	"/usr/local/lib/python2.7/dist-packages/cinder",
	"/usr/lib/python2.7/site-packages/cinder",
	"/usr/local/lib/python2.7/site-packages/cinder",
	"/opt/stack/cinder/cinder",
}

var driverVersionRE = regexp.MustCompile(`^\s+VERSION = ['"]([\d.]+)['"]\s*$`)

// ErrInstallNotFound is returned when no Cinder installation can be located.
var ErrInstallNotFound = errors.New("cinder installation not found")

func newDriverCheck(source VersionSource) check.Definition {
	return check.Definition{
		ID:       "cinder_volume.driver",
		Name:     "Cinder Volume",
		Category: check.CategoryDriver,
		Tags:     []string{check.TagDriver, check.TagPlugin},
		Func: func(ctx context.Context, target check.Target, report *check.Reporter) error {
			target.Progressf("Checking Cinder volume driver")

			loc, err := detectInstall(ctx, target)
			if err != nil {
				return err
			}

			driverPath := path.Join(loc, driverRelPath)

			have, found, err := readDriverVersion(target.Path(driverPath))
			if err != nil {
				return err
			}

			if !found {
				return report.Failf(CodeDriverMissing,
					"Couldn't detect Datera Cinder driver install at %s", path.Join(loc, "volume/drivers"))
			}

			if have == "" {
				return report.Failf(CodeDriverNoVersion,
					"No version detected for Datera Cinder driver at %s", driverPath)
			}

			want, err := source.LatestVersion(ctx)
			if err != nil {
				return err
			}

			if !version.SameRelease(have, want) {
				return report.Failf(CodeDriverMismatch,
					"Cinder Driver version mismatch, have: %s, want: %s", have, want)
			}

			return nil
		},
	}
}

// detectInstall returns the host path of the cinder package.
func detectInstall(ctx context.Context, target check.Target) (string, error) {
	for _, loc := range installLocations {
		if info, err := os.Stat(target.Path(loc)); err == nil && info.IsDir() {
			return loc, nil
		}
	}

	target.Progressf("Normal cinder install not found, searching for driver")

	out, err := target.Shell.Run(ctx, "sudo find / -name "+driverFile)
	if err != nil || strings.TrimSpace(out) == "" || strings.Contains(out, "cinder-driver") {
		return "", fmt.Errorf("%w, usual locations: %s", ErrInstallNotFound, strings.Join(installLocations, ", "))
	}

	first, _, _ := strings.Cut(strings.TrimSpace(out), "\n")

	return strings.TrimSuffix(strings.TrimSpace(first), "/"+driverRelPath), nil
}

// readDriverVersion extracts the VERSION constant from the driver source.
// found is false when the file does not exist.
func readDriverVersion(file string) (ver string, found bool, err error) {
	f, err := os.Open(file)
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("opening driver: %w", err)
	}
	defer func() { _ = f.Close() }()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if m := driverVersionRE.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], true, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", true, fmt.Errorf("reading driver: %w", err)
	}

	return "", true, nil
}
