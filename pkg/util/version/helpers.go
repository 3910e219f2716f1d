package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/blang/semver/v4"
)

// ErrNoVersions is returned by Latest when none of the candidates parse.
var ErrNoVersions = errors.New("no parseable versions")

// Parse parses a release string such as "v2.3.1" or "2.3", tolerating a
// leading "v" and missing patch components.
func Parse(s string) (semver.Version, error) {
	v, err := semver.ParseTolerant(strings.TrimSpace(s))
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version %q: %w", s, err)
	}

	return v, nil
}

// Latest returns the highest version among candidates. Unparseable entries
// (for example non-release tags) are skipped.
func Latest(candidates []string) (semver.Version, error) {
	var (
		latest semver.Version
		found  bool
	)

	for _, c := range candidates {
		v, err := Parse(c)
		if err != nil {
			continue
		}

		if !found || v.GT(latest) {
			latest = v
			found = true
		}
	}

	if !found {
		return semver.Version{}, ErrNoVersions
	}

	return latest, nil
}

// SameRelease reports whether have and want name the same release.
// Returns false if either does not parse.
func SameRelease(have string, want string) bool {
	h, err := Parse(have)
	if err != nil {
		return false
	}

	w, err := Parse(want)
	if err != nil {
		return false
	}

	return h.EQ(w)
}
