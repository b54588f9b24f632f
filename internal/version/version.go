// Package version wraps semver comparison for build version checks.
package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare compares two version strings using semver.
// Returns -1 if current < other, 0 if equal, 1 if current > other.
// Handles "v" prefix tolerance (strips leading "v" before parsing).
func Compare(current, other string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	ov, err := parseSemver(other)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", other, err)
	}
	return cv.Compare(ov), nil
}

// IsOlder returns true if current is strictly older than min.
func IsOlder(current, min string) (bool, error) {
	cmp, err := Compare(current, min)
	if err != nil {
		return false, err
	}
	return cmp == -1, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
