package pluginversion

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrMalformedVersion is returned when a version has fewer than two
	// dot-separated components.
	ErrMalformedVersion = errors.New("version format is incorrect")
	// ErrUnsupportedVersionShape is returned by NextVersion for versions that
	// are neither MAJOR.MINOR nor MAJOR.MINOR.PATCH.
	ErrUnsupportedVersionShape = errors.New("unsupported version shape")
	// ErrNonNumericComponent is returned when the component to increment is
	// not an integer.
	ErrNonNumericComponent = errors.New("version component is not numeric")
)

// NextVersion proposes the version that follows current.
// A three-part version gets its patch bumped (3.4.1 -> 3.4.2),
// a two-part version gets its minor bumped (3.4 -> 3.5).
func NextVersion(current string) (string, error) {
	parts := strings.Split(current, ".")

	var idx int
	switch len(parts) {
	case 3:
		idx = 2
	case 2:
		idx = 1
	default:
		return "", fmt.Errorf("%w: %q has %d components, expected 2 or 3", ErrUnsupportedVersionShape, current, len(parts))
	}

	n, err := strconv.Atoi(parts[idx])
	if err != nil {
		return "", fmt.Errorf("%w: %q in %q: %w", ErrNonNumericComponent, parts[idx], current, err)
	}
	parts[idx] = strconv.Itoa(n + 1)

	return strings.Join(parts, "."), nil
}

// ReleaseVersion concatenates the first two components of version
// ("3.4.1" -> "34", "10.2" -> "102").
func ReleaseVersion(version string) (string, error) {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: %q", ErrMalformedVersion, version)
	}
	return parts[0] + parts[1], nil
}

// toSemver turns a plugin version into the canonical form understood by
// golang.org/x/mod/semver.
func toSemver(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}

// IsConventional reports whether version reads as a semantic version
// (MAJOR, MAJOR.MINOR or MAJOR.MINOR.PATCH, optionally with a prerelease).
func IsConventional(version string) bool {
	return semver.IsValid(toSemver(version))
}

// CompareVersions compares two plugin versions the way semver does.
// Versions that are not conventional compare lower than any conventional one.
func CompareVersions(a, b string) int {
	return semver.Compare(toSemver(a), toSemver(b))
}
