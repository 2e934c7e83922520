package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// releasePattern is the release tag grammar: "r" followed by one or more digits.
var releasePattern = regexp.MustCompile(`^r(\d+)$`)

// ReleaseTag is an operator-supplied release identifier like "r47".
type ReleaseTag struct {
	Raw    string // input as given, e.g. "r007"
	Number int    // extracted build number, e.g. 7
}

// ParseReleaseTag validates s against the release tag grammar and extracts
// the build number. Leading zeros collapse: "r007" parses to 7.
func ParseReleaseTag(s string) (ReleaseTag, error) {
	m := releasePattern.FindStringSubmatch(s)
	if m == nil {
		return ReleaseTag{}, fmt.Errorf("not a valid version: %q (expected r<digits>)", s)
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return ReleaseTag{}, fmt.Errorf("not a valid version: %q: %w", s, err)
	}
	return ReleaseTag{Raw: s, Number: n}, nil
}

// String returns the canonical tag form, formatted from the extracted
// integer, so "r007" comes back as "r7".
func (t ReleaseTag) String() string {
	return fmt.Sprintf("r%d", t.Number)
}

// SemVer expands the release number into its semantic version: r47 -> 47.0.0.
func (t ReleaseTag) SemVer() Version {
	return Version{Major: t.Number}
}

type Version struct {
	Major int
	Minor int
	Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Parse parses a version string in the format "X.Y.Z"
func Parse(versionStr string) (Version, error) {
	parts := strings.Split(versionStr, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: expected X.Y.Z, got %s", versionStr)
	}

	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %w", err)
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %w", err)
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %w", err)
	}

	return Version{Major: major, Minor: minor, Patch: patch}, nil
}
