// internal/docker/plan.go
//
// The planner turns a runtime.Context + parsed release tag into the list
// of publish targets. It scans the release directory, keeps entries whose
// names match the executable pattern, and derives both image references
// for each one. Selection is pure; no container tool is touched here.

package docker

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"relship/internal/runtime"
	"relship/internal/version"
)

// execPattern selects release executables: the dyndns- prefix followed by
// at least one lowercase alphanumeric or hyphen character.
var execPattern = regexp.MustCompile(`^dyndns-[a-z0-9-]+$`)

// refPattern recovers the executable suffix and release number from a
// versioned reference. Works because the prefix is hyphen-free (enforced
// by runtime.Context.Validate), so the first hyphen ends it.
var refPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*/[a-z0-9]+-([a-z0-9-]+):r(\d+)$`)

// PlanPublish scans the release directory and returns one Target per
// matching executable. os.ReadDir returns entries sorted by filename, so
// the build order is deterministic.
func PlanPublish(ctx runtime.Context, tag version.ReleaseTag) ([]Target, error) {
	entries, err := os.ReadDir(ctx.ReleaseDir)
	if err != nil {
		return nil, fmt.Errorf("reading release directory %q: %w", ctx.ReleaseDir, err)
	}

	base := fmt.Sprintf("%s/%s", ctx.Namespace, ctx.ImagePrefix)

	var targets []Target
	for _, e := range entries {
		name := e.Name()
		if !execPattern.MatchString(name) {
			continue
		}

		versioned := cleanTag(tag.String())
		if !validateTag(versioned) {
			return nil, fmt.Errorf("derived invalid image tag %q for %s", versioned, name)
		}

		path := filepath.Join(ctx.ReleaseDir, name)
		targets = append(targets, Target{
			Executable: name,
			Path:       absOr(path, path),
			ImageRef:   fmt.Sprintf("%s-%s:%s", base, name, versioned),
			LatestRef:  fmt.Sprintf("%s-%s:latest", base, name),
		})
	}

	return targets, nil
}

// ParseImageRef is the inverse of the planner's reference derivation: it
// recovers the executable suffix and release number from a versioned ref.
func ParseImageRef(ref string) (executable string, number int, err error) {
	m := refPattern.FindStringSubmatch(ref)
	if m == nil {
		return "", 0, fmt.Errorf("not a versioned image reference: %q", ref)
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, fmt.Errorf("not a versioned image reference: %q: %w", ref, err)
	}
	return m[1], n, nil
}
