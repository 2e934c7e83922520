// internal/docker/build.go
//
// The publish loop. For each target, strictly in order:
//   prepare context -> mark executable -> build -> push -> tag latest -> push latest
// The first error anywhere aborts the whole run: remaining targets are
// never attempted, and nothing already pushed is rolled back. A failed
// run is inspected and re-triggered by the operator.

package docker

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Publish runs the build/push sequence for every target in opts, in order.
func Publish(opts *PublishOptions) error {
	if opts == nil {
		return errors.New("Publish: opts is nil")
	}
	if opts.Toolchain == nil {
		return errors.New("Publish: Toolchain is nil")
	}
	if opts.Preparer == nil {
		return errors.New("Publish: Preparer is nil")
	}

	if len(opts.Targets) == 0 {
		fmt.Println("No matching executables found; nothing to publish.")
		return nil
	}

	ctxDir := strings.TrimSpace(opts.ContextDir)
	if ctxDir == "" {
		ctxDir = "."
	}

	for _, t := range opts.Targets {
		fmt.Printf("Building docker image for %s\n", t.Executable)
		fmt.Printf("Image name: %s\n", t.ImageRef)

		if err := opts.Preparer.Prepare(t.Executable); err != nil {
			return fmt.Errorf("preparing build context for %s: %w", t.Executable, err)
		}
		if err := markExecutable(t.Path, opts.DryRun); err != nil {
			return fmt.Errorf("marking %s executable: %w", t.Path, err)
		}
		if err := opts.Toolchain.Build(t.ImageRef, ctxDir); err != nil {
			return fmt.Errorf("building %s: %w", t.ImageRef, err)
		}
		if err := opts.Toolchain.Push(t.ImageRef); err != nil {
			return fmt.Errorf("pushing %s: %w", t.ImageRef, err)
		}
		if err := opts.Toolchain.Tag(t.ImageRef, t.LatestRef); err != nil {
			return fmt.Errorf("tagging %s as %s: %w", t.ImageRef, t.LatestRef, err)
		}
		if err := opts.Toolchain.Push(t.LatestRef); err != nil {
			return fmt.Errorf("pushing %s: %w", t.LatestRef, err)
		}
	}
	return nil
}

// markExecutable sets the executable permission bits on the release binary.
func markExecutable(path string, dry bool) error {
	if dry {
		fmt.Printf("[DRY RUN] chmod +x %s\n", path)
		return nil
	}
	st, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.Chmod(path, st.Mode().Perm()|0o111)
}
