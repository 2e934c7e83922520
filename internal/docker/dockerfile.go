// internal/docker/dockerfile.go
//
// Build-context preparation: renders the embedded Dockerfile template for
// one executable into the build-context directory. Each target overwrites
// the previous target's Dockerfile, so this must run before every build.

package docker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"relship/internal/assets"
)

// TemplatePreparer renders assets.DockerfileTemplate into Dir/Dockerfile.
type TemplatePreparer struct {
	Dir        string // build-context directory the Dockerfile lands in
	ReleaseDir string // COPY source inside the build context
	DryRun     bool
}

type dockerfileData struct {
	Executable string
	ReleaseDir string
}

func (p TemplatePreparer) Prepare(executable string) error {
	raw, err := assets.DockerfileTemplate()
	if err != nil {
		return err
	}
	tmpl, err := template.New("Dockerfile").Parse(raw)
	if err != nil {
		return fmt.Errorf("parsing Dockerfile template: %w", err)
	}

	data := dockerfileData{
		Executable: executable,
		// docker COPY sources are context-relative; a leading "./" is noise
		ReleaseDir: strings.TrimPrefix(p.ReleaseDir, "./"),
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, data); err != nil {
		return fmt.Errorf("rendering Dockerfile for %s: %w", executable, err)
	}

	path := filepath.Join(p.Dir, "Dockerfile")
	if p.DryRun {
		fmt.Printf("[DRY RUN] write %s for %s\n", path, executable)
		return nil
	}
	if err := os.WriteFile(path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
