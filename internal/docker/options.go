// internal/docker/options.go
//
// This layer adapts a runtime.Context + release tag into concrete
// PublishOptions for the publish loop: run the planner, wire the real
// docker CLI toolchain and the template-based context preparer.
//
// Keep it lean: validation, planner call, collaborator wiring, return.

package docker

import (
	"fmt"

	"relship/internal/runtime"
	"relship/internal/version"
)

// PublishOptionsFromContext produces fully-populated PublishOptions.
func PublishOptionsFromContext(c *runtime.Context, tag version.ReleaseTag) (*PublishOptions, error) {
	if c == nil {
		return nil, fmt.Errorf("nil publish context")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	targets, err := PlanPublish(*c, tag)
	if err != nil {
		return nil, err
	}

	return &PublishOptions{
		ContextDir: c.ContextDir,
		Targets:    targets,
		DryRun:     c.DryRun,
		Toolchain:  CLIToolchain{DryRun: c.DryRun},
		Preparer: TemplatePreparer{
			Dir:        c.ContextDir,
			ReleaseDir: c.ReleaseDir,
			DryRun:     c.DryRun,
		},
	}, nil
}
