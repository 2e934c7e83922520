// internal/docker/toolchain.go
//
// The docker CLI implementation of Toolchain. Every operation shells out
// through executil with inherited stdio, so in CI the tool's own output
// lands in the job log. Respects DryRun: commands are printed, not run.
//
// Credentials, layer caching and registry specifics stay with the docker
// CLI and the surrounding pipeline; this layer only invokes it.

package docker

import (
	"relship/internal/executil"
)

// CLIToolchain invokes the docker command-line client.
type CLIToolchain struct {
	DryRun bool
}

func (c CLIToolchain) Build(ref, contextDir string) error {
	return c.run("build", "-t", ref, contextDir)
}

func (c CLIToolchain) Push(ref string) error {
	return c.run("push", ref)
}

func (c CLIToolchain) Tag(src, dst string) error {
	return c.run("tag", src, dst)
}

func (c CLIToolchain) run(args ...string) error {
	if c.DryRun {
		return executil.DryRunCMD("docker", args...)
	}
	return executil.RunCMD("docker", args...)
}
