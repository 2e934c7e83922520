// internal/docker/types.go
package docker

// Target is one executable selected for publishing, with both of its
// derived image references.
type Target struct {
	Executable string // e.g. "dyndns-server"
	Path       string // absolute path within the release directory
	ImageRef   string // e.g. "v47io/ez-dyndns-server:r47"
	LatestRef  string // e.g. "v47io/ez-dyndns-server:latest"
}

// Toolchain is the container tool surface the publisher consumes.
// Implementations report non-success as an error; any error is fatal
// to the whole run.
type Toolchain interface {
	Build(ref, contextDir string) error
	Push(ref string) error
	Tag(src, dst string) error
}

// ContextPreparer materializes the build-context definition file for one
// executable before its image is built.
type ContextPreparer interface {
	Prepare(executable string) error
}

// PublishOptions is everything the publish loop needs: the targets from
// the planner plus the collaborators that do the actual work.
type PublishOptions struct {
	ContextDir string // docker build context, default "."
	Targets    []Target
	DryRun     bool // print commands instead of executing

	Toolchain Toolchain
	Preparer  ContextPreparer
}
