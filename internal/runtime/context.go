package runtime

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"relship/internal/version"
)

// Defaults match the dyndns release pipeline; every one of them can be
// overridden through RELSHIP_* environment variables or CLI flags.
const (
	DefaultReleaseDir  = "./target/x86_64-unknown-linux-musl/release"
	DefaultNamespace   = "v47io"
	DefaultImagePrefix = "ez"
	DefaultContextDir  = "."
)

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)
	prefixPattern    = regexp.MustCompile(`^[a-z0-9]+$`)
)

// Context captures the relevant environment state for a publish run.
type Context struct {
	ReleaseDir  string // directory scanned for release executables
	Namespace   string // registry namespace, e.g. "v47io"
	ImagePrefix string // image name prefix, e.g. "ez"
	ContextDir  string // docker build context
	DryRun      bool
}

// LoadContext constructs a publish Context by reading RELSHIP_* environment
// variables, falling back to the pipeline defaults.
func LoadContext() (Context, error) {
	ctx := Context{
		ReleaseDir:  getenv("RELSHIP_RELEASE_DIR", DefaultReleaseDir),
		Namespace:   getenv("RELSHIP_NAMESPACE", DefaultNamespace),
		ImagePrefix: getenv("RELSHIP_IMAGE_PREFIX", DefaultImagePrefix),
		ContextDir:  getenv("RELSHIP_BUILD_CONTEXT", DefaultContextDir),
		DryRun:      os.Getenv("RELSHIP_DRY_RUN") == "true",
	}
	return ctx, ctx.Validate()
}

// Validate checks the naming inputs that end up inside image references.
// The prefix must stay hyphen-free so a versioned reference can be parsed
// back into its executable suffix unambiguously.
func (c Context) Validate() error {
	if strings.TrimSpace(c.ReleaseDir) == "" {
		return fmt.Errorf("release directory is empty")
	}
	if !namespacePattern.MatchString(c.Namespace) {
		return fmt.Errorf("invalid registry namespace %q (must be lowercase, start alphanumeric)", c.Namespace)
	}
	if !prefixPattern.MatchString(c.ImagePrefix) {
		return fmt.Errorf("invalid image prefix %q (must be lowercase alphanumeric, no hyphens)", c.ImagePrefix)
	}
	return nil
}

// PrintSummary emits a scannable publish report with logical sections.
func (c *Context) PrintSummary(tag version.ReleaseTag) {
	fmt.Println("Release Publish Summary")
	fmt.Println("-----------------------")

	fmt.Println("Release")
	fmt.Printf("  Version Tag           : %s\n", formatOrNone(tag.Raw))
	fmt.Printf("  Build Number          : %d\n", tag.Number)
	fmt.Printf("  Semantic Version      : %s\n", tag.SemVer())
	fmt.Println()

	fmt.Println("Image Naming")
	fmt.Printf("  Registry Namespace    : %s\n", formatOrNone(c.Namespace))
	fmt.Printf("  Image Prefix          : %s\n", formatOrNone(c.ImagePrefix))
	fmt.Printf("  Reference Template    : %s/%s-<executable>:%s\n", c.Namespace, c.ImagePrefix, tag)
	fmt.Println()

	fmt.Println("Paths")
	fmt.Printf("  Release Directory     : %s\n", formatOrNone(c.ReleaseDir))
	fmt.Printf("  Build Context         : %s\n", formatOrNone(c.ContextDir))
	fmt.Println()

	fmt.Println("Derived")
	fmt.Printf("  Dry Run Mode          : %s\n", emoji(c.DryRun))
	fmt.Println()
}
