// relship main entrypoint
//
// This binary is meant to run inside CI as the release publish stage.
// It parses the release version tag, scans the release output directory
// for executables, and builds/pushes a container image per executable
// (versioned tag + latest alias).
//
// Keep this file simple: load env, parse flags, parse version, load
// context, print summary, plan, publish. All the heavy lifting stays
// internal.

package main

import (
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"

	"relship/internal/docker"
	"relship/internal/runtime"
	"relship/internal/version"
)

type options struct {
	ReleaseDir string `long:"release-dir" description:"Release output directory to scan (overrides RELSHIP_RELEASE_DIR)"`
	Namespace  string `long:"namespace" description:"Registry namespace for image references (overrides RELSHIP_NAMESPACE)"`
	Prefix     string `long:"prefix" description:"Image name prefix (overrides RELSHIP_IMAGE_PREFIX)"`
	ContextDir string `long:"context" description:"Docker build context directory (overrides RELSHIP_BUILD_CONTEXT)"`
	DryRun     bool   `long:"dry-run" description:"Print toolchain commands without executing them"`

	Args struct {
		Version string `positional-arg-name:"VERSION" description:"Release version tag (r<digits>)" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	// Local overrides for dev runs; harmless in CI.
	_ = godotenv.Load("environments/local.env")

	// 1) CLI surface
	var opt options
	parser := flags.NewParser(&opt, flags.Default)
	parser.LongDescription = "relship builds and pushes one container image per release executable, " +
		"tagged with the release version and latest."
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	// 2) Release version tag — nothing runs on bad input
	tag, err := version.ParseReleaseTag(opt.Args.Version)
	if err != nil {
		log.Fatalf("invalid version argument: %v", err)
	}

	// 3) Publish context from environment, flag overrides on top
	ctx, err := runtime.LoadContext()
	if err != nil {
		log.Fatalf("failed to load context: %v", err)
	}
	applyOverrides(&ctx, opt)

	// 4) Print summary before any side effect
	ctx.PrintSummary(tag)

	// 5) Plan targets + wire the docker CLI toolchain
	opts, err := docker.PublishOptionsFromContext(&ctx, tag)
	if err != nil {
		log.Fatalf("failed to create publish options: %v", err)
	}

	// 6) Debug what we'll actually do
	for _, t := range opts.Targets {
		log.Printf("[relship] target: %s -> %s", t.Executable, t.ImageRef)
	}
	log.Printf("[relship] dry-run=%v targets=%d", opts.DryRun, len(opts.Targets))

	// 7) Publish (build, push, retag latest, push). Honors dry-run.
	if err := docker.Publish(opts); err != nil {
		log.Fatalf("publish failed: %v", err)
	}
}

// applyOverrides lets explicit flags win over environment configuration.
func applyOverrides(ctx *runtime.Context, opt options) {
	if opt.ReleaseDir != "" {
		ctx.ReleaseDir = opt.ReleaseDir
	}
	if opt.Namespace != "" {
		ctx.Namespace = opt.Namespace
	}
	if opt.Prefix != "" {
		ctx.ImagePrefix = opt.Prefix
	}
	if opt.ContextDir != "" {
		ctx.ContextDir = opt.ContextDir
	}
	if opt.DryRun {
		ctx.DryRun = true
	}
}
