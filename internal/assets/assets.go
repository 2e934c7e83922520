package assets

import (
	"embed"
	"fmt"
)

//go:embed Dockerfile.tmpl
var dockerfileContent embed.FS

// DockerfileTemplate loads the embedded Dockerfile.tmpl as a string.
func DockerfileTemplate() (string, error) {
	data, err := dockerfileContent.ReadFile("Dockerfile.tmpl")
	if err != nil {
		return "", fmt.Errorf("reading embedded Dockerfile.tmpl: %w", err)
	}
	return string(data), nil
}
