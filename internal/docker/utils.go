package docker

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ---- FS helpers ----

func absOr(p, fallback string) string {
	if a, err := filepath.Abs(p); err == nil {
		return a
	}
	return fallback
}

// ---- Tag normalization / validation ----

var tagAllowed = regexp.MustCompile(`^[a-z0-9_.-]{1,128}$`)

func cleanTag(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	// trim to Docker's max tag length
	if len(s) > 128 {
		s = s[:128]
	}
	return s
}

func validateTag(tag string) bool {
	return tagAllowed.MatchString(tag)
}
