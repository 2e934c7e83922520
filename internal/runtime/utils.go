package runtime

import (
	"os"
	"strings"
)

// --- helpers ---
func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
func formatOrNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "<none>"
	}
	return s
}
func emoji(b bool) string {
	if b {
		return "✅"
	}
	return "❌"
}
