package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kterry/ladle/internal/recipes"
)

// truncate shortens a string to max runes with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// classifyRequestError maps a remote failure to banner text. The banner
// stays generic; details live in the log file.
func classifyRequestError(err error) string {
	if err == nil {
		return "unknown error"
	}

	var remote *recipes.RemoteError
	if errors.As(err, &remote) {
		return fmt.Sprintf("server returned status %d", remote.StatusCode)
	}

	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "connection refused"):
		return "cannot reach the recipe service"
	case strings.Contains(errStr, "timeout"), strings.Contains(errStr, "deadline exceeded"):
		return "request timed out"
	case strings.Contains(errStr, "no such host"):
		return "host not found"
	default:
		return "request failed"
	}
}
