// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"fmt"
	"strings"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Library operations
	OpLibraryScan  Op = "scan library"
	OpLibraryWatch Op = "watch library folders"

	// Playback operations
	OpTrackLoad    Op = "load track"
	OpPlaybackSeek Op = "seek"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpLogOpen    Op = "open log file"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}

// Line flattens a message to its first line so it fits a status bar.
func Line(msg string) string {
	first, _, _ := strings.Cut(msg, "\n")
	return strings.TrimSpace(first)
}
