// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Playback operations
	OpPlayerStart    Op = "start player"
	OpMediaLoad      Op = "load media"
	OpPlaybackToggle Op = "toggle playback"
	OpPlaybackSeek   Op = "seek"

	// State operations
	OpStateOpen Op = "open state database"
	OpStateLoad Op = "restore last position"

	// Remote control
	OpMPRISStart Op = "start media controls"

	// Initialization
	OpConfigLoad Op = "load config"
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
