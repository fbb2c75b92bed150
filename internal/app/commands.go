// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// imageFlushDelay leaves the renderer several frames to write pending
// image sequences.
const imageFlushDelay = 100 * time.Millisecond

// errorTimeout is how long an error stays on screen.
const errorTimeout = 5 * time.Second

// PollCmd returns a command that sends PollMsg after interval.
func PollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollMsg(t)
	})
}

// ImageFlushCmd returns a command that sends ImageFlushedMsg.
func ImageFlushCmd() tea.Cmd {
	return tea.Tick(imageFlushDelay, func(_ time.Time) tea.Msg {
		return ImageFlushedMsg{}
	})
}

// ErrorClearCmd returns a command that clears text from the error line.
func ErrorClearCmd(text string) tea.Cmd {
	return tea.Tick(errorTimeout, func(_ time.Time) tea.Msg {
		return ErrorClearMsg{Text: text}
	})
}
