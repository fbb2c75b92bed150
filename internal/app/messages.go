// Package app is the Bubble Tea model of the feed: it routes terminal
// input to the pager, the reel controller and the navigation bar.
package app

import "time"

// PollMsg triggers a transport time update.
type PollMsg time.Time

// ImageFlushedMsg is sent once pending image sequences had a frame to be
// written.
type ImageFlushedMsg struct{}

// ErrorClearMsg hides the error line if it still shows the same message.
type ErrorClearMsg struct {
	Text string
}
