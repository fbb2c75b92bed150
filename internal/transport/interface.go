// Package transport provides the media playback primitives driven by a
// reel: play, pause, absolute seek and position/duration reporting.
package transport

import (
	"errors"
	"time"
)

// ErrNotLoaded is returned by commands issued before a source is loaded.
var ErrNotLoaded = errors.New("transport: nothing loaded")

// Transport is a single playback primitive shared by the feed. Load
// replaces whatever was loaded before and leaves playback paused at zero;
// callers start it with Play.
type Transport interface {
	Load(source string) error
	Stop() error
	// Ready reports whether commands will reach a loaded media source.
	Ready() bool
	Play() error
	Pause() error
	SeekTo(pos time.Duration) error
	Position() time.Duration
	// Duration returns zero until the media metadata is known.
	Duration() time.Duration
	Close() error
}

// Verify implementations satisfy Transport at compile time.
var (
	_ Transport = (*MPV)(nil)
	_ Transport = (*Clock)(nil)
	_ Transport = (*Mock)(nil)
)
