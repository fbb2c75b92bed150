// internal/reel/state.go
package reel

import (
	"errors"
	"time"

	"github.com/llehouerou/reels/internal/surface"
)

// ErrTransportNotReady is returned by Toggle when no media is attached.
// The recorded state is left unchanged.
var ErrTransportNotReady = errors.New("reel: transport not ready")

// PlaybackState is the recorded play/pause state of one item.
type PlaybackState int

const (
	Playing PlaybackState = iota
	Paused
)

// String returns the state name.
func (s PlaybackState) String() string {
	switch s {
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// DragSession is one scrub gesture, from press on the track to release.
type DragSession struct {
	Active   bool
	Fraction float64
	// Preview is the time shown next to the handle; nil until the pointer
	// moves with a known duration.
	Preview *time.Duration
}

// Layout is the on-screen geometry used for hit testing. It must match
// what the view renders.
type Layout struct {
	Icon  surface.Rect
	Track surface.Rect
}

// Timing holds overlay durations.
type Timing struct {
	PauseIcon time.Duration // affordance after pausing
	TapIcon   time.Duration // affordance after a surface tap
	Track     time.Duration // track after a tap or drag end
}

// DefaultTiming returns the standard overlay durations.
func DefaultTiming() Timing {
	return Timing{
		PauseIcon: 2 * time.Second,
		TapIcon:   3 * time.Second,
		Track:     3 * time.Second,
	}
}

func (t Timing) withDefaults() Timing {
	d := DefaultTiming()
	if t.PauseIcon <= 0 {
		t.PauseIcon = d.PauseIcon
	}
	if t.TapIcon <= 0 {
		t.TapIcon = d.TapIcon
	}
	if t.Track <= 0 {
		t.Track = d.Track
	}
	return t
}

// Snapshot is a read-only view of a controller for rendering.
type Snapshot struct {
	State             PlaybackState
	Progress          float64
	AffordanceVisible bool
	TrackVisible      bool
	Drag              DragSession
	Ready             bool
	Position          time.Duration
	Duration          time.Duration
}
