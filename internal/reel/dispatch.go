package reel

import (
	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/surface"
)

// Target identifies what a tap hit.
type Target int

const (
	TargetSurface Target = iota
	TargetIcon
	TargetTrack
)

// HitTest resolves p against the visible controls. The icon and track only
// count while shown, and only for videos.
func (c *Controller) HitTest(p surface.Pointer) Target {
	if c.item.Kind != media.Video {
		return TargetSurface
	}
	if c.affordance.Visible() && c.layout.Icon.Contains(p) {
		return TargetIcon
	}
	if c.track.Visible() && c.layout.Track.Contains(p) {
		return TargetTrack
	}
	return TargetSurface
}

// Tap is the single entry point for a press on the item. A press on the
// icon toggles playback, a press on the track starts a drag, and neither
// reaches the surface toggle.
func (c *Controller) Tap(p surface.Pointer) Target {
	target := c.HitTest(p)
	switch target {
	case TargetIcon:
		if err := c.Toggle(); err != nil {
			c.log.WithError(err).Debug("toggle ignored")
		}
	case TargetTrack:
		c.BeginDrag(p)
	default:
		c.ToggleOverlays()
	}
	return target
}

// ToggleOverlays hides both overlays if either is visible, otherwise shows
// both with independent timers. A track pinned by a drag stays visible.
func (c *Controller) ToggleOverlays() {
	if c.affordance.Visible() || c.track.Visible() {
		c.affordance.Hide()
		if !c.drag.Active {
			c.track.Hide()
		}
		return
	}
	c.affordance.Show(c.timing.TapIcon)
	c.showTrack()
}

// showTrack shows the track for Timing.Track, or pins it during a drag.
func (c *Controller) showTrack() {
	if c.drag.Active {
		c.track.ShowPinned()
		return
	}
	c.track.Show(c.timing.Track)
}
