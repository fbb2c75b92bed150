package reel

import (
	"time"

	"github.com/samber/lo"

	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/surface"
)

var _ surface.Handler = (*Controller)(nil)

// fractionAt converts a pointer position into a track fraction in [0,1].
// A track with no width yields 0.
func (c *Controller) fractionAt(p surface.Pointer) float64 {
	w := c.layout.Track.Width
	if w <= 0 {
		return 0
	}
	offset := lo.Clamp(p.X-c.layout.Track.X, 0, w)
	return float64(offset) / float64(w)
}

// BeginDrag opens a scrub session at p. The track stays visible with no
// expiry, scrolling is locked and all pointer motion is captured until
// EndDrag. It reports whether a session was opened.
func (c *Controller) BeginDrag(p surface.Pointer) bool {
	if c.item.Kind != media.Video {
		return false
	}
	if c.drag.Active {
		c.ContinueDrag(p)
		return true
	}

	c.drag = DragSession{Active: true, Fraction: c.fractionAt(p)}
	c.track.ShowPinned()
	if c.surface != nil {
		c.surface.LockScroll()
		c.release = c.surface.Capture(c)
	}
	c.seekFraction()
	c.log.WithField("fraction", c.drag.Fraction).Debug("drag started")
	return true
}

// ContinueDrag follows the pointer during an active session.
func (c *Controller) ContinueDrag(p surface.Pointer) {
	if !c.drag.Active {
		return
	}
	c.drag.Fraction = c.fractionAt(p)
	c.seekFraction()
	if c.ready() {
		if dur := c.transport.Duration(); dur > 0 {
			preview := scale(dur, c.drag.Fraction)
			c.drag.Preview = &preview
			return
		}
	}
	c.drag.Preview = nil
}

// EndDrag closes the session and re-arms the track hide timer. Scrolling
// is re-enabled and the capture released even when no session is open.
func (c *Controller) EndDrag() {
	wasActive := c.drag.Active
	fraction := c.drag.Fraction
	c.endSession()
	c.track.ArmHide(c.timing.Track)
	if wasActive {
		c.progress = fraction
		c.log.WithField("fraction", fraction).Debug("drag ended")
	}
}

// endSession clears the drag and its capture without touching overlays.
func (c *Controller) endSession() {
	c.drag = DragSession{}
	c.pendingSeek = false
	if c.release != nil {
		c.release()
		c.release = nil
	}
	if c.surface != nil {
		c.surface.UnlockScroll()
	}
}

// seekFraction seeks to the drag fraction, or defers the seek while the
// duration is unknown.
func (c *Controller) seekFraction() {
	if !c.ready() {
		c.pendingSeek = true
		return
	}
	dur := c.transport.Duration()
	if dur <= 0 {
		c.pendingSeek = true
		return
	}
	c.pendingSeek = false
	if err := c.transport.SeekTo(scale(dur, c.drag.Fraction)); err != nil {
		c.log.WithError(err).Debug("seek failed")
	}
}

// PointerMove implements surface.Handler.
func (c *Controller) PointerMove(p surface.Pointer) { c.ContinueDrag(p) }

// PointerUp implements surface.Handler.
func (c *Controller) PointerUp(surface.Pointer) { c.EndDrag() }

func scale(d time.Duration, fraction float64) time.Duration {
	return time.Duration(float64(d) * fraction)
}
