package reel

// TimeUpdate reconciles progress with the transport. It is called on
// every poll tick. While a drag is active the transport is ignored, except
// that a seek deferred for lack of a duration is applied once it is known.
func (c *Controller) TimeUpdate() {
	if c.drag.Active {
		if c.pendingSeek {
			c.seekFraction()
		}
		return
	}
	if !c.ready() {
		return
	}
	dur := c.transport.Duration()
	if dur <= 0 {
		c.progress = 0
		return
	}
	c.progress = min(max(float64(c.transport.Position())/float64(dur), 0), 1)
}

// Progress returns the value shown on the track: the drag fraction during
// a drag, otherwise the last synchronized playback fraction.
func (c *Controller) Progress() float64 {
	if c.drag.Active {
		return c.drag.Fraction
	}
	return c.progress
}
