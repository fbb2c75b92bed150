package reel

import (
	"fmt"
	"time"
)

// Toggle flips between Playing and Paused. Pausing shows the affordance
// for Timing.PauseIcon; resuming hides it at once. When the transport is
// not ready, or rejects the command, the recorded state is unchanged.
func (c *Controller) Toggle() error {
	if !c.ready() {
		return ErrTransportNotReady
	}
	switch c.state {
	case Playing:
		if err := c.transport.Pause(); err != nil {
			return fmt.Errorf("pause: %w", err)
		}
		c.state = Paused
		c.affordance.Show(c.timing.PauseIcon)
	case Paused:
		if err := c.transport.Play(); err != nil {
			return fmt.Errorf("play: %w", err)
		}
		c.state = Playing
		c.affordance.Hide()
	}
	c.log.WithField("state", c.state).Debug("toggled")
	return nil
}

// Play resumes playback if paused.
func (c *Controller) Play() error {
	if c.state == Playing {
		return nil
	}
	return c.Toggle()
}

// Pause pauses playback if playing.
func (c *Controller) Pause() error {
	if c.state == Paused {
		return nil
	}
	return c.Toggle()
}

// SeekTo moves playback to pos outside of a drag (keyboard, remote
// control). It is ignored while a drag owns the position.
func (c *Controller) SeekTo(pos time.Duration) error {
	if c.drag.Active {
		return nil
	}
	if !c.ready() {
		return ErrTransportNotReady
	}
	dur := c.transport.Duration()
	if dur <= 0 {
		return nil
	}
	pos = min(max(pos, 0), dur)
	if err := c.transport.SeekTo(pos); err != nil {
		return fmt.Errorf("seek: %w", err)
	}
	c.progress = float64(pos) / float64(dur)
	return nil
}

// SeekBy moves playback by delta relative to the current position.
func (c *Controller) SeekBy(delta time.Duration) error {
	if !c.ready() {
		return ErrTransportNotReady
	}
	return c.SeekTo(c.transport.Position() + delta)
}
