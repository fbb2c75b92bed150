// Package reel implements the playback and gesture controller for one
// feed item: play/pause state, the two auto-hiding overlays, drag-to-seek
// scrubbing and progress reporting.
//
// A Controller is not safe for concurrent use. Every method, including
// timer callbacks delivered by the scheduler, must run on the UI goroutine.
package reel

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/reels/internal/media"
	"github.com/llehouerou/reels/internal/schedule"
	"github.com/llehouerou/reels/internal/surface"
)

// Transport is the subset of the media transport the controller drives.
type Transport interface {
	Load(source string) error
	Stop() error
	Ready() bool
	Play() error
	Pause() error
	SeekTo(pos time.Duration) error
	Position() time.Duration
	Duration() time.Duration
}

// Surface is the shared interaction surface: pointer capture plus the
// page scroll lock.
type Surface interface {
	Capture(h surface.Handler) surface.Release
	LockScroll()
	UnlockScroll()
}

// Options configures a Controller.
type Options struct {
	Scheduler schedule.Scheduler
	Surface   Surface
	Timing    Timing
	Logger    logrus.FieldLogger
}

// Controller owns the interaction state of the mounted item.
type Controller struct {
	item      media.Item
	transport Transport
	surface   Surface
	timing    Timing
	log       logrus.FieldLogger

	state      PlaybackState
	affordance *Overlay
	track      *Overlay
	drag       DragSession
	// pendingSeek is set when a drag moved while the duration was unknown.
	pendingSeek bool
	progress    float64
	layout      Layout
	release     surface.Release
}

// New creates a controller for item. Nothing is loaded until Mount.
func New(item media.Item, t Transport, opts Options) *Controller {
	log := opts.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = schedule.NewProgram()
	}
	return &Controller{
		item:       item,
		transport:  t,
		surface:    opts.Surface,
		timing:     opts.Timing.withDefaults(),
		log:        log.WithField("component", "reel"),
		state:      Playing,
		affordance: newOverlay(sched),
		track:      newOverlay(sched),
	}
}

// Item returns the mounted item.
func (c *Controller) Item() media.Item { return c.item }

// Mount loads the item and starts playback. A refused autoplay leaves the
// reel Paused. Images stop the transport so the previous video does not
// keep playing behind them.
func (c *Controller) Mount() error {
	c.state = Playing
	c.progress = 0
	if c.transport == nil {
		return nil
	}
	if c.item.Kind != media.Video {
		return c.transport.Stop()
	}
	if err := c.transport.Load(c.item.Source); err != nil {
		c.log.WithError(err).WithField("source", c.item.Source).Warn("load failed")
		return err
	}
	if err := c.transport.Play(); err != nil {
		c.log.WithError(err).Debug("autoplay failed")
		c.state = Paused
	}
	return nil
}

// SetItem tears down the current item and mounts item in its place.
// Progress restarts at zero.
func (c *Controller) SetItem(item media.Item) error {
	c.teardown()
	c.item = item
	return c.Mount()
}

// Close discards all per-item state: timers are stopped, the pointer
// capture is released and scrolling is re-enabled. It does not stop the
// shared transport.
func (c *Controller) Close() {
	c.teardown()
}

func (c *Controller) teardown() {
	c.affordance.Hide()
	c.track.Hide()
	c.endSession()
	c.progress = 0
}

// SetLayout records the geometry last rendered for this item.
func (c *Controller) SetLayout(l Layout) { c.layout = l }

// Layout returns the geometry last recorded by SetLayout.
func (c *Controller) Layout() Layout { return c.layout }

// ready reports whether transport commands will reach a loaded video.
func (c *Controller) ready() bool {
	return c.item.Kind == media.Video && c.transport != nil && c.transport.Ready()
}

// Snapshot returns the state needed to render the item.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		State:             c.state,
		Progress:          c.Progress(),
		AffordanceVisible: c.affordance.Visible(),
		TrackVisible:      c.track.Visible(),
		Drag:              c.drag,
		Ready:             c.ready(),
	}
	if s.Ready {
		s.Position = c.transport.Position()
		s.Duration = c.transport.Duration()
	}
	return s
}

// State returns the recorded playback state.
func (c *Controller) State() PlaybackState { return c.state }

// AffordanceVisible reports whether the play/pause icon is shown.
func (c *Controller) AffordanceVisible() bool { return c.affordance.Visible() }

// TrackVisible reports whether the scrub track is shown.
func (c *Controller) TrackVisible() bool { return c.track.Visible() }

// Dragging reports whether a scrub gesture is in progress.
func (c *Controller) Dragging() bool { return c.drag.Active }

// Drag returns the current drag session.
func (c *Controller) Drag() DragSession { return c.drag }
