package reel

import (
	"time"

	"github.com/llehouerou/reels/internal/schedule"
)

// Overlay is an auto-hiding visibility flag with at most one pending hide
// timer. Every call that schedules a timer stops the previous one first.
type Overlay struct {
	sched   schedule.Scheduler
	visible bool
	timer   schedule.Timer
	// gen is bumped on every state change so a callback from a superseded
	// timer is ignored even if it was already queued.
	gen int
}

func newOverlay(sched schedule.Scheduler) *Overlay {
	return &Overlay{sched: sched}
}

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Pending reports whether a hide timer is armed.
func (o *Overlay) Pending() bool { return o.timer != nil }

// Show makes the overlay visible and hides it after d.
func (o *Overlay) Show(d time.Duration) {
	o.visible = true
	o.arm(d)
}

// ShowPinned makes the overlay visible with no expiry.
func (o *Overlay) ShowPinned() {
	o.cancel()
	o.visible = true
}

// ArmHide schedules a hide after d without changing visibility. It is a
// no-op when the overlay is hidden.
func (o *Overlay) ArmHide(d time.Duration) {
	if !o.visible {
		o.cancel()
		return
	}
	o.arm(d)
}

// Hide hides the overlay immediately.
func (o *Overlay) Hide() {
	o.cancel()
	o.visible = false
}

func (o *Overlay) arm(d time.Duration) {
	o.cancel()
	gen := o.gen
	o.timer = o.sched.AfterFunc(d, func() {
		if o.gen != gen {
			return
		}
		o.timer = nil
		o.visible = false
		o.gen++
	})
}

func (o *Overlay) cancel() {
	o.gen++
	if o.timer != nil {
		o.timer.Stop()
		o.timer = nil
	}
}
