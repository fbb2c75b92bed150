package reel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/reels/internal/schedule"
)

func TestOverlay_ShowTwiceKeepsOneTimer(t *testing.T) {
	sched := schedule.NewManual()
	o := newOverlay(sched)

	o.Show(3 * time.Second)
	o.Show(3 * time.Second)

	assert.Equal(t, 1, sched.Pending())
	sched.Advance(3 * time.Second)
	assert.False(t, o.Visible())
	assert.Equal(t, 0, sched.Pending())
}

func TestOverlay_ReshowExtendsExpiry(t *testing.T) {
	sched := schedule.NewManual()
	o := newOverlay(sched)

	o.Show(3 * time.Second)
	sched.Advance(2 * time.Second)
	o.Show(3 * time.Second)
	sched.Advance(2 * time.Second)

	assert.True(t, o.Visible())
	sched.Advance(time.Second)
	assert.False(t, o.Visible())
}

func TestOverlay_HideCancelsTimer(t *testing.T) {
	sched := schedule.NewManual()
	o := newOverlay(sched)

	o.Show(time.Second)
	o.Hide()

	assert.False(t, o.Visible())
	assert.False(t, o.Pending())
	assert.Equal(t, 0, sched.Pending())
}

func TestOverlay_PinnedNeverExpires(t *testing.T) {
	sched := schedule.NewManual()
	o := newOverlay(sched)

	o.Show(time.Second)
	o.ShowPinned()
	sched.Advance(time.Hour)

	assert.True(t, o.Visible())
}

func TestOverlay_ArmHideKeepsVisibility(t *testing.T) {
	sched := schedule.NewManual()
	o := newOverlay(sched)

	o.ArmHide(time.Second)
	assert.False(t, o.Visible())
	assert.False(t, o.Pending())

	o.ShowPinned()
	o.ArmHide(time.Second)
	assert.True(t, o.Visible())
	sched.Advance(time.Second)
	assert.False(t, o.Visible())
}

// leakyScheduler ignores Stop, so superseded callbacks still run.
type leakyScheduler struct {
	fns []func()
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return true }

func (s *leakyScheduler) AfterFunc(_ time.Duration, f func()) schedule.Timer {
	s.fns = append(s.fns, f)
	return leakyTimer{}
}

func TestOverlay_SupersededCallbackIsIgnored(t *testing.T) {
	sched := &leakyScheduler{}
	o := newOverlay(sched)

	o.Show(time.Second)
	o.Show(time.Second)
	sched.fns[0]()

	assert.True(t, o.Visible(), "stale timer must not hide a re-shown overlay")

	sched.fns[1]()
	assert.False(t, o.Visible())
}
