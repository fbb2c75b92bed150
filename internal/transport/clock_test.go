package transport

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNow struct{ t time.Time }

func (f *fakeNow) now() time.Time { return f.t }

func (f *fakeNow) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestClock(length time.Duration) (*Clock, *fakeNow) {
	fn := &fakeNow{t: time.Unix(1000, 0)}
	c := NewClock(length)
	c.SetNowFunc(fn.now)
	return c, fn
}

func TestClock_NotReadyBeforeLoad(t *testing.T) {
	c, _ := newTestClock(10 * time.Second)

	assert.False(t, c.Ready())
	assert.ErrorIs(t, c.Play(), ErrNotLoaded)
	assert.ErrorIs(t, c.Pause(), ErrNotLoaded)
	assert.ErrorIs(t, c.SeekTo(time.Second), ErrNotLoaded)
	assert.Equal(t, time.Duration(0), c.Duration())
}

func TestClock_LoadLeavesPausedAtZero(t *testing.T) {
	c, fn := newTestClock(10 * time.Second)

	require.NoError(t, c.Load("a.mp4"))
	fn.advance(3 * time.Second)

	assert.True(t, c.Ready())
	assert.Equal(t, time.Duration(0), c.Position())
	assert.Equal(t, 10*time.Second, c.Duration())
	assert.Equal(t, "a.mp4", c.Source())
}

func TestClock_PlayAdvancesAndPauseFreezes(t *testing.T) {
	c, fn := newTestClock(10 * time.Second)
	require.NoError(t, c.Load("a.mp4"))

	require.NoError(t, c.Play())
	fn.advance(2 * time.Second)
	assert.Equal(t, 2*time.Second, c.Position())

	require.NoError(t, c.Pause())
	fn.advance(5 * time.Second)
	assert.Equal(t, 2*time.Second, c.Position())

	require.NoError(t, c.Play())
	fn.advance(time.Second)
	assert.Equal(t, 3*time.Second, c.Position())
}

func TestClock_Loops(t *testing.T) {
	c, fn := newTestClock(10 * time.Second)
	require.NoError(t, c.Load("a.mp4"))
	require.NoError(t, c.Play())

	fn.advance(12 * time.Second)

	assert.Equal(t, 2*time.Second, c.Position())
}

func TestClock_SeekClamps(t *testing.T) {
	c, fn := newTestClock(10 * time.Second)
	require.NoError(t, c.Load("a.mp4"))

	require.NoError(t, c.SeekTo(4*time.Second))
	assert.Equal(t, 4*time.Second, c.Position())

	require.NoError(t, c.SeekTo(-time.Second))
	assert.Equal(t, time.Duration(0), c.Position())

	require.NoError(t, c.Play())
	require.NoError(t, c.SeekTo(7*time.Second))
	fn.advance(time.Second)
	assert.Equal(t, 8*time.Second, c.Position())
}

func TestClock_StopUnloads(t *testing.T) {
	c, _ := newTestClock(10 * time.Second)
	require.NoError(t, c.Load("a.mp4"))
	require.NoError(t, c.Play())

	require.NoError(t, c.Stop())

	assert.False(t, c.Ready())
	assert.Equal(t, "", c.Source())
	assert.Equal(t, time.Duration(0), c.Position())
}
