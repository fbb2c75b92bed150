package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	moves []Pointer
	ups   []Pointer
}

func (r *recorder) PointerMove(p Pointer) { r.moves = append(r.moves, p) }
func (r *recorder) PointerUp(p Pointer)   { r.ups = append(r.ups, p) }

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	tests := []struct {
		p    Pointer
		want bool
	}{
		{Pointer{2, 3}, true},
		{Pointer{5, 4}, true},
		{Pointer{6, 4}, false},
		{Pointer{5, 5}, false},
		{Pointer{1, 3}, false},
		{Pointer{2, 2}, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.Contains(tt.p), "Contains(%v)", tt.p)
	}
	assert.True(t, Rect{Width: 0, Height: 3}.Empty())
	assert.False(t, r.Empty())
}

func TestSurface_CaptureRoutesUntilRelease(t *testing.T) {
	s := New(nil)
	rec := &recorder{}

	assert.False(t, s.Move(Pointer{1, 1}), "no capture yet")

	release := s.Capture(rec)
	assert.True(t, s.Captured())
	assert.True(t, s.Move(Pointer{3, 4}))
	assert.True(t, s.Up(Pointer{5, 6}))

	release()
	release()
	assert.False(t, s.Captured())
	assert.False(t, s.Move(Pointer{7, 8}))

	assert.Equal(t, []Pointer{{3, 4}}, rec.moves)
	assert.Equal(t, []Pointer{{5, 6}}, rec.ups)
}

func TestSurface_StaleReleaseKeepsNewerCapture(t *testing.T) {
	s := New(nil)
	first := s.Capture(&recorder{})
	second := &recorder{}
	s.Capture(second)

	first()
	assert.True(t, s.Captured(), "stale release must not end the newer capture")
	s.Move(Pointer{1, 2})
	assert.Len(t, second.moves, 1)
}

func TestSurface_ScrollLock(t *testing.T) {
	s := New(nil)
	s.UnlockScroll()
	assert.False(t, s.ScrollLocked())
	s.LockScroll()
	assert.True(t, s.ScrollLocked())
	s.UnlockScroll()
	assert.False(t, s.ScrollLocked())
}
