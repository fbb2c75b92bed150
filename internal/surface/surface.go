// Package surface models the interaction surface shared by every page:
// pointer geometry, pointer capture during drags and the page scroll lock.
package surface

import "github.com/sirupsen/logrus"

// Pointer is a pointer position in terminal cells (0-based).
type Pointer struct {
	X, Y int
}

// Rect is an on-screen region in terminal cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Pointer) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Handler receives pointer events captured for the whole surface.
type Handler interface {
	PointerMove(p Pointer)
	PointerUp(p Pointer)
}

// Release ends a capture. Calling it more than once is harmless.
type Release func()

// Surface routes captured pointer events and owns the scroll lock.
// It is used from the UI goroutine only.
type Surface struct {
	handler Handler
	// gen identifies the current capture so a stale Release cannot end a
	// newer one.
	gen    int
	locked bool
	log    logrus.FieldLogger
}

// New creates an idle surface.
func New(log logrus.FieldLogger) *Surface {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Surface{log: log}
}

// Capture routes every subsequent move/up event to h until the returned
// Release is called. A new capture replaces any previous one.
func (s *Surface) Capture(h Handler) Release {
	s.gen++
	gen := s.gen
	s.handler = h
	s.log.WithField("capture", gen).Debug("pointer captured")
	released := false
	return func() {
		if released {
			return
		}
		released = true
		if s.gen == gen {
			s.handler = nil
			s.log.WithField("capture", gen).Debug("pointer released")
		}
	}
}

// Captured reports whether a capture is active.
func (s *Surface) Captured() bool {
	return s.handler != nil
}

// Move forwards a motion event to the capturing handler. It reports
// whether the event was consumed.
func (s *Surface) Move(p Pointer) bool {
	if s.handler == nil {
		return false
	}
	s.handler.PointerMove(p)
	return true
}

// Up forwards a release event to the capturing handler. It reports
// whether the event was consumed.
func (s *Surface) Up(p Pointer) bool {
	if s.handler == nil {
		return false
	}
	s.handler.PointerUp(p)
	return true
}

// LockScroll disables page scrolling.
func (s *Surface) LockScroll() {
	s.locked = true
}

// UnlockScroll re-enables page scrolling. Safe to call when not locked.
func (s *Surface) UnlockScroll() {
	s.locked = false
}

// ScrollLocked reports whether paging is currently disabled.
func (s *Surface) ScrollLocked() bool {
	return s.locked
}
