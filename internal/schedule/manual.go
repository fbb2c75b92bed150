package schedule

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. It is meant for
// tests and is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	seq    int
	timers []*manualTimer
}

// NewManual returns a Manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	owner    *Manual
	deadline time.Duration
	seq      int
	fn       func()
	done     bool
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.owner.prune()
	return true
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.seq++
	t := &manualTimer{owner: m, deadline: m.now + d, seq: m.seq, fn: f}
	m.timers = append(m.timers, t)
	return t
}

// Now returns the elapsed virtual time.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Pending returns the number of timers that have neither fired nor been
// stopped.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.done {
			n++
		}
	}
	return n
}

// Advance moves virtual time forward by d, firing due timers in deadline
// order. Timers scheduled by a callback fire too if they fall within the
// window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		next.done = true
		next.fn()
	}
	m.now = target
	m.prune()
}

func (m *Manual) nextDue(limit time.Duration) *manualTimer {
	live := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.done && t.deadline <= limit {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].deadline != live[j].deadline {
			return live[i].deadline < live[j].deadline
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (m *Manual) prune() {
	kept := m.timers[:0]
	for _, t := range m.timers {
		if !t.done {
			kept = append(kept, t)
		}
	}
	m.timers = kept
}
