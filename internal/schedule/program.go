package schedule

import (
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the Bubble Tea loop when a Program timer
// expires. The receiving Update must call Run.
type FiredMsg struct {
	timer *programTimer
}

// Run executes the timer callback unless the timer was stopped after its
// expiry message was already queued.
func (m FiredMsg) Run() {
	if m.timer == nil {
		return
	}
	if m.timer.fired.Swap(true) {
		return
	}
	m.timer.fn()
}

// Program is a Scheduler that routes expiries through a Bubble Tea program
// so callbacks run on the UI goroutine.
type Program struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewProgram returns a scheduler with no program attached yet. Expiries
// that happen before Attach are dropped.
func NewProgram() *Program {
	return &Program{}
}

// Attach binds the scheduler to a running program.
func (p *Program) Attach(prog *tea.Program) {
	p.AttachFunc(prog.Send)
}

// AttachFunc binds the scheduler to an arbitrary message sink.
func (p *Program) AttachFunc(send func(tea.Msg)) {
	p.mu.Lock()
	p.send = send
	p.mu.Unlock()
}

// AfterFunc implements Scheduler.
func (p *Program) AfterFunc(d time.Duration, f func()) Timer {
	t := &programTimer{fn: f}
	t.timer = time.AfterFunc(d, func() {
		p.mu.RLock()
		send := p.send
		p.mu.RUnlock()
		if send == nil || t.fired.Load() {
			return
		}
		send(FiredMsg{timer: t})
	})
	return t
}

type programTimer struct {
	timer *time.Timer
	// fired is set once the callback ran or the timer was stopped.
	fired atomic.Bool
	fn    func()
}

func (t *programTimer) Stop() bool {
	t.timer.Stop()
	return !t.fired.Swap(true)
}
